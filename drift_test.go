package lumen

import "testing"

func driftEmitter(t *testing.T, seed int64) *PerlinDriftEmitter {
	t.Helper()
	parent := NewGameObject(Vec2{X: 100, Y: 100}, Dimensions{Width: 10, Height: 10})
	return NewPerlinDriftEmitterSeeded(parent, "smoke", rectFactory, 4, 1, seed)
}

func TestDriftSpawnsWaves(t *testing.T) {
	d := driftEmitter(t, 1)
	for n := 0; n < 3; n++ {
		d.OnFixedTick()
	}
	if d.ParticleCount() != 12 {
		t.Errorf("particle count = %d, want 12", d.ParticleCount())
	}
	if d.CurrentWave() != 3 {
		t.Errorf("currentWave = %d, want 3", d.CurrentWave())
	}
}

func TestDriftSteeringIsBounded(t *testing.T) {
	d := driftEmitter(t, 42)
	d.SetTurnDegrees(5)

	d.OnFixedTick()
	p := d.Particles()[0]
	before := p.RotationDegrees()
	d.MoveParticle(p)
	delta := p.RotationDegrees() - before
	if delta < -5 || delta > 5 {
		t.Errorf("steering delta = %v, outside [-5, 5]", delta)
	}
}

func TestDriftZeroSpeedKeepsPosition(t *testing.T) {
	d := driftEmitter(t, 7)
	d.SetSpeed(0)

	d.OnFixedTick()
	p := d.Particles()[0]
	pos := p.Position()
	for n := 0; n < 20; n++ {
		d.OnFixedTick()
	}
	if p.Position() != pos {
		t.Errorf("position changed with speed 0: %+v -> %+v", pos, p.Position())
	}
}

func TestDriftNoiseTimeAdvancesPerTick(t *testing.T) {
	parent := NewGameObject(Vec2{X: 100, Y: 100}, Dimensions{Width: 10, Height: 10})
	sparse := NewPerlinDriftEmitterSeeded(parent, "sparse", rectFactory, 2, 1, 9)
	dense := NewPerlinDriftEmitterSeeded(parent, "dense", rectFactory, 50, 1, 9)

	for n := 0; n < 10; n++ {
		sparse.OnFixedTick()
		dense.OnFixedTick()
	}

	assertNear(t, "sparse time", sparse.ticks, 10.0/256)
	assertNear(t, "dense time", dense.ticks, 10.0/256)
}
