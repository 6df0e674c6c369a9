package lumen

import (
	"math/rand/v2"

	"github.com/aquilax/go-perlin"
)

// PerlinDriftEmitter spawns particles like the radial emitter but steers
// each one through a Perlin noise field, producing smoke-like drift
// instead of straight radial travel.
type PerlinDriftEmitter struct {
	*Emitter

	speed       float64
	turnDegrees float64
	noiseScale  float64
	noise       *perlin.Perlin
	ticks       float64
}

// NewPerlinDriftEmitter creates a drift emitter attached to parent. The
// noise field is seeded randomly; use NewPerlinDriftEmitterSeeded for a
// reproducible field.
func NewPerlinDriftEmitter(parent *GameObject, name string, factory ParticleFactory, amount float64, waveDuration int) *PerlinDriftEmitter {
	return NewPerlinDriftEmitterSeeded(parent, name, factory, amount, waveDuration, rand.Int64())
}

// NewPerlinDriftEmitterSeeded creates a drift emitter with a
// deterministic noise field.
func NewPerlinDriftEmitterSeeded(parent *GameObject, name string, factory ParticleFactory, amount float64, waveDuration int, seed int64) *PerlinDriftEmitter {
	d := &PerlinDriftEmitter{
		Emitter:     NewEmitter(parent, name, factory, amount, waveDuration),
		speed:       0.5,
		turnDegrees: 6,
		noiseScale:  0.01,
		noise:       perlin.NewPerlin(2, 2, 3, seed),
	}
	d.SetPolicy(d)
	return d
}

// InitializeEmitter implements EmitterPolicy.
func (d *PerlinDriftEmitter) InitializeEmitter() {
	d.ticks = 0
}

// SpawnParticle implements EmitterPolicy.
func (d *PerlinDriftEmitter) SpawnParticle() Particle {
	p := d.CreateParticle()
	if p == nil {
		return nil
	}
	p.PositionByCentre(d.Parent().Centre())
	p.SetRotationDegrees(rand.Float64() * 360)
	return p
}

// OnFixedTick advances the noise time axis once per fixed step, then
// runs the usual wave machinery. Per-particle sampling stays spatial, so
// the field animates at the same rate however many particles are live.
func (d *PerlinDriftEmitter) OnFixedTick() {
	d.ticks += 1.0 / 256
	d.Emitter.OnFixedTick()
}

// MoveParticle implements EmitterPolicy: the particle's rotation is
// nudged by the noise value at its position, then it advances along the
// new facing.
func (d *PerlinDriftEmitter) MoveParticle(p Particle) {
	pos := p.Position()
	n := d.noise.Noise3D(pos.X*d.noiseScale, pos.Y*d.noiseScale, d.ticks)
	p.SetRotationDegrees(p.RotationDegrees() + n*d.turnDegrees)
	p.MoveToFacedDirection(d.speed)
}

// Speed returns the per-tick particle speed in pixels.
func (d *PerlinDriftEmitter) Speed() float64 {
	return d.speed
}

// SetSpeed sets the per-tick particle speed in pixels.
func (d *PerlinDriftEmitter) SetSpeed(speed float64) {
	d.speed = speed
}

// SetTurnDegrees sets the maximum per-tick steering, in degrees.
func (d *PerlinDriftEmitter) SetTurnDegrees(deg float64) {
	d.turnDegrees = deg
}

// SetNoiseScale sets how quickly the noise field varies across space.
func (d *PerlinDriftEmitter) SetNoiseScale(scale float64) {
	d.noiseScale = scale
}
