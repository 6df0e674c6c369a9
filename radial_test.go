package lumen

import (
	"math"
	"testing"
)

func TestRadialSpawnPlacement(t *testing.T) {
	parent := NewGameObject(Vec2{X: 100, Y: 40}, Dimensions{Width: 60, Height: 20})
	r := NewRandomRadialEmitter(parent, "emitter", rectFactory, 20, 1)
	r.SetSpeed(0)
	if err := r.Emitter.SetFixedParticleDimensions(Dimensions{Width: 8, Height: 8}); err != nil {
		t.Fatal(err)
	}

	r.OnFixedTick()
	centre := parent.Centre()
	for i, p := range r.Particles() {
		pos := p.Position()
		cx := pos.X + p.Dimensions().Width/2
		cy := pos.Y + p.Dimensions().Height/2
		if cx != centre.X || cy != centre.Y {
			t.Errorf("particle %d centre = (%v, %v), want (%v, %v)", i, cx, cy, centre.X, centre.Y)
		}
		rot := p.RotationDegrees()
		if rot < 0 || rot >= 360 {
			t.Errorf("particle %d rotation = %v, outside [0, 360)", i, rot)
		}
	}
}

func TestRadialAppliesLockedDirections(t *testing.T) {
	parent := NewGameObject(Vec2{}, Dimensions{Width: 10, Height: 10})
	r := NewRandomRadialEmitter(parent, "emitter", rectFactory, 5, 1)
	var locked Directions
	locked.Add(DirectionUp)
	locked.Add(DirectionLeft)
	r.SetLockedDirections(locked)

	r.OnFixedTick()
	for i, p := range r.Particles() {
		if p.LockedDirections() != locked {
			t.Errorf("particle %d locked = %v, want %v", i, p.LockedDirections(), locked)
		}
	}
}

func TestZeroSpeedIsIdempotent(t *testing.T) {
	e := testEmitter(3, 1)
	e.OnFixedTick()

	positions := make([]Vec2, 0, 3)
	for _, p := range e.Particles() {
		positions = append(positions, p.Position())
	}

	for n := 0; n < 50; n++ {
		e.OnFixedTick()
	}
	for i, p := range e.Particles()[:3] {
		if p.Position() != positions[i] {
			t.Errorf("particle %d moved with speed 0: %+v -> %+v", i, positions[i], p.Position())
		}
	}
}

func TestRadialMovesAlongFacing(t *testing.T) {
	parent := NewGameObject(Vec2{}, Dimensions{Width: 0, Height: 0})
	r := NewRandomRadialEmitter(parent, "emitter", rectFactory, 1, 1)
	r.SetSpeed(2)

	r.OnFixedTick() // spawn and move once
	p := r.Particles()[0]
	rad := p.RotationDegrees() * math.Pi / 180
	wantX := math.Cos(rad) * 2
	wantY := math.Sin(rad) * 2
	assertNear(t, "x", p.Position().X, wantX)
	assertNear(t, "y", p.Position().Y, wantY)
}

func TestMoveToFacedDirectionHonorsLocks(t *testing.T) {
	p := NewRectangleParticle(0)
	p.SetRotationDegrees(0) // facing right

	var locked Directions
	locked.Add(DirectionRight)
	p.SetLockedDirections(locked)
	p.MoveToFacedDirection(5)
	if p.Position() != (Vec2{}) {
		t.Errorf("locked right: position = %+v, want origin", p.Position())
	}

	p.SetLockedDirections(Directions(0))
	p.MoveToFacedDirection(5)
	assertNear(t, "x after unlock", p.Position().X, 5)
	assertNear(t, "y after unlock", p.Position().Y, 0)
}

func TestMoveToFacedDirectionLocksAxesIndependently(t *testing.T) {
	p := NewRectangleParticle(0)
	p.SetRotationDegrees(45) // down-right

	var locked Directions
	locked.Add(DirectionDown)
	p.SetLockedDirections(locked)
	p.MoveToFacedDirection(math.Sqrt2)

	assertNear(t, "x", p.Position().X, 1)
	assertNear(t, "y", p.Position().Y, 0)
}

func TestMoveInDirection(t *testing.T) {
	p := NewRectangleParticle(0)
	p.SetPosition(Vec2{X: 10, Y: 10})

	p.MoveInDirection(DirectionRight, 3)
	p.MoveInDirection(DirectionDown, 2)
	if p.Position() != (Vec2{X: 13, Y: 12}) {
		t.Errorf("position = %+v, want {13 12}", p.Position())
	}

	var locked Directions
	locked.Add(DirectionLeft)
	p.SetLockedDirections(locked)
	p.MoveInDirection(DirectionLeft, 5)
	if p.Position() != (Vec2{X: 13, Y: 12}) {
		t.Errorf("locked move changed position: %+v", p.Position())
	}
}
