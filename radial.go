package lumen

import "math/rand/v2"

// RandomRadialEmitter spawns its particles at the centre of its parent
// and gives each a uniformly random rotation in [0°, 360°). Particles
// move along their facing direction at a fixed speed, except into locked
// directions.
type RandomRadialEmitter struct {
	*Emitter

	speed  float64
	locked Directions
}

// NewRandomRadialEmitter creates a radial emitter attached to parent,
// emitting amount particles from the registered factory every
// waveDuration fixed ticks.
func NewRandomRadialEmitter(parent *GameObject, name string, factory ParticleFactory, amount float64, waveDuration int) *RandomRadialEmitter {
	r := &RandomRadialEmitter{
		Emitter: NewEmitter(parent, name, factory, amount, waveDuration),
		speed:   0.5,
	}
	r.SetPolicy(r)
	return r
}

// InitializeEmitter implements EmitterPolicy. Nothing to prepare.
func (r *RandomRadialEmitter) InitializeEmitter() {}

// SpawnParticle implements EmitterPolicy: the new particle is centred on
// the parent, rotated randomly, and given the emitter's locked mask.
func (r *RandomRadialEmitter) SpawnParticle() Particle {
	p := r.CreateParticle()
	if p == nil {
		return nil
	}
	p.PositionByCentre(r.Parent().Centre())
	p.SetRotationDegrees(rand.Float64() * 360)
	p.SetLockedDirections(r.locked)
	return p
}

// MoveParticle implements EmitterPolicy.
func (r *RandomRadialEmitter) MoveParticle(p Particle) {
	p.MoveToFacedDirection(r.speed)
}

// Speed returns the per-tick particle speed in pixels.
func (r *RandomRadialEmitter) Speed() float64 {
	return r.speed
}

// SetSpeed sets the per-tick particle speed in pixels.
func (r *RandomRadialEmitter) SetSpeed(speed float64) {
	r.speed = speed
}

// LockedDirections returns the directions particles may not move in.
func (r *RandomRadialEmitter) LockedDirections() Directions {
	return r.locked
}

// SetLockedDirections sets the directions particles may not move in.
// Applies to particles spawned afterwards.
func (r *RandomRadialEmitter) SetLockedDirections(d Directions) {
	r.locked = d
}
