package lumen

import "math"

// Particle is a single emitted visual entity. Concrete variants define
// only the visual representation; the owning emitter makes every
// spawning, movement and eviction decision. A particle's wave number is
// fixed at construction and never changes.
type Particle interface {
	// WaveNumber returns the wave that spawned this particle.
	WaveNumber() int

	Position() Vec2
	SetPosition(p Vec2)
	// PositionByCentre moves the particle so that its centre lands on c.
	PositionByCentre(c Vec2)

	RotationDegrees() float64
	SetRotationDegrees(deg float64)

	Dimensions() Dimensions
	SetDimensions(d Dimensions)

	LockedDirections() Directions
	SetLockedDirections(d Directions)

	// MoveToFacedDirection advances the particle along its current
	// rotation by speed pixels, skipping locked directions.
	MoveToFacedDirection(speed float64)
	// MoveInDirection advances the particle along one cardinal direction
	// by speed pixels. Locked directions are skipped.
	MoveInDirection(dir Direction, speed float64)

	// Draw renders the particle. The active color on g has already been
	// configured by the emitter's render context.
	Draw(g *Graphics)
}

// BaseParticle implements all of Particle except Draw. Concrete particle
// variants embed it and supply only their visual.
type BaseParticle struct {
	transform Transform
	wave      int
	locked    Directions
}

// NewBaseParticle creates a BaseParticle belonging to the given wave.
func NewBaseParticle(wave int) BaseParticle {
	return BaseParticle{wave: wave}
}

// WaveNumber returns the wave that spawned this particle.
func (p *BaseParticle) WaveNumber() int {
	return p.wave
}

func (p *BaseParticle) Position() Vec2 {
	return p.transform.Position
}

func (p *BaseParticle) SetPosition(pos Vec2) {
	p.transform.Position = pos
}

// PositionByCentre moves the particle so that its centre lands on c.
func (p *BaseParticle) PositionByCentre(c Vec2) {
	p.transform.PositionByCentre(c)
}

func (p *BaseParticle) RotationDegrees() float64 {
	return p.transform.Rotation
}

func (p *BaseParticle) SetRotationDegrees(deg float64) {
	p.transform.Rotation = deg
}

func (p *BaseParticle) Dimensions() Dimensions {
	return p.transform.Size
}

func (p *BaseParticle) SetDimensions(d Dimensions) {
	p.transform.Size = d
}

func (p *BaseParticle) LockedDirections() Directions {
	return p.locked
}

func (p *BaseParticle) SetLockedDirections(d Directions) {
	p.locked = d
}

// MoveToFacedDirection advances the particle along its rotation by speed
// pixels. Rotation 0 faces right, angles increase clockwise. A movement
// component pointing into a locked direction is dropped.
func (p *BaseParticle) MoveToFacedDirection(speed float64) {
	rad := p.transform.Rotation * math.Pi / 180
	dx := math.Cos(rad) * speed
	dy := math.Sin(rad) * speed

	if dx > 0 && p.locked.Has(DirectionRight) {
		dx = 0
	}
	if dx < 0 && p.locked.Has(DirectionLeft) {
		dx = 0
	}
	if dy > 0 && p.locked.Has(DirectionDown) {
		dy = 0
	}
	if dy < 0 && p.locked.Has(DirectionUp) {
		dy = 0
	}

	p.transform.Position.X += dx
	p.transform.Position.Y += dy
}

// MoveInDirection advances the particle along one cardinal direction by
// speed pixels. A locked direction is a no-op.
func (p *BaseParticle) MoveInDirection(dir Direction, speed float64) {
	if p.locked.Has(dir) {
		return
	}
	switch dir {
	case DirectionUp:
		p.transform.Position.Y -= speed
	case DirectionDown:
		p.transform.Position.Y += speed
	case DirectionLeft:
		p.transform.Position.X -= speed
	case DirectionRight:
		p.transform.Position.X += speed
	}
}

// RectangleParticle is a particle drawn as a filled rectangle.
type RectangleParticle struct {
	BaseParticle
}

// NewRectangleParticle creates a RectangleParticle for the given wave.
func NewRectangleParticle(wave int) *RectangleParticle {
	return &RectangleParticle{BaseParticle: NewBaseParticle(wave)}
}

func (p *RectangleParticle) Draw(g *Graphics) {
	pos := p.Position()
	size := p.Dimensions()
	g.FillRect(pos.X, pos.Y, size.Width, size.Height)
}

// OvalParticle is a particle drawn as a filled ellipse.
type OvalParticle struct {
	BaseParticle
}

// NewOvalParticle creates an OvalParticle for the given wave.
func NewOvalParticle(wave int) *OvalParticle {
	return &OvalParticle{BaseParticle: NewBaseParticle(wave)}
}

func (p *OvalParticle) Draw(g *Graphics) {
	pos := p.Position()
	size := p.Dimensions()
	g.FillOval(pos.X, pos.Y, size.Width, size.Height)
}
