package lumen

import "math/rand/v2"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to ebiten.
type Color struct {
	R, G, B, A float64
}

// Common colors used as defaults throughout the engine.
var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
)

// WithAlpha returns a copy of the color with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Vec2 is a 2D vector used for positions, offsets, and directions
// throughout the API. The coordinate system has its origin at the
// top-left, with Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of v and other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Dimensions is a width/height pair.
type Dimensions struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Range is a general-purpose min/max range.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max].
func (r Range) Random() float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rand.Float64()*(r.Max-r.Min)
}

// Transform is the spatial state shared by game objects and particles:
// a top-left position, a size, and a rotation in degrees. Rotation 0
// faces right; angles increase clockwise (Y grows downward).
type Transform struct {
	Position Vec2
	Size     Dimensions
	Rotation float64
}

// Centre returns the centre point of the transform's rectangle.
func (t Transform) Centre() Vec2 {
	return Vec2{
		X: t.Position.X + t.Size.Width/2,
		Y: t.Position.Y + t.Size.Height/2,
	}
}

// PositionByCentre moves the transform so that its centre lands on c.
func (t *Transform) PositionByCentre(c Vec2) {
	t.Position.X = c.X - t.Size.Width/2
	t.Position.Y = c.Y - t.Size.Height/2
}

// Bounds returns the transform's rectangle.
func (t Transform) Bounds() Rect {
	return Rect{t.Position.X, t.Position.Y, t.Size.Width, t.Size.Height}
}

// Direction is one of the four cardinal movement directions.
type Direction uint8

const (
	DirectionUp Direction = 1 << iota
	DirectionDown
	DirectionRight
	DirectionLeft
)

// Directions is a set of cardinal directions, used as a movement mask.
// The zero value is the empty set.
type Directions uint8

// Add inserts d into the set.
func (s *Directions) Add(d Direction) {
	*s |= Directions(d)
}

// Remove deletes d from the set.
func (s *Directions) Remove(d Direction) {
	*s &^= Directions(d)
}

// Has reports whether d is in the set.
func (s Directions) Has(d Direction) bool {
	return s&Directions(d) != 0
}

// RandomDimensions returns dimensions with width and height drawn
// independently from the given inclusive integer bounds.
func RandomDimensions(minWidth, maxWidth, minHeight, maxHeight float64) Dimensions {
	return Dimensions{
		Width:  float64(randomInt(minWidth, maxWidth)),
		Height: float64(randomInt(minHeight, maxHeight)),
	}
}

// randomInt returns a random integer in [min, max], bounds rounded.
func randomInt(min, max float64) int {
	lo := int(min + 0.5)
	hi := int(max + 0.5)
	if hi <= lo {
		return lo
	}
	return lo + rand.IntN(hi-lo+1)
}
