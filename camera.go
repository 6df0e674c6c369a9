package lumen

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera controls the view into the scene: the world-space point it
// centres on, the zoom factor, and the viewport it renders into. Set a
// camera on the Game via SetCamera; a nil camera draws world space 1:1.
type Camera struct {
	// Position is the world-space point the camera centres on.
	Position Vec2
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in).
	Zoom float64
	// Viewport is the logical screen size the camera renders into.
	Viewport Dimensions

	followTarget *GameObject
	followOffset Vec2
	followLerp   float64

	// BoundsEnabled clamps the camera position so the visible area stays
	// within Bounds.
	BoundsEnabled bool
	Bounds        Rect

	scrollTween *scrollAnim
}

// NewCamera creates a camera centred on the middle of the viewport.
func NewCamera(viewport Dimensions) *Camera {
	return &Camera{
		Position: Vec2{X: viewport.Width / 2, Y: viewport.Height / 2},
		Zoom:     1.0,
		Viewport: viewport,
	}
}

// Follow makes the camera track an object's centre with the given offset
// and lerp factor. A lerp of 1.0 snaps immediately; lower values give
// smoother following.
func (c *Camera) Follow(obj *GameObject, offset Vec2, lerp float64) {
	c.followTarget = obj
	c.followOffset = offset
	c.followLerp = lerp
}

// Unfollow stops tracking the current target.
func (c *Camera) Unfollow() {
	c.followTarget = nil
}

// ScrollTo animates the camera to the given world position over duration
// seconds. A follow target takes precedence while the scroll is active.
func (c *Camera) ScrollTo(target Vec2, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.Position.X), float32(target.X), duration, easeFn),
		tweenY: gween.New(float32(c.Position.Y), float32(target.Y), duration, easeFn),
	}
}

// SetBounds enables camera bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// OnFixedTick advances follow, scroll, and bounds clamping. The Game
// calls this each fixed step when a camera is set.
func (c *Camera) OnFixedTick() {
	if c.followTarget != nil {
		target := c.followTarget.Centre().Add(c.followOffset)
		c.Position.X += (target.X - c.Position.X) * c.followLerp
		c.Position.Y += (target.Y - c.Position.Y) * c.followLerp
	}

	if c.scrollTween != nil {
		dt := tickDelta()
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(dt)
			c.Position.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(dt)
			c.Position.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	}

	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// clampToBounds restricts the camera position so the visible area stays
// within Bounds. If the bounds are smaller than the visible area, the
// camera centres on them.
func (c *Camera) clampToBounds() {
	halfW := c.Viewport.Width / (2 * c.Zoom)
	halfH := c.Viewport.Height / (2 * c.Zoom)

	minX := c.Bounds.X + halfW
	maxX := c.Bounds.X + c.Bounds.Width - halfW
	minY := c.Bounds.Y + halfH
	maxY := c.Bounds.Y + c.Bounds.Height - halfH

	if minX > maxX {
		c.Position.X = c.Bounds.X + c.Bounds.Width/2
	} else {
		c.Position.X = math.Max(minX, math.Min(c.Position.X, maxX))
	}
	if minY > maxY {
		c.Position.Y = c.Bounds.Y + c.Bounds.Height/2
	} else {
		c.Position.Y = math.Max(minY, math.Min(c.Position.Y, maxY))
	}
}

// viewOffset returns the pre-zoom translation of the camera's view, so
// that screen = (world + offset) * zoom. Feed it to Graphics.SetView.
func (c *Camera) viewOffset() Vec2 {
	return Vec2{
		X: c.Viewport.Width/(2*c.Zoom) - c.Position.X,
		Y: c.Viewport.Height/(2*c.Zoom) - c.Position.Y,
	}
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(world Vec2) Vec2 {
	return Vec2{
		X: (world.X-c.Position.X)*c.Zoom + c.Viewport.Width/2,
		Y: (world.Y-c.Position.Y)*c.Zoom + c.Viewport.Height/2,
	}
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(screen Vec2) Vec2 {
	return Vec2{
		X: (screen.X-c.Viewport.Width/2)/c.Zoom + c.Position.X,
		Y: (screen.Y-c.Viewport.Height/2)/c.Zoom + c.Position.Y,
	}
}

// VisibleBounds returns the world-space rectangle the camera can see.
func (c *Camera) VisibleBounds() Rect {
	w := c.Viewport.Width / c.Zoom
	h := c.Viewport.Height / c.Zoom
	return Rect{
		X:      c.Position.X - w/2,
		Y:      c.Position.Y - h/2,
		Width:  w,
		Height: h,
	}
}
