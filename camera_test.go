package lumen

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

func testCamera() *Camera {
	return NewCamera(Dimensions{Width: 800, Height: 600})
}

func TestCameraDefaults(t *testing.T) {
	c := testCamera()
	assertNear(t, "zoom", c.Zoom, 1.0)
	assertNear(t, "x", c.Position.X, 400)
	assertNear(t, "y", c.Position.Y, 300)
}

func TestCameraWorldScreenRoundTrip(t *testing.T) {
	c := testCamera()
	c.Position = Vec2{X: 1000, Y: 500}
	c.Zoom = 2

	world := Vec2{X: 1040, Y: 470}
	screen := c.WorldToScreen(world)
	assertNear(t, "screen x", screen.X, 480)
	assertNear(t, "screen y", screen.Y, 240)

	back := c.ScreenToWorld(screen)
	assertNear(t, "world x", back.X, world.X)
	assertNear(t, "world y", back.Y, world.Y)
}

func TestCameraVisibleBounds(t *testing.T) {
	c := testCamera()
	c.Position = Vec2{X: 400, Y: 300}
	c.Zoom = 2

	vb := c.VisibleBounds()
	assertNear(t, "x", vb.X, 200)
	assertNear(t, "y", vb.Y, 150)
	assertNear(t, "width", vb.Width, 400)
	assertNear(t, "height", vb.Height, 300)
}

func TestCameraClampsToBounds(t *testing.T) {
	c := testCamera()
	c.SetBounds(Rect{X: 0, Y: 0, Width: 2000, Height: 2000})

	c.Position = Vec2{X: -500, Y: 5000}
	c.OnFixedTick()
	assertNear(t, "x", c.Position.X, 400)
	assertNear(t, "y", c.Position.Y, 1700)
}

func TestCameraCentresOnSmallBounds(t *testing.T) {
	c := testCamera()
	c.SetBounds(Rect{X: 100, Y: 100, Width: 200, Height: 200})

	c.OnFixedTick()
	assertNear(t, "x", c.Position.X, 200)
	assertNear(t, "y", c.Position.Y, 200)
}

func TestCameraFollowLerp(t *testing.T) {
	c := testCamera()
	c.Position = Vec2{}
	target := NewGameObject(Vec2{X: 90, Y: 90}, Dimensions{Width: 20, Height: 20})

	c.Follow(target, Vec2{}, 0.5)
	c.OnFixedTick()
	assertNear(t, "x", c.Position.X, 50)
	assertNear(t, "y", c.Position.Y, 50)

	c.Unfollow()
	c.OnFixedTick()
	assertNear(t, "x after unfollow", c.Position.X, 50)
}

func TestCameraFollowSnapsWithFullLerp(t *testing.T) {
	c := testCamera()
	target := NewGameObject(Vec2{X: 500, Y: 700}, Dimensions{Width: 10, Height: 10})

	c.Follow(target, Vec2{X: 0, Y: -40}, 1.0)
	c.OnFixedTick()
	assertNear(t, "x", c.Position.X, 505)
	assertNear(t, "y", c.Position.Y, 665)
}

func TestCameraScrollToCompletes(t *testing.T) {
	c := testCamera()
	c.Position = Vec2{}

	c.ScrollTo(Vec2{X: 120, Y: 60}, 0.5, ease.Linear)
	for n := 0; n < 60; n++ {
		c.OnFixedTick()
	}
	assertNear(t, "x", c.Position.X, 120)
	assertNear(t, "y", c.Position.Y, 60)
	if c.scrollTween != nil {
		t.Error("scroll tween must clear itself when finished")
	}
}

func TestGraphicsViewShowsDistantWorld(t *testing.T) {
	c := testCamera()
	c.Position = Vec2{X: 1500, Y: 700}
	c.Zoom = 2

	g := NewGraphics(nil)
	g.SetView(c.viewOffset(), c.Zoom)

	// The camera's centre must land on the viewport centre.
	x, y := g.pt(1500, 700)
	assertNear(t, "centre x", float64(x), 400)
	assertNear(t, "centre y", float64(y), 300)

	// Any world point maps exactly where WorldToScreen says it does.
	sx, sy := g.pt(1540, 670)
	want := c.WorldToScreen(Vec2{X: 1540, Y: 670})
	assertNear(t, "x", float64(sx), want.X)
	assertNear(t, "y", float64(sy), want.Y)

	// Lengths scale with the zoom.
	assertNear(t, "span", float64(g.span(25)), 50)
}

func TestGraphicsDefaultViewIsIdentity(t *testing.T) {
	g := NewGraphics(nil)
	x, y := g.pt(123, 456)
	assertNear(t, "x", float64(x), 123)
	assertNear(t, "y", float64(y), 456)
	assertNear(t, "span", float64(g.span(7)), 7)
}

func TestCameraScrollHonorsTickRate(t *testing.T) {
	ebiten.SetTPS(120)
	defer ebiten.SetTPS(ebiten.DefaultTPS)

	c := testCamera()
	c.Position = Vec2{}
	c.ScrollTo(Vec2{X: 100, Y: 0}, 0.5, ease.Linear)

	// Half a second at 120 TPS is 60 ticks; 30 ticks is halfway.
	for n := 0; n < 30; n++ {
		c.OnFixedTick()
	}
	if c.Position.X < 49.9 || c.Position.X > 50.1 {
		t.Errorf("x halfway = %v, want ~50", c.Position.X)
	}

	for n := 0; n < 30; n++ {
		c.OnFixedTick()
	}
	assertNear(t, "x done", c.Position.X, 100)
}
