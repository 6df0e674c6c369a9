package lumen

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GameConfig configures the host loop and window.
type GameConfig struct {
	// Title is the window title.
	Title string
	// Width and Height are the logical screen dimensions in pixels.
	Width, Height int
	// TPS is the fixed simulation rate in ticks per second.
	// Zero keeps ebiten's default (60).
	TPS int
	// Background is the clear color of each frame.
	Background Color
	// ScreenshotDir is where Screenshot writes PNG files.
	// Empty means "screenshots".
	ScreenshotDir string
}

// Game is the ebiten.Game adapter that drives a Scene. Each Update is one
// fixed simulation step (ebiten calls Update at a fixed rate); each Draw
// wraps the frame's screen in a Graphics and hands it to the scene.
type Game struct {
	scene         *Scene
	background    Color
	width, height int

	camera *Camera

	screenshotDir   string
	screenshotQueue []string
}

// NewGame creates a host adapter for scene.
func NewGame(scene *Scene, cfg GameConfig) *Game {
	dir := cfg.ScreenshotDir
	if dir == "" {
		dir = "screenshots"
	}
	return &Game{
		scene:         scene,
		background:    cfg.Background,
		width:         cfg.Width,
		height:        cfg.Height,
		screenshotDir: dir,
	}
}

// Scene returns the scene being driven.
func (g *Game) Scene() *Scene {
	return g.scene
}

// Camera returns the active camera, or nil when drawing 1:1.
func (g *Game) Camera() *Camera {
	return g.camera
}

// SetCamera installs a camera. The world layers (objects and lights)
// draw through it; UI elements stay in screen space. A nil camera
// restores 1:1 drawing.
func (g *Game) SetCamera(c *Camera) {
	g.camera = c
}

// Update implements ebiten.Game: one variable tick followed by one fixed
// simulation step.
func (g *Game) Update() error {
	g.scene.OnTick()
	g.scene.OnFixedTick()
	if g.camera != nil {
		g.camera.OnFixedTick()
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	gfx := NewGraphics(screen)
	gfx.SetColor(g.background)
	screen.Fill(gfx.rgba())
	gfx.SetColor(ColorBlack)

	if g.camera == nil {
		g.scene.Draw(gfx)
	} else {
		world := NewGraphics(screen)
		world.SetView(g.camera.viewOffset(), g.camera.Zoom)
		g.scene.drawWorld(world)
		g.scene.drawUI(gfx)
	}

	g.flushScreenshots(screen)
}

// tickDelta is the duration of one fixed step in seconds, derived from
// the active TPS. Falls back to 60 when ebiten syncs ticks to frames.
func tickDelta() float32 {
	if tps := ebiten.TPS(); tps > 0 {
		return 1 / float32(tps)
	}
	return 1.0 / 60
}

// Layout implements ebiten.Game with a fixed logical size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens the window described by cfg and runs the scene until the
// window closes or an error occurs.
func Run(scene *Scene, cfg GameConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(NewGame(scene, cfg))
}
