package lumen

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled screenshot to be captured at the end of the
// current frame's Draw call. The resulting PNG is written to the game's
// ScreenshotDir with a timestamped filename. Safe to call from any hook.
func (g *Game) Screenshot(label string) {
	g.screenshotQueue = append(g.screenshotQueue, label)
}

// flushScreenshots captures the rendered frame once and writes one PNG
// per queued label. Called at the end of Game.Draw.
func (g *Game) flushScreenshots(screen *ebiten.Image) {
	if len(g.screenshotQueue) == 0 {
		return
	}

	if err := os.MkdirAll(g.screenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[lumen] screenshot: mkdir %s: %v\n", g.screenshotDir, err)
		g.screenshotQueue = g.screenshotQueue[:0]
		return
	}

	img := captureFrame(screen)
	stamp := time.Now().Format("20060102_150405")

	for _, label := range g.screenshotQueue {
		name := stamp + "_" + sanitizeLabel(label) + ".png"
		if err := savePNG(filepath.Join(g.screenshotDir, name), img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[lumen] screenshot: %v\n", err)
		}
	}

	g.screenshotQueue = g.screenshotQueue[:0]
}

// captureFrame reads the frame's pixels into a straight-alpha image.
func captureFrame(screen *ebiten.Image) *image.NRGBA {
	b := screen.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(img.Pix)
	for i := 0; i < len(img.Pix); i += 4 {
		unmultiply(img.Pix[i : i+4 : i+4])
	}
	return img
}

// unmultiply converts one premultiplied RGBA pixel to straight alpha in
// place. Fully opaque and fully transparent pixels pass through.
func unmultiply(px []byte) {
	a := int(px[3])
	if a == 0 || a == 255 {
		return
	}
	for i := 0; i < 3; i++ {
		px[i] = uint8(min(int(px[i])*255/a, 255))
	}
}

// savePNG encodes img to a PNG file at path.
func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel makes a label safe for use in a file name. Empty labels
// become "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		default:
			return '_'
		}
	}, label)
}
