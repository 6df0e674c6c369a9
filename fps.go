package lumen

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// FPSWidget is a UI element showing the actual FPS and TPS in the
// top-left corner, refreshed twice a second.
type FPSWidget struct {
	ticks int
	text  string
}

// NewFPSWidget creates the overlay widget.
func NewFPSWidget() *FPSWidget {
	return &FPSWidget{text: "FPS: -\nTPS: -"}
}

// OnTick refreshes the readings every ~0.5 seconds.
func (w *FPSWidget) OnTick() {
	w.ticks++
	if w.ticks < ebiten.TPS()/2 {
		return
	}
	w.ticks = 0
	w.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}

// Draw prints the readings onto the frame.
func (w *FPSWidget) Draw(g *Graphics) {
	ebitenutil.DebugPrint(g.Target(), w.text)
}
