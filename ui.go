package lumen

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Button is a clickable UI widget: a rounded rectangle (or texture) with
// a centred label. Hovering fades between the base and hover colors.
type Button struct {
	Bounds Rect
	Label  string

	Background      Color
	HoverBackground Color
	TextColor       Color
	CornerRadius    float64

	// Texture, if set, is drawn instead of the rounded background.
	Texture *ebiten.Image

	// OnClick fires when the primary button is pressed inside Bounds.
	OnClick func()

	hovered    bool
	hoverTween *gween.Tween
	hoverMix   float64
}

// NewButton creates a button with the engine's default colors.
func NewButton(bounds Rect, label string, onClick func()) *Button {
	return &Button{
		Bounds:          bounds,
		Label:           label,
		Background:      Color{0.2, 0.2, 0.25, 1},
		HoverBackground: Color{0.35, 0.35, 0.4, 1},
		TextColor:       ColorWhite,
		CornerRadius:    6,
		OnClick:         onClick,
	}
}

// OnTick polls the cursor, drives the hover fade, and fires OnClick.
func (b *Button) OnTick() {
	x, y := ebiten.CursorPosition()
	hovered := b.Bounds.Contains(float64(x), float64(y))

	if hovered != b.hovered {
		b.hovered = hovered
		target := float32(0)
		if hovered {
			target = 1
		}
		b.hoverTween = gween.New(float32(b.hoverMix), target, 0.15, ease.OutQuad)
	}
	if b.hoverTween != nil {
		val, finished := b.hoverTween.Update(tickDelta())
		b.hoverMix = float64(val)
		if finished {
			b.hoverTween = nil
		}
	}

	if hovered && b.OnClick != nil && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		b.OnClick()
	}
}

// Draw renders the button background and its centred label.
func (b *Button) Draw(g *Graphics) {
	if b.Texture != nil {
		g.DrawImage(b.Texture, b.Bounds.X, b.Bounds.Y, b.Bounds.Width, b.Bounds.Height)
	} else {
		g.SetColor(mixColor(b.Background, b.HoverBackground, b.hoverMix))
		g.FillRoundRect(b.Bounds.X, b.Bounds.Y, b.Bounds.Width, b.Bounds.Height, b.CornerRadius)
	}

	g.SetColor(b.TextColor)
	tw := TextWidth(b.Label)
	tx := b.Bounds.X + (b.Bounds.Width-tw)/2
	ty := b.Bounds.Y + b.Bounds.Height/2 - 7
	g.DrawText(b.Label, tx, ty)
}

// mixColor linearly blends a toward b by t in [0, 1].
func mixColor(a, b Color, t float64) Color {
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

// TextBox is a rounded text panel that reveals its content one character
// at a time, typewriter style.
type TextBox struct {
	Bounds Rect
	Text   string

	Background   Color
	TextColor    Color
	CornerRadius float64
	Padding      float64

	// TicksPerChar controls the reveal speed; 0 shows everything at once.
	TicksPerChar int

	revealed int
	ticks    int
	lines    []string
	wrapped  string
}

// NewTextBox creates a text box with the engine's default colors and a
// two-ticks-per-character reveal.
func NewTextBox(bounds Rect, text string) *TextBox {
	return &TextBox{
		Bounds:       bounds,
		Text:         text,
		Background:   Color{0.12, 0.12, 0.16, 0.9},
		TextColor:    ColorWhite,
		CornerRadius: 10,
		Padding:      12,
		TicksPerChar: 2,
	}
}

// SetText replaces the content and restarts the reveal.
func (tb *TextBox) SetText(text string) {
	tb.Text = text
	tb.revealed = 0
	tb.ticks = 0
	tb.lines = nil
	tb.wrapped = ""
}

// RevealAll shows the whole text immediately.
func (tb *TextBox) RevealAll() {
	tb.revealed = len([]rune(tb.Text))
}

// Done reports whether the whole text is visible.
func (tb *TextBox) Done() bool {
	return tb.revealed >= len([]rune(tb.Text))
}

// OnTick advances the typewriter reveal.
func (tb *TextBox) OnTick() {
	if tb.Done() {
		return
	}
	if tb.TicksPerChar <= 0 {
		tb.RevealAll()
		return
	}
	tb.ticks++
	if tb.ticks >= tb.TicksPerChar {
		tb.ticks = 0
		tb.revealed++
	}
}

// Draw renders the rounded background and the revealed portion of the
// text, word-wrapped to the box width.
func (tb *TextBox) Draw(g *Graphics) {
	g.SetColor(tb.Background)
	g.FillRoundRect(tb.Bounds.X, tb.Bounds.Y, tb.Bounds.Width, tb.Bounds.Height, tb.CornerRadius)

	visible := string([]rune(tb.Text)[:tb.revealed])
	if visible != tb.wrapped {
		tb.lines = wrapText(visible, tb.Bounds.Width-tb.Padding*2)
		tb.wrapped = visible
	}

	g.SetColor(tb.TextColor)
	const lineHeight = 14
	y := tb.Bounds.Y + tb.Padding
	for _, line := range tb.lines {
		if y+lineHeight > tb.Bounds.Y+tb.Bounds.Height-tb.Padding {
			break
		}
		g.DrawText(line, tb.Bounds.X+tb.Padding, y)
		y += lineHeight
	}
}

// wrapText greedily wraps s into lines no wider than maxWidth.
func wrapText(s string, maxWidth float64) []string {
	var lines []string
	var current string

	for _, word := range strings.Fields(s) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if TextWidth(candidate) <= maxWidth || current == "" {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
