package lumen

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// kappa is the Bézier circle approximation constant: 4*(sqrt(2)-1)/3.
const kappa = 0.5522847498307936

// whitePixel is a lazily created 1x1 white image used to fill paths.
// Created on first use rather than in init so that pure-simulation code
// (and its tests) never touches the GPU.
var whitePixelImg *ebiten.Image

func whitePixel() *ebiten.Image {
	if whitePixelImg == nil {
		whitePixelImg = ebiten.NewImage(1, 1)
		whitePixelImg.Fill(color.White)
	}
	return whitePixelImg
}

// defaultFace is the bitmap face used by DrawText.
var defaultFace = text.NewGoXFace(basicfont.Face7x13)

// Graphics is a stateful drawing surface handed to every draw call in the
// engine. It wraps the frame's target image together with the currently
// active color and stroke width; render contexts mutate this shared state
// before each particle draws itself.
type Graphics struct {
	target *ebiten.Image

	color     Color
	lineWidth float32

	viewOff   Vec2
	viewScale float64

	vs []ebiten.Vertex
	is []uint16
}

// NewGraphics wraps target in a Graphics with black color and a 1px stroke.
func NewGraphics(target *ebiten.Image) *Graphics {
	return &Graphics{
		target:    target,
		color:     ColorBlack,
		lineWidth: 1,
		viewScale: 1,
	}
}

// SetView places the surface behind a camera view: every incoming world
// coordinate is offset then scaled before it reaches the target, so
// screen = (world + offset) * scale. The Game configures this for the
// world layers when a camera is installed.
func (g *Graphics) SetView(offset Vec2, scale float64) {
	g.viewOff = offset
	g.viewScale = scale
}

// pt maps a world point to target coordinates under the active view.
func (g *Graphics) pt(x, y float64) (float32, float32) {
	return float32((x + g.viewOff.X) * g.viewScale), float32((y + g.viewOff.Y) * g.viewScale)
}

// span scales a world-space length under the active view.
func (g *Graphics) span(v float64) float32 {
	return float32(v * g.viewScale)
}

// applyView folds the active view into a GeoM built in world space.
func (g *Graphics) applyView(m *ebiten.GeoM) {
	m.Translate(g.viewOff.X, g.viewOff.Y)
	m.Scale(g.viewScale, g.viewScale)
}

// strokeWidth is the active line width in target pixels.
func (g *Graphics) strokeWidth() float32 {
	return g.lineWidth * float32(g.viewScale)
}

// Target returns the underlying image being drawn to.
func (g *Graphics) Target() *ebiten.Image {
	return g.target
}

// SetColor sets the active drawing color.
func (g *Graphics) SetColor(c Color) {
	g.color = c
}

// Color returns the active drawing color.
func (g *Graphics) Color() Color {
	return g.color
}

// SetLineWidth sets the stroke width for outline drawing.
func (g *Graphics) SetLineWidth(w float64) {
	g.lineWidth = float32(w)
}

// rgba converts the active color to a premultiplied color.RGBA.
func (g *Graphics) rgba() color.RGBA {
	return color.RGBA{
		R: uint8(g.color.R * g.color.A * 255),
		G: uint8(g.color.G * g.color.A * 255),
		B: uint8(g.color.B * g.color.A * 255),
		A: uint8(g.color.A * 255),
	}
}

// FillRect fills a rectangle with the active color.
func (g *Graphics) FillRect(x, y, width, height float64) {
	x0, y0 := g.pt(x, y)
	vector.DrawFilledRect(g.target, x0, y0, g.span(width), g.span(height), g.rgba(), true)
}

// DrawRect strokes a rectangle outline with the active color and line width.
func (g *Graphics) DrawRect(x, y, width, height float64) {
	x0, y0 := g.pt(x, y)
	vector.StrokeRect(g.target, x0, y0, g.span(width), g.span(height), g.strokeWidth(), g.rgba(), true)
}

// FillLine strokes a line segment with the active color and line width.
func (g *Graphics) FillLine(x1, y1, x2, y2 float64) {
	sx1, sy1 := g.pt(x1, y1)
	sx2, sy2 := g.pt(x2, y2)
	vector.StrokeLine(g.target, sx1, sy1, sx2, sy2, g.strokeWidth(), g.rgba(), true)
}

// ovalPath builds an ellipse path inscribed in the given rectangle using
// four cubic Bézier segments. Coordinates are in target space.
func ovalPath(x, y, width, height float32) vector.Path {
	cx := x + width/2
	cy := y + height/2
	rx := width / 2
	ry := height / 2
	ox := rx * kappa
	oy := ry * kappa

	var path vector.Path
	path.MoveTo(cx+rx, cy)
	path.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	path.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	path.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	path.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	path.Close()
	return path
}

// FillOval fills an ellipse inscribed in the given rectangle.
func (g *Graphics) FillOval(x, y, width, height float64) {
	x0, y0 := g.pt(x, y)
	path := ovalPath(x0, y0, g.span(width), g.span(height))
	g.vs, g.is = path.AppendVerticesAndIndicesForFilling(g.vs[:0], g.is[:0])
	g.submitPath()
}

// DrawOval strokes an ellipse outline inscribed in the given rectangle.
func (g *Graphics) DrawOval(x, y, width, height float64) {
	x0, y0 := g.pt(x, y)
	path := ovalPath(x0, y0, g.span(width), g.span(height))
	g.vs, g.is = path.AppendVerticesAndIndicesForStroke(g.vs[:0], g.is[:0], &vector.StrokeOptions{
		Width: g.strokeWidth(),
	})
	g.submitPath()
}

// FillRoundRect fills a rectangle with rounded corners of the given radius.
func (g *Graphics) FillRoundRect(x, y, width, height, radius float64) {
	r := g.span(math.Min(radius, math.Min(width, height)/2))
	x0, y0 := g.pt(x, y)
	x1, y1 := g.pt(x+width, y+height)

	var path vector.Path
	path.MoveTo(x0+r, y0)
	path.LineTo(x1-r, y0)
	path.ArcTo(x1, y0, x1, y0+r, r)
	path.LineTo(x1, y1-r)
	path.ArcTo(x1, y1, x1-r, y1, r)
	path.LineTo(x0+r, y1)
	path.ArcTo(x0, y1, x0, y1-r, r)
	path.LineTo(x0, y0+r)
	path.ArcTo(x0, y0, x0+r, y0, r)
	path.Close()

	g.vs, g.is = path.AppendVerticesAndIndicesForFilling(g.vs[:0], g.is[:0])
	g.submitPath()
}

// submitPath draws the buffered vertices tinted with the active color.
func (g *Graphics) submitPath() {
	c := g.color
	for i := range g.vs {
		g.vs[i].SrcX = 0.5
		g.vs[i].SrcY = 0.5
		g.vs[i].ColorR = float32(c.R)
		g.vs[i].ColorG = float32(c.G)
		g.vs[i].ColorB = float32(c.B)
		g.vs[i].ColorA = float32(c.A)
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	g.target.DrawTriangles(g.vs, g.is, whitePixel(), op)
}

// DrawImage draws img scaled to the given rectangle.
func (g *Graphics) DrawImage(img *ebiten.Image, x, y, width, height float64) {
	if img == nil {
		return
	}
	bounds := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(width/float64(bounds.Dx()), height/float64(bounds.Dy()))
	op.GeoM.Translate(x, y)
	g.applyView(&op.GeoM)
	g.target.DrawImage(img, op)
}

// DrawText renders s at (x, y) in the active color using the engine's
// built-in bitmap face.
func (g *Graphics) DrawText(s string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	g.applyView(&op.GeoM)
	op.ColorScale.ScaleWithColor(g.rgba())
	text.Draw(g.target, s, defaultFace, op)
}

// TextWidth returns the rendered width of s in the built-in face.
func TextWidth(s string) float64 {
	w, _ := text.Measure(s, defaultFace, 0)
	return w
}
