package lumen

import "github.com/hajimehoshi/ebiten/v2"

// RectangleRenderComponent draws its parent's bounds as a rectangle.
type RectangleRenderComponent struct {
	BaseComponent

	// Color is the drawing color.
	Color Color
	// Fill selects filled (true) or outline (false) drawing.
	Fill bool
}

// NewRectangleRenderComponent creates a filled black rectangle renderer.
func NewRectangleRenderComponent(parent *GameObject, name string) *RectangleRenderComponent {
	return &RectangleRenderComponent{
		BaseComponent: NewBaseComponent(parent, name),
		Color:         ColorBlack,
		Fill:          true,
	}
}

func (c *RectangleRenderComponent) Draw(g *Graphics) {
	g.SetColor(c.Color)
	b := c.Parent().Bounds()
	if c.Fill {
		g.FillRect(b.X, b.Y, b.Width, b.Height)
	} else {
		g.DrawRect(b.X, b.Y, b.Width, b.Height)
	}
}

// OvalRenderComponent draws an ellipse inscribed in its parent's bounds.
type OvalRenderComponent struct {
	BaseComponent

	Color Color
	Fill  bool
}

// NewOvalRenderComponent creates a filled black oval renderer.
func NewOvalRenderComponent(parent *GameObject, name string) *OvalRenderComponent {
	return &OvalRenderComponent{
		BaseComponent: NewBaseComponent(parent, name),
		Color:         ColorBlack,
		Fill:          true,
	}
}

func (c *OvalRenderComponent) Draw(g *Graphics) {
	g.SetColor(c.Color)
	b := c.Parent().Bounds()
	if c.Fill {
		g.FillOval(b.X, b.Y, b.Width, b.Height)
	} else {
		g.DrawOval(b.X, b.Y, b.Width, b.Height)
	}
}

// ImageRenderComponent draws an image scaled to its parent's bounds.
type ImageRenderComponent struct {
	BaseComponent

	// Image is the picture to draw. Nil draws nothing.
	Image *ebiten.Image
}

// NewImageRenderComponent creates an image renderer for img.
func NewImageRenderComponent(parent *GameObject, name string, img *ebiten.Image) *ImageRenderComponent {
	return &ImageRenderComponent{
		BaseComponent: NewBaseComponent(parent, name),
		Image:         img,
	}
}

func (c *ImageRenderComponent) Draw(g *Graphics) {
	b := c.Parent().Bounds()
	g.DrawImage(c.Image, b.X, b.Y, b.Width, b.Height)
}
