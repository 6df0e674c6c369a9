package lumen

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// PrimitiveImage returns a w x h image filled with a solid color.
func PrimitiveImage(w, h int, c Color) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(color.RGBA{
		R: uint8(c.R * c.A * 255),
		G: uint8(c.G * c.A * 255),
		B: uint8(c.B * c.A * 255),
		A: uint8(c.A * 255),
	})
	return img
}

// RadialGradientImage returns a (radius*2) square image holding a halo
// of the given color: fully opaque at the centre, fading linearly to
// transparent at the edge. Luminosity above 1 widens the bright core;
// values between 1 and 2 work well for point lights.
func RadialGradientImage(radius int, c Color, luminosity float64) *ebiten.Image {
	size := radius * 2
	pix := make([]byte, size*size*4)

	for y := 0; y < size; y++ {
		dy := float64(y - radius)
		for x := 0; x < size; x++ {
			dx := float64(x - radius)
			dist := dx*dx + dy*dy
			if dist > float64(radius*radius) {
				continue
			}
			// Linear falloff from centre to rim, scaled by luminosity.
			luma := 1.0 - math.Sqrt(dist)/float64(radius)
			alpha := luma * luminosity * c.A
			if alpha > 1 {
				alpha = 1
			}
			i := (y*size + x) * 4
			pix[i+0] = uint8(c.R * alpha * 255)
			pix[i+1] = uint8(c.G * alpha * 255)
			pix[i+2] = uint8(c.B * alpha * 255)
			pix[i+3] = uint8(alpha * 255)
		}
	}

	img := ebiten.NewImage(size, size)
	img.WritePixels(pix)
	return img
}
