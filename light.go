package lumen

import (
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// PointLight is a circular halo light drawn additively over the scene.
type PointLight struct {
	// Position is the centre of the halo.
	Position Vec2
	// Radius is the halo radius in pixels.
	Radius int
	// Luminosity scales the halo's brightness; values between 1 and 2
	// work well.
	Luminosity float64
	// Color is the halo tint.
	Color Color
	// Enabled determines whether the light is drawn and flickered.
	Enabled bool

	// Flicker, when positive, makes the luminosity wander by up to this
	// fraction of its base value.
	Flicker float64

	base    float64
	tween   *gween.Tween
	halo    *ebiten.Image
	haloLum float64
}

// NewPointLight creates an enabled light at the given position.
func NewPointLight(position Vec2, radius int, luminosity float64, c Color) *PointLight {
	return &PointLight{
		Position:   position,
		Radius:     radius,
		Luminosity: luminosity,
		Color:      c,
		Enabled:    true,
		base:       luminosity,
	}
}

// onFixedTick advances the flicker tween, retargeting it whenever it
// finishes.
func (l *PointLight) onFixedTick() {
	if l.Flicker <= 0 {
		return
	}
	if l.tween == nil {
		l.retarget()
	}
	val, finished := l.tween.Update(tickDelta())
	l.Luminosity = float64(val)
	if finished {
		l.retarget()
	}
}

func (l *PointLight) retarget() {
	target := l.base * (1 + (rand.Float64()*2-1)*l.Flicker)
	duration := float32(0.1 + rand.Float64()*0.3)
	l.tween = gween.New(float32(l.Luminosity), float32(target), duration, ease.InOutQuad)
}

// image returns the cached halo, regenerating it when the luminosity has
// drifted enough to matter visually.
func (l *PointLight) image() *ebiten.Image {
	const step = 0.05
	quantized := float64(int(l.Luminosity/step)) * step
	if l.halo == nil || l.haloLum != quantized {
		l.halo = RadialGradientImage(l.Radius, l.Color, quantized)
		l.haloLum = quantized
	}
	return l.halo
}

// LightLayer owns a set of point lights and draws them after the scene's
// objects with additive blending.
type LightLayer struct {
	lights []*PointLight
}

// NewLightLayer creates an empty light layer.
func NewLightLayer() *LightLayer {
	return &LightLayer{}
}

// Add appends a light to the layer.
func (ll *LightLayer) Add(l *PointLight) {
	ll.lights = append(ll.lights, l)
}

// Remove detaches a light from the layer. No-op if not present.
func (ll *LightLayer) Remove(l *PointLight) {
	for i, existing := range ll.lights {
		if existing == l {
			ll.lights = append(ll.lights[:i], ll.lights[i+1:]...)
			return
		}
	}
}

// Lights returns the layer's lights. The returned slice MUST NOT be
// mutated by the caller.
func (ll *LightLayer) Lights() []*PointLight {
	return ll.lights
}

// OnFixedTick advances every enabled light's flicker.
func (ll *LightLayer) OnFixedTick() {
	for _, l := range ll.lights {
		if l.Enabled {
			l.onFixedTick()
		}
	}
}

// Draw renders every enabled light additively onto g's target.
func (ll *LightLayer) Draw(g *Graphics) {
	for _, l := range ll.lights {
		if !l.Enabled {
			continue
		}
		img := l.image()
		op := &ebiten.DrawImageOptions{Blend: ebiten.BlendLighter}
		op.GeoM.Translate(l.Position.X-float64(l.Radius), l.Position.Y-float64(l.Radius))
		g.applyView(&op.GeoM)
		g.Target().DrawImage(img, op)
	}
}
