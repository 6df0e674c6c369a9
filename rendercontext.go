package lumen

import "math/rand/v2"

// ParticleRenderContext configures the shared graphics state before each
// particle's own draw call. Implementations typically set the active
// color; they may inspect the particle to vary state per particle.
type ParticleRenderContext interface {
	NextParticleRenderConfig(g *Graphics, p Particle)
}

// PlainColorParticleRenderContext renders every particle in one flat
// color. It is the default context of a new Emitter (black).
type PlainColorParticleRenderContext struct {
	color Color
}

// NewPlainColorParticleRenderContext creates a flat-color context.
func NewPlainColorParticleRenderContext(c Color) *PlainColorParticleRenderContext {
	return &PlainColorParticleRenderContext{color: c}
}

func (rc *PlainColorParticleRenderContext) NextParticleRenderConfig(g *Graphics, p Particle) {
	g.SetColor(rc.color)
}

// SetColor replaces the context's flat color.
func (rc *PlainColorParticleRenderContext) SetColor(c Color) {
	rc.color = c
}

// RandomColorParticleRenderContext picks a palette color per wave, so
// particles spawned together share a color. The pick is derived from the
// wave number and a per-context seed, so the context carries no per-wave
// state however long the emitter runs.
type RandomColorParticleRenderContext struct {
	palette []Color
	seed    uint64
}

// NewRandomColorParticleRenderContext creates a palette context.
// An empty palette falls back to black.
func NewRandomColorParticleRenderContext(palette ...Color) *RandomColorParticleRenderContext {
	return &RandomColorParticleRenderContext{
		palette: palette,
		seed:    rand.Uint64(),
	}
}

func (rc *RandomColorParticleRenderContext) NextParticleRenderConfig(g *Graphics, p Particle) {
	if len(rc.palette) == 0 {
		g.SetColor(ColorBlack)
		return
	}
	g.SetColor(rc.palette[rc.pick(p.WaveNumber())])
}

// pick mixes the wave number with the context seed into a palette index.
// The mix constants are splitmix64's.
func (rc *RandomColorParticleRenderContext) pick(wave int) int {
	h := rc.seed + uint64(wave)*0x9e3779b97f4a7c15
	h ^= h >> 30
	h *= 0xbf58476d1ce4e5b9
	h ^= h >> 27
	return int(h % uint64(len(rc.palette)))
}
