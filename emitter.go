package lumen

import (
	"errors"
	"fmt"
	"log"
)

// ErrInvalidConfiguration is returned when an emitter option is set to a
// value that could produce nonsensical particles (negative sizes, an
// inverted min/max range).
var ErrInvalidConfiguration = errors.New("lumen: invalid emitter configuration")

// ParticleFactory constructs a particle belonging to the given wave.
// Registered at emitter construction; called once per spawn slot.
type ParticleFactory func(wave int) (Particle, error)

// EmitterPolicy supplies the spawn and movement behavior of a concrete
// emitter. The Emitter owns the wave/lifespan state machine; the policy
// decides where particles appear and how they move each tick.
type EmitterPolicy interface {
	// InitializeEmitter runs exactly once, before the first fixed tick.
	InitializeEmitter()
	// SpawnParticle creates and positions one particle, normally by
	// calling the emitter's CreateParticle and orienting the result.
	// Returning nil skips the slot.
	SpawnParticle() Particle
	// MoveParticle advances one live particle by one fixed tick.
	MoveParticle(p Particle)
}

// Emitter is a Component that emits Particles from its parent GameObject
// in timed waves. Each fixed tick it runs three steps in order: evict the
// immediately preceding wave when the lifespan timer fires, spawn a new
// wave when the wave timer fires, then move every live particle.
//
// The tick and draw paths both touch the live particle slice; the engine
// runs them sequentially on the single game goroutine, so no locking is
// involved.
type Emitter struct {
	BaseComponent

	// Particles spawned per wave.
	amount float64
	// Fixed ticks between waves.
	waveDuration int
	// Fixed ticks a superseded wave's particles remain live.
	lifespan int
	// Number of the wave spawned next; the first wave is 0. Strictly
	// increasing, never reset.
	currentWave int

	waveTicks     int
	evictionTicks int
	initialized   bool

	// Dimension policy. fixedDims wins over the min/max range; with
	// neither set, particle dimensions are left as constructed.
	fixedDims    *Dimensions
	fixedMinDims *Dimensions
	fixedMaxDims *Dimensions

	renderContext ParticleRenderContext
	factory       ParticleFactory
	policy        EmitterPolicy

	// Live particles in spawn order.
	particles []Particle
}

// NewEmitter creates an Emitter attached to parent. The policy is wired
// separately (see SetPolicy) so that concrete emitters can embed the
// Emitter and register themselves.
func NewEmitter(parent *GameObject, name string, factory ParticleFactory, amount float64, waveDuration int) *Emitter {
	return &Emitter{
		BaseComponent: NewBaseComponent(parent, name),
		amount:        amount,
		waveDuration:  waveDuration,
		lifespan:      1000,
		renderContext: NewPlainColorParticleRenderContext(ColorBlack),
		factory:       factory,
	}
}

// SetPolicy registers the spawn/movement policy. Must be called before
// the first fixed tick; concrete emitter constructors do this.
func (e *Emitter) SetPolicy(p EmitterPolicy) {
	e.policy = p
}

// OnFixedTick advances the emitter by one fixed simulation step:
// eviction, then spawning, then movement of every live particle
// (including any spawned this tick).
func (e *Emitter) OnFixedTick() {
	if e.policy == nil {
		return
	}
	if !e.initialized {
		e.policy.InitializeEmitter()
		e.initialized = true
	}

	// Eviction: when the lifespan timer fires, remove exactly the wave
	// that immediately precedes the current one. Waves older than one
	// generation are deliberately left alone; see the package docs.
	e.evictionTicks++
	if e.evictionTicks >= e.lifespan {
		e.evictionTicks = 0
		stale := e.currentWave - 1
		kept := e.particles[:0]
		for _, p := range e.particles {
			if p.WaveNumber() != stale {
				kept = append(kept, p)
			}
		}
		for i := len(kept); i < len(e.particles); i++ {
			e.particles[i] = nil
		}
		e.particles = kept
	}

	// Spawning: after waveDuration ticks, emit the next wave. After n
	// ticks with wave duration w, exactly floor(n/w) waves exist.
	e.waveTicks++
	if e.waveTicks >= e.waveDuration {
		e.waveTicks = 0
		for i := 0; float64(i) < e.amount; i++ {
			if p := e.policy.SpawnParticle(); p != nil {
				e.particles = append(e.particles, p)
			}
		}
		e.currentWave++
	}

	for _, p := range e.particles {
		e.policy.MoveParticle(p)
	}

	if Debug {
		debugCheckParticleCount(e)
	}
}

// Draw renders every live particle in spawn order. The render context
// configures the graphics state before each particle draws itself.
func (e *Emitter) Draw(g *Graphics) {
	for _, p := range e.particles {
		e.renderContext.NextParticleRenderConfig(g, p)
		p.Draw(g)
	}
}

// CreateParticle constructs one particle for the current wave via the
// registered factory and applies the dimension policy. A factory failure
// is logged and yields nil; the caller's spawn loop skips the slot.
func (e *Emitter) CreateParticle() Particle {
	if e.factory == nil {
		log.Printf("lumen: emitter %q has no particle factory", e.Name())
		return nil
	}
	p, err := e.factory(e.currentWave)
	if err != nil {
		log.Printf("lumen: emitter %q: create particle: %v", e.Name(), err)
		return nil
	}
	if p == nil {
		return nil
	}

	if e.fixedDims != nil {
		p.SetDimensions(*e.fixedDims)
	} else if e.fixedMinDims != nil && e.fixedMaxDims != nil {
		p.SetDimensions(RandomDimensions(
			e.fixedMinDims.Width, e.fixedMaxDims.Width,
			e.fixedMinDims.Height, e.fixedMaxDims.Height,
		))
	}
	return p
}

// Amount returns the number of particles spawned per wave.
func (e *Emitter) Amount() float64 {
	return e.amount
}

// SetAmount sets the number of particles spawned per wave.
func (e *Emitter) SetAmount(amount float64) {
	e.amount = amount
}

// WaveDuration returns the fixed-tick interval between waves.
func (e *Emitter) WaveDuration() int {
	return e.waveDuration
}

// SetWaveDuration sets the fixed-tick interval between waves.
func (e *Emitter) SetWaveDuration(ticks int) {
	e.waveDuration = ticks
}

// Lifespan returns how many fixed ticks a superseded wave's particles
// remain live.
func (e *Emitter) Lifespan() int {
	return e.lifespan
}

// SetLifespan sets the eviction interval in fixed ticks.
func (e *Emitter) SetLifespan(ticks int) {
	e.lifespan = ticks
}

// CurrentWave returns the number of the wave spawned next.
func (e *Emitter) CurrentWave() int {
	return e.currentWave
}

// SetRenderContext replaces the render context used by the draw pass.
func (e *Emitter) SetRenderContext(rc ParticleRenderContext) {
	e.renderContext = rc
}

// Particles returns the live particles in spawn order. The returned
// slice MUST NOT be mutated by the caller.
func (e *Emitter) Particles() []Particle {
	return e.particles
}

// ParticleCount returns the number of live particles.
func (e *Emitter) ParticleCount() int {
	return len(e.particles)
}

// SetFixedParticleDimensions pins every new particle to the exact given
// size. Takes precedence over the min/max range.
func (e *Emitter) SetFixedParticleDimensions(d Dimensions) error {
	if d.Width < 0 || d.Height < 0 {
		return fmt.Errorf("%w: negative fixed dimensions %+v", ErrInvalidConfiguration, d)
	}
	e.fixedDims = &d
	return nil
}

// SetFixedMinParticleDimensions sets the lower bound of the random
// dimension range. The range only applies once both bounds are set.
func (e *Emitter) SetFixedMinParticleDimensions(d Dimensions) error {
	if err := validateDimensionRange(&d, e.fixedMaxDims); err != nil {
		return err
	}
	e.fixedMinDims = &d
	return nil
}

// SetFixedMaxParticleDimensions sets the upper bound of the random
// dimension range. The range only applies once both bounds are set.
func (e *Emitter) SetFixedMaxParticleDimensions(d Dimensions) error {
	if err := validateDimensionRange(e.fixedMinDims, &d); err != nil {
		return err
	}
	e.fixedMaxDims = &d
	return nil
}

func validateDimensionRange(min, max *Dimensions) error {
	if min != nil && (min.Width < 0 || min.Height < 0) {
		return fmt.Errorf("%w: negative min dimensions %+v", ErrInvalidConfiguration, *min)
	}
	if max != nil && (max.Width < 0 || max.Height < 0) {
		return fmt.Errorf("%w: negative max dimensions %+v", ErrInvalidConfiguration, *max)
	}
	if min != nil && max != nil && (min.Width > max.Width || min.Height > max.Height) {
		return fmt.Errorf("%w: min dimensions %+v exceed max %+v", ErrInvalidConfiguration, *min, *max)
	}
	return nil
}
