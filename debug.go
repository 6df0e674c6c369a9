package lumen

import (
	"fmt"
	"os"
)

// Debug enables the engine's sanity warnings. Off by default; intended
// for development builds only.
var Debug bool

// debugMaxLiveParticles is the live-particle threshold above which an
// emitter is assumed to be accumulating waves. The trailing-window
// eviction rule only ever removes the previous wave, so a lifespan far
// above the wave duration grows the live set without bound; this
// warning surfaces that early.
const debugMaxLiveParticles = 10000

func debugCheckParticleCount(e *Emitter) {
	if len(e.particles) > debugMaxLiveParticles {
		_, _ = fmt.Fprintf(os.Stderr, "[lumen] warning: emitter %q holds %d live particles (threshold %d); check lifespan vs wave duration\n",
			e.Name(), len(e.particles), debugMaxLiveParticles)
	}
}

// debugCheckComponentCount warns when an object accumulates an unusual
// number of components, which usually means attach calls in a loop.
const debugMaxComponentCount = 256

func debugCheckComponentCount(o *GameObject) {
	if len(o.order) > debugMaxComponentCount {
		_, _ = fmt.Fprintf(os.Stderr, "[lumen] warning: game object has %d components (threshold %d)\n",
			len(o.order), debugMaxComponentCount)
	}
}
