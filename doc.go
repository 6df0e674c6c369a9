// Package lumen is a component-based 2D game engine built on [Ebitengine].
//
// The world is a [Scene] of [GameObject] entities. Each object owns an
// ordered registry of named [Component] values; every fixed simulation
// step and every frame the scene forwards OnFixedTick, OnTick, Draw and
// OnCollision to the attached components. Drawing goes through
// [Graphics], a stateful surface wrapping the frame's target image.
//
// The particle subsystem is built from [Emitter] (the wave/lifespan
// state machine), a [ParticleFactory] registered at construction, an
// [EmitterPolicy] supplying spawn and movement behavior, and a
// [ParticleRenderContext] that configures graphics state before each
// particle draws. [RandomRadialEmitter] and [PerlinDriftEmitter] are
// ready-made policies.
//
// An emitter spawns a wave of particles every waveDuration fixed ticks;
// each wave carries a monotonically increasing wave number. When the
// lifespan timer fires, the emitter evicts exactly the wave preceding
// the current one. Older waves are left alone on purpose: the eviction
// rule is a one-generation trailing window, not an age sweep, so a
// lifespan much larger than the wave duration lets intermediate waves
// accumulate until their turn as "previous wave" comes around again.
//
// Cosmetic building blocks round out the engine: [PointLight] halos with
// tween-driven flicker (via [gween]), [Spritesheet]/[Animation],
// [Button] and [TextBox] widgets, and render components for rectangles,
// ovals and images. A [Camera] scrolls and zooms the world layers with
// smooth follow, and [KeyboardMovementComponent] steers an object from
// the keyboard. The optional ecs submodule bridges collision events
// into a [Donburi] world.
//
// The engine is single-threaded: ebiten drives Update and Draw
// sequentially on one goroutine, and no package type performs locking.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package lumen
