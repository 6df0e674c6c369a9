package lumen

// EventSink is the interface for optional ECS integration. When set on a
// Scene, collision events are forwarded to the sink in addition to the
// objects' own OnCollision hooks.
type EventSink interface {
	EmitCollision(event Collision)
}

// Collision is the scene-level record of one collision, forwarded to the
// EventSink. Both participating objects receive their own CollisionEvent.
type Collision struct {
	A, B *GameObject
	// DirectionA is the side of A that made contact with B.
	DirectionA Direction
}

// UIElement is a widget drawn on top of the scene's objects.
type UIElement interface {
	OnTick()
	Draw(g *Graphics)
}

// Scene owns the live game objects, UI elements, and lights, and drives
// their tick and draw passes. Tick and draw run sequentially on the game
// goroutine; the scene performs no locking.
type Scene struct {
	objects []*GameObject
	ui      []UIElement
	lights  *LightLayer
	sink    EventSink
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// Add appends obj to the scene.
func (s *Scene) Add(obj *GameObject) {
	s.objects = append(s.objects, obj)
}

// Remove detaches obj from the scene. No-op if obj is not present.
func (s *Scene) Remove(obj *GameObject) {
	for i, o := range s.objects {
		if o == obj {
			copy(s.objects[i:], s.objects[i+1:])
			s.objects[len(s.objects)-1] = nil
			s.objects = s.objects[:len(s.objects)-1]
			return
		}
	}
}

// Objects returns the scene's objects in add order. The returned slice
// MUST NOT be mutated by the caller.
func (s *Scene) Objects() []*GameObject {
	return s.objects
}

// AddUI appends a UI element, drawn above the scene's objects.
func (s *Scene) AddUI(el UIElement) {
	s.ui = append(s.ui, el)
}

// Lights returns the scene's light layer, creating it on first use.
func (s *Scene) Lights() *LightLayer {
	if s.lights == nil {
		s.lights = NewLightLayer()
	}
	return s.lights
}

// SetEventSink sets the optional ECS bridge.
func (s *Scene) SetEventSink(sink EventSink) {
	s.sink = sink
}

// OnFixedTick advances the scene by one fixed simulation step: the
// collision pass first, then every object's fixed tick in add order.
func (s *Scene) OnFixedTick() {
	s.collisionPass()
	for _, obj := range s.objects {
		obj.OnFixedTick()
	}
	if s.lights != nil {
		s.lights.OnFixedTick()
	}
}

// OnTick runs the per-update hook on objects and UI elements.
func (s *Scene) OnTick() {
	for _, obj := range s.objects {
		obj.OnTick()
	}
	for _, el := range s.ui {
		el.OnTick()
	}
}

// Draw renders objects in add order, then lights, then UI.
func (s *Scene) Draw(g *Graphics) {
	s.drawWorld(g)
	s.drawUI(g)
}

// drawWorld renders the camera-transformed layers: objects and lights.
func (s *Scene) drawWorld(g *Graphics) {
	for _, obj := range s.objects {
		obj.Draw(g)
	}
	if s.lights != nil {
		s.lights.Draw(g)
	}
}

// drawUI renders the screen-space widget layer.
func (s *Scene) drawUI(g *Graphics) {
	for _, el := range s.ui {
		el.Draw(g)
	}
}

// collisionPass checks every object pair for AABB overlap and dispatches
// collision events to both sides (and the event sink, if any).
func (s *Scene) collisionPass() {
	for i := 0; i < len(s.objects); i++ {
		a := s.objects[i]
		for j := i + 1; j < len(s.objects); j++ {
			b := s.objects[j]
			if !a.Bounds().Intersects(b.Bounds()) {
				continue
			}
			dirA := contactDirection(a, b)
			a.OnCollision(CollisionEvent{Other: b, Direction: dirA})
			b.OnCollision(CollisionEvent{Other: a, Direction: opposite(dirA)})
			if s.sink != nil {
				s.sink.EmitCollision(Collision{A: a, B: b, DirectionA: dirA})
			}
		}
	}
}

// contactDirection returns the side of a facing b, judged from the
// centre offset's dominant axis.
func contactDirection(a, b *GameObject) Direction {
	ca := a.Centre()
	cb := b.Centre()
	dx := cb.X - ca.X
	dy := cb.Y - ca.Y
	if dx >= 0 && dx >= abs(dy) {
		return DirectionRight
	}
	if dx < 0 && -dx >= abs(dy) {
		return DirectionLeft
	}
	if dy >= 0 {
		return DirectionDown
	}
	return DirectionUp
}

func opposite(d Direction) Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	default:
		return DirectionLeft
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
