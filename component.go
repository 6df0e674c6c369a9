package lumen

// Component is a named piece of behavior attached to a GameObject. The
// owning object forwards its per-frame hooks to every enabled component.
type Component interface {
	// Name returns the component's id-name, unique per GameObject.
	Name() string
	// Enabled reports whether the component receives forwarded calls.
	Enabled() bool
	// SetEnabled toggles call forwarding for this component.
	SetEnabled(enabled bool)

	// OnFixedTick runs once per fixed simulation step.
	OnFixedTick()
	// OnTick runs once per host update, before OnFixedTick dispatch.
	OnTick()
	// Draw renders the component onto the frame's graphics surface.
	Draw(g *Graphics)
	// OnCollision runs when the parent object collides with another.
	OnCollision(event CollisionEvent)
}

// BaseComponent carries the name/parent/enabled plumbing shared by all
// components. Embed it and override the hooks you need; the embedded
// no-op hooks cover the rest.
type BaseComponent struct {
	parent  *GameObject
	name    string
	enabled bool
}

// NewBaseComponent creates an enabled BaseComponent attached to parent.
func NewBaseComponent(parent *GameObject, name string) BaseComponent {
	return BaseComponent{parent: parent, name: name, enabled: true}
}

// Parent returns the GameObject this component is attached to.
func (c *BaseComponent) Parent() *GameObject {
	return c.parent
}

// Name returns the component's id-name.
func (c *BaseComponent) Name() string {
	return c.name
}

// Enabled reports whether the component receives forwarded calls.
func (c *BaseComponent) Enabled() bool {
	return c.enabled
}

// SetEnabled toggles call forwarding for this component.
func (c *BaseComponent) SetEnabled(enabled bool) {
	c.enabled = enabled
}

// OnFixedTick is a no-op; override in the embedding component.
func (c *BaseComponent) OnFixedTick() {}

// OnTick is a no-op; override in the embedding component.
func (c *BaseComponent) OnTick() {}

// Draw is a no-op; override in the embedding component.
func (c *BaseComponent) Draw(g *Graphics) {}

// OnCollision is a no-op; override in the embedding component.
func (c *BaseComponent) OnCollision(event CollisionEvent) {}

// Behavior is a component whose hooks are plain function fields. It is
// the lightweight way to give a GameObject per-frame logic without
// declaring a named type.
type Behavior struct {
	BaseComponent

	OnFixedTickFunc func(obj *GameObject)
	OnTickFunc      func(obj *GameObject)
	DrawFunc        func(obj *GameObject, g *Graphics)
	OnCollisionFunc func(obj *GameObject, event CollisionEvent)
}

// NewBehavior creates an empty Behavior component attached to parent.
func NewBehavior(parent *GameObject, name string) *Behavior {
	return &Behavior{BaseComponent: NewBaseComponent(parent, name)}
}

func (b *Behavior) OnFixedTick() {
	if b.OnFixedTickFunc != nil {
		b.OnFixedTickFunc(b.parent)
	}
}

func (b *Behavior) OnTick() {
	if b.OnTickFunc != nil {
		b.OnTickFunc(b.parent)
	}
}

func (b *Behavior) Draw(g *Graphics) {
	if b.DrawFunc != nil {
		b.DrawFunc(b.parent, g)
	}
}

func (b *Behavior) OnCollision(event CollisionEvent) {
	if b.OnCollisionFunc != nil {
		b.OnCollisionFunc(b.parent, event)
	}
}
