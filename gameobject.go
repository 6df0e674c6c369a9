package lumen

import (
	"errors"
	"fmt"
)

// ErrDuplicateComponent is returned by AttachComponent when a component
// with the same name is already attached. Attaching never silently
// replaces an existing component.
var ErrDuplicateComponent = errors.New("lumen: duplicate component name")

// CollisionEvent describes a collision between the receiving object and
// another object in the scene.
type CollisionEvent struct {
	// Other is the object collided with.
	Other *GameObject
	// Direction is the side of the receiving object that made contact.
	Direction Direction
}

// GameObject is the engine's entity: a transform plus an ordered registry
// of named components. The host loop drives it through OnFixedTick, OnTick
// and Draw; the object forwards each call to every enabled component in
// attach order.
type GameObject struct {
	Transform

	// Tag is an arbitrary label usable for game-side filtering.
	Tag string

	components map[string]Component
	order      []string
}

// NewGameObject creates a GameObject with the given position and size.
func NewGameObject(position Vec2, size Dimensions) *GameObject {
	return &GameObject{
		Transform:  Transform{Position: position, Size: size},
		components: make(map[string]Component),
	}
}

// AttachComponent registers c under its name. Names are unique per
// object; attaching a second component with an existing name fails with
// ErrDuplicateComponent.
func (o *GameObject) AttachComponent(c Component) error {
	name := c.Name()
	if _, exists := o.components[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateComponent, name)
	}
	o.components[name] = c
	o.order = append(o.order, name)
	if Debug {
		debugCheckComponentCount(o)
	}
	return nil
}

// Component returns the component registered under name, or nil.
func (o *GameObject) Component(name string) Component {
	return o.components[name]
}

// RemoveComponent detaches the component registered under name.
// No-op if no such component exists.
func (o *GameObject) RemoveComponent(name string) {
	if _, exists := o.components[name]; !exists {
		return
	}
	delete(o.components, name)
	for i, n := range o.order {
		if n == name {
			o.order = append(o.order[:i], o.order[i+1:]...)
			break
		}
	}
}

// NumComponents returns the number of attached components.
func (o *GameObject) NumComponents() int {
	return len(o.order)
}

// OnFixedTick forwards the fixed simulation step to every enabled
// component in attach order.
func (o *GameObject) OnFixedTick() {
	for _, name := range o.order {
		if c := o.components[name]; c != nil && c.Enabled() {
			c.OnFixedTick()
		}
	}
}

// OnTick forwards the per-update hook to every enabled component.
func (o *GameObject) OnTick() {
	for _, name := range o.order {
		if c := o.components[name]; c != nil && c.Enabled() {
			c.OnTick()
		}
	}
}

// Draw forwards the draw pass to every enabled component in attach order.
func (o *GameObject) Draw(g *Graphics) {
	for _, name := range o.order {
		if c := o.components[name]; c != nil && c.Enabled() {
			c.Draw(g)
		}
	}
}

// OnCollision forwards a collision event to every enabled component.
func (o *GameObject) OnCollision(event CollisionEvent) {
	for _, name := range o.order {
		if c := o.components[name]; c != nil && c.Enabled() {
			c.OnCollision(event)
		}
	}
}
