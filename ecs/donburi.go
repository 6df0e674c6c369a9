// Package ecs provides ECS adapters for lumen.
package ecs

import (
	"github.com/lumengine/lumen"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CollisionEventType is the Donburi event type for lumen collision
// events. Subscribe to this in your ECS systems to react to collisions
// detected by the scene's fixed-tick pass.
var CollisionEventType = events.NewEventType[lumen.Collision]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Collisions are published to CollisionEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) lumen.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitCollision(event lumen.Collision) {
	CollisionEventType.Publish(s.world, event)
}
