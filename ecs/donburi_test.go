package ecs

import (
	"testing"

	"github.com/lumengine/lumen"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitCollision(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	a := lumen.NewGameObject(lumen.Vec2{X: 0, Y: 0}, lumen.Dimensions{Width: 10, Height: 10})
	b := lumen.NewGameObject(lumen.Vec2{X: 5, Y: 0}, lumen.Dimensions{Width: 10, Height: 10})

	var received []lumen.Collision
	CollisionEventType.Subscribe(world, func(w donburi.World, e lumen.Collision) {
		received = append(received, e)
	})

	sink.EmitCollision(lumen.Collision{A: a, B: b, DirectionA: lumen.DirectionRight})

	// Events are queued — process them.
	CollisionEventType.ProcessEvents(world)

	if len(received) != 1 {
		t.Fatalf("expected 1 event, got %d", len(received))
	}
	e := received[0]
	if e.A != a || e.B != b {
		t.Errorf("event objects: %+v", e)
	}
	if e.DirectionA != lumen.DirectionRight {
		t.Errorf("DirectionA = %v, want DirectionRight", e.DirectionA)
	}
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink lumen.EventSink = NewDonburiSink(world)
	_ = sink // compile-time interface check
}

func TestDonburiSink_ScenePublishes(t *testing.T) {
	world := donburi.NewWorld()
	scene := lumen.NewScene()
	scene.SetEventSink(NewDonburiSink(world))

	scene.Add(lumen.NewGameObject(lumen.Vec2{X: 0, Y: 0}, lumen.Dimensions{Width: 10, Height: 10}))
	scene.Add(lumen.NewGameObject(lumen.Vec2{X: 5, Y: 0}, lumen.Dimensions{Width: 10, Height: 10}))

	var count int
	CollisionEventType.Subscribe(world, func(w donburi.World, e lumen.Collision) {
		count++
	})

	scene.OnFixedTick()
	events.ProcessAllEvents(world)

	if count != 1 {
		t.Errorf("expected 1 collision event, got %d", count)
	}
}
