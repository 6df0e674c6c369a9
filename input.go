package lumen

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PressedDirections polls the keyboard and returns the directions held
// down right now. Arrow keys and WASD both count.
func PressedDirections() Directions {
	var d Directions
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		d.Add(DirectionUp)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		d.Add(DirectionDown)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		d.Add(DirectionLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		d.Add(DirectionRight)
	}
	return d
}

// CursorPosition returns the cursor position in logical screen pixels.
func CursorPosition() Vec2 {
	x, y := ebiten.CursorPosition()
	return Vec2{X: float64(x), Y: float64(y)}
}

// MouseJustClicked reports whether the primary mouse button was pressed
// this tick.
func MouseJustClicked() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// KeyboardMovementComponent moves its parent object with the keyboard.
// Arrow keys and WASD both steer; diagonal movement uses both axes at
// full speed.
type KeyboardMovementComponent struct {
	BaseComponent

	// Speed is the movement per fixed tick, in pixels.
	Speed float64
}

// NewKeyboardMovementComponent creates a movement component with the
// given per-tick speed.
func NewKeyboardMovementComponent(parent *GameObject, name string, speed float64) *KeyboardMovementComponent {
	return &KeyboardMovementComponent{
		BaseComponent: NewBaseComponent(parent, name),
		Speed:         speed,
	}
}

// OnFixedTick polls the keyboard and moves the parent.
func (k *KeyboardMovementComponent) OnFixedTick() {
	k.moveBy(PressedDirections())
}

func (k *KeyboardMovementComponent) moveBy(d Directions) {
	p := k.Parent()
	if d.Has(DirectionUp) {
		p.Position.Y -= k.Speed
	}
	if d.Has(DirectionDown) {
		p.Position.Y += k.Speed
	}
	if d.Has(DirectionLeft) {
		p.Position.X -= k.Speed
	}
	if d.Has(DirectionRight) {
		p.Position.X += k.Speed
	}
}
