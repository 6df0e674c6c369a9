package lumen

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestAnimationFrameCycling(t *testing.T) {
	obj := NewGameObject(Vec2{}, Dimensions{Width: 32, Height: 32})
	a := NewAnimation(obj)

	// Cycling logic never dereferences the frame images.
	a.SetFrames(make([]*ebiten.Image, 3))

	for i, want := range []int{1, 2, 0, 1} {
		a.NextFrame()
		if a.FrameIndex() != want {
			t.Errorf("after %d advances: index = %d, want %d", i+1, a.FrameIndex(), want)
		}
	}
}

func TestAnimationSetFramesRewinds(t *testing.T) {
	obj := NewGameObject(Vec2{}, Dimensions{Width: 32, Height: 32})
	a := NewAnimation(obj)
	a.SetFrames(make([]*ebiten.Image, 4))
	a.NextFrame()
	a.NextFrame()

	a.SetFrames(make([]*ebiten.Image, 2))
	if a.FrameIndex() != 0 {
		t.Errorf("index = %d, want 0 after SetFrames", a.FrameIndex())
	}
}

func TestAnimationEmptyFramesAreSafe(t *testing.T) {
	obj := NewGameObject(Vec2{}, Dimensions{Width: 32, Height: 32})
	a := NewAnimation(obj)
	a.NextFrame()
	a.DrawCurrentFrame(NewGraphics(nil))
	if a.FrameIndex() != 0 {
		t.Errorf("index = %d, want 0", a.FrameIndex())
	}
}
