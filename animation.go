package lumen

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Spritesheet slices a source image into a grid of equally sized frames.
// Frame coordinates are 1-based, matching how sheets are usually laid
// out in editors.
type Spritesheet struct {
	img         *ebiten.Image
	frameWidth  int
	frameHeight int
}

// NewSpritesheet creates a sheet over img with the given frame size.
func NewSpritesheet(img *ebiten.Image, frameWidth, frameHeight int) *Spritesheet {
	return &Spritesheet{img: img, frameWidth: frameWidth, frameHeight: frameHeight}
}

// Frame returns the frame at 1-based grid position (x, y) as a subimage
// sharing pixels with the sheet.
func (s *Spritesheet) Frame(x, y int) *ebiten.Image {
	x0 := (x - 1) * s.frameWidth
	y0 := (y - 1) * s.frameHeight
	return s.img.SubImage(image.Rect(x0, y0, x0+s.frameWidth, y0+s.frameHeight)).(*ebiten.Image)
}

// ManualFrames returns the frames at the given 1-based grid positions,
// in order. Each coordinate is an (x, y) pair.
func (s *Spritesheet) ManualFrames(coords ...[2]int) []*ebiten.Image {
	frames := make([]*ebiten.Image, 0, len(coords))
	for _, c := range coords {
		frames = append(frames, s.Frame(c[0], c[1]))
	}
	return frames
}

// Animation cycles through a list of frames and draws the current one at
// its owner's transform. Frame advancing is explicit (NextFrame), so the
// owner controls the playback speed with its own tick counter.
type Animation struct {
	owner  *GameObject
	frames []*ebiten.Image
	index  int
}

// NewAnimation creates an animation drawn at owner's transform.
func NewAnimation(owner *GameObject) *Animation {
	return &Animation{owner: owner}
}

// SetFrames replaces the frame list and rewinds to the first frame.
func (a *Animation) SetFrames(frames []*ebiten.Image) {
	a.frames = frames
	a.index = 0
}

// NextFrame advances to the next frame, wrapping at the end.
func (a *Animation) NextFrame() {
	if len(a.frames) == 0 {
		return
	}
	a.index = (a.index + 1) % len(a.frames)
}

// FrameIndex returns the current frame's index.
func (a *Animation) FrameIndex() int {
	return a.index
}

// DrawCurrentFrame draws the current frame scaled to the owner's size.
func (a *Animation) DrawCurrentFrame(g *Graphics) {
	if len(a.frames) == 0 {
		return
	}
	pos := a.owner.Position
	size := a.owner.Size
	g.DrawImage(a.frames[a.index], pos.X, pos.Y, size.Width, size.Height)
}
