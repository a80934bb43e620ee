package asset

import (
	"errors"
	"math"

	"github.com/lixenwraith/asscii/render"
)

// ErrNoFrames is raised when an animation without frames is resolved or loaded
var ErrNoFrames = errors.New("animation has no frames")

// Animation is an immutable frame sequence anchored at one shared pivot
type Animation struct {
	frames []*Sprite
	width  int
	height int
	pivotX int
	pivotY int
}

// NewAnimation builds an animation whose size is the union of its frames
func NewAnimation(frames ...*Sprite) *Animation {
	a := &Animation{frames: make([]*Sprite, len(frames))}
	copy(a.frames, frames)

	for _, f := range a.frames {
		a.width = max(a.width, f.width)
		a.height = max(a.height, f.height)
	}
	a.pivotX = a.width / 2
	a.pivotY = a.height / 2
	return a
}

// FromSprite wraps a single sprite as a one-frame animation
func FromSprite(s *Sprite) *Animation {
	return NewAnimation(s)
}

// Len returns the frame count
func (a *Animation) Len() int {
	return len(a.frames)
}

// Frame returns frame i
func (a *Animation) Frame(i int) *Sprite {
	return a.frames[i]
}

// Width returns the widest frame width
func (a *Animation) Width() int {
	return a.width
}

// Height returns the tallest frame height
func (a *Animation) Height() int {
	return a.height
}

// Pivot returns the shared anchor offset
func (a *Animation) Pivot() (int, int) {
	return a.pivotX, a.pivotY
}

// FrameIndex maps a playhead to floor(playhead) mod frame count
// Panics with ErrNoFrames when the animation is empty
func (a *Animation) FrameIndex(playhead float64) int {
	n := len(a.frames)
	if n == 0 {
		panic(ErrNoFrames)
	}
	if math.IsNaN(playhead) || math.IsInf(playhead, 0) {
		return 0
	}
	idx := int(math.Mod(math.Floor(playhead), float64(n)))
	if idx < 0 {
		idx += n
	}
	return idx
}

// Draw composites the frame selected by playhead, anchored at the animation pivot
func (a *Animation) Draw(f *render.Frame, x, y, depth int, playhead float64) {
	frame := a.frames[a.FrameIndex(playhead)]
	frame.drawAt(f, x-a.pivotX, y-a.pivotY, depth)
}
