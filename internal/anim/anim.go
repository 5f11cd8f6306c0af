// Package anim cycles through a fixed sequence of images at a constant rate.
package anim

import "github.com/vovakirdan/tui-platformer/internal/core"

// Animation advances a frame cursor over an image sequence.
// The images slice is shared between copies and never modified; only the
// cursor is per-instance.
type Animation struct {
	images []core.Image
	ImgDur int  // Ticks each image stays on screen
	Loop   bool // Wrap around at the end instead of stopping
	Frame  int  // Cursor in [0, ImgDur*len(images))
	Done   bool // One-shot animation reached its last frame
}

// New creates an animation. Non-positive durations are treated as 1.
func New(images []core.Image, imgDur int, loop bool) *Animation {
	if imgDur < 1 {
		imgDur = 1
	}
	return &Animation{
		images: images,
		ImgDur: imgDur,
		Loop:   loop,
	}
}

// Copy returns a fresh animation sharing the same images and timing.
func (a *Animation) Copy() *Animation {
	return New(a.images, a.ImgDur, a.Loop)
}

// Len returns the total number of ticks in one cycle.
func (a *Animation) Len() int {
	return a.ImgDur * len(a.images)
}

// Update advances the cursor by one tick.
func (a *Animation) Update() {
	total := a.Len()
	if total == 0 {
		return
	}
	if a.Loop {
		a.Frame = (a.Frame + 1) % total
		return
	}
	a.Frame = core.Min(a.Frame+1, total-1)
	if a.Frame >= total-1 {
		a.Done = true
	}
}

// Img returns the image for the current frame.
func (a *Animation) Img() core.Image {
	if len(a.images) == 0 {
		return core.Image{}
	}
	return a.images[a.Frame/a.ImgDur]
}

// Images returns the underlying sequence. Callers must not modify it.
func (a *Animation) Images() []core.Image {
	return a.images
}
