// Package coretest provides test doubles for core interfaces.
package coretest

import "github.com/vovakirdan/tui-platformer/internal/core"

// Blit is one recorded draw call.
type Blit struct {
	Img  core.Image
	X, Y int
	Flip bool
}

// Recorder is a core.Surface that records every blit.
type Recorder struct {
	W, H  int
	Blits []Blit
}

// NewRecorder creates a recorder with the given pixel size.
func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Width() int  { return r.W }
func (r *Recorder) Height() int { return r.H }

func (r *Recorder) Blit(img core.Image, x, y int, flip bool) {
	r.Blits = append(r.Blits, Blit{Img: img, X: x, Y: y, Flip: flip})
}

// Reset drops recorded blits.
func (r *Recorder) Reset() {
	r.Blits = r.Blits[:0]
}

// At reports whether anything was blitted at (x, y).
func (r *Recorder) At(x, y int) bool {
	for _, b := range r.Blits {
		if b.X == x && b.Y == y {
			return true
		}
	}
	return false
}
