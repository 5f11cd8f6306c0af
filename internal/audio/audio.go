// Package audio plays short synthesized sound effects by name.
// Playback is fire-and-forget; callers never wait on or inspect a sound.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player triggers named sound effects.
type Player interface {
	Play(name string)
}

// Silent is a Player that does nothing.
type Silent struct{}

// Play implements Player.
func (Silent) Play(string) {}

// Speaker plays sounds through the system audio device.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	closed bool
}

// NewSpeaker opens the audio device. volume is a linear gain in [0, 1].
func NewSpeaker(volume float64) (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return nil, err
	}
	s := &Speaker{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Play starts the named sound. Unknown names are ignored.
func (s *Speaker) Play(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	st, ok := Sound(name, sampleRate, s.volume)
	if !ok {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	speaker.Clear()
	speaker.Close()
}

// New returns a Speaker when enabled and the device opens, otherwise Silent.
// A device failure is logged and play continues without sound.
func New(enabled bool, volume float64, logger *log.Logger) Player {
	if !enabled {
		return Silent{}
	}
	s, err := NewSpeaker(volume)
	if err != nil {
		logger.Warn("audio unavailable, continuing without sound", "err", err)
		return Silent{}
	}
	logger.Debug("audio ready", "rate", int(sampleRate), "volume", volume)
	return s
}
