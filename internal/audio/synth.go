package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Names of the built-in effects.
const (
	SoundJump  = "jump"
	SoundDash  = "dash"
	SoundHit   = "hit"
	SoundShoot = "shoot"
)

// Sound builds a fresh streamer for a named effect at the given volume.
func Sound(name string, rate beep.SampleRate, volume float64) (beep.Streamer, bool) {
	var st beep.Streamer
	switch name {
	case SoundJump:
		d := 120 * time.Millisecond
		st = newEnvelope(&sweep{from: 320, to: 640, n: rate.N(d), rate: rate}, rate.N(d), rate.N(5*time.Millisecond), rate.N(60*time.Millisecond))
	case SoundDash:
		d := 180 * time.Millisecond
		st = newEnvelope(&noise{n: rate.N(d)}, rate.N(d), rate.N(10*time.Millisecond), rate.N(150*time.Millisecond))
	case SoundHit:
		d := 200 * time.Millisecond
		st = newEnvelope(&sweep{from: 180, to: 60, n: rate.N(d), rate: rate}, rate.N(d), 0, rate.N(180*time.Millisecond))
	case SoundShoot:
		d := 70 * time.Millisecond
		tone, err := generators.SineTone(rate, 940)
		if err != nil {
			return nil, false
		}
		st = newEnvelope(beep.Take(rate.N(d), tone), rate.N(d), 0, rate.N(50*time.Millisecond))
	default:
		return nil, false
	}
	return withVolume(st, volume), true
}

// sweep is a sine tone gliding linearly between two frequencies.
type sweep struct {
	from, to float64
	n, pos   int
	phase    float64
	rate     beep.SampleRate
}

func (s *sweep) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if s.pos >= s.n {
			return i, i > 0
		}
		freq := s.from + (s.to-s.from)*float64(s.pos)/float64(s.n)
		v := math.Sin(2 * math.Pi * s.phase)
		samples[i][0], samples[i][1] = v, v
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// noise is white noise of fixed length.
type noise struct {
	n, pos int
}

func (s *noise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if s.pos >= s.n {
			return i, i > 0
		}
		v := rand.Float64()*2 - 1
		samples[i][0], samples[i][1] = v, v
		s.pos++
	}
	return len(samples), true
}

func (s *noise) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	st                   beep.Streamer
	pos, total, att, rel int
}

func newEnvelope(st beep.Streamer, total, attack, release int) beep.Streamer {
	return &envelope{st: st, total: total, att: attack, rel: release}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.st.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.pos < e.att {
			vol = float64(e.pos) / float64(e.att)
		}
		if left := e.total - e.pos; left < e.rel {
			vol = math.Max(0, float64(left)/float64(e.rel))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.st.Err() }

// withVolume scales a stream by a linear gain. Zero gain silences it.
func withVolume(st beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: st, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: st, Base: 2, Volume: math.Log2(vol)}
}
