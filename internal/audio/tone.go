package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// sweep is a sine tone gliding from one frequency to another with a short
// attack and a linear release.
type sweep struct {
	rate     beep.SampleRate
	from, to float64
	volume   float64
	phase    float64
	position int
	length   int
}

// NewSweep creates a tone lasting d that glides from one frequency to another.
func NewSweep(from, to float64, d time.Duration, volume float64, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		rate:   rate,
		from:   from,
		to:     to,
		volume: volume,
		length: rate.N(d),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.length {
			return i, i > 0
		}
		p := float64(s.position) / float64(s.length)
		freq := s.from + (s.to-s.from)*p

		val := math.Sin(2*math.Pi*s.phase) * s.volume * envelope(p)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope ramps in over the first 5% and fades out over the rest.
func envelope(p float64) float64 {
	const attack = 0.05
	if p < attack {
		return p / attack
	}
	return 1 - (p-attack)/(1-attack)
}

// Cue sounds. Each returns a finite streamer.

func stepSound(rate beep.SampleRate) beep.Streamer {
	return NewSweep(180, 120, 40*time.Millisecond, 0.2, rate)
}

func errorSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		NewSweep(140, 140, 90*time.Millisecond, 0.3, rate),
		NewSweep(110, 110, 120*time.Millisecond, 0.3, rate),
	)
}

func sacrificeSound(rate beep.SampleRate) beep.Streamer {
	return NewSweep(660, 330, 400*time.Millisecond, 0.2, rate)
}

func fallSound(rate beep.SampleRate) beep.Streamer {
	return NewSweep(520, 60, 1200*time.Millisecond, 0.35, rate)
}

func winSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		NewSweep(523.25, 523.25, 150*time.Millisecond, 0.25, rate),
		NewSweep(659.25, 659.25, 150*time.Millisecond, 0.25, rate),
		NewSweep(783.99, 783.99, 150*time.Millisecond, 0.25, rate),
		NewSweep(1046.5, 1046.5, 400*time.Millisecond, 0.25, rate),
	)
}
