package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// sweep generates a sine tone gliding between two frequencies with a
// short attack/release envelope so cues don't click.
type sweep struct {
	fromHz   float64
	toHz     float64
	volume   float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

// NewSweep creates a frequency sweep streamer.
func NewSweep(fromHz, toHz float64, duration time.Duration, volume float64, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		fromHz:   fromHz,
		toHz:     toHz,
		volume:   volume,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, false
		}

		progress := float64(s.position) / float64(s.duration)
		freq := s.fromHz + (s.toHz-s.fromHz)*progress

		val := math.Sin(2*math.Pi*s.phase) * s.volume * envelope(progress)
		samples[i][0] = val
		samples[i][1] = val

		// Advance phase
		s.phase += freq / float64(s.rate)
		s.phase = s.phase - math.Floor(s.phase) // Keep in [0, 1)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope shapes amplitude over the cue: 10% linear attack, 40%
// sustain, then release.
func envelope(progress float64) float64 {
	switch {
	case progress < 0.1:
		return progress / 0.1
	case progress < 0.5:
		return 1
	default:
		return 1 - (progress-0.5)/0.5
	}
}
