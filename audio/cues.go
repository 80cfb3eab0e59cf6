// Package audio plays the gesture transition cues. Playback is
// fire-and-forget: cue calls never block the frame loop, and a failed
// audio init silently disables cues rather than stopping the session.
package audio

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	expandLowHz    = 180.0
	expandHighHz   = 720.0
	contractLowHz  = 140.0
	contractHighHz = 560.0
	cueDuration    = 350 * time.Millisecond
)

// Cues synthesizes and plays the expand/contract transition sounds.
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewCues creates a cue player with the given output volume in [0,1].
func NewCues(volume float64) *Cues {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	return &Cues{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize sets up the speaker. On failure the cues stay disabled
// and the session continues silently.
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		slog.Warn("audio disabled", "error", err)
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Cleanup stops playback.
func (c *Cues) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	c.mixer.Clear()
	c.initialized = false
}

// Expand plays the rising open-hand sweep.
func (c *Cues) Expand() {
	c.play(expandLowHz, expandHighHz)
}

// Contract plays the falling close-hand sweep.
func (c *Cues) Contract() {
	c.play(contractHighHz, contractLowHz)
}

func (c *Cues) play(fromHz, toHz float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	streamer := NewSweep(fromHz, toHz, cueDuration, c.volume, sampleRate)
	speaker.Lock()
	c.mixer.Add(streamer)
	speaker.Unlock()
}
