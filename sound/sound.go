// Package sound plays short feedback tones for form submissions.
package sound

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player produces submission feedback chimes. A nil Player is silent, so
// callers can run without audio.
type Player struct{}

// NewPlayer initializes the speaker. Failure is not fatal to the program;
// the caller can simply keep a nil Player.
func NewPlayer() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Player{}, nil
}

func (p *Player) tone(freq float64, d time.Duration) {
	if p == nil {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// Confirm plays the accepted-entry chime.
func (p *Player) Confirm() {
	p.tone(880, 50*time.Millisecond)
}

// Reject plays the discarded-entry tone.
func (p *Player) Reject() {
	p.tone(220, 80*time.Millisecond)
}

// Close shuts the speaker down.
func (p *Player) Close() {
	if p != nil {
		speaker.Close()
	}
}
