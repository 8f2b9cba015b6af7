package term

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const chimeRate = beep.SampleRate(44100)

// Chime plays a short tone through the default audio device.
type Chime struct {
	freq     float64
	duration time.Duration
}

// NewChime initialises the speaker. Callers treat an error as "no sound".
func NewChime(freq float64, d time.Duration) (*Chime, error) {
	if err := speaker.Init(chimeRate, chimeRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Chime{freq: freq, duration: d}, nil
}

// Play starts the tone without blocking. A nil Chime is silent.
func (c *Chime) Play() {
	if c == nil {
		return
	}
	sine, err := generators.SineTone(chimeRate, c.freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(chimeRate.N(c.duration), sine))
}
