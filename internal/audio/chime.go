// Package audio plays the short chime that accompanies a settled element.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/atomviz/internal/atom"
	"github.com/vovakirdan/atomviz/internal/config"
)

// octaveSpan is how many atomic numbers it takes to climb one octave.
const octaveSpan = 36.0

// Frequency returns the chime pitch for atomic number n. Pitch rises with n.
func Frequency(n int, base float64) float64 {
	n = max(1, min(n, atom.MaxAtomicNumber))
	return base * math.Pow(2, float64(n-1)/octaveSpan)
}

// Chime plays tones through the system speaker.
type Chime struct {
	mu          sync.Mutex
	cfg         config.SoundConfig
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
}

// NewChime creates a chime for the given sound settings.
func NewChime(cfg config.SoundConfig) *Chime {
	return &Chime{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker. Calling it twice is a no-op.
func (c *Chime) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := speaker.Init(c.rate, c.rate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Play queues the chime for atomic number n.
func (c *Chime) Play(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	// The mixer runs on the speaker goroutine
	speaker.Lock()
	c.mixer.Add(c.Streamer(n))
	speaker.Unlock()
}

// Streamer returns the finite tone for atomic number n.
func (c *Chime) Streamer(n int) beep.Streamer {
	d := time.Duration(c.cfg.DurationMS) * time.Millisecond
	tone := NewTone(Frequency(n, c.cfg.BaseFreq), d, c.rate)
	return &effects.Gain{Streamer: tone, Gain: c.cfg.Volume - 1}
}

// Close silences any chime still playing.
func (c *Chime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

// tone is a sine wave with an exponential decay.
type tone struct {
	freq     float64
	phase    float64
	position int
	total    int
	rate     beep.SampleRate
}

// NewTone creates a decaying sine of the given pitch and length.
func NewTone(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:  freq,
		total: rate.N(duration),
		rate:  rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}

		progress := float64(t.position) / float64(t.total)
		val := math.Sin(2*math.Pi*t.phase) * math.Exp(-5*progress)

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
