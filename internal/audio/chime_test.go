package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/atomviz/internal/config"
)

func TestFrequencyRisesWithAtomicNumber(t *testing.T) {
	base := 220.0
	if f := Frequency(1, base); f != base {
		t.Errorf("Frequency(1) = %v, expected base %v", f, base)
	}

	prev := 0.0
	for n := 1; n <= 118; n++ {
		f := Frequency(n, base)
		if f <= prev {
			t.Fatalf("Frequency(%d) = %v is not above Frequency(%d) = %v", n, f, n-1, prev)
		}
		prev = f
	}

	if math.Abs(Frequency(37, base)-2*base) > 1e-9 {
		t.Errorf("Frequency(37) = %v, expected one octave up", Frequency(37, base))
	}
}

func TestFrequencyClampsOutOfRange(t *testing.T) {
	if Frequency(0, 100) != Frequency(1, 100) {
		t.Error("0 should sound like Hydrogen")
	}
	if Frequency(500, 100) != Frequency(118, 100) {
		t.Error("large numbers should sound like Oganesson")
	}
}

func TestToneLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	tone := NewTone(440, 10*time.Millisecond, rate)
	want := rate.N(10 * time.Millisecond)

	total := 0
	buf := make([][2]float64, 128)
	for {
		n, ok := tone.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 || buf[i][0] != buf[i][1] {
				t.Fatalf("sample %d = %v out of range or not mono", total+i, buf[i])
			}
		}
		total += n
		if !ok {
			break
		}
	}

	if total != want {
		t.Errorf("streamed %d samples, expected %d", total, want)
	}
	if tone.Err() != nil {
		t.Errorf("unexpected error: %v", tone.Err())
	}
}

func TestToneDecays(t *testing.T) {
	rate := beep.SampleRate(8000)
	tone := NewTone(100, time.Second, rate)
	buf := make([][2]float64, rate.N(time.Second))
	tone.Stream(buf)

	peak := func(from, to int) float64 {
		p := 0.0
		for _, s := range buf[from:to] {
			p = math.Max(p, math.Abs(s[0]))
		}
		return p
	}
	if peak(0, 800) <= peak(len(buf)-800, len(buf)) {
		t.Error("tone should fade out")
	}
}

func TestPlayWithoutSpeakerIsNoop(t *testing.T) {
	c := NewChime(config.DefaultAtomConfig().Sound)
	// Not initialised: must not touch the speaker
	c.Play(11)
	c.Close()
}
