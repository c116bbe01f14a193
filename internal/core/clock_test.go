package core

import (
	"testing"
	"time"
)

func TestManualClockAdvance(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewManualClock(start)

	if !c.Now().Equal(start) {
		t.Fatalf("Now() = %v, expected %v", c.Now(), start)
	}

	c.Advance(1500 * time.Millisecond)
	if got := c.Now().Sub(start); got != 1500*time.Millisecond {
		t.Errorf("after Advance, elapsed = %v, expected 1.5s", got)
	}
}

func TestStopwatch(t *testing.T) {
	c := NewManualClock(time.Unix(100, 0))
	sw := NewStopwatch(c)

	if sw.Elapsed() != 0 {
		t.Errorf("fresh stopwatch elapsed = %v, expected 0", sw.Elapsed())
	}

	c.Advance(2 * time.Second)
	if sw.Seconds() != 2 {
		t.Errorf("Seconds() = %v, expected 2", sw.Seconds())
	}
}

func TestParseDigit(t *testing.T) {
	for r := '0'; r <= '9'; r++ {
		d, ok := ParseDigit(r)
		if !ok || d != int(r-'0') {
			t.Errorf("ParseDigit(%q) = %d, %v", r, d, ok)
		}
	}
	for _, r := range []rune{'a', ' ', '/', ':', '٣'} {
		if _, ok := ParseDigit(r); ok {
			t.Errorf("ParseDigit(%q) should reject non-ASCII-digit", r)
		}
	}
}

func TestActionString(t *testing.T) {
	if ActionDigit.String() != "Digit" {
		t.Errorf("ActionDigit.String() = %q", ActionDigit.String())
	}
	if Action(999).String() != "Unknown" {
		t.Error("out-of-range action should be Unknown")
	}
}
