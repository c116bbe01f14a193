package session

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/atomviz/internal/atom"
	"github.com/vovakirdan/atomviz/internal/core"
	"github.com/vovakirdan/atomviz/internal/scene"
)

type fakeRecorder struct {
	got []Selection
	err error
}

func (r *fakeRecorder) RecordSelection(n int, name, source string) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.got = append(r.got, Selection{Number: n, Name: name, Source: source})
	return int64(len(r.got)), nil
}

type fakeChime struct{ played []int }

func (c *fakeChime) Play(n int) { c.played = append(c.played, n) }

func newTestDriver(opts ...DriverOption) (*Driver, *core.ManualClock) {
	clock := core.NewManualClock(t0)
	d := NewDriver(DefaultOptions(), scene.DefaultParams(), append([]DriverOption{WithClock(clock)}, opts...)...)
	return d, clock
}

func TestDriverRecordsSettledSelection(t *testing.T) {
	rec := &fakeRecorder{}
	chime := &fakeChime{}
	d, clock := newTestDriver(WithRecorder(rec), WithChime(chime))

	d.Key(core.DigitEvent(1))
	clock.Advance(500 * time.Millisecond)
	d.Key(core.DigitEvent(0))
	d.Tick()
	if len(rec.got) != 0 {
		t.Fatal("recorded before the window closed")
	}

	clock.Advance(2 * time.Second)
	d.Tick()
	if len(rec.got) != 1 || rec.got[0].Number != 10 || rec.got[0].Name != "Neon" {
		t.Errorf("recorded %+v, expected Neon", rec.got)
	}
	if len(chime.played) != 1 || chime.played[0] != 10 {
		t.Errorf("chime played %v, expected [10]", chime.played)
	}
}

func TestDriverLogsEveryDigit(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	d, _ := newTestDriver(WithLogger(logger))

	d.Key(core.DigitEvent(1))
	d.Key(core.DigitEvent(1))

	out := buf.String()
	if !strings.Contains(out, "Hydrogen") || !strings.Contains(out, "Sodium") {
		t.Errorf("log output %q should name both elements", out)
	}
	if !strings.Contains(out, "number=11") {
		t.Errorf("log output %q should include the atomic number", out)
	}
}

func TestDriverRecorderFailureIsNotFatal(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	d, _ := newTestDriver(WithRecorder(rec))

	d.Key(core.ActionEvent(core.ActionRestoreDefault))
	if d.State().Atom.Name != "Hydrogen" {
		t.Error("session should continue after a failed save")
	}
}

func TestDriverScene(t *testing.T) {
	d, clock := newTestDriver()
	d.Key(core.DigitEvent(8))

	sc := d.Scene()
	if sc.Label != "Oxygen" || sc.ElectronCount() != 8 {
		t.Errorf("scene = %s with %d electrons", sc.Label, sc.ElectronCount())
	}
	if len(sc.Orbits) == 0 {
		t.Error("orbit rings should follow the session toggle")
	}

	d.Key(core.ActionEvent(core.ActionToggleOrbits))
	d.Key(core.ActionEvent(core.ActionToggleMotion))
	first := d.Scene()
	clock.Advance(3 * time.Second)
	second := d.Scene()
	if len(first.Orbits) != 0 {
		t.Error("orbit rings should be hidden")
	}
	if first.Motion != atom.Stationary {
		t.Error("motion toggle should reach the scene")
	}
	if first.Shells[1].Electrons[0] != second.Shells[1].Electrons[0] {
		t.Error("stationary electrons must not move with time")
	}
}

func TestDriverElapsedFollowsClock(t *testing.T) {
	d, clock := newTestDriver()
	clock.Advance(1500 * time.Millisecond)
	if d.Elapsed() != 1.5 {
		t.Errorf("Elapsed() = %v, expected 1.5", d.Elapsed())
	}
}
