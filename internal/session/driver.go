package session

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/atomviz/internal/core"
	"github.com/vovakirdan/atomviz/internal/scene"
)

// Recorder stores settled selections. *storage.Store satisfies it.
type Recorder interface {
	RecordSelection(n int, name, source string) (int64, error)
}

// Chimer plays the selection cue. *audio.Chime satisfies it.
type Chimer interface {
	Play(n int)
}

// Driver owns one session State and performs the side effects its
// handlers ask for. It is not safe for concurrent use; each event loop
// owns its own Driver.
type Driver struct {
	state    State
	clock    core.Clock
	watch    core.Stopwatch
	params   scene.Params
	recorder Recorder
	chime    Chimer
	logger   *log.Logger
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithClock replaces the system clock.
func WithClock(c core.Clock) DriverOption {
	return func(d *Driver) { d.clock = c }
}

// WithRecorder records settled selections.
func WithRecorder(r Recorder) DriverOption {
	return func(d *Driver) { d.recorder = r }
}

// WithChime plays a cue for settled selections.
func WithChime(c Chimer) DriverOption {
	return func(d *Driver) { d.chime = c }
}

// WithLogger sets the structured logger.
func WithLogger(l *log.Logger) DriverOption {
	return func(d *Driver) { d.logger = l }
}

// NewDriver creates a driver with a fresh session.
func NewDriver(opts Options, params scene.Params, options ...DriverOption) *Driver {
	d := &Driver{
		state:  New(opts),
		clock:  core.SystemClock{},
		params: params,
	}
	for _, o := range options {
		o(d)
	}
	if d.logger == nil {
		d.logger = log.New(io.Discard)
	}
	d.watch = core.NewStopwatch(d.clock)
	return d
}

// State returns a copy of the current state.
func (d *Driver) State() State {
	return d.state
}

// Now returns the driver's clock reading.
func (d *Driver) Now() time.Time {
	return d.clock.Now()
}

// Elapsed returns the seconds since the driver started.
func (d *Driver) Elapsed() float64 {
	return d.watch.Seconds()
}

// Key handles one key event.
func (d *Driver) Key(ev core.KeyEvent) Effect {
	s, eff := HandleKey(d.state, ev, d.clock.Now())
	return d.apply(s, eff)
}

// Tick settles a pending number whose window has closed.
func (d *Driver) Tick() Effect {
	s, eff := Tick(d.state, d.clock.Now())
	return d.apply(s, eff)
}

// Enter applies a number from the entry dialog.
func (d *Driver) Enter(n int) Effect {
	s, eff := Enter(d.state, n)
	return d.apply(s, eff)
}

// Select runs a menu item, e.g. after a mouse click.
func (d *Driver) Select(item MenuItem) Effect {
	s, eff := Select(d.state, item)
	return d.apply(s, eff)
}

// Scene composes the frame for the current instant.
func (d *Driver) Scene() scene.Scene {
	p := d.params
	p.ShowOrbits = d.state.ShowOrbits
	return scene.Compose(d.state.Atom, d.state.Motion, d.watch.Seconds(), p)
}

// Params returns the scene parameters.
func (d *Driver) Params() scene.Params {
	return d.params
}

func (d *Driver) apply(s State, eff Effect) Effect {
	d.state = s

	if out := eff.Digit; out != nil {
		switch {
		case out.Err != nil:
			d.logger.Warn("invalid atomic number", "value", out.Value, "error", out.Err)
		case out.Clamped:
			d.logger.Info(out.Atom.Name, "number", out.Value, "clamped", true)
		default:
			d.logger.Info(out.Atom.Name, "number", out.Value)
		}
	}

	if sel := eff.Settled; sel != nil {
		d.logger.Debug("selection settled", "element", sel.Name, "number", sel.Number, "source", sel.Source)
		if d.recorder != nil {
			if _, err := d.recorder.RecordSelection(sel.Number, sel.Name, sel.Source); err != nil {
				d.logger.Warn("could not record selection", "error", err)
			}
		}
		if d.chime != nil {
			d.chime.Play(sel.Number)
		}
	}

	return eff
}
