// Package session holds the state of one viewer and the handler functions
// that advance it. Every handler takes a State and returns the next one;
// nothing here touches a terminal, a window or the clock.
package session

import (
	"fmt"
	"time"

	"github.com/vovakirdan/atomviz/internal/atom"
	"github.com/vovakirdan/atomviz/internal/core"
	"github.com/vovakirdan/atomviz/internal/input"
)

// Selection sources, stored with each history entry.
const (
	SourceKeyboard = "keyboard"
	SourceRestore  = "restore"
	SourceDialog   = "dialog"
	SourceSSH      = "ssh"
)

// Options configure a new session.
type Options struct {
	Input          input.Config
	Motion         atom.MotionMode
	ShowOrbits     bool
	DefaultElement int
	// AllowEntry adds the "Enter atomic number" menu item. Only frontends
	// with a native dialog set it.
	AllowEntry bool
	// Source tags settled selections in the history.
	Source string
}

// DefaultOptions returns the options of the default configuration.
func DefaultOptions() Options {
	return Options{
		Input:          input.DefaultConfig(),
		Motion:         atom.Rotating,
		ShowOrbits:     true,
		DefaultElement: atom.DefaultAtomicNumber,
		Source:         SourceKeyboard,
	}
}

// State is everything one viewer knows.
type State struct {
	Atom       atom.State
	Acc        input.Accumulator
	Motion     atom.MotionMode
	ShowOrbits bool
	Menu       Menu
	ShowHelp   bool
	Quit       bool
	// LastErr is the most recent rejected input, cleared by the next digit.
	LastErr error

	opts Options
}

// New returns the initial state: the default element, Idle input.
func New(opts Options) State {
	if !atom.Valid(opts.DefaultElement) {
		opts.DefaultElement = atom.DefaultAtomicNumber
	}
	if opts.Input.Window <= 0 {
		opts.Input.Window = input.DefaultWindow
	}
	if opts.Source == "" {
		opts.Source = SourceKeyboard
	}
	return State{
		Atom:       atom.FromNumber(opts.DefaultElement),
		Motion:     opts.Motion,
		ShowOrbits: opts.ShowOrbits,
		Menu:       newMenu(opts.AllowEntry),
		opts:       opts,
	}
}

// Options returns the options the state was created with.
func (s State) Options() Options {
	return s.opts
}

// Selection is an element that should be recorded in the history.
type Selection struct {
	Number int
	Name   string
	Source string
}

// Effect lists what a handler did besides changing the state. Frontends
// act on it: log, record, chime, open a dialog, save a screenshot.
type Effect struct {
	// Digit is set when a digit was applied.
	Digit *input.Outcome
	// Settled is set when a selection was completed.
	Settled *Selection
	// OpenEntry asks the frontend to show the native number dialog.
	OpenEntry  bool
	Screenshot bool
}

// HandleKey applies one key event at time now.
func HandleKey(s State, ev core.KeyEvent, now time.Time) (State, Effect) {
	if ev.Action == core.ActionQuit {
		s.Quit = true
		return s, Effect{}
	}
	if s.Menu.Open {
		return handleMenuKey(s, ev)
	}

	switch ev.Action {
	case core.ActionDigit:
		return Digit(s, ev.Digit, now)
	case core.ActionResetInput:
		return ResetInput(s), Effect{}
	case core.ActionRestoreDefault:
		return RestoreDefault(s)
	case core.ActionToggleMotion:
		return ToggleMotion(s), Effect{}
	case core.ActionToggleOrbits:
		return ToggleOrbits(s), Effect{}
	case core.ActionMenu:
		return OpenMenu(s), Effect{}
	case core.ActionHelp:
		s.ShowHelp = !s.ShowHelp
		return s, Effect{}
	case core.ActionScreenshot:
		return s, Effect{Screenshot: true}
	}
	return s, Effect{}
}

// Digit feeds one digit to the accumulator and shows the result at once.
func Digit(s State, d int, now time.Time) (State, Effect) {
	// A digit typed after the window closed settles the previous number first
	var settled *Selection
	if s.Acc.Expired(now, s.opts.Input) {
		s, settled = settle(s, now)
	}

	acc, out := s.Acc.Digit(d, now, s.opts.Input)
	s.Acc = acc
	s.Atom = out.Atom
	s.LastErr = out.Err
	return s, Effect{Digit: &out, Settled: settled}
}

// Tick settles the pending number once its window has closed.
func Tick(s State, now time.Time) (State, Effect) {
	if !s.Acc.Expired(now, s.opts.Input) {
		return s, Effect{}
	}
	s, sel := settle(s, now)
	return s, Effect{Settled: sel}
}

func settle(s State, now time.Time) (State, *Selection) {
	s.Acc, _ = s.Acc.Settle(now, s.opts.Input)
	e, ok := s.Atom.Element()
	if !ok {
		return s, nil
	}
	return s, &Selection{Number: e.Number, Name: e.Name, Source: s.opts.Source}
}

// ResetInput abandons the number being typed. The atom on display stays.
func ResetInput(s State) State {
	s.Acc = s.Acc.Reset()
	s.LastErr = nil
	return s
}

// RestoreDefault shows the default element and returns input to Idle.
func RestoreDefault(s State) (State, Effect) {
	s.Acc = s.Acc.Reset()
	s.Atom = atom.FromNumber(s.opts.DefaultElement)
	s.LastErr = nil
	e, _ := s.Atom.Element()
	return s, Effect{Settled: &Selection{Number: e.Number, Name: e.Name, Source: SourceRestore}}
}

// Enter applies a complete atomic number, as typed into the entry dialog.
// The accumulator returns to Idle either way.
func Enter(s State, n int) (State, Effect) {
	s.Acc = s.Acc.Reset()
	out := input.Outcome{Value: n}

	switch {
	case n > atom.MaxAtomicNumber && s.opts.Input.Policy == input.PolicyClamp:
		out.Value, out.Clamped = atom.MaxAtomicNumber, true
	case !atom.Valid(n) && s.opts.Input.Policy == input.PolicyReject:
		out.Err = fmt.Errorf("%w: %d", input.ErrInvalidAtomicNumber, n)
		out.Atom = atom.Invalid()
		s.Atom, s.LastErr = out.Atom, out.Err
		return s, Effect{Digit: &out}
	case !atom.Valid(n):
		out.Err = fmt.Errorf("%w: %d", input.ErrInvalidAtomicNumber, n)
		out.Atom = atom.FromNumber(n)
		s.Atom, s.LastErr = out.Atom, out.Err
		return s, Effect{Digit: &out}
	}

	out.Atom = atom.FromNumber(out.Value)
	s.Atom, s.LastErr = out.Atom, nil
	sel := &Selection{Number: out.Value, Name: out.Atom.Name, Source: SourceDialog}
	return s, Effect{Digit: &out, Settled: sel}
}

// ToggleMotion switches between stationary and rotating electrons.
func ToggleMotion(s State) State {
	s.Motion = s.Motion.Toggle()
	return s
}

// ToggleOrbits shows or hides the orbit rings.
func ToggleOrbits(s State) State {
	s.ShowOrbits = !s.ShowOrbits
	return s
}

// Pending returns the number being typed and whether one is open at now.
func (s State) Pending(now time.Time) (int, bool) {
	if !s.Acc.Accumulating || s.Acc.Expired(now, s.opts.Input) {
		return 0, false
	}
	return s.Acc.Pending, true
}
