// Package input turns digit keystrokes into atomic number selections.
//
// Digits typed in quick succession build one number: each digit arriving
// less than Window after the previous one is appended, a slower digit starts
// a new number. Every digit updates the displayed atom immediately, so typing
// "1","1" shows Hydrogen and then Sodium.
package input

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/atomviz/internal/atom"
)

// DefaultWindow is the gap that separates two numbers.
const DefaultWindow = 2000 * time.Millisecond

// ErrInvalidAtomicNumber is returned when typed input does not name an element.
var ErrInvalidAtomicNumber = errors.New("input: invalid atomic number")

// Policy decides what happens to input above MaxAtomicNumber.
type Policy int

const (
	// PolicyClamp pins the number to MaxAtomicNumber and keeps accumulating.
	PolicyClamp Policy = iota
	// PolicyReject blanks the atom, shows an error label and drops the input.
	PolicyReject
)

// String returns the policy name used in config files and flags.
func (p Policy) String() string {
	switch p {
	case PolicyClamp:
		return "clamp"
	case PolicyReject:
		return "reject"
	default:
		return "unknown"
	}
}

// ParsePolicy converts a policy name to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clamp", "":
		return PolicyClamp, nil
	case "reject", "error":
		return PolicyReject, nil
	default:
		return PolicyClamp, fmt.Errorf("input: unknown invalid-input policy %q", s)
	}
}

// Config tunes the accumulator.
type Config struct {
	Window time.Duration
	Policy Policy
}

// DefaultConfig returns the 2 second window with the clamp policy.
func DefaultConfig() Config {
	return Config{Window: DefaultWindow, Policy: PolicyClamp}
}

// Accumulator is the digit state machine. It is a plain value: every
// transition returns the next Accumulator and leaves the receiver untouched.
// The zero value is Idle.
type Accumulator struct {
	Pending      int
	Accumulating bool
	LastDigit    time.Time
}

// Outcome describes the effect of one digit.
type Outcome struct {
	// Value is the number after the policy was applied.
	Value int
	// Atom is the state to display now.
	Atom atom.State
	// Restarted is true when the digit began a new number.
	Restarted bool
	// Clamped is true when the clamp policy pinned the value.
	Clamped bool
	// Err wraps ErrInvalidAtomicNumber when the value names no element.
	Err error
}

// Digit applies digit d (0-9) typed at now.
func (a Accumulator) Digit(d int, now time.Time, cfg Config) (Accumulator, Outcome) {
	var out Outcome

	if a.Accumulating && now.Sub(a.LastDigit) < cfg.Window {
		a.Pending = a.Pending*10 + d
	} else {
		a.Pending = d
		out.Restarted = true
	}
	a.Accumulating = true
	a.LastDigit = now

	switch {
	case a.Pending > atom.MaxAtomicNumber && cfg.Policy == PolicyReject:
		out.Value = a.Pending
		out.Err = fmt.Errorf("%w: %d", ErrInvalidAtomicNumber, a.Pending)
		out.Atom = atom.Invalid()
		return a.Reset(), out
	case a.Pending > atom.MaxAtomicNumber:
		a.Pending = atom.MaxAtomicNumber
		out.Clamped = true
	case a.Pending == 0 && cfg.Policy == PolicyReject:
		out.Err = fmt.Errorf("%w: 0", ErrInvalidAtomicNumber)
		out.Atom = atom.Invalid()
		return a.Reset(), out
	case a.Pending == 0:
		out.Err = fmt.Errorf("%w: 0", ErrInvalidAtomicNumber)
	}

	out.Value = a.Pending
	out.Atom = atom.FromNumber(a.Pending)
	return a, out
}

// Reset forces the accumulator back to Idle. The displayed atom is not
// affected.
func (a Accumulator) Reset() Accumulator {
	return Accumulator{}
}

// Expired reports whether the window since the last digit has closed, so
// the next digit would start a new number.
func (a Accumulator) Expired(now time.Time, cfg Config) bool {
	return a.Accumulating && now.Sub(a.LastDigit) >= cfg.Window
}

// Settle returns to Idle once the window has closed. The bool reports
// whether a number was completed by this call.
func (a Accumulator) Settle(now time.Time, cfg Config) (Accumulator, bool) {
	if !a.Expired(now, cfg) {
		return a, false
	}
	return a.Reset(), true
}

// Remaining returns how long the current number stays open, or 0 when Idle.
func (a Accumulator) Remaining(now time.Time, cfg Config) time.Duration {
	if !a.Accumulating {
		return 0
	}
	return max(0, cfg.Window-now.Sub(a.LastDigit))
}
