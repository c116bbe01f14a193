package input

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/atomviz/internal/atom"
)

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// typeDigits feeds digits at the given offsets from t0 and returns every outcome.
func typeDigits(t *testing.T, cfg Config, digits []int, offsets []time.Duration) (Accumulator, []Outcome) {
	t.Helper()
	if len(digits) != len(offsets) {
		t.Fatalf("digits and offsets differ in length")
	}
	var acc Accumulator
	outs := make([]Outcome, 0, len(digits))
	for i, d := range digits {
		var out Outcome
		acc, out = acc.Digit(d, t0.Add(offsets[i]), cfg)
		outs = append(outs, out)
	}
	return acc, outs
}

func TestDigitsWithinWindowConcatenate(t *testing.T) {
	acc, outs := typeDigits(t, DefaultConfig(), []int{1, 1}, []time.Duration{0, 500 * time.Millisecond})

	if outs[0].Atom.Name != "Hydrogen" {
		t.Errorf("first digit shows %q, expected Hydrogen", outs[0].Atom.Name)
	}
	if outs[1].Value != 11 || outs[1].Atom.Name != "Sodium" {
		t.Errorf("second digit = %d %q, expected 11 Sodium", outs[1].Value, outs[1].Atom.Name)
	}
	if outs[1].Restarted {
		t.Error("second digit should extend the number")
	}
	if acc.Pending != 11 || !acc.Accumulating {
		t.Errorf("accumulator = %+v", acc)
	}
}

func TestDigitsAfterWindowStartOver(t *testing.T) {
	_, outs := typeDigits(t, DefaultConfig(), []int{1, 1}, []time.Duration{0, 2100 * time.Millisecond})

	for i, out := range outs {
		if out.Value != 1 || out.Atom.Name != "Hydrogen" {
			t.Errorf("digit %d = %d %q, expected 1 Hydrogen", i, out.Value, out.Atom.Name)
		}
		if !out.Restarted {
			t.Errorf("digit %d should start a new number", i)
		}
	}
}

func TestWindowBoundaryIsExclusive(t *testing.T) {
	_, outs := typeDigits(t, DefaultConfig(), []int{2, 6}, []time.Duration{0, DefaultWindow})
	if outs[1].Value != 6 {
		t.Errorf("digit exactly one window later = %d, expected a fresh 6", outs[1].Value)
	}

	_, outs = typeDigits(t, DefaultConfig(), []int{2, 6}, []time.Duration{0, DefaultWindow - time.Millisecond})
	if outs[1].Value != 26 || outs[1].Atom.Name != "Iron" {
		t.Errorf("digit just inside window = %d %q, expected 26 Iron", outs[1].Value, outs[1].Atom.Name)
	}
}

func TestWindowIsMeasuredFromLastDigit(t *testing.T) {
	// Three digits each 1.5s apart span 3s in total but still form one number.
	step := 1500 * time.Millisecond
	_, outs := typeDigits(t, DefaultConfig(), []int{1, 0, 8}, []time.Duration{0, step, 2 * step})
	if outs[2].Value != 108 || outs[2].Atom.Name != "Hassium" {
		t.Errorf("got %d %q, expected 108 Hassium", outs[2].Value, outs[2].Atom.Name)
	}
}

func TestClampPolicy(t *testing.T) {
	cfg := Config{Window: DefaultWindow, Policy: PolicyClamp}
	acc, outs := typeDigits(t, cfg, []int{1, 1, 9}, []time.Duration{0, 100 * time.Millisecond, 200 * time.Millisecond})

	last := outs[2]
	if !last.Clamped || last.Value != atom.MaxAtomicNumber {
		t.Errorf("119 should clamp to 118, got %+v", last)
	}
	if last.Atom.Name != "Oganesson" || last.Atom.Err {
		t.Errorf("clamped atom = %+v, expected Oganesson", last.Atom)
	}
	if last.Err != nil {
		t.Errorf("clamping is silent, got error %v", last.Err)
	}

	// Further digits keep clamping
	_, out := acc.Digit(5, t0.Add(300*time.Millisecond), cfg)
	if out.Value != atom.MaxAtomicNumber {
		t.Errorf("1185 should clamp to 118, got %d", out.Value)
	}
}

func TestRejectPolicy(t *testing.T) {
	cfg := Config{Window: DefaultWindow, Policy: PolicyReject}
	acc, outs := typeDigits(t, cfg, []int{1, 1, 9}, []time.Duration{0, 100 * time.Millisecond, 200 * time.Millisecond})

	last := outs[2]
	if !errors.Is(last.Err, ErrInvalidAtomicNumber) {
		t.Fatalf("119 should be rejected, got err %v", last.Err)
	}
	if !last.Atom.Err || last.Atom.ElectronCount != 0 || last.Atom.Name != atom.LabelInvalid {
		t.Errorf("rejected atom = %+v, expected blank error state", last.Atom)
	}
	if acc.Accumulating || acc.Pending != 0 {
		t.Errorf("accumulator should be idle after rejection, got %+v", acc)
	}

	// The next digit starts fresh even inside the window
	_, out := acc.Digit(7, t0.Add(300*time.Millisecond), cfg)
	if out.Value != 7 || out.Atom.Name != "Nitrogen" {
		t.Errorf("digit after rejection = %d %q, expected 7 Nitrogen", out.Value, out.Atom.Name)
	}
}

func TestZeroIsInvalid(t *testing.T) {
	tests := []struct {
		policy    Policy
		wantLabel string
	}{
		{PolicyClamp, atom.LabelUnknown},
		{PolicyReject, atom.LabelInvalid},
	}

	for _, tc := range tests {
		t.Run(tc.policy.String(), func(t *testing.T) {
			var acc Accumulator
			_, out := acc.Digit(0, t0, Config{Window: DefaultWindow, Policy: tc.policy})
			if !errors.Is(out.Err, ErrInvalidAtomicNumber) {
				t.Errorf("0 should report ErrInvalidAtomicNumber, got %v", out.Err)
			}
			if !out.Atom.Err || out.Atom.Name != tc.wantLabel || out.Atom.ElectronCount != 0 {
				t.Errorf("atom = %+v, expected %q error state", out.Atom, tc.wantLabel)
			}
		})
	}
}

func TestClampKeepsZeroPrefix(t *testing.T) {
	// Under clamp a leading zero stays pending and the next digit replaces it.
	_, outs := typeDigits(t, DefaultConfig(), []int{0, 8}, []time.Duration{0, 100 * time.Millisecond})
	if outs[1].Value != 8 || outs[1].Atom.Name != "Oxygen" {
		t.Errorf("got %d %q, expected 8 Oxygen", outs[1].Value, outs[1].Atom.Name)
	}
}

func TestReset(t *testing.T) {
	acc, _ := typeDigits(t, DefaultConfig(), []int{4}, []time.Duration{0})
	acc = acc.Reset()
	if acc.Accumulating || acc.Pending != 0 {
		t.Errorf("Reset() = %+v, expected idle", acc)
	}

	// A digit right after reset does not concatenate
	_, out := acc.Digit(2, t0.Add(10*time.Millisecond), DefaultConfig())
	if out.Value != 2 || !out.Restarted {
		t.Errorf("digit after reset = %+v, expected fresh 2", out)
	}
}

func TestSettle(t *testing.T) {
	cfg := DefaultConfig()
	acc, _ := typeDigits(t, cfg, []int{6}, []time.Duration{0})

	if _, done := acc.Settle(t0.Add(time.Second), cfg); done {
		t.Error("should not settle inside the window")
	}
	if r := acc.Remaining(t0.Add(time.Second), cfg); r != time.Second {
		t.Errorf("Remaining() = %v, expected 1s", r)
	}

	settled, done := acc.Settle(t0.Add(cfg.Window), cfg)
	if !done || settled.Accumulating {
		t.Errorf("should settle once the window closes, got %+v %v", settled, done)
	}
	if _, again := settled.Settle(t0.Add(3*cfg.Window), cfg); again {
		t.Error("idle accumulator should not settle twice")
	}
	if settled.Remaining(t0, cfg) != 0 {
		t.Error("idle accumulator has no remaining window")
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{"clamp", PolicyClamp, false},
		{"", PolicyClamp, false},
		{"REJECT", PolicyReject, false},
		{"error", PolicyReject, false},
		{"ignore", PolicyClamp, true},
	}
	for _, tc := range tests {
		got, err := ParsePolicy(tc.in)
		if (err != nil) != tc.wantErr || (err == nil && got != tc.want) {
			t.Errorf("ParsePolicy(%q) = %v, %v", tc.in, got, err)
		}
	}
}
