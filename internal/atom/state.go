package atom

// Labels shown instead of an element name when the atom is invalid.
const (
	LabelUnknown = "Unknown"
	LabelInvalid = "Invalid atomic number"
)

// DefaultAtomicNumber is the element restored by the reset-to-default key.
const DefaultAtomicNumber = 1

// State is the atom currently on display.
type State struct {
	ElectronCount int
	Name          string
	Err           bool
}

// FromNumber builds the display state for atomic number n. Numbers outside
// 1..MaxAtomicNumber produce an error state labelled LabelUnknown with the
// electron count clamped into range.
func FromNumber(n int) State {
	if e, ok := Lookup(n); ok {
		return State{ElectronCount: e.Number, Name: e.Name}
	}
	return State{
		ElectronCount: max(0, min(n, MaxAtomicNumber)),
		Name:          LabelUnknown,
		Err:           true,
	}
}

// Invalid returns the blanked state shown after a rejected number.
func Invalid() State {
	return State{Name: LabelInvalid, Err: true}
}

// Default returns the state for DefaultAtomicNumber.
func Default() State {
	return FromNumber(DefaultAtomicNumber)
}

// Element returns the catalogue entry for the state, if it is valid.
func (s State) Element() (Element, bool) {
	if s.Err {
		return Element{}, false
	}
	return Lookup(s.ElectronCount)
}

// Shells returns the shell occupancy for the state.
func (s State) Shells() []int {
	return Distribute(s.ElectronCount)
}
