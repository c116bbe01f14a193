package core

// Action represents a semantic viewer action, abstracted from physical key presses.
// This allows the session to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone           Action = iota
	ActionDigit                 // 0-9 - one digit of an atomic number
	ActionResetInput            // Esc - abandon the number being typed
	ActionRestoreDefault        // A - back to the default element
	ActionToggleMotion          // M - rotate or freeze electrons
	ActionToggleOrbits          // O - show or hide orbit rings
	ActionMenu                  // Tab, right click - open the context menu
	ActionUp                    // Up, K - menu navigation
	ActionDown                  // Down, J - menu navigation
	ActionConfirm               // Enter - confirm menu selection
	ActionBack                  // Esc inside the menu
	ActionHelp                  // ? - toggle the help bar
	ActionScreenshot            // Ctrl+S - save the current frame
	ActionQuit                  // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionDigit:
		return "Digit"
	case ActionResetInput:
		return "ResetInput"
	case ActionRestoreDefault:
		return "RestoreDefault"
	case ActionToggleMotion:
		return "ToggleMotion"
	case ActionToggleOrbits:
		return "ToggleOrbits"
	case ActionMenu:
		return "Menu"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionHelp:
		return "Help"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyEvent is one discrete input event delivered to the session.
// Digit is only meaningful for ActionDigit.
type KeyEvent struct {
	Action Action
	Digit  int
}

// DigitEvent returns the event for digit d.
func DigitEvent(d int) KeyEvent {
	return KeyEvent{Action: ActionDigit, Digit: d}
}

// ActionEvent returns an event carrying only an action.
func ActionEvent(a Action) KeyEvent {
	return KeyEvent{Action: a}
}

// ParseDigit reports the value of r if it is an ASCII digit.
func ParseDigit(r rune) (int, bool) {
	if r < '0' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}
