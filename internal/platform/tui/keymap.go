package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/atomviz/internal/core"
)

// KeyMap defines the key bindings of the atom view.
type KeyMap struct {
	Digits     key.Binding
	Reset      key.Binding
	Restore    key.Binding
	Motion     key.Binding
	Orbits     key.Binding
	Menu       key.Binding
	Up         key.Binding
	Down       key.Binding
	Confirm    key.Binding
	Help       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Digits, k.Restore, k.Motion, k.Menu, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Digits, k.Reset, k.Restore},
		{k.Motion, k.Orbits, k.Menu},
		{k.Up, k.Down, k.Confirm},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Digits: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "atomic number"),
		),
		Reset: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear input"),
		),
		Restore: key.NewBinding(
			key.WithKeys("a", "A"),
			key.WithHelp("a", "hydrogen"),
		),
		Motion: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "motion"),
		),
		Orbits: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "orbit lines"),
		),
		Menu: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "menu"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "menu up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "menu down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to viewer key events.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message to a key event.
// Unbound keys map to ActionNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.KeyEvent {
	k := km.keys

	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionEvent(core.ActionQuit)
	case key.Matches(msg, k.Digits):
		if d, ok := core.ParseDigit([]rune(msg.String())[0]); ok {
			return core.DigitEvent(d)
		}
	case key.Matches(msg, k.Reset):
		return core.ActionEvent(core.ActionResetInput)
	case key.Matches(msg, k.Restore):
		return core.ActionEvent(core.ActionRestoreDefault)
	case key.Matches(msg, k.Motion):
		return core.ActionEvent(core.ActionToggleMotion)
	case key.Matches(msg, k.Orbits):
		return core.ActionEvent(core.ActionToggleOrbits)
	case key.Matches(msg, k.Menu):
		return core.ActionEvent(core.ActionMenu)
	case key.Matches(msg, k.Up):
		return core.ActionEvent(core.ActionUp)
	case key.Matches(msg, k.Down):
		return core.ActionEvent(core.ActionDown)
	case key.Matches(msg, k.Confirm):
		return core.ActionEvent(core.ActionConfirm)
	case key.Matches(msg, k.Help):
		return core.ActionEvent(core.ActionHelp)
	case key.Matches(msg, k.Screenshot):
		return core.ActionEvent(core.ActionScreenshot)
	}

	return core.ActionEvent(core.ActionNone)
}

// MapMouse translates a mouse message. A right click opens the menu.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) core.KeyEvent {
	if msg.Button == tea.MouseButtonRight && msg.Action == tea.MouseActionPress {
		return core.ActionEvent(core.ActionMenu)
	}
	return core.ActionEvent(core.ActionNone)
}
