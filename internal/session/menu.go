package session

import "github.com/vovakirdan/atomviz/internal/core"

// MenuItem is one entry of the context menu.
type MenuItem int

const (
	ItemToggleMotion MenuItem = iota
	ItemToggleOrbits
	ItemEnterNumber
	ItemExit
)

// Label returns the text shown for the item.
func (i MenuItem) Label() string {
	switch i {
	case ItemToggleMotion:
		return "Toggle motion"
	case ItemToggleOrbits:
		return "Toggle orbit lines"
	case ItemEnterNumber:
		return "Enter atomic number..."
	case ItemExit:
		return "Exit"
	default:
		return "?"
	}
}

// Menu is the context menu overlay.
type Menu struct {
	Open   bool
	Cursor int
	Items  []MenuItem
}

func newMenu(allowEntry bool) Menu {
	items := []MenuItem{ItemToggleMotion, ItemToggleOrbits}
	if allowEntry {
		items = append(items, ItemEnterNumber)
	}
	return Menu{Items: append(items, ItemExit)}
}

// Selected returns the item under the cursor.
func (m Menu) Selected() MenuItem {
	if len(m.Items) == 0 {
		return ItemExit
	}
	return m.Items[core.Clamp(m.Cursor, 0, len(m.Items)-1)]
}

// OpenMenu shows the menu with the cursor on the first item.
func OpenMenu(s State) State {
	s.Menu.Open = true
	s.Menu.Cursor = 0
	return s
}

// CloseMenu hides the menu.
func CloseMenu(s State) State {
	s.Menu.Open = false
	return s
}

// MoveCursor moves the menu cursor by delta, wrapping at both ends.
func MoveCursor(s State, delta int) State {
	n := len(s.Menu.Items)
	if n == 0 {
		return s
	}
	s.Menu.Cursor = ((s.Menu.Cursor+delta)%n + n) % n
	return s
}

// Select closes the menu and runs item.
func Select(s State, item MenuItem) (State, Effect) {
	s = CloseMenu(s)
	switch item {
	case ItemToggleMotion:
		return ToggleMotion(s), Effect{}
	case ItemToggleOrbits:
		return ToggleOrbits(s), Effect{}
	case ItemEnterNumber:
		return s, Effect{OpenEntry: true}
	case ItemExit:
		s.Quit = true
	}
	return s, Effect{}
}

// handleMenuKey routes keys while the menu is open. Digits are ignored.
func handleMenuKey(s State, ev core.KeyEvent) (State, Effect) {
	switch ev.Action {
	case core.ActionUp:
		return MoveCursor(s, -1), Effect{}
	case core.ActionDown:
		return MoveCursor(s, 1), Effect{}
	case core.ActionConfirm:
		return Select(s, s.Menu.Selected())
	case core.ActionBack, core.ActionMenu, core.ActionResetInput:
		return CloseMenu(s), Effect{}
	case core.ActionToggleMotion:
		return Select(s, ItemToggleMotion)
	case core.ActionToggleOrbits:
		return Select(s, ItemToggleOrbits)
	}
	return s, Effect{}
}
