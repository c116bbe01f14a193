package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/atomviz/internal/storage"
)

// History browser layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the stats sidebar
	sidebarWidth       = 24  // Width of stats sidebar
	maxRows            = 200 // Max rows to load
)

// HistorySource is the read side of the selection store.
type HistorySource interface {
	RecentSelections(limit int) ([]storage.Selection, error)
	TopElements(limit int) ([]storage.ElementCount, error)
	Stats() (*storage.Stats, error)
}

// historyTab is one of the browser's two listings.
type historyTab int

const (
	tabRecent historyTab = iota
	tabTop
)

func (t historyTab) title() string {
	if t == tabTop {
		return "Most viewed"
	}
	return "Recent"
}

// HistoryKeyMap defines the key bindings for the history browser.
type HistoryKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "switch list"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "switch back"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for the selection history browser.
type HistoryModel struct {
	source      HistorySource
	tab         historyTab
	recent      []storage.Selection
	top         []storage.ElementCount
	stats       *storage.Stats
	loadErr     error
	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	width       int
	height      int
	done        bool
	showSidebar bool
}

// NewHistoryModel creates a new history browser.
func NewHistoryModel(source HistorySource, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		source:      source,
		keys:        DefaultHistoryKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.load()
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// load reads everything the browser shows.
func (m *HistoryModel) load() {
	if m.source == nil {
		return
	}

	var err error
	if m.recent, err = m.source.RecentSelections(maxRows); err != nil {
		m.loadErr = err
		return
	}
	if m.top, err = m.source.TopElements(maxRows); err != nil {
		m.loadErr = err
		return
	}
	m.stats, m.loadErr = m.source.Stats()
}

// createTable creates a table with columns for the current tab.
func (m *HistoryModel) createTable() table.Model {
	var columns []table.Column
	if m.tab == tabTop {
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Z", Width: 4},
			{Title: "Element", Width: 16},
			{Title: "Views", Width: 8},
		}
	} else {
		columns = []table.Column{
			{Title: "Z", Width: 4},
			{Title: "Element", Width: 16},
			{Title: "Source", Width: 10},
			{Title: "Date", Width: 14},
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the loaded data.
func (m *HistoryModel) updateTableRows() {
	var rows []table.Row
	if m.tab == tabTop {
		rows = make([]table.Row, len(m.top))
		for i, c := range m.top {
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d", c.AtomicNumber),
				c.Element,
				fmt.Sprintf("%d", c.Count),
			}
		}
	} else {
		rows = make([]table.Row, len(m.recent))
		for i, s := range m.recent {
			rows[i] = table.Row{
				fmt.Sprintf("%d", s.AtomicNumber),
				s.Element,
				s.Source,
				s.CreatedAt.Format("Jan 02 15:04"),
			}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// switchTab moves to the other listing.
func (m *HistoryModel) switchTab() {
	if m.tab == tabRecent {
		m.tab = tabTop
	} else {
		m.tab = tabRecent
	}
	m.table = m.createTable()
	m.updateTableRows()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.done = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab), key.Matches(msg, m.keys.PrevTab):
			m.switchTab()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("HISTORY - "+m.tab.title(), m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableRendered))
	} else {
		b.WriteString(tableRendered)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar renders the summary statistics.
func (m HistoryModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sb strings.Builder
	sb.WriteString("Summary\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")

	if m.stats != nil {
		fmt.Fprintf(&sb, "Selections: %d\n", m.stats.Total)
		fmt.Fprintf(&sb, "Elements:   %d\n", m.stats.Distinct)
		if !m.stats.LastSelected.IsZero() {
			fmt.Fprintf(&sb, "Last: %s\n", m.stats.LastSelected.Format("Jan 02 15:04"))
		}
	}
	if len(m.top) > 0 {
		fmt.Fprintf(&sb, "Favourite: %s\n", m.top[0].Element)
	}

	return sidebarStyle.Render(sb.String())
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.loadErr != nil {
		return emptyStyle.Render("Could not read history:\n" + m.loadErr.Error())
	}
	if len(m.recent) == 0 {
		return emptyStyle.Render("No selections recorded yet.\nType an atomic number to start!")
	}

	return m.table.View()
}

// RunHistory runs the history browser until the user leaves it.
func RunHistory(source HistorySource, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(source, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
