package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ninja/internal/storage"
)

// PickerKeyMap defines the key bindings for the map picker.
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Back}}
}

// DefaultPickerKeyMap returns default key bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc/q", "cancel"),
		),
	}
}

// PickerModel lists stored maps and lets the player choose one.
type PickerModel struct {
	entries  []storage.MapEntry
	table    table.Model
	help     help.Model
	keys     PickerKeyMap
	height   int
	selected string
	done     bool
}

// NewPickerModel creates a picker over the given entries.
func NewPickerModel(entries []storage.MapEntry, height int) PickerModel {
	m := PickerModel{
		entries: entries,
		help:    help.New(),
		keys:    DefaultPickerKeyMap(),
		height:  height,
	}
	m.table = m.createTable()
	return m
}

// createTable creates the table with one row per map.
func (m *PickerModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Name", Width: 20},
		{Title: "Tiles", Width: 7},
		{Title: "Decor", Width: 7},
		{Title: "Size", Width: 5},
		{Title: "Updated", Width: 14},
	}

	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{
			e.Name,
			fmt.Sprintf("%d", e.Tiles),
			fmt.Sprintf("%d", e.OffGrid),
			fmt.Sprintf("%d", e.TileSize),
			e.UpdatedAt.Format("Jan 02 15:04"),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-6)), // Leave room for title and help
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

// Init initializes the picker.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			if row := m.table.SelectedRow(); row != nil {
				m.selected = row[0]
			}
			m.done = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.table.SetHeight(max(3, m.height-6))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("STORED MAPS"))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	if len(m.entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		b.WriteString(boxStyle.Render(emptyStyle.Render("No stored maps.\nImport one with `ninja maps import`.")))
	} else {
		b.WriteString(boxStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Selected returns the chosen map name, or "" if the picker was cancelled.
func (m PickerModel) Selected() string {
	return m.selected
}

// RunPicker shows the stored maps and returns the chosen name, or "" when the
// player cancels.
func RunPicker(store *storage.Store, height int) (string, error) {
	entries, err := store.ListMaps()
	if err != nil {
		return "", err
	}

	p := tea.NewProgram(NewPickerModel(entries, height), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", err
	}
	m, ok := final.(PickerModel)
	if !ok {
		return "", nil
	}
	return m.Selected(), nil
}
