package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ninja/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Jump       key.Binding
	Dash       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Dash, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump, k.Dash},
		{k.Pause, k.Restart, k.Screenshot},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys("up", "w", " ", "k"),
			key.WithHelp("↑/space", "jump"),
		),
		Dash: key.NewBinding(
			key.WithKeys("x", "j"),
			key.WithHelp("x", "dash"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Direction is a held horizontal direction reported by MapKey.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// MapKey translates a key message to a game action or a held direction.
// Keys the game does not handle return (ActionNone, DirNone).
func (k KeyMap) MapKey(msg tea.KeyMsg) (core.Action, Direction) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, DirNone
	case key.Matches(msg, k.Left):
		return core.ActionNone, DirLeft
	case key.Matches(msg, k.Right):
		return core.ActionNone, DirRight
	case key.Matches(msg, k.Jump):
		return core.ActionJump, DirNone
	case key.Matches(msg, k.Dash):
		return core.ActionDash, DirNone
	case key.Matches(msg, k.Pause):
		return core.ActionPause, DirNone
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, DirNone
	}
	return core.ActionNone, DirNone
}
