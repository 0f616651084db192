package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ninja/internal/core"
	"github.com/vovakirdan/ninja/internal/gfx"
	"github.com/vovakirdan/ninja/internal/registry"
)

// flashTicks is how long a footer message stays up.
const flashTicks = 120

// Settings configures a terminal session.
type Settings struct {
	Runtime   core.RuntimeConfig
	HoldTicks int                // Ticks a direction key stays held
	Renderer  *lipgloss.Renderer // nil uses the process default
	Logger    *log.Logger        // nil discards
}

// Model is the Bubble Tea model for running the game in a terminal.
type Model struct {
	game      registry.Game
	canvas    *gfx.Canvas
	screen    *core.Screen
	presenter *Presenter
	keys      KeyMap
	help      help.Model
	hold      *HoldTracker
	input     core.InputFrame
	config    core.RuntimeConfig
	state     core.GameState
	log       *log.Logger
	footStyle lipgloss.Style
	flash     string
	flashLeft int
	width     int
	height    int
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, s Settings) Model {
	cfg := s.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := s.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	presenter := NewPresenter(s.Renderer)

	w, h := game.Resolution()
	return Model{
		game:      game,
		canvas:    gfx.NewCanvas(w, h),
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		presenter: presenter,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		hold:      NewHoldTracker(s.HoldTicks),
		input:     core.NewInputFrame(),
		config:    cfg,
		log:       logger,
		footStyle: presenter.renderer.NewStyle().Foreground(lipgloss.Color("241")),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The logical resolution is fixed, so a resize only changes scaling.
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, dir := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if dir != DirNone {
		m.hold.Press(dir)
	}
	if action == core.ActionRestart {
		m.hold.Release()
	}
	if action != core.ActionNone {
		m.input.Set(action)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.hold.Apply(&m.input)
	result := m.game.Step(m.input)
	m.state = result.State

	// Clear input for next frame
	m.input.Clear()
	m.hold.Tick()

	if m.flashLeft > 0 {
		m.flashLeft--
		if m.flashLeft == 0 {
			m.flash = ""
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current frame as a PNG.
func (m *Model) saveScreenshot() {
	m.game.Render(m.canvas)
	path, err := SaveScreenshot(ScreenshotDir(), m.game.ID(), m.canvas.Image, time.Now())
	if err != nil {
		m.log.Warn("screenshot failed", "err", err)
		m.flash = "screenshot failed"
	} else {
		m.log.Info("screenshot saved", "path", path)
		m.flash = "saved " + path
	}
	m.flashLeft = flashTicks
}

func (m Model) footer() string {
	status := fmt.Sprintf("%s  tick %d  %s", m.game.Title(), m.state.Tick, m.state.Action)
	if m.state.Respawns > 0 {
		status += fmt.Sprintf("  falls %d", m.state.Respawns)
	}
	if m.flash != "" {
		status += "  " + m.flash
	}
	return m.footStyle.Render(status) + "\n" + m.help.View(m.keys)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	foot := m.footer()
	m.screen.Resize(m.width, max(0, m.height-lipgloss.Height(foot)))

	m.game.Render(m.canvas)
	m.presenter.Draw(m.canvas.Image, m.screen)
	m.presenter.DrawOverlay(m.screen, m.state)
	return m.presenter.Render(m.screen) + "\n" + foot
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, s Settings) error {
	model := NewModel(game, s)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
