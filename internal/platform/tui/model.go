package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

// Options configures a terminal game model.
type Options struct {
	Config core.RuntimeConfig // TickRate drives the simulation
	FPS    int                // frames rendered per second
	Store  *storage.Store     // play history, may be nil
	Player string             // name recorded in the history
	Logger *log.Logger

	// Embedded keeps the program running when the game quits, so a parent
	// model can take over.
	Embedded bool
}

// Model is the Bubble Tea model for running a game.
//
// Frames arrive at the render rate; a core.FixedStep turns the time between
// them into zero or more simulation ticks so the game speed does not depend
// on the frame rate.
type Model struct {
	game    registry.Game
	screen  *core.Screen
	opts    Options
	keys    *KeyMapper
	help    help.Model
	pending core.InputFrame
	clock   *core.FixedStep
	fps     *core.FrameCounter
	last    time.Time

	width  int
	height int

	history   *storage.Recorder
	gameState core.GameState
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	if opts.Config.TickRate <= 0 {
		opts.Config.TickRate = 60
	}
	// Use time-based seed if not specified
	if opts.Config.Seed == 0 {
		opts.Config.Seed = time.Now().UnixNano()
	}
	if opts.FPS <= 0 {
		opts.FPS = opts.Config.TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	cols, rows := opts.Config.ScreenW, opts.Config.ScreenH
	if s, ok := game.(registry.Sized); ok {
		cols, rows = s.ScreenSize()
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:    game,
		screen:  core.NewScreen(cols, rows),
		opts:    opts,
		keys:    NewKeyMapper(),
		help:    h,
		pending: core.NewInputFrame(),
		clock:   core.NewFixedStep(opts.Config.TickRate),
		fps:     &core.FrameCounter{},
		history: storage.NewRecorder(opts.Store, game.ID(), opts.Player, opts.Logger),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.opts.Config)
	return frameCmd(m.opts.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey records keyboard input for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	m.keys.MapKeyToFrame(msg, &m.pending, m.acceptsText())
	return m, nil
}

func (m Model) acceptsText() bool {
	tr, ok := m.game.(registry.TextReceiver)
	return ok && tr.AcceptsText()
}

// handleFrame runs the ticks that are due and schedules the next frame.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed time.Duration
	if !m.last.IsZero() {
		elapsed = now.Sub(m.last)
	}
	m.last = now

	// Directions are not held while the game takes typed text.
	if m.acceptsText() {
		m.keys.Release()
	}

	n := m.clock.Advance(elapsed)
	for i := 0; i < n; i++ {
		// Edge actions and typed text belong to the first tick only.
		in := core.NewInputFrame()
		if i == 0 {
			in = m.pending.Clone()
			m.pending.Clear()
		}
		m.keys.ApplyHeld(&in)

		result := m.game.Step(in)
		m.gameState = result.State
		m.history.Observe(m.gameState)

		if m.gameState.Quit {
			m.quitting = true
			if m.opts.Embedded {
				return m, nil
			}
			return m, tea.Quit
		}
	}
	m.keys.Elapse(elapsed)

	m.fps.Frame(elapsed)
	if r, ok := m.game.(registry.FPSReceiver); ok {
		r.SetFPS(m.fps.FPS())
	}

	return m, frameCmd(m.opts.FPS)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".pacman", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.opts.Logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	content := lipgloss.JoinVertical(lipgloss.Center,
		RenderScreen(m.screen),
		helpStyle.Render(m.help.View(m.keys.Keys())),
	)

	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Done reports whether the game has quit.
func (m Model) Done() bool {
	return m.quitting
}

// State returns the last reported game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
