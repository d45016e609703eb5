package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/highscore"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.pacman/host_key.
	HostKeyPath string

	// DBPath is the path to the play history database.
	DBPath string

	// ScoresPath is the high-score file shared by every session.
	ScoresPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate and FPS are passed to each session's game model.
	TickRate int
	FPS      int

	// Env is used to build games. Its Scores and Logger are filled in by
	// the server when empty.
	Env registry.Env
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.pacman/history.db",
		ScoresPath:  "~/.pacman/highscores.txt",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
		FPS:         30,
	}
}

// SSHServer wraps a Wish SSH server. Every session plays against the same
// high-score book and history store.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "pacman-ssh",
		})
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		// Continue without history
	}

	if cfg.Env.Logger == nil {
		cfg.Env.Logger = logger
	}
	if cfg.Env.Scores == nil {
		scoresPath, err := config.ExpandHome(cfg.ScoresPath)
		if err != nil {
			return nil, err
		}
		cfg.Env.Scores = highscore.Open(scoresPath, logger)
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".pacman", "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	model := NewSessionModel(SessionOptions{
		Store:    s.store,
		Env:      s.config.Env,
		Config:   cfg,
		FPS:      s.config.FPS,
		Username: sshSession.User(),
		Logger:   s.logger.With("user", sshSession.User()),
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionOptions configures a SessionModel.
type SessionOptions struct {
	Store    *storage.Store
	Env      registry.Env
	Config   core.RuntimeConfig
	FPS      int
	Username string
	Logger   *log.Logger
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenHistory
)

// SessionModel manages the full session flow: menu -> game -> menu, with
// the history viewer reachable from the menu.
type SessionModel struct {
	opts     SessionOptions
	screen   sessionScreen
	menu     MenuModel
	game     Model
	history  ScoreboardModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions) SessionModel {
	if opts.Logger == nil {
		opts.Logger = opts.Env.Log()
	}
	return SessionModel{
		opts: opts,
		menu: NewMenuModel(opts.Store, opts.Config),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Config.ScreenW = wsm.Width
		m.opts.Config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenHistory:
		return m.updateHistory(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		m.history = NewScoreboardModel(m.opts.Store, m.opts.Config.ScreenW, m.opts.Config.ScreenH)
		m.screen = screenHistory
		return m, m.history.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		game, err := registry.Create(selected.GameID, m.opts.Env)
		if err != nil {
			m.opts.Logger.Error("cannot create game", "game", selected.GameID, "err", err)
			m.menu = NewMenuModel(m.opts.Store, m.opts.Config)
			return m, nil
		}

		cfg := m.menu.Config()
		cfg.Seed = time.Now().UnixNano()
		m.game = NewModel(game, Options{
			Config:   cfg,
			FPS:      m.opts.FPS,
			Store:    m.opts.Store,
			Player:   m.opts.Username,
			Logger:   m.opts.Logger,
			Embedded: true,
		})
		m.game.width, m.game.height = cfg.ScreenW, cfg.ScreenH
		m.screen = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = gameModel
	}

	if m.game.Done() {
		return m.backToMenu()
	}
	return m, cmd
}

// updateHistory handles updates when the history viewer is open.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.history.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.history = sb
	}

	switch {
	case m.history.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.history.IsGoingBack():
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.opts.Store, m.opts.Config)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenHistory:
		return m.history.View()
	default:
		return m.menu.View()
	}
}
