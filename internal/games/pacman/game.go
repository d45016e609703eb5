// Package pacman is the maze chase game: a player eats dots and pellets while
// ghosts pursue it. The Game aggregate owns the per-tick rules and the
// Menu / Playing / Paused / GameOver / Exit state machine.
package pacman

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/actor"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"
	"github.com/vovakirdan/tui-pacman/internal/highscore"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/render"
)

// Variant IDs.
const (
	IDChase  = "pacman"
	IDRandom = "pacman_random"
)

// ErrNoLevels is returned when a game is built without any level.
var ErrNoLevels = errors.New("pacman: no levels")

// Phase is the top-level game state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
	PhaseExit
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	case PhaseExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Options configures a Game.
type Options struct {
	ID     string
	Title  string
	Config config.PacmanConfig
	Levels []*maze.Level // played in order, then cycled
	Policy actor.Policy
	Scores *highscore.Book // nil keeps scores in memory
	Logger *log.Logger
}

// Game implements registry.Game for the maze chase.
type Game struct {
	id     string
	title  string
	cfg    config.PacmanConfig
	levels []*maze.Level
	policy actor.Policy
	scores *highscore.Book
	logger *log.Logger

	rng   *rand.Rand
	dt    float64
	tick  uint64
	clock float64 // simulated seconds, drives menu blinking
	phase Phase

	// Run state
	levelIndex   int
	level        int // 1-based
	grid         *maze.Map
	totalDots    int
	totalPellets int
	reachable    []core.Point // bonus candidate cells
	player       *actor.Player
	ghosts       []*actor.Ghost
	bonus        *actor.Bonus
	ghostSpeed   int
	score        int
	field        *maze.DistanceField

	// Game over
	qualifies bool
	name      []rune
	lastRank  int

	showFPS bool
	fps     int

	screen *render.ScreenCanvas
	tex    *textures
}

func init() {
	registry.Register(IDChase, "Pac-Man", factory(IDChase, "Pac-Man", func(cfg config.PacmanConfig) actor.Policy {
		return actor.ChasePolicy{Deviation: cfg.Ghosts.ChaseDeviation}
	}))
	registry.Register(IDRandom, "Pac-Man (Random Ghosts)", factory(IDRandom, "Pac-Man (Random Ghosts)", func(config.PacmanConfig) actor.Policy {
		return actor.RandomPolicy{}
	}))
}

// factory builds a variant from the registry environment: config file,
// difficulty preset and level files.
func factory(id, title string, policy func(config.PacmanConfig) actor.Policy) registry.Factory {
	return func(env registry.Env) (registry.Game, error) {
		logger := env.Log()

		cfg, err := config.LoadPacman(env.ConfigPath)
		if err != nil {
			return nil, err
		}
		preset, err := config.ParseDifficultyPreset(env.Difficulty)
		if err != nil {
			return nil, err
		}
		config.ApplyPacmanPreset(&cfg, preset)

		levels, err := LoadLevels(cfg, env.LevelFiles)
		if err != nil {
			return nil, err
		}
		logger.Debug("levels loaded", "count", len(levels), "difficulty", preset)

		return New(Options{
			ID:     id,
			Title:  title,
			Config: cfg,
			Levels: levels,
			Policy: policy(cfg),
			Scores: env.Scores,
			Logger: logger,
		})
	}
}

// LoadLevels returns the custom level files when given, the builtin set
// otherwise.
func LoadLevels(cfg config.PacmanConfig, files []string) ([]*maze.Level, error) {
	cols, rows := cfg.Display.Cols(), cfg.Display.Rows()
	if len(files) == 0 {
		return maze.Builtin(cols, rows)
	}
	levels := make([]*maze.Level, 0, len(files))
	for _, f := range files {
		lvl, err := maze.Load(f, cols, rows)
		if err != nil {
			return nil, err
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}

// New creates a game sitting in the menu.
func New(opts Options) (*Game, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	if len(opts.Levels) == 0 {
		return nil, ErrNoLevels
	}
	cols, rows := opts.Config.Display.Cols(), opts.Config.Display.Rows()
	for _, lvl := range opts.Levels {
		if lvl.Map.Cols() != cols || lvl.Map.Rows() != rows {
			return nil, fmt.Errorf("%w: level %s is %dx%d, display needs %dx%d",
				maze.ErrDimensions, lvl.Name, lvl.Map.Cols(), lvl.Map.Rows(), cols, rows)
		}
	}

	if opts.ID == "" {
		opts.ID = IDChase
	}
	if opts.Title == "" {
		opts.Title = "Pac-Man"
	}
	if opts.Policy == nil {
		opts.Policy = actor.ChasePolicy{Deviation: opts.Config.Ghosts.ChaseDeviation}
	}
	if opts.Scores == nil {
		opts.Scores = highscore.NewMemory()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	g := &Game{
		id:     opts.ID,
		title:  opts.Title,
		cfg:    opts.Config,
		levels: opts.Levels,
		policy: opts.Policy,
		scores: opts.Scores,
		logger: opts.Logger,
	}
	g.Reset(core.DefaultConfig())
	return g, nil
}

// ID returns the variant identifier.
func (g *Game) ID() string { return g.id }

// Title returns the display name.
func (g *Game) Title() string { return g.title }

// Reset returns to the menu with a fresh run prepared.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	rate := cfg.TickRate
	if rate <= 0 {
		rate = 60
	}
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.dt = 1 / float64(rate)
	g.tick = 0
	g.clock = 0
	g.phase = PhaseMenu
	g.showFPS = false
	g.lastRank = -1
	g.newRun()
}

// newRun resets score, lives and level progression.
func (g *Game) newRun() {
	g.score = 0
	g.level = 1
	g.levelIndex = 0
	g.ghostSpeed = g.cfg.Ghosts.Speed
	g.player = nil
	g.bonus = actor.NewBonus(actor.BonusTiming{
		Interval:   g.cfg.Bonus.Interval,
		Lifetime:   g.cfg.Bonus.Lifetime,
		BlinkAfter: g.cfg.Bonus.BlinkAfter,
	}, g.cfg.Bonus.FrameTime)
	g.qualifies = false
	g.name = g.name[:0]
	g.loadLevel()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.clock += g.dt

	if g.phase == PhaseExit {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionQuit) {
		g.phase = PhaseExit
		g.logger.Debug("quit requested", "score", g.score)
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionToggleFPS) {
		g.showFPS = !g.showFPS
	}
	if in.Has(core.ActionReset) {
		g.phase = PhaseMenu
		g.newRun()
		return core.StepResult{State: g.State()}
	}

	switch g.phase {
	case PhaseMenu:
		if in.Has(core.ActionConfirm) {
			g.newRun()
			g.phase = PhasePlaying
			g.logger.Debug("run started", "level", g.levels[g.levelIndex].Name)
		}
	case PhasePlaying:
		if in.Has(core.ActionPause) {
			g.phase = PhasePaused
			break
		}
		g.play(in)
	case PhasePaused:
		if in.Has(core.ActionPause) || in.Has(core.ActionConfirm) {
			g.phase = PhasePlaying
		}
	case PhaseGameOver:
		g.stepGameOver(in)
	}

	return core.StepResult{State: g.State()}
}

// stepGameOver handles name entry for a qualifying score, or waits for
// confirm otherwise.
func (g *Game) stepGameOver(in core.InputFrame) {
	if !g.qualifies {
		if in.Has(core.ActionConfirm) {
			g.phase = PhaseMenu
		}
		return
	}

	for _, r := range in.Text {
		if len(g.name) >= g.cfg.NameEntry.MaxLen {
			break
		}
		if !unicode.IsPrint(r) {
			continue
		}
		g.name = append(g.name, r)
	}
	if in.Has(core.ActionBackspace) && len(g.name) > 0 {
		g.name = g.name[:len(g.name)-1]
	}
	if in.Has(core.ActionConfirm) {
		name := highscore.SanitizeName(string(g.name), g.cfg.NameEntry.MaxLen)
		g.lastRank = g.scores.Submit(name, g.score)
		g.logger.Info("high score", "name", name, "score", g.score, "rank", g.lastRank+1)
		g.qualifies = false
		g.phase = PhaseMenu
	}
}

// State returns the status reported to the platform.
func (g *Game) State() core.GameState {
	lives := 0
	if g.player != nil {
		lives = g.player.Lives
	}
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		Lives:    lives,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhasePaused,
		Quit:     g.phase == PhaseExit,
	}
}

// Phase returns the current top-level state.
func (g *Game) Phase() Phase { return g.phase }

// AcceptsText reports whether the game is collecting a name.
func (g *Game) AcceptsText() bool {
	return g.phase == PhaseGameOver && g.qualifies
}

// SetFPS records the measured frame rate for the overlay.
func (g *Game) SetFPS(fps int) { g.fps = fps }

// ScreenSize is the terminal layout: two columns per tile plus a HUD row.
func (g *Game) ScreenSize() (cols, rows int) {
	return g.cfg.Display.Cols() * 2, g.cfg.Display.Rows() + 1
}

// LogicalSize is the window layout in pixels, field plus HUD row.
func (g *Game) LogicalSize() (w, h int) {
	return g.cfg.Display.Width, g.cfg.Display.Height + g.cfg.Display.TileSize
}

// Scores returns the high-score book the game submits to.
func (g *Game) Scores() *highscore.Book { return g.scores }
