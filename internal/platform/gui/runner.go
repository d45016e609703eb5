package gui

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/render"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

// Options configures a window run.
type Options struct {
	Config    core.RuntimeConfig
	Store     *storage.Store // play history, may be nil
	Player    string
	Logger    *log.Logger
	AssetsDir string  // sprite sheets, optional
	Scale     float64 // window size multiplier
}

// windowGame is what the window backend needs from a game.
type windowGame interface {
	registry.Game
	registry.Drawer
}

// assetLoader is implemented by games that can preload their textures.
type assetLoader interface {
	LoadAssets(c render.Canvas) error
}

// Runner implements ebiten.Game around a registry game. Ebitengine calls
// Update at its own rate; a core.FixedStep turns the real time between calls
// into simulation ticks.
type Runner struct {
	game    windowGame
	canvas  *Canvas
	opts    Options
	keys    keyState
	now     func() time.Time
	last    time.Time
	clock   *core.FixedStep
	pending core.InputFrame
	held    core.InputFrame
	history *storage.Recorder
	state   core.GameState
	width   int
	height  int
}

// NewRunner wraps game for the window backend.
func NewRunner(game registry.Game, opts Options) (*Runner, error) {
	wg, ok := game.(windowGame)
	if !ok {
		return nil, fmt.Errorf("gui: %s cannot draw to a window", game.ID())
	}
	if opts.Config.TickRate <= 0 {
		opts.Config.TickRate = 60
	}
	if opts.Config.Seed == 0 {
		opts.Config.Seed = time.Now().UnixNano()
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	w, h := opts.Config.ScreenW, opts.Config.ScreenH
	if s, ok := game.(registry.Sized); ok {
		w, h = s.LogicalSize()
	}

	r := &Runner{
		game:    wg,
		canvas:  NewCanvas(opts.AssetsDir),
		opts:    opts,
		keys:    ebitenKeys{},
		now:     time.Now,
		clock:   core.NewFixedStep(opts.Config.TickRate),
		pending: core.NewInputFrame(),
		history: storage.NewRecorder(opts.Store, game.ID(), opts.Player, opts.Logger),
		width:   w,
		height:  h,
	}
	wg.Reset(opts.Config)
	return r, nil
}

func (r *Runner) acceptsText() bool {
	tr, ok := r.game.(registry.TextReceiver)
	return ok && tr.AcceptsText()
}

// Update implements ebiten.Game.
func (r *Runner) Update() error {
	in := poll(r.keys, r.acceptsText())
	merge(&r.pending, in)
	r.held = in

	now := r.now()
	var elapsed time.Duration
	if !r.last.IsZero() {
		elapsed = now.Sub(r.last)
	}
	r.last = now

	n := r.clock.Advance(elapsed)
	for i := 0; i < n; i++ {
		step := core.NewInputFrame()
		if i == 0 {
			step = r.pending.Clone()
			r.pending.Clear()
		}
		for a, on := range r.held.Held {
			if on {
				step.Hold(a)
			}
		}

		r.state = r.game.Step(step).State
		r.history.Observe(r.state)
		if r.state.Quit {
			return ebiten.Termination
		}
	}
	return nil
}

// Draw implements ebiten.Game.
func (r *Runner) Draw(screen *ebiten.Image) {
	if f, ok := r.game.(registry.FPSReceiver); ok {
		f.SetFPS(int(ebiten.ActualFPS() + 0.5))
	}
	r.canvas.SetTarget(screen)
	r.game.Draw(r.canvas)
}

// Layout implements ebiten.Game.
func (r *Runner) Layout(int, int) (int, int) {
	return r.width, r.height
}

// State returns the last reported game state.
func (r *Runner) State() core.GameState {
	return r.state
}

// Run opens a window and plays game until it quits or the window closes.
func Run(game registry.Game, opts Options) error {
	r, err := NewRunner(game, opts)
	if err != nil {
		return err
	}
	if l, ok := game.(assetLoader); ok {
		if err := l.LoadAssets(r.canvas); err != nil {
			return fmt.Errorf("gui: %w", err)
		}
	}

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(int(float64(r.width)*r.opts.Scale), int(float64(r.height)*r.opts.Scale))
	ebiten.SetTPS(r.opts.Config.TickRate)

	r.opts.Logger.Info("window opened", "game", game.ID(), "width", r.width, "height", r.height)
	if err := ebiten.RunGame(r); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
