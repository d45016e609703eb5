package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Play in the terminal. Without a variant a menu lists every variant
with its best recorded score.

Controls:
  Arrows/WASD/HJKL - Move
  Enter            - Start / confirm name
  P/Space          - Pause
  R                - Reset
  F                - Toggle FPS counter
  Q/Esc/Ctrl+C     - Quit
  Ctrl+S           - Save a text screenshot

Difficulty options:
  easy   - More lives, slower ghosts, longer power time
  normal - Config values as they are
  hard   - Fewer lives, faster ghosts, shorter power time
  fixed  - Ghosts never speed up between levels

Examples:
  pacman play
  pacman play pacman
  pacman play pacman_random --difficulty easy
  pacman play --level ./maze1.txt --level ./maze2.txt`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	logger, closeLog := newLogger(true)
	defer closeLog()

	env, err := newEnv(logger)
	if err != nil {
		fail("%v", err)
	}

	// Open history storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		logger.Warn("could not open history database", "err", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if len(args) == 1 {
		if !registry.Exists(args[0]) {
			fail("unknown variant %q\nRun 'pacman list' to see available variants.", args[0])
		}
		if err := playOne(args[0], env, store, cfg, logger); err != nil {
			fail("%v", err)
		}
		return
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fail("%v", err)
		}
		cfg = menuResult.Config

		if menuResult.Quit || (menuResult.GameID == "" && !menuResult.WantsScoreboard) {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		if err := playOne(menuResult.GameID, env, store, cfg, logger); err != nil {
			fail("%v", err)
		}
	}
}

// playOne builds a variant and runs it until the player quits.
func playOne(gameID string, env registry.Env, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	game, err := registry.Create(gameID, env)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", gameID, err)
	}

	if s, ok := game.(registry.Sized); ok {
		cols, rows := s.ScreenSize()
		if cfg.ScreenW < cols || cfg.ScreenH < rows {
			logger.Warn("terminal smaller than the field", "have", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH),
				"need", fmt.Sprintf("%dx%d", cols, rows))
			fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, %s needs %dx%d\n", cfg.ScreenW, cfg.ScreenH, gameID, cols, rows)
		}
	}

	logger.Info("game started", "game", gameID, "seed", cfg.Seed, "tick_rate", cfg.TickRate)
	err = tui.Run(game, tui.Options{
		Config: cfg,
		Store:  store,
		Player: playerName(),
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a
// terminal.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}
