package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/platform/gui"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var (
	flagAssets string
	flagScale  float64
)

var windowCmd = &cobra.Command{
	Use:   "window [variant]",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play. Sprite sheets are read from --assets
when the files exist there and drawn from simple shapes otherwise.

Examples:
  pacman window
  pacman window pacman_random --scale 1.5
  pacman window --assets ./assets`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagAssets, "assets", "assets", "Directory holding sprite sheets")
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size multiplier")
}

func runWindow(_ *cobra.Command, args []string) {
	gameID := pacman.IDChase
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fail("unknown variant %q\nRun 'pacman list' to see available variants.", gameID)
	}

	logger, closeLog := newLogger(true)
	defer closeLog()

	env, err := newEnv(logger)
	if err != nil {
		fail("%v", err)
	}
	game, err := registry.Create(gameID, env)
	if err != nil {
		fail("cannot create %s: %v", gameID, err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		logger.Warn("could not open history database", "err", err)
		store = nil
	}

	runErr := gui.Run(game, gui.Options{
		Config:    core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed},
		Store:     store,
		Player:    playerName(),
		Logger:    logger,
		AssetsDir: flagAssets,
		Scale:     flagScale,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fail("%v", runErr)
	}
}
