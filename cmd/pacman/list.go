package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available variants",
	Long:  `Shows every registered Pac-Man variant.`,
	Run:   runList,
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List builtin levels",
	Long: `Shows the levels embedded in the binary, in play order.
Custom levels are passed with --level and replace the builtin set.`,
	Run: runLevels,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config",
	Long: `Prints the embedded default config. Save it to
~/.pacman/configs/pacman.yaml or pass it with --config to customise the game.`,
	Run: runConfig,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'pacman play <id>' to play a variant.")
}

func runLevels(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(false)
	defer closeLog()

	cfg, err := config.LoadPacman(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	levels, err := maze.Builtin(cfg.Display.Cols(), cfg.Display.Rows())
	if err != nil {
		fail("%v", err)
	}
	logger.Debug("builtin levels loaded", "count", len(levels))

	fmt.Printf("  %-4s  %-12s  %-5s  %s\n", "#", "Name", "Dots", "Pellets")
	fmt.Printf("  %-4s  %-12s  %-5s  %s\n", "-", "----", "----", "-------")
	for i, lvl := range levels {
		fmt.Printf("  %-4d  %-12s  %-5d  %d\n", i+1, lvl.Name, lvl.Dots, lvl.Pellets)
	}
}

func runConfig(_ *cobra.Command, _ []string) {
	os.Stdout.Write(config.DefaultYAML())
}
