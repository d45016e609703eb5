// pacman plays Pac-Man in the terminal, in a window or over SSH.
//
// Usage:
//
//	pacman list              - List available variants
//	pacman play [variant]    - Play in the terminal (menu when no variant)
//	pacman window [variant]  - Play in a desktop window
//	pacman serve             - Start SSH server for remote play
//	pacman scores            - Show the high-score table
//	pacman history [variant] - Show recorded runs
//	pacman levels            - List builtin levels
//	pacman config            - Print the default config
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--scores <path>    - High-score file (default: ~/.pacman/highscores.txt)
//	--db <path>        - History database (default: ~/.pacman/history.db)
//	--config <path>    - Custom config YAML
//	--difficulty <p>   - easy, normal, hard or fixed
//	--level <file>     - Custom level file, repeatable
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/highscore"
	"github.com/vovakirdan/tui-pacman/internal/registry"

	// Import games to register them
	_ "github.com/vovakirdan/tui-pacman/internal/games/pacman"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagScores     string
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevels     []string
	flagLogPath    string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacman",
	Short: "Pac-Man in your terminal",
	Long: `Pac-Man for the terminal, a desktop window or an SSH server.

Available commands:
  list     - Show all variants
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View the high-score table
  history  - View recorded runs
  levels   - List builtin levels
  config   - Print the default config

Examples:
  pacman play
  pacman play pacman_random --difficulty hard
  pacman window --level ./mylevel.txt
  pacman serve --ssh :2222
  pacman scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (simulation steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagScores, "scores", "~/.pacman/highscores.txt", "Path to the high-score file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pacman/history.db", "Path to the history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringArrayVar(&flagLevels, "level", nil, "Custom level file (repeatable, played in order)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.pacman/pacman.log", "Log file for play and window")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger returns a logger writing to stderr, or to the --log file when
// the command owns the terminal. The returned func closes the file.
func newLogger(toFile bool) (*log.Logger, func()) {
	var w io.Writer = os.Stderr
	closeFn := func() {}

	if toFile {
		w = io.Discard
		if path, err := config.ExpandHome(flagLogPath); err == nil && path != "" {
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
				if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
					w = f
					closeFn = func() { f.Close() }
				}
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pacman",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn
}

// newEnv builds the factory environment from the global flags.
func newEnv(logger *log.Logger) (registry.Env, error) {
	scoresPath, err := config.ExpandHome(flagScores)
	if err != nil {
		return registry.Env{}, err
	}
	return registry.Env{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		LevelFiles: flagLevels,
		Scores:     highscore.Open(scoresPath, logger),
		Logger:     logger,
	}, nil
}

// playerName is the name recorded in the history for local runs.
func playerName() string {
	for _, v := range []string{"USER", "USERNAME"} {
		if name := os.Getenv(v); name != "" {
			return name
		}
	}
	return "player"
}

// fail prints an error and exits with status 1.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
