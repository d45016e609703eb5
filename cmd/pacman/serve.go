package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeFPS    int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Pac-Man SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the variant menu.
All users share the server's high-score table and history.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.pacman/host_key

Examples:
  pacman serve                           # Listen on :23234 with auto-generated key
  pacman serve --ssh :2222               # Listen on port 2222
  pacman serve --host-key ./my_host_key  # Use specific host key
  pacman serve --db ./history.db         # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(defaults.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagServeFPS, "render-fps", defaults.FPS, "Frames sent to each session per second")
}

func runServe(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(false)
	defer closeLog()
	logger.SetPrefix("pacman-ssh")

	env, err := newEnv(logger)
	if err != nil {
		fail("%v", err)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		ScoresPath:  flagScores,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		FPS:         flagServeFPS,
		Env:         env,
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		fail("creating server: %v", err)
	}

	logger.Info("connect with ssh", "address", server.Addr())
	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}
