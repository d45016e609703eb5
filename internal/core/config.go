package core

// RuntimeConfig is passed to games on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal) or pixels (window)
	ScreenH  int   // Screen height
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the platform pick one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the status a game reports to the platform after each tick.
type GameState struct {
	Score    int
	Level    int
	Lives    int
	GameOver bool // the run has ended (name entry or waiting for confirm)
	Paused   bool
	Quit     bool // the game asked the platform to stop
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
