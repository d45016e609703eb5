package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// DefaultPacmanConfig returns the built-in configuration. It mirrors
// defaults/pacman.yaml and is the fallback when that cannot be parsed.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Display: DisplayConfig{
			Width:    640,
			Height:   480,
			TileSize: 32,
		},
		Player: PlayerConfig{
			Speed:         2,
			Lives:         3,
			PowerDuration: 8.0,
			FrameTime:     0.08,
		},
		Ghosts: GhostConfig{
			Count:           4,
			Speed:           1,
			MaxSpeed:        2,
			SpeedIncrement:  1,
			ReleaseInterval: 3.0,
			RespawnDelay:    5.0,
			ChaseDeviation:  0.05,
			FrameTime:       0.2,
		},
		Bonus: BonusConfig{
			Interval:   10.0,
			Lifetime:   6.67,
			BlinkAfter: 5.83,
			FrameTime:  0.1,
		},
		Scoring: ScoringConfig{
			Dot:         10,
			PowerPellet: 50,
			Ghost:       100,
			Bonus:       500,
			LevelClear:  1000,
		},
		Collision: CollisionConfig{
			CaptureDistance: 16,
		},
		NameEntry: NameEntryConfig{
			MaxLen: 10,
		},
		Difficulty: DifficultyConfig{
			Progression: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPacmanYAML
}
