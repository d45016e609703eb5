package config

import "fmt"

// DifficultyPreset is a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // normal values, no speed-up between levels
)

// ParseDifficultyPreset validates a preset name. Empty means normal.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPacmanPreset modifies cfg for a difficulty preset. Normal leaves the
// loaded values untouched.
func ApplyPacmanPreset(cfg *PacmanConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives += 2
		cfg.Player.PowerDuration *= 1.5
		cfg.Ghosts.ChaseDeviation = max(cfg.Ghosts.ChaseDeviation, 0.2)
		cfg.Difficulty.Progression = true
	case DifficultyHard:
		cfg.Player.Lives = max(1, cfg.Player.Lives-1)
		cfg.Player.PowerDuration *= 0.6
		cfg.Ghosts.ChaseDeviation /= 2
		cfg.Ghosts.Speed = NextGhostSpeed(cfg.Display.TileSize, cfg.Ghosts.Speed, cfg.Ghosts.SpeedIncrement, cfg.Ghosts.MaxSpeed)
		cfg.Difficulty.Progression = true
	case DifficultyFixed:
		cfg.Difficulty.Progression = false
	}
}

// NextGhostSpeed returns the speed after one level-clear increment. Only
// divisors of the tile size are valid speeds, so the result is the smallest
// divisor at or above current+increment, or current when that would exceed
// maxSpeed.
func NextGhostSpeed(tileSize, current, increment, maxSpeed int) int {
	if increment <= 0 {
		return current
	}
	for s := current + increment; s <= maxSpeed; s++ {
		if tileSize%s == 0 {
			return s
		}
	}
	return current
}
