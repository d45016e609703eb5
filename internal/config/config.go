// Package config provides YAML-based configuration for the pacman game:
// embedded defaults, a file search order, difficulty presets and validation.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidSpeed is returned when an agent speed does not evenly divide the
// tile size. Such an agent would step past its target cell.
var ErrInvalidSpeed = errors.New("config: speed must evenly divide tile size")

// ErrInvalid is returned for any other out-of-range value.
var ErrInvalid = errors.New("config: invalid value")

// PacmanConfig contains all tunables of the game.
type PacmanConfig struct {
	Display    DisplayConfig    `yaml:"display"`
	Player     PlayerConfig     `yaml:"player"`
	Ghosts     GhostConfig      `yaml:"ghosts"`
	Bonus      BonusConfig      `yaml:"bonus"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Collision  CollisionConfig  `yaml:"collision"`
	NameEntry  NameEntryConfig  `yaml:"name_entry"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// DisplayConfig sizes the play field. The grid is Width/TileSize columns by
// Height/TileSize rows.
type DisplayConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TileSize int `yaml:"tile_size"`
}

// Cols returns the number of grid columns.
func (d DisplayConfig) Cols() int {
	return d.Width / d.TileSize
}

// Rows returns the number of grid rows.
func (d DisplayConfig) Rows() int {
	return d.Height / d.TileSize
}

// PlayerConfig tunes the player agent. Durations are in seconds.
type PlayerConfig struct {
	Speed         int     `yaml:"speed"` // pixels per tick
	Lives         int     `yaml:"lives"`
	PowerDuration float64 `yaml:"power_duration"`
	FrameTime     float64 `yaml:"frame_time"`
}

// GhostConfig tunes the enemy agents. Durations are in seconds.
type GhostConfig struct {
	Count           int     `yaml:"count"`
	Speed           int     `yaml:"speed"`
	MaxSpeed        int     `yaml:"max_speed"`
	SpeedIncrement  int     `yaml:"speed_increment"` // added on every level clear
	ReleaseInterval float64 `yaml:"release_interval"`
	RespawnDelay    float64 `yaml:"respawn_delay"`
	ChaseDeviation  float64 `yaml:"chase_deviation"` // probability of a random turn
	FrameTime       float64 `yaml:"frame_time"`
}

// BonusConfig times the bonus item. Durations are in seconds.
type BonusConfig struct {
	Interval   float64 `yaml:"interval"`    // hidden time before it appears
	Lifetime   float64 `yaml:"lifetime"`    // visible time before it moves away
	BlinkAfter float64 `yaml:"blink_after"` // visible time before blinking starts
	FrameTime  float64 `yaml:"frame_time"`
}

// ScoringConfig holds the point values.
type ScoringConfig struct {
	Dot         int `yaml:"dot"`
	PowerPellet int `yaml:"power_pellet"`
	Ghost       int `yaml:"ghost"` // multiplied by the consecutive capture count
	Bonus       int `yaml:"bonus"`
	LevelClear  int `yaml:"level_clear"`
}

// CollisionConfig holds proximity thresholds in pixels.
type CollisionConfig struct {
	CaptureDistance int `yaml:"capture_distance"`
}

// NameEntryConfig bounds the game-over name input.
type NameEntryConfig struct {
	MaxLen int `yaml:"max_len"`
}

// DifficultyConfig controls progression between levels.
type DifficultyConfig struct {
	Progression bool `yaml:"progression"` // raise ghost speed on level clear
}

// Validate checks the numeric invariants the simulation relies on.
func (c PacmanConfig) Validate() error {
	d := c.Display
	if d.TileSize <= 0 {
		return fmt.Errorf("%w: tile_size %d", ErrInvalid, d.TileSize)
	}
	if d.Width <= 0 || d.Height <= 0 || d.Width%d.TileSize != 0 || d.Height%d.TileSize != 0 {
		return fmt.Errorf("%w: display %dx%d is not a multiple of tile_size %d",
			ErrInvalid, d.Width, d.Height, d.TileSize)
	}

	speeds := []struct {
		name  string
		value int
	}{
		{"player.speed", c.Player.Speed},
		{"ghosts.speed", c.Ghosts.Speed},
		{"ghosts.max_speed", c.Ghosts.MaxSpeed},
	}
	for _, s := range speeds {
		if s.value <= 0 || d.TileSize%s.value != 0 {
			return fmt.Errorf("%w: %s = %d, tile_size = %d", ErrInvalidSpeed, s.name, s.value, d.TileSize)
		}
	}
	if c.Ghosts.MaxSpeed < c.Ghosts.Speed {
		return fmt.Errorf("%w: ghosts.max_speed %d below ghosts.speed %d", ErrInvalid, c.Ghosts.MaxSpeed, c.Ghosts.Speed)
	}

	switch {
	case c.Player.Lives <= 0:
		return fmt.Errorf("%w: player.lives %d", ErrInvalid, c.Player.Lives)
	case c.Ghosts.Count < 0:
		return fmt.Errorf("%w: ghosts.count %d", ErrInvalid, c.Ghosts.Count)
	case c.Ghosts.ChaseDeviation < 0 || c.Ghosts.ChaseDeviation > 1:
		return fmt.Errorf("%w: ghosts.chase_deviation %v", ErrInvalid, c.Ghosts.ChaseDeviation)
	case c.Collision.CaptureDistance <= 0:
		return fmt.Errorf("%w: collision.capture_distance %d", ErrInvalid, c.Collision.CaptureDistance)
	case c.NameEntry.MaxLen <= 0:
		return fmt.Errorf("%w: name_entry.max_len %d", ErrInvalid, c.NameEntry.MaxLen)
	case c.Bonus.BlinkAfter > c.Bonus.Lifetime:
		return fmt.Errorf("%w: bonus.blink_after %v exceeds lifetime %v", ErrInvalid, c.Bonus.BlinkAfter, c.Bonus.Lifetime)
	}
	return nil
}
