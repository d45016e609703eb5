package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg PacmanConfig
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))
	assert.Equal(t, DefaultPacmanConfig(), cfg)
}

func TestDefaultsValidate(t *testing.T) {
	cfg := DefaultPacmanConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 20, cfg.Display.Cols())
	assert.Equal(t, 15, cfg.Display.Rows())
}

// Every shipped agent speed must divide the tile size, otherwise an agent
// would step past its target cell.
func TestShippedSpeedsDivideTileSize(t *testing.T) {
	for _, preset := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed} {
		t.Run(string(preset), func(t *testing.T) {
			cfg := DefaultPacmanConfig()
			ApplyPacmanPreset(&cfg, preset)
			tile := cfg.Display.TileSize

			assert.Zero(t, tile%cfg.Player.Speed, "player speed %d", cfg.Player.Speed)

			speed := cfg.Ghosts.Speed
			for level := 0; level < 10; level++ {
				assert.Zero(t, tile%speed, "ghost speed %d at level %d", speed, level)
				speed = NextGhostSpeed(tile, speed, cfg.Ghosts.SpeedIncrement, cfg.Ghosts.MaxSpeed)
			}
			assert.Zero(t, tile%cfg.Ghosts.MaxSpeed)
		})
	}
}

func TestValidateRejectsBadSpeed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PacmanConfig)
	}{
		{"player speed 3", func(c *PacmanConfig) { c.Player.Speed = 3 }},
		{"ghost speed 0", func(c *PacmanConfig) { c.Ghosts.Speed = 0 }},
		{"ghost max speed 5", func(c *PacmanConfig) { c.Ghosts.MaxSpeed = 5 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPacmanConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidSpeed)
		})
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PacmanConfig)
	}{
		{"display not tile aligned", func(c *PacmanConfig) { c.Display.Width = 650 }},
		{"zero tile", func(c *PacmanConfig) { c.Display.TileSize = 0 }},
		{"no lives", func(c *PacmanConfig) { c.Player.Lives = 0 }},
		{"deviation above one", func(c *PacmanConfig) { c.Ghosts.ChaseDeviation = 1.5 }},
		{"zero capture distance", func(c *PacmanConfig) { c.Collision.CaptureDistance = 0 }},
		{"blink after lifetime", func(c *PacmanConfig) { c.Bonus.BlinkAfter = 100 }},
		{"max below base speed", func(c *PacmanConfig) { c.Ghosts.Speed = 2; c.Ghosts.MaxSpeed = 1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPacmanConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestNextGhostSpeed(t *testing.T) {
	tests := []struct {
		current, increment, maxSpeed, expected int
	}{
		{1, 1, 2, 2},
		{2, 1, 2, 2},
		{2, 1, 4, 4}, // 3 does not divide 32
		{4, 1, 8, 8},
		{1, 0, 8, 1},
		{8, 1, 16, 16},
	}

	for _, tc := range tests {
		got := NextGhostSpeed(32, tc.current, tc.increment, tc.maxSpeed)
		assert.Equal(t, tc.expected, got, "NextGhostSpeed(32, %d, %d, %d)", tc.current, tc.increment, tc.maxSpeed)
	}
}

func TestLoadPacmanCustomPathKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player:\n  lives: 7\n"), 0o600))

	cfg, err := LoadPacman(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Player.Lives)
	assert.Equal(t, 2, cfg.Player.Speed)
	assert.Equal(t, 640, cfg.Display.Width)
}

func TestLoadPacmanCustomPathErrors(t *testing.T) {
	_, err := LoadPacman(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player:\n  speed: 3\n"), 0o600))
	_, err = LoadPacman(path)
	assert.ErrorIs(t, err, ErrInvalidSpeed)
}

func TestLoadPacmanSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := LoadPacman("")
	require.NoError(t, err)
	assert.Equal(t, DefaultPacmanConfig(), cfg)

	dir := filepath.Join(home, ".pacman", "configs")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pacman.yaml"), []byte("ghosts:\n  count: 2\n"), 0o600))

	cfg, err = LoadPacman("")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Ghosts.Count)
}

func TestParseDifficultyPreset(t *testing.T) {
	p, err := ParseDifficultyPreset("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyNormal, p)

	p, err = ParseDifficultyPreset("hard")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, p)

	_, err = ParseDifficultyPreset("nightmare")
	assert.Error(t, err)
}

func TestApplyPresets(t *testing.T) {
	base := DefaultPacmanConfig()

	easy := base
	ApplyPacmanPreset(&easy, DifficultyEasy)
	assert.Greater(t, easy.Player.Lives, base.Player.Lives)
	assert.Greater(t, easy.Player.PowerDuration, base.Player.PowerDuration)

	hard := base
	ApplyPacmanPreset(&hard, DifficultyHard)
	assert.Less(t, hard.Player.Lives, base.Player.Lives)
	assert.Equal(t, 2, hard.Ghosts.Speed)

	fixed := base
	ApplyPacmanPreset(&fixed, DifficultyFixed)
	assert.False(t, fixed.Difficulty.Progression)

	normal := base
	ApplyPacmanPreset(&normal, DifficultyNormal)
	assert.Equal(t, base, normal)
}
