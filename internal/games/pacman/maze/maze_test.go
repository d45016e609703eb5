package maze

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

func TestIsAccessibleTable(t *testing.T) {
	accessible := map[Tile]bool{
		TileSpace:       true,
		TileDot:         true,
		TilePowerPellet: true,
	}

	for _, tile := range Tiles() {
		t.Run(tile.String(), func(t *testing.T) {
			expected := accessible[tile]
			assert.Equal(t, expected, IsAccessible(tile))
			// same answer on every call
			assert.Equal(t, IsAccessible(tile), IsAccessible(tile))
			collectible := tile == TileDot || tile == TilePowerPellet
			assert.Equal(t, collectible, IsCollectible(tile))
		})
	}
}

func TestTileTableCharsAreUnique(t *testing.T) {
	seen := map[rune]Tile{}
	for _, tile := range Tiles() {
		info := Info(tile)
		prev, dup := seen[info.Char]
		require.False(t, dup, "%q used by %v and %v", info.Char, prev, tile)
		seen[info.Char] = tile

		back, ok := TileForChar(info.Char)
		require.True(t, ok)
		assert.Equal(t, tile, back)
		assert.Equal(t, SpriteSize, info.Src.W)
		assert.Len(t, []rune(info.Glyph), 2, "glyph of %v", tile)
	}
	_, ok := TileForChar(PlayerMarker)
	assert.False(t, ok, "spawn markers are not tiles")
}

func TestInfoUnknownTile(t *testing.T) {
	assert.Equal(t, Info(TileSpace), Info(Tile(200)))
	assert.True(t, IsAccessible(Tile(200)))
}

func TestMapGetSetOutOfBounds(t *testing.T) {
	m := NewMap(4, 3)
	for x := 0; x < 4; x++ {
		m.Set(x, 0, TileBlock)
	}

	coords := []core.Point{
		{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 4, Y: 0}, {X: 0, Y: 3},
		{X: -1000000, Y: 5}, {X: 1 << 30, Y: -(1 << 30)}, {X: -32, Y: -32},
	}
	for _, p := range coords {
		assert.NotPanics(t, func() { m.Set(p.X, p.Y, TileBlock) })
		assert.Equal(t, TileSpace, m.Get(p.X, p.Y), "Get(%d, %d)", p.X, p.Y)
	}

	assert.Equal(t, 4, m.Count(TileBlock), "out of bounds writes must not land in the grid")
	assert.Equal(t, TileBlock, m.Get(3, 0))
}

func TestMapCloneIsIndependent(t *testing.T) {
	m := NewMap(2, 2)
	m.Set(0, 0, TileDot)
	c := m.Clone()
	c.Set(0, 0, TileSpace)

	assert.Equal(t, TileDot, m.Get(0, 0))
	assert.Equal(t, TileSpace, c.Get(0, 0))
}

const smallLevel = `1--2
|pP|
|.G|
3--4
`

func TestParseCountsMatchSource(t *testing.T) {
	for _, name := range BuiltinNames() {
		t.Run(name, func(t *testing.T) {
			src, err := builtinLevels.ReadFile("levels/" + name + ".txt")
			require.NoError(t, err)

			lvl, err := Parse(strings.NewReader(string(src)), name, 20, 15)
			require.NoError(t, err)

			assert.Equal(t, strings.Count(string(src), "."), lvl.Map.Count(TileDot))
			assert.Equal(t, strings.Count(string(src), "p"), lvl.Map.Count(TilePowerPellet))
			assert.Equal(t, lvl.Dots, lvl.Map.Count(TileDot))
			assert.Equal(t, lvl.Pellets, lvl.Map.Count(TilePowerPellet))
		})
	}
}

func TestParseSpawnMarkers(t *testing.T) {
	lvl, err := Parse(strings.NewReader(smallLevel), "small", 4, 4)
	require.NoError(t, err)

	assert.Equal(t, core.Pt(2, 1), lvl.PlayerSpawn)
	assert.Equal(t, []core.Point{core.Pt(2, 2)}, lvl.GhostSpawns)
	assert.Equal(t, TileSpace, lvl.Map.Get(2, 1))
	assert.Equal(t, TileSpace, lvl.Map.Get(2, 2))
	assert.Equal(t, 1, lvl.Dots)
	assert.Equal(t, 1, lvl.Pellets)
}

func TestParseWrapsLongRows(t *testing.T) {
	// One 16-character line fills the 4x4 grid row by row.
	lvl, err := Parse(strings.NewReader("1--2|p.||..|3--4"), "flat", 4, 4)
	require.NoError(t, err)
	assert.Equal(t, "1--2\n|p.|\n|..|\n3--4", lvl.Map.String())
}

func TestParseSkipsSpacesAndCarriageReturns(t *testing.T) {
	src := "1 - - 2\r\n| p . |\r\n| . . |\r\n3 - - 4\r\n"
	lvl, err := Parse(strings.NewReader(src), "spaced", 4, 4)
	require.NoError(t, err)
	assert.Equal(t, TilePowerPellet, lvl.Map.Get(1, 1))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		cols     int
		rows     int
		expected error
	}{
		{"too few cells", "1--2\n|..|\n", 4, 4, ErrDimensions},
		{"too many cells", smallLevel + "....", 4, 4, ErrDimensions},
		{"unknown char", "1--2\n|.X|\n|..|\n3--4", 4, 4, ErrUnknownTile},
		{"no collectibles", "1--2\n|00|\n|00|\n3--4", 4, 4, ErrNoCollectibles},
		{"zero grid", "", 0, 0, ErrDimensions},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.src), tc.name, tc.cols, tc.rows)
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestParseDefaultSpawns(t *testing.T) {
	lvl, err := Parse(strings.NewReader("1--2|..||..|3--4"), "nomarkers", 4, 4)
	require.NoError(t, err)

	assert.True(t, lvl.Map.IsAccessibleAt(lvl.PlayerSpawn.X, lvl.PlayerSpawn.Y))
	require.Len(t, lvl.GhostSpawns, 1)
	assert.True(t, lvl.Map.IsAccessibleAt(lvl.GhostSpawns[0].X, lvl.GhostSpawns[0].Y))
	assert.NotEqual(t, lvl.PlayerSpawn, lvl.GhostSpawns[0])
}

func TestLoadFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.txt")
	require.NoError(t, os.WriteFile(path, []byte(smallLevel), 0o600))

	lvl, err := Load(path, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, "tiny", lvl.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"), 4, 4)
	assert.Error(t, err)
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{"lv/one.txt": {Data: []byte(smallLevel)}}
	lvl, err := LoadFS(fsys, "lv/one.txt", 4, 4)
	require.NoError(t, err)
	assert.Equal(t, "one", lvl.Name)
}

func TestBuiltinLevels(t *testing.T) {
	names := BuiltinNames()
	require.NotEmpty(t, names)
	assert.Equal(t, "classic", names[0])

	levels, err := Builtin(20, 15)
	require.NoError(t, err)
	require.Len(t, levels, len(names))

	for _, lvl := range levels {
		assert.GreaterOrEqual(t, len(lvl.GhostSpawns), 4, lvl.Name)

		// Every accessible cell must be reachable from the player spawn.
		field := lvl.Map.DistancesFrom(lvl.PlayerSpawn)
		for y := 0; y < lvl.Map.Rows(); y++ {
			for x := 0; x < lvl.Map.Cols(); x++ {
				if lvl.Map.IsAccessibleAt(x, y) {
					assert.NotEqual(t, Unreachable, field.At(x, y), "%s: cell (%d,%d) unreachable", lvl.Name, x, y)
				}
			}
		}
	}

	_, err = Builtin(10, 10)
	assert.ErrorIs(t, err, ErrDimensions)
}

func TestDistanceField(t *testing.T) {
	// Row 1 is a tunnel: its ends are open and wrap around.
	src := "" +
		"#####" +
		"0.p.0" +
		"#####"
	lvl, err := Parse(strings.NewReader(src), "tunnel", 5, 3)
	require.NoError(t, err)

	f := lvl.Map.DistancesFrom(core.Pt(0, 1))
	assert.Equal(t, 0, f.At(0, 1))
	assert.Equal(t, 1, f.At(1, 1))
	assert.Equal(t, 1, f.At(4, 1), "wraps through the tunnel")
	assert.Equal(t, 2, f.At(2, 1))
	assert.Equal(t, Unreachable, f.At(0, 0), "walls are unreachable")
	assert.Equal(t, 1, f.At(-1, 1), "out of bounds folds back in")
	assert.Equal(t, core.Pt(0, 1), f.Target())

	wall := lvl.Map.DistancesFrom(core.Pt(2, 0))
	assert.Equal(t, Unreachable, wall.At(1, 1))
}
