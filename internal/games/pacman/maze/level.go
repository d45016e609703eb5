package maze

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Spawn markers. Both are read as TileSpace.
const (
	PlayerMarker = 'P'
	GhostMarker  = 'G'
)

var (
	// ErrDimensions is returned when a level does not fill exactly cols x rows cells.
	ErrDimensions = errors.New("maze: level dimensions mismatch")
	// ErrUnknownTile is returned for a character missing from the tile table.
	ErrUnknownTile = errors.New("maze: unknown tile character")
	// ErrNoCollectibles is returned for a level that could never be completed.
	ErrNoCollectibles = errors.New("maze: level has no dots or power pellets")
)

//go:embed levels/*.txt
var builtinLevels embed.FS

// Level is a parsed level file: the pristine grid plus spawn points in cell
// coordinates. The grid is never mutated; games play on a Clone.
type Level struct {
	Name        string
	Map         *Map
	PlayerSpawn core.Point
	GhostSpawns []core.Point
	Dots        int
	Pellets     int
}

// Parse reads a level of exactly cols x rows cells. Newlines, carriage returns
// and spaces are skipped without advancing the column; every other character
// fills the next cell and a full row wraps to column 0 of the next row.
func Parse(r io.Reader, name string, cols, rows int) (*Level, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: %s: grid %dx%d", ErrDimensions, name, cols, rows)
	}

	m := NewMap(cols, rows)
	lvl := &Level{Name: name, Map: m}
	hasPlayer := false

	br := bufio.NewReader(r)
	x, y, cells := 0, 0, 0
	for {
		ch, _, err := br.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("maze: reading %s: %w", name, err)
		}

		switch ch {
		case '\n', '\r', ' ':
			continue
		}

		if cells == cols*rows {
			return nil, fmt.Errorf("%w: %s: more than %d cells", ErrDimensions, name, cols*rows)
		}

		switch ch {
		case PlayerMarker:
			lvl.PlayerSpawn = core.Pt(x, y)
			hasPlayer = true
			m.Set(x, y, TileSpace)
		case GhostMarker:
			lvl.GhostSpawns = append(lvl.GhostSpawns, core.Pt(x, y))
			m.Set(x, y, TileSpace)
		default:
			t, ok := TileForChar(ch)
			if !ok {
				return nil, fmt.Errorf("%w: %s: %q at column %d row %d", ErrUnknownTile, name, ch, x, y)
			}
			m.Set(x, y, t)
		}

		cells++
		x++
		if x == cols {
			x = 0
			y++
		}
	}

	if cells != cols*rows {
		return nil, fmt.Errorf("%w: %s: got %d cells, expected %dx%d", ErrDimensions, name, cells, cols, rows)
	}

	lvl.Dots = m.Count(TileDot)
	lvl.Pellets = m.Count(TilePowerPellet)
	if lvl.Dots+lvl.Pellets == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoCollectibles, name)
	}

	if !hasPlayer {
		lvl.PlayerSpawn = m.nearestAccessible(core.Pt(cols/2, rows*3/4), nil)
	}
	if len(lvl.GhostSpawns) == 0 {
		lvl.GhostSpawns = []core.Point{m.nearestAccessible(core.Pt(cols/2, rows/2), &lvl.PlayerSpawn)}
	}
	return lvl, nil
}

// nearestAccessible finds the accessible cell closest to target, scanning in
// row-major order so ties resolve deterministically. avoid, when set, is skipped.
func (m *Map) nearestAccessible(target core.Point, avoid *core.Point) core.Point {
	best, bestD := target, -1
	for y := 0; y < m.rows; y++ {
		for x := 0; x < m.cols; x++ {
			p := core.Pt(x, y)
			if !m.IsAccessibleAt(x, y) || (avoid != nil && p == *avoid) {
				continue
			}
			if d := p.DistSq(target); bestD < 0 || d < bestD {
				best, bestD = p, d
			}
		}
	}
	return best
}

// Load reads a level file from disk.
func Load(filename string, cols, rows int) (*Level, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("maze: cannot open level: %w", err)
	}
	defer f.Close()

	return Parse(f, strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)), cols, rows)
}

// LoadFS reads a level file from fsys.
func LoadFS(fsys fs.FS, filename string, cols, rows int) (*Level, error) {
	f, err := fsys.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("maze: cannot open level: %w", err)
	}
	defer f.Close()

	return Parse(f, strings.TrimSuffix(path.Base(filename), path.Ext(filename)), cols, rows)
}

// BuiltinNames lists the embedded levels in play order.
func BuiltinNames() []string {
	entries, err := fs.ReadDir(builtinLevels, "levels")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".txt"))
	}
	sort.Slice(names, func(i, j int) bool {
		return levelOrder(names[i]) < levelOrder(names[j])
	})
	return names
}

// levelOrder keeps "classic" first and the rest alphabetical.
func levelOrder(name string) string {
	if name == "classic" {
		return ""
	}
	return name
}

// Builtin loads every embedded level.
func Builtin(cols, rows int) ([]*Level, error) {
	names := BuiltinNames()
	levels := make([]*Level, 0, len(names))
	for _, n := range names {
		lvl, err := LoadFS(builtinLevels, "levels/"+n+".txt", cols, rows)
		if err != nil {
			return nil, err
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}
