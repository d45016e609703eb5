package maze

import (
	"strings"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Map is a cols x rows grid of tiles addressed by (column, row).
// Every accessor is bounds-safe: agents crossing the field edge through a
// tunnel transiently sit outside the grid.
type Map struct {
	cols  int
	rows  int
	tiles []Tile
}

// NewMap creates a grid filled with TileSpace.
func NewMap(cols, rows int) *Map {
	return &Map{
		cols:  cols,
		rows:  rows,
		tiles: make([]Tile, cols*rows),
	}
}

// Cols returns the grid width in cells.
func (m *Map) Cols() int {
	return m.cols
}

// Rows returns the grid height in cells.
func (m *Map) Rows() int {
	return m.rows
}

func (m *Map) inBounds(x, y int) bool {
	return x >= 0 && x < m.cols && y >= 0 && y < m.rows
}

// Get returns the tile at (x, y), or TileSpace outside the grid.
func (m *Map) Get(x, y int) Tile {
	if !m.inBounds(x, y) {
		return TileSpace
	}
	return m.tiles[y*m.cols+x]
}

// GetAt is Get for a cell point.
func (m *Map) GetAt(p core.Point) Tile {
	return m.Get(p.X, p.Y)
}

// Set stores t at (x, y). Writes outside the grid are ignored.
func (m *Map) Set(x, y int, t Tile) {
	if !m.inBounds(x, y) {
		return
	}
	m.tiles[y*m.cols+x] = t
}

// IsAccessibleAt reports whether the cell at (x, y) can be entered.
func (m *Map) IsAccessibleAt(x, y int) bool {
	return IsAccessible(m.Get(x, y))
}

// Count returns how many cells hold tile kind t.
func (m *Map) Count(t Tile) int {
	n := 0
	for _, v := range m.tiles {
		if v == t {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid.
func (m *Map) Clone() *Map {
	c := &Map{cols: m.cols, rows: m.rows, tiles: make([]Tile, len(m.tiles))}
	copy(c.tiles, m.tiles)
	return c
}

// String renders the grid back into level-file characters.
func (m *Map) String() string {
	var sb strings.Builder
	sb.Grow(len(m.tiles) + m.rows)
	for y := 0; y < m.rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < m.cols; x++ {
			sb.WriteRune(m.Get(x, y).Char())
		}
	}
	return sb.String()
}
