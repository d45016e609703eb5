package actor

import (
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"
)

// Motion is the grid-constrained movement shared by every agent.
//
// Pos is the sprite's top-left pixel, Next the grid-aligned pixel target.
// The agent is stationary when Pos == Next and seeking otherwise. A new
// target is only chosen while stationary, so direction changes latch at cell
// boundaries and Pos differs from Next only along Dir's axis.
type Motion struct {
	Pos   core.Point
	Next  core.Point
	Dir   Direction
	Speed int // pixels per tick, divides Tile
	Tile  int
}

// NewMotion places an agent on cell.
func NewMotion(cell core.Point, speed, tile int) Motion {
	m := Motion{Speed: speed, Tile: tile}
	m.Place(cell)
	return m
}

// Place teleports the agent to cell and stops it.
func (m *Motion) Place(cell core.Point) {
	m.Pos = cell.Scale(m.Tile)
	m.Next = m.Pos
	m.Dir = DirNone
}

// Stationary reports whether the agent has reached its target.
func (m *Motion) Stationary() bool {
	return m.Pos == m.Next
}

// Center returns the sprite's center pixel, the agent's collision point.
func (m *Motion) Center() core.Point {
	return core.Pt(m.Pos.X+m.Tile/2, m.Pos.Y+m.Tile/2)
}

// Cell returns the grid cell under the collision point. It may lie outside
// the grid while the agent passes through a tunnel.
func (m *Motion) Cell() core.Point {
	c := m.Center()
	return core.Pt(core.FloorDiv(c.X, m.Tile), core.FloorDiv(c.Y, m.Tile))
}

// TargetCell returns the cell the agent is heading to.
func (m *Motion) TargetCell() core.Point {
	return core.Pt(core.FloorDiv(m.Next.X, m.Tile), core.FloorDiv(m.Next.Y, m.Tile))
}

// CanMove reports whether the neighbor of the target cell in direction d is
// accessible.
func (m *Motion) CanMove(grid *maze.Map, d Direction) bool {
	if d == DirNone {
		return false
	}
	c := m.TargetCell().Add(d.Delta())
	return grid.IsAccessibleAt(c.X, c.Y)
}

// Seek starts moving one cell in direction d. It only commits while
// stationary and when the destination is accessible.
func (m *Motion) Seek(grid *maze.Map, d Direction) bool {
	if !m.Stationary() || !m.CanMove(grid, d) {
		return false
	}
	m.Dir = d
	m.Next = m.Pos.Add(d.Delta().Scale(m.Tile))
	return true
}

// Advance moves Speed pixels toward Next along Dir, never past it.
// It reports whether the agent moved.
func (m *Motion) Advance() bool {
	if m.Stationary() {
		return false
	}
	step := m.Speed
	switch m.Dir {
	case DirUp:
		m.Pos.Y -= min(step, m.Pos.Y-m.Next.Y)
	case DirDown:
		m.Pos.Y += min(step, m.Next.Y-m.Pos.Y)
	case DirLeft:
		m.Pos.X -= min(step, m.Pos.X-m.Next.X)
	case DirRight:
		m.Pos.X += min(step, m.Next.X-m.Pos.X)
	default:
		m.Next = m.Pos
		return false
	}
	return true
}

// Wrap moves an agent that has completely left the width x height field to
// the opposite edge. Pos and Next shift together. It reports whether a wrap
// happened.
func (m *Motion) Wrap(width, height int) bool {
	var shift core.Point
	switch {
	case m.Pos.X <= -m.Tile:
		shift.X = width
	case m.Pos.X >= width:
		shift.X = -width
	}
	switch {
	case m.Pos.Y <= -m.Tile:
		shift.Y = height
	case m.Pos.Y >= height:
		shift.Y = -height
	}
	if shift == (core.Point{}) {
		return false
	}
	m.Pos = m.Pos.Add(shift)
	m.Next = m.Next.Add(shift)
	return true
}
