// Package actor implements the agents of the maze: the shared grid motion
// model, the player, the ghosts with their direction policies, and the bonus
// item. Durations are float64 seconds of simulated time.
package actor

import "github.com/vovakirdan/tui-pacman/internal/core"

// Direction is a facing or travel direction on the grid.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Directions lists the four real directions in tie-break order.
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the unit cell offset of d.
func (d Direction) Delta() core.Point {
	switch d {
	case DirUp:
		return core.Pt(0, -1)
	case DirDown:
		return core.Pt(0, 1)
	case DirLeft:
		return core.Pt(-1, 0)
	case DirRight:
		return core.Pt(1, 0)
	default:
		return core.Point{}
	}
}

// Reverse returns the opposite direction. DirNone has no reverse.
func (d Direction) Reverse() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// Horizontal reports whether d moves along the x axis.
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "None"
	}
}

// DirectionFor maps a directional action to its direction.
func DirectionFor(a core.Action) Direction {
	switch a {
	case core.ActionUp:
		return DirUp
	case core.ActionDown:
		return DirDown
	case core.ActionLeft:
		return DirLeft
	case core.ActionRight:
		return DirRight
	default:
		return DirNone
	}
}

// HeldDirection returns the first held direction in priority order
// Up, Down, Left, Right, or DirNone.
func HeldDirection(in core.InputFrame) Direction {
	for _, a := range core.DirectionPriority {
		if in.IsHeld(a) {
			return DirectionFor(a)
		}
	}
	return DirNone
}
