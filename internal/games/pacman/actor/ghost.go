package actor

import (
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"
)

// GhostFrames is the length of the ghost body animation.
const GhostFrames = 2

// Ghost is an autonomous enemy. It waits inside the house until its release
// timer runs out, then roams using a direction policy.
type Ghost struct {
	Motion
	Anim Animator

	ID     int        // identity, selects sprite and spawn slot
	Spawn  core.Point // cell
	Scared bool       // mirrors the player's power mode
	Active bool

	wait float64 // seconds until release while inactive
}

// NewGhost creates an inactive ghost on spawn that is released after delay.
func NewGhost(id int, spawn core.Point, speed, tile int, frameTime, delay float64) *Ghost {
	g := &Ghost{
		Motion: NewMotion(spawn, speed, tile),
		Anim:   NewAnimator(GhostFrames, frameTime),
		ID:     id,
		Spawn:  spawn,
	}
	g.SendHome(delay)
	return g
}

// SendHome parks the ghost on its spawn, inactive for delay seconds.
// A non-positive delay releases it on the next update.
func (g *Ghost) SendHome(delay float64) {
	g.Place(g.Spawn)
	g.Active = false
	g.wait = delay
	g.Anim.Reset()
}

// Candidates returns the accessible neighbors of the ghost's cell in
// Up, Down, Left, Right order. The reverse of the current direction is left
// out unless it is the only way, so dead ends force a turnaround.
func (g *Ghost) Candidates(grid *maze.Map) []Direction {
	cell := g.TargetCell()
	back := g.Dir.Reverse()
	out := make([]Direction, 0, 4)
	reverseOpen := false

	for _, d := range Directions {
		n := cell.Add(d.Delta())
		if !grid.IsAccessibleAt(n.X, n.Y) {
			continue
		}
		if d == back {
			reverseOpen = true
			continue
		}
		out = append(out, d)
	}
	if len(out) == 0 && reverseOpen {
		out = append(out, back)
	}
	return out
}

// Chooser picks one of the candidate directions for a ghost.
type Chooser func(g *Ghost, candidates []Direction) Direction

// Update runs one tick. scared is the player's current power state. The
// chooser is only consulted at cell boundaries.
func (g *Ghost) Update(dt float64, grid *maze.Map, scared bool, choose Chooser) {
	g.Scared = scared

	if !g.Active {
		g.wait -= dt
		if g.wait <= 0 {
			g.Active = true
			g.wait = 0
		}
		g.Anim.Update(dt, true)
		return
	}

	if g.Stationary() {
		if cands := g.Candidates(grid); len(cands) > 0 {
			d := cands[0]
			if choose != nil {
				d = choose(g, cands)
			}
			g.Seek(grid, d)
		}
	}

	g.Advance()
	g.Anim.Update(dt, true)
}

// Facing returns the direction to draw the ghost's eyes in.
func (g *Ghost) Facing() Direction {
	if g.Dir == DirNone {
		return DirUp
	}
	return g.Dir
}
