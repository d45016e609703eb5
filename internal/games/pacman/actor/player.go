package actor

import (
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"
)

// PlayerFrames is the length of the player's mouth animation.
const PlayerFrames = 3

// Player is the agent steered by input.
type Player struct {
	Motion
	Anim Animator

	Spawn   core.Point // cell
	NextDir Direction  // buffered turn, kept until a junction allows it
	Lives   int

	DotsEaten    int
	PelletsEaten int
	GhostsEaten  int // consecutive captures in the current power window

	power float64 // seconds of power mode left
}

// NewPlayer creates a player standing on spawn.
func NewPlayer(spawn core.Point, speed, tile, lives int, frameTime float64) *Player {
	return &Player{
		Motion: NewMotion(spawn, speed, tile),
		Anim:   NewAnimator(PlayerFrames, frameTime),
		Spawn:  spawn,
		Lives:  lives,
	}
}

// Update runs one tick: buffer the held direction, count down power mode,
// pick a new target at a cell boundary, then move.
//
// At a boundary the buffered turn wins when its cell is open. Otherwise the
// player keeps its committed direction, and stops when that is blocked too.
func (p *Player) Update(dt float64, grid *maze.Map, in core.InputFrame) {
	if d := HeldDirection(in); d != DirNone {
		p.NextDir = d
	}

	if p.power > 0 {
		p.power -= dt
		if p.power < 0 {
			p.power = 0
		}
	}

	if p.Stationary() {
		if !p.Seek(grid, p.NextDir) {
			p.Seek(grid, p.Dir)
		}
	}

	moved := p.Advance()
	p.Anim.Update(dt, moved)
}

// Activate starts or restarts power mode and resets the capture streak.
func (p *Player) Activate(duration float64) {
	p.power = duration
	p.GhostsEaten = 0
}

// Powered reports whether power mode is active.
func (p *Player) Powered() bool {
	return p.power > 0
}

// PowerRemaining returns the seconds of power mode left.
func (p *Player) PowerRemaining() float64 {
	return p.power
}

// Kill costs a life and sends the player back to spawn with movement, power
// and animation cleared. Consumption counters survive.
func (p *Player) Kill() {
	if p.Lives > 0 {
		p.Lives--
	}
	p.respawn()
}

// ResetLevel prepares the player for a fresh level starting at spawn.
func (p *Player) ResetLevel(spawn core.Point) {
	p.Spawn = spawn
	p.DotsEaten = 0
	p.PelletsEaten = 0
	p.GhostsEaten = 0
	p.respawn()
}

func (p *Player) respawn() {
	p.Place(p.Spawn)
	p.NextDir = DirNone
	p.power = 0
	p.Anim.Reset()
}

// Facing returns the direction to draw the player in. A stopped player keeps
// the last direction it moved.
func (p *Player) Facing() Direction {
	if p.Dir == DirNone {
		return DirRight
	}
	return p.Dir
}
