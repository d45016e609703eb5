package pacman

import (
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/actor"
)

// GhostSnapshot is the observable state of one ghost.
type GhostSnapshot struct {
	Pos    core.Point
	Dir    actor.Direction
	Active bool
	Scared bool
}

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Phase      Phase
	Level      int
	Score      int
	Lives      int
	PlayerPos  core.Point
	PlayerDir  actor.Direction
	Powered    bool
	DotsLeft   int
	GhostSpeed int
	Ghosts     []GhostSnapshot
	BonusCell  core.Point
	BonusOn    bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       g.tick,
		Phase:      g.phase,
		Level:      g.level,
		Score:      g.score,
		Lives:      g.player.Lives,
		PlayerPos:  g.player.Pos,
		PlayerDir:  g.player.Dir,
		Powered:    g.player.Powered(),
		DotsLeft:   g.totalDots - g.player.DotsEaten,
		GhostSpeed: g.ghostSpeed,
		BonusCell:  g.bonus.Cell,
		BonusOn:    g.bonus.Active,
	}
	for _, gh := range g.ghosts {
		s.Ghosts = append(s.Ghosts, GhostSnapshot{Pos: gh.Pos, Dir: gh.Dir, Active: gh.Active, Scared: gh.Scared})
	}
	return s
}
