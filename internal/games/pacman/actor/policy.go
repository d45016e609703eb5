package actor

import (
	"math/rand"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"
)

// Decision is everything a policy may look at when a ghost reaches a cell
// boundary.
type Decision struct {
	From       core.Point  // cell the ghost stands on
	Candidates []Direction // non-empty, in Up, Down, Left, Right order
	Target     core.Point  // the player's cell
	Field      *maze.DistanceField
	Scared     bool
}

// Policy chooses a ghost's next direction.
type Policy interface {
	Choose(d Decision, rng *rand.Rand) Direction
}

// ChasePolicy moves toward the player, or away from it while scared.
// Distances come from the BFS field when available and fall back to straight
// line distance. Equal scores keep the earliest candidate, and with
// probability Deviation a uniformly random candidate is taken instead.
type ChasePolicy struct {
	Deviation float64
}

// Choose implements Policy.
func (p ChasePolicy) Choose(d Decision, rng *rand.Rand) Direction {
	switch len(d.Candidates) {
	case 0:
		return DirNone
	case 1:
		return d.Candidates[0]
	}

	if rng != nil && p.Deviation > 0 && rng.Float64() < p.Deviation {
		return d.Candidates[rng.Intn(len(d.Candidates))]
	}

	best := d.Candidates[0]
	bestScore := d.score(best)
	for _, c := range d.Candidates[1:] {
		s := d.score(c)
		if (!d.Scared && s < bestScore) || (d.Scared && s > bestScore) {
			best, bestScore = c, s
		}
	}
	return best
}

// unreachableScore ranks cells the field never reached behind every real
// distance.
const unreachableScore = 1 << 30

func (d Decision) score(dir Direction) int {
	cell := d.From.Add(dir.Delta())
	if d.Field != nil {
		if dist := d.Field.At(cell.X, cell.Y); dist != maze.Unreachable {
			return dist
		}
		return unreachableScore
	}
	return cell.DistSq(d.Target)
}

// RandomPolicy picks uniformly among the candidates.
type RandomPolicy struct{}

// Choose implements Policy.
func (RandomPolicy) Choose(d Decision, rng *rand.Rand) Direction {
	switch {
	case len(d.Candidates) == 0:
		return DirNone
	case len(d.Candidates) == 1 || rng == nil:
		return d.Candidates[0]
	}
	return d.Candidates[rng.Intn(len(d.Candidates))]
}
