package maze

import "github.com/vovakirdan/tui-pacman/internal/core"

// Unreachable is the distance reported for cells the search never reached.
const Unreachable = -1

var neighbors = [4]core.Point{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}

// DistanceField holds BFS step counts from one target cell to every
// accessible cell. Edges wrap around the grid like the screen-edge tunnels.
type DistanceField struct {
	cols   int
	rows   int
	target core.Point
	dist   []int
}

// DistancesFrom computes the distance field rooted at target. A target outside
// the grid is folded back in first.
func (m *Map) DistancesFrom(target core.Point) *DistanceField {
	target = core.Pt(core.Mod(target.X, m.cols), core.Mod(target.Y, m.rows))
	f := &DistanceField{
		cols:   m.cols,
		rows:   m.rows,
		target: target,
		dist:   make([]int, m.cols*m.rows),
	}
	for i := range f.dist {
		f.dist[i] = Unreachable
	}
	if !m.IsAccessibleAt(target.X, target.Y) {
		return f
	}

	queue := make([]core.Point, 0, m.cols*m.rows)
	queue = append(queue, target)
	f.dist[target.Y*m.cols+target.X] = 0

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		next := f.dist[cur.Y*m.cols+cur.X] + 1
		for _, d := range neighbors {
			nx := core.Mod(cur.X+d.X, m.cols)
			ny := core.Mod(cur.Y+d.Y, m.rows)
			idx := ny*m.cols + nx
			if f.dist[idx] != Unreachable || !m.IsAccessibleAt(nx, ny) {
				continue
			}
			f.dist[idx] = next
			queue = append(queue, core.Pt(nx, ny))
		}
	}
	return f
}

// Target returns the cell the field is rooted at.
func (f *DistanceField) Target() core.Point {
	return f.target
}

// At returns the step count from (x, y) to the target. Cells outside the grid
// are folded back in; walls and unreachable cells return Unreachable.
func (f *DistanceField) At(x, y int) int {
	if f.cols == 0 || f.rows == 0 {
		return Unreachable
	}
	return f.dist[core.Mod(y, f.rows)*f.cols+core.Mod(x, f.cols)]
}
