package pacman

import (
	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/actor"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"
)

// loadLevel builds the current level from its template and puts every agent
// on its spawn. Lives and score carry over.
func (g *Game) loadLevel() {
	lvl := g.levels[g.levelIndex]
	tile := g.cfg.Display.TileSize

	g.grid = lvl.Map.Clone()
	g.totalDots = g.grid.Count(maze.TileDot)
	g.totalPellets = g.grid.Count(maze.TilePowerPellet)
	g.field = nil

	if g.player == nil {
		p := g.cfg.Player
		g.player = actor.NewPlayer(lvl.PlayerSpawn, p.Speed, tile, p.Lives, p.FrameTime)
	} else {
		g.player.ResetLevel(lvl.PlayerSpawn)
	}

	g.ghosts = g.ghosts[:0]
	for i := 0; i < g.cfg.Ghosts.Count; i++ {
		spawn := lvl.PlayerSpawn
		if len(lvl.GhostSpawns) > 0 {
			spawn = lvl.GhostSpawns[i%len(lvl.GhostSpawns)]
		}
		delay := float64(i) * g.cfg.Ghosts.ReleaseInterval
		g.ghosts = append(g.ghosts, actor.NewGhost(i, spawn, g.ghostSpeed, tile, g.cfg.Ghosts.FrameTime, delay))
	}

	// Bonus cells: reachable from the player spawn, so it is always collectable.
	g.reachable = g.reachable[:0]
	from := g.grid.DistancesFrom(lvl.PlayerSpawn)
	for y := 0; y < g.grid.Rows(); y++ {
		for x := 0; x < g.grid.Cols(); x++ {
			if from.At(x, y) > 0 {
				g.reachable = append(g.reachable, core.Pt(x, y))
			}
		}
	}
	g.bonus.Reset()
}

// play runs one Playing tick: player, ghosts in index order, bonus timers,
// then the resolver.
func (g *Game) play(in core.InputFrame) {
	g.player.Update(g.dt, g.grid, in)

	scared := g.player.Powered()
	for _, gh := range g.ghosts {
		gh.Update(g.dt, g.grid, scared, g.chooseDirection)
	}
	g.bonus.Update(g.dt, g.placeBonus)

	g.resolve()
}

// chooseDirection hands a ghost decision to the policy.
func (g *Game) chooseDirection(gh *actor.Ghost, candidates []actor.Direction) actor.Direction {
	target := g.playerCell()
	if g.field == nil || g.field.Target() != target {
		g.field = g.grid.DistancesFrom(target)
	}
	d := g.policy.Choose(actor.Decision{
		From:       gh.TargetCell(),
		Candidates: candidates,
		Target:     target,
		Field:      g.field,
		Scared:     gh.Scared,
	}, g.rng)
	if d == actor.DirNone {
		return candidates[0]
	}
	return d
}

// playerCell is the player's cell folded back onto the grid.
func (g *Game) playerCell() core.Point {
	c := g.player.Cell()
	return core.Pt(core.Mod(c.X, g.grid.Cols()), core.Mod(c.Y, g.grid.Rows()))
}

// resolve applies the rules in fixed order: wraparound, tile, ghosts,
// bonus, level completion.
func (g *Game) resolve() {
	w := g.grid.Cols() * g.cfg.Display.TileSize
	h := g.grid.Rows() * g.cfg.Display.TileSize
	g.player.Wrap(w, h)
	for _, gh := range g.ghosts {
		gh.Wrap(w, h)
	}

	g.eatTile()

	if !g.resolveGhosts() {
		return
	}

	g.collectBonus()

	if g.player.DotsEaten >= g.totalDots && g.player.PelletsEaten >= g.totalPellets {
		g.nextLevel()
	}
}

// eatTile consumes whatever lies under the player's center.
func (g *Game) eatTile() {
	c := g.player.Cell()
	t := g.grid.GetAt(c)
	if !maze.IsCollectible(t) {
		return
	}
	g.grid.Set(c.X, c.Y, maze.TileSpace)
	switch t {
	case maze.TileDot:
		g.score += g.cfg.Scoring.Dot
		g.player.DotsEaten++
	case maze.TilePowerPellet:
		g.score += g.cfg.Scoring.PowerPellet
		g.player.PelletsEaten++
		g.player.Activate(g.cfg.Player.PowerDuration)
	}
}

// resolveGhosts handles contact with every active ghost. It returns false
// when the player was caught and the rest of the tick must be skipped.
func (g *Game) resolveGhosts() bool {
	reach := g.cfg.Collision.CaptureDistance
	pc := g.player.Center()

	for _, gh := range g.ghosts {
		if !gh.Active || pc.DistSq(gh.Center()) >= reach*reach {
			continue
		}
		if g.player.Powered() {
			g.player.GhostsEaten++
			g.score += g.cfg.Scoring.Ghost * g.player.GhostsEaten
			gh.SendHome(g.cfg.Ghosts.RespawnDelay)
			continue
		}
		g.playerCaught()
		return false
	}
	return true
}

func (g *Game) playerCaught() {
	g.player.Kill()
	g.field = nil
	if g.player.Lives <= 0 {
		g.endRun()
		return
	}
	for i, gh := range g.ghosts {
		gh.SendHome(float64(i) * g.cfg.Ghosts.ReleaseInterval)
	}
	g.logger.Debug("life lost", "lives", g.player.Lives, "score", g.score)
}

// endRun enters GameOver and decides whether a name is asked for.
func (g *Game) endRun() {
	g.phase = PhaseGameOver
	g.qualifies = g.scores.Qualifies(g.score)
	g.name = g.name[:0]
	g.logger.Info("game over", "score", g.score, "level", g.level, "qualifies", g.qualifies)
}

func (g *Game) collectBonus() {
	if !g.bonus.Active || g.player.Cell() != g.bonus.Cell {
		return
	}
	g.score += g.cfg.Scoring.Bonus
	g.bonus.Collect()
}

// placeBonus picks a random reachable cell away from the player.
func (g *Game) placeBonus() (core.Point, bool) {
	if len(g.reachable) == 0 {
		return core.Point{}, false
	}
	pc := g.playerCell()
	for range 8 {
		c := g.reachable[g.rng.Intn(len(g.reachable))]
		if c != pc {
			return c, true
		}
	}
	return core.Point{}, false
}

// nextLevel awards the clear bonus and loads the following level with
// faster ghosts.
func (g *Game) nextLevel() {
	g.score += g.cfg.Scoring.LevelClear
	g.logger.Info("level cleared", "level", g.level, "score", g.score)

	g.level++
	g.levelIndex = (g.levelIndex + 1) % len(g.levels)
	if g.cfg.Difficulty.Progression {
		gc := g.cfg.Ghosts
		g.ghostSpeed = config.NextGhostSpeed(g.cfg.Display.TileSize, g.ghostSpeed, gc.SpeedIncrement, gc.MaxSpeed)
	}
	g.loadLevel()
}
