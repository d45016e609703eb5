package pacman

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"
	"github.com/vovakirdan/tui-pacman/internal/highscore"
	"github.com/vovakirdan/tui-pacman/internal/render"
)

// Text sizes in logical pixels.
const (
	textLarge  = 32
	textNormal = 16
)

// LoadAssets loads every sprite sheet onto c. Platforms call it once at
// startup so a missing asset fails early; Draw loads lazily otherwise.
func (g *Game) LoadAssets(c render.Canvas) error {
	if g.tex != nil && g.tex.canvas == c {
		return nil
	}
	tex, err := loadTextures(c)
	if err != nil {
		return err
	}
	g.tex = tex
	return nil
}

// Render draws into a terminal screen through a ScreenCanvas.
func (g *Game) Render(dst *core.Screen) {
	if g.screen == nil {
		g.screen = render.NewScreenCanvas(dst, g.cfg.Display.TileSize)
	} else {
		g.screen.SetScreen(dst)
	}
	g.Draw(g.screen)
}

// Draw paints the current state onto c.
func (g *Game) Draw(c render.Canvas) {
	if err := g.LoadAssets(c); err != nil {
		g.logger.Error("cannot load textures", "err", err)
		return
	}

	c.Clear()
	switch g.phase {
	case PhaseMenu:
		g.drawMenu(c)
	case PhasePlaying:
		g.drawField(c)
		g.drawHUD(c)
	case PhasePaused:
		g.drawField(c)
		g.drawHUD(c)
		g.drawBanner(c, "PAUSED", "P to resume")
	case PhaseGameOver:
		g.drawField(c)
		g.drawHUD(c)
		g.drawGameOver(c)
	case PhaseExit:
		g.drawBanner(c, "BYE", "")
	}
	if g.showFPS {
		c.DrawText(g.cfg.Display.Width, 0, fmt.Sprintf("FPS %d", g.fps), textNormal, core.ColorGreen, render.AlignRight)
	}
	c.Present()
}

func (g *Game) tileRect(cell core.Point) core.Rect {
	t := g.cfg.Display.TileSize
	return core.NewRect(cell.X*t, cell.Y*t, t, t)
}

func (g *Game) drawField(c render.Canvas) {
	t := g.cfg.Display.TileSize
	for y := 0; y < g.grid.Rows(); y++ {
		for x := 0; x < g.grid.Cols(); x++ {
			tile := g.grid.Get(x, y)
			if tile == maze.TileSpace {
				continue
			}
			c.DrawSprite(g.tex.tiles, maze.Info(tile).Src, g.tileRect(core.Pt(x, y)), 0, render.FlipNone)
		}
	}

	if g.bonus.Visible() {
		c.DrawSprite(g.tex.bonus, cellRect(g.bonus.Anim.Frame(), 0), g.tileRect(g.bonus.Cell), 0, render.FlipNone)
	}

	power := g.player.PowerRemaining()
	for _, gh := range g.ghosts {
		dst := core.NewRect(gh.Pos.X, gh.Pos.Y, t, t)
		c.DrawSprite(g.tex.ghosts, ghostSrc(gh, power), dst, 0, render.FlipNone)
	}

	rot, flip := playerPose(g.player.Facing())
	dst := core.NewRect(g.player.Pos.X, g.player.Pos.Y, t, t)
	c.DrawSprite(g.tex.player, cellRect(g.player.Anim.Frame(), 0), dst, rot, flip)
}

// drawHUD fills the row below the field: score, level and lives.
func (g *Game) drawHUD(c render.Canvas) {
	d := g.cfg.Display
	y := d.Height
	c.DrawText(0, y, fmt.Sprintf("SCORE %d", g.score), textNormal, core.ColorBrightWhite, render.AlignLeft)
	c.DrawText(d.Width/2, y, fmt.Sprintf("LEVEL %d", g.level), textNormal, core.ColorBrightWhite, render.AlignCenter)

	for i := 0; i < g.player.Lives; i++ {
		dst := core.NewRect(d.Width-(i+1)*d.TileSize, y, d.TileSize, d.TileSize)
		c.DrawSprite(g.tex.heart, cellRect(0, 0), dst, 0, render.FlipNone)
	}
}

func (g *Game) drawMenu(c render.Canvas) {
	t := g.cfg.Display.TileSize
	mid := g.cfg.Display.Width / 2

	c.DrawText(mid, 2*t, strings.ToUpper(g.title), textLarge, core.ColorYellow, render.AlignCenter)
	c.DrawText(mid, 4*t, "HIGH SCORES", textNormal, core.ColorCyan, render.AlignCenter)

	for i, line := range menuEntries(g.scores.Table()) {
		color := core.ColorWhite
		if i == g.lastRank {
			color = core.ColorBrightYellow
		}
		c.DrawText(mid, (5+i)*t, line, textNormal, color, render.AlignCenter)
	}

	// Start prompt blinks twice a second.
	if int(g.clock*2)%2 == 0 {
		c.DrawText(mid, 12*t, "PRESS ENTER TO START", textNormal, core.ColorBrightWhite, render.AlignCenter)
	}
	c.DrawText(mid, 14*t, "P pause  R reset  F fps  Q quit", textNormal, core.ColorGray, render.AlignCenter)
}

func (g *Game) drawGameOver(c render.Canvas) {
	t := g.cfg.Display.TileSize
	mid := g.cfg.Display.Width / 2

	c.DrawText(mid, 6*t, "GAME OVER", textLarge, core.ColorBrightRed, render.AlignCenter)
	c.DrawText(mid, 7*t, fmt.Sprintf("SCORE %d", g.score), textNormal, core.ColorBrightWhite, render.AlignCenter)

	if !g.qualifies {
		c.DrawText(mid, 9*t, "PRESS ENTER", textNormal, core.ColorWhite, render.AlignCenter)
		return
	}
	c.DrawText(mid, 8*t, "NEW HIGH SCORE! ENTER NAME", textNormal, core.ColorCyan, render.AlignCenter)
	name := string(g.name)
	if len(g.name) < g.cfg.NameEntry.MaxLen {
		name += "_"
	}
	c.DrawText(mid, 9*t, name, textNormal, core.ColorBrightYellow, render.AlignCenter)
}

func (g *Game) drawBanner(c render.Canvas, title, hint string) {
	t := g.cfg.Display.TileSize
	mid := g.cfg.Display.Width / 2
	c.DrawText(mid, 7*t, title, textLarge, core.ColorBrightYellow, render.AlignCenter)
	if hint != "" {
		c.DrawText(mid, 8*t, hint, textNormal, core.ColorWhite, render.AlignCenter)
	}
}

// menuEntries is the high-score table as drawn on the menu.
func menuEntries(t highscore.Table) []string {
	out := make([]string, len(t))
	for i, e := range t {
		out[i] = fmt.Sprintf("%d. %-10s %7d", i+1, e.Name, e.Score)
	}
	return out
}
