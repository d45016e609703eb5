package pacman

import (
	"fmt"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/actor"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"
	"github.com/vovakirdan/tui-pacman/internal/render"
)

const spriteSize = maze.SpriteSize

// Ghost sheet rows after the per-identity ones.
const (
	ghostIdentities = 4
	rowScared       = ghostIdentities
	rowBlink        = ghostIdentities + 1
)

// powerWarning is how long before expiry scared ghosts start flashing.
const powerWarning = 2.0

var ghostColors = [ghostIdentities]core.Color{core.ColorRed, core.ColorPink, core.ColorCyan, core.ColorOrange}

func cellRect(col, row int) core.Rect {
	return core.NewRect(col*spriteSize, row*spriteSize, spriteSize, spriteSize)
}

// tileSheet is cut straight from the tile table.
func tileSheet() *render.Sheet {
	s := &render.Sheet{Path: "tileset.png"}
	for _, t := range maze.Tiles() {
		info := maze.Info(t)
		shape := render.ShapeRect
		switch t {
		case maze.TileSpace:
			shape = render.ShapeNone
		case maze.TileDot:
			shape = render.ShapeDot
		case maze.TilePowerPellet:
			shape = render.ShapeCircle
		}
		s.Frames = append(s.Frames, render.Frame{Src: info.Src, Glyph: info.Glyph, Color: info.Color, Shape: shape})
	}
	return s
}

func playerSheet() *render.Sheet {
	open := [4]string{"ᗧ ", "ᗜ ", "ᗤ ", "ᗢ "}
	s := &render.Sheet{Path: "pacman.png"}
	for i := 0; i < actor.PlayerFrames; i++ {
		f := render.Frame{Src: cellRect(i, 0), Glyph: "● ", Color: core.ColorYellow, Shape: render.ShapePacman}
		if i > 0 {
			f.Facing = open
		}
		s.Frames = append(s.Frames, f)
	}
	return s
}

func ghostSheet() *render.Sheet {
	s := &render.Sheet{Path: "ghosts.png"}
	for row := 0; row <= rowBlink; row++ {
		color := core.ColorBrightBlue
		switch {
		case row < ghostIdentities:
			color = ghostColors[row]
		case row == rowBlink:
			color = core.ColorBrightWhite
		}
		for col := 0; col < actor.GhostFrames; col++ {
			s.Frames = append(s.Frames, render.Frame{Src: cellRect(col, row), Glyph: "ᗣ ", Color: color, Shape: render.ShapeGhost})
		}
	}
	return s
}

func bonusSheet() *render.Sheet {
	return &render.Sheet{
		Path: "bonus.png",
		Frames: []render.Frame{
			{Src: cellRect(0, 0), Glyph: "♦ ", Color: core.ColorBrightRed, Shape: render.ShapeCircle},
			{Src: cellRect(1, 0), Glyph: "♦ ", Color: core.ColorBrightMagenta, Shape: render.ShapeCircle},
		},
	}
}

func heartSheet() *render.Sheet {
	return &render.Sheet{
		Path:   "heart.png",
		Frames: []render.Frame{{Src: cellRect(0, 0), Glyph: "♥ ", Color: core.ColorRed, Shape: render.ShapeCircle}},
	}
}

// Sheets returns every sprite sheet the game draws from, keyed by role.
func Sheets() map[string]*render.Sheet {
	return map[string]*render.Sheet{
		"tiles":  tileSheet(),
		"player": playerSheet(),
		"ghosts": ghostSheet(),
		"bonus":  bonusSheet(),
		"heart":  heartSheet(),
	}
}

// textures holds the loaded sheets for one canvas.
type textures struct {
	canvas render.Canvas
	tiles  render.Texture
	player render.Texture
	ghosts render.Texture
	bonus  render.Texture
	heart  render.Texture
}

func loadTextures(c render.Canvas) (*textures, error) {
	sheets := Sheets()
	t := &textures{canvas: c}
	slots := []struct {
		name string
		dst  *render.Texture
	}{
		{"tiles", &t.tiles},
		{"player", &t.player},
		{"ghosts", &t.ghosts},
		{"bonus", &t.bonus},
		{"heart", &t.heart},
	}
	for _, slot := range slots {
		tex, err := c.LoadTexture(sheets[slot.name])
		if err != nil {
			return nil, fmt.Errorf("pacman: load %s texture: %w", slot.name, err)
		}
		*slot.dst = tex
	}
	return t, nil
}

// playerPose returns rotation and flip for a right-facing sprite.
func playerPose(d actor.Direction) (float64, render.Flip) {
	switch d {
	case actor.DirDown:
		return 90, render.FlipNone
	case actor.DirLeft:
		return 0, render.FlipHorizontal
	case actor.DirUp:
		return 270, render.FlipNone
	default:
		return 0, render.FlipNone
	}
}

// ghostSrc picks the sheet cell for a ghost's current look.
func ghostSrc(g *actor.Ghost, powerLeft float64) core.Rect {
	row := g.ID % ghostIdentities
	if g.Scared {
		row = rowScared
		if powerLeft < powerWarning && int(powerLeft*4)%2 == 0 {
			row = rowBlink
		}
	}
	return cellRect(g.Anim.Frame(), row)
}
