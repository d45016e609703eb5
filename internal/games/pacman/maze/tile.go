// Package maze holds the tile grid: the tile table, level parsing, bounds-safe
// map access and BFS distance fields used by the ghost policies.
package maze

import "github.com/vovakirdan/tui-pacman/internal/core"

// Tile is the type of one grid cell.
type Tile uint8

const (
	TileSpace Tile = iota
	TileDot
	TilePowerPellet
	TileWallUp
	TileWallDown
	TileWallLeft
	TileWallRight
	TileWallHorizontal
	TileWallVertical
	TileCornerTopLeft
	TileCornerTopRight
	TileCornerBottomLeft
	TileCornerBottomRight
	TileTeeDown
	TileTeeUp
	TileTeeRight
	TileTeeLeft
	TileCross
	TileCapUp
	TileCapDown
	TileCapLeft
	TileCapRight
	TileGate
	TileBlock

	tileCount
)

// SpriteSize is the edge length of one tileset frame in pixels.
const SpriteSize = 32

// tilesetColumns is the number of frames per row in the tileset image.
const tilesetColumns = 8

// TileInfo describes one tile variant. The table below is the only place that
// decides accessibility and appearance; pathing and both renderers read it.
type TileInfo struct {
	Char       rune
	Name       string
	Accessible bool
	Src        core.Rect  // frame in the tileset image
	Glyph      string     // two terminal columns
	Color      core.Color // terminal color and fallback fill color
}

var tileTable = [tileCount]TileInfo{
	TileSpace:             {Char: '0', Name: "space", Accessible: true, Glyph: "  "},
	TileDot:               {Char: '.', Name: "dot", Accessible: true, Glyph: "· ", Color: core.ColorWhite},
	TilePowerPellet:       {Char: 'p', Name: "power pellet", Accessible: true, Glyph: "● ", Color: core.ColorBrightWhite},
	TileWallUp:            {Char: 'u', Name: "wall up", Glyph: "▀▀", Color: core.ColorBlue},
	TileWallDown:          {Char: 'd', Name: "wall down", Glyph: "▄▄", Color: core.ColorBlue},
	TileWallLeft:          {Char: 'l', Name: "wall left", Glyph: "▌ ", Color: core.ColorBlue},
	TileWallRight:         {Char: 'r', Name: "wall right", Glyph: " ▐", Color: core.ColorBlue},
	TileWallHorizontal:    {Char: '-', Name: "wall horizontal", Glyph: "──", Color: core.ColorBlue},
	TileWallVertical:      {Char: '|', Name: "wall vertical", Glyph: "│ ", Color: core.ColorBlue},
	TileCornerTopLeft:     {Char: '1', Name: "corner top left", Glyph: "┌─", Color: core.ColorBlue},
	TileCornerTopRight:    {Char: '2', Name: "corner top right", Glyph: "┐ ", Color: core.ColorBlue},
	TileCornerBottomLeft:  {Char: '3', Name: "corner bottom left", Glyph: "└─", Color: core.ColorBlue},
	TileCornerBottomRight: {Char: '4', Name: "corner bottom right", Glyph: "┘ ", Color: core.ColorBlue},
	TileTeeDown:           {Char: 'T', Name: "tee down", Glyph: "┬─", Color: core.ColorBlue},
	TileTeeUp:             {Char: 't', Name: "tee up", Glyph: "┴─", Color: core.ColorBlue},
	TileTeeRight:          {Char: 'E', Name: "tee right", Glyph: "├─", Color: core.ColorBlue},
	TileTeeLeft:           {Char: 'e', Name: "tee left", Glyph: "┤ ", Color: core.ColorBlue},
	TileCross:             {Char: '+', Name: "cross", Glyph: "┼─", Color: core.ColorBlue},
	TileCapUp:             {Char: '^', Name: "cap up", Glyph: "╷ ", Color: core.ColorBlue},
	TileCapDown:           {Char: 'v', Name: "cap down", Glyph: "╵ ", Color: core.ColorBlue},
	TileCapLeft:           {Char: '<', Name: "cap left", Glyph: "╶─", Color: core.ColorBlue},
	TileCapRight:          {Char: '>', Name: "cap right", Glyph: "─╴", Color: core.ColorBlue},
	TileGate:              {Char: '=', Name: "gate", Glyph: "══", Color: core.ColorPink},
	TileBlock:             {Char: '#', Name: "block", Glyph: "██", Color: core.ColorNavy},
}

// charToTile is the reverse of tileTable's Char column.
var charToTile = make(map[rune]Tile, tileCount)

func init() {
	for t := Tile(0); t < tileCount; t++ {
		info := &tileTable[t]
		info.Src = core.NewRect(int(t)%tilesetColumns*SpriteSize, int(t)/tilesetColumns*SpriteSize, SpriteSize, SpriteSize)
		charToTile[info.Char] = t
	}
}

// Info returns the table entry for t. Unknown values map to TileSpace.
func Info(t Tile) TileInfo {
	if t >= tileCount {
		return tileTable[TileSpace]
	}
	return tileTable[t]
}

// Tiles returns every tile variant in declaration order.
func Tiles() []Tile {
	ts := make([]Tile, tileCount)
	for i := range ts {
		ts[i] = Tile(i)
	}
	return ts
}

// IsAccessible reports whether agents may enter a cell holding t.
// It is the single movement predicate for the player and the ghosts.
func IsAccessible(t Tile) bool {
	return Info(t).Accessible
}

// IsCollectible reports whether t is eaten when the player enters it.
func IsCollectible(t Tile) bool {
	return t == TileDot || t == TilePowerPellet
}

// Char returns the level-file character for t.
func (t Tile) Char() rune {
	return Info(t).Char
}

// String returns the tile name.
func (t Tile) String() string {
	return Info(t).Name
}

// TileForChar maps a level-file character to its tile.
func TileForChar(r rune) (Tile, bool) {
	t, ok := charToTile[r]
	return t, ok
}
