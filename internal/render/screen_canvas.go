package render

import (
	"github.com/vovakirdan/tui-pacman/internal/core"
)

// ScreenCanvas draws into a terminal Screen. One tile maps to two columns
// and one row, so a column covers tile/2 logical pixels.
type ScreenCanvas struct {
	screen *core.Screen
	tile   int
	frames int
}

// NewScreenCanvas creates a canvas over screen for tiles of tile pixels.
func NewScreenCanvas(screen *core.Screen, tile int) *ScreenCanvas {
	if tile < 2 {
		tile = 2
	}
	return &ScreenCanvas{screen: screen, tile: tile}
}

// Screen returns the target buffer.
func (c *ScreenCanvas) Screen() *core.Screen {
	return c.screen
}

// SetScreen retargets the canvas.
func (c *ScreenCanvas) SetScreen(screen *core.Screen) {
	c.screen = screen
}

// Frames returns how many frames were presented.
func (c *ScreenCanvas) Frames() int {
	return c.frames
}

func (c *ScreenCanvas) colWidth() int {
	return c.tile / 2
}

// LoadTexture implements Canvas.
func (c *ScreenCanvas) LoadTexture(sheet *Sheet) (Texture, error) {
	return NewTexture(sheet)
}

// DrawSprite implements Canvas. The glyph lands on the cell nearest to the
// sprite's top-left corner; blank runes leave what is underneath.
func (c *ScreenCanvas) DrawSprite(tex Texture, src, dst core.Rect, rotation float64, flip Flip) {
	if tex == nil || c.screen == nil {
		return
	}
	frame, ok := tex.Sheet().Lookup(src)
	if !ok {
		return
	}
	cw := c.colWidth()
	col := core.FloorDiv(dst.X+cw/2, cw)
	row := core.FloorDiv(dst.Y+c.tile/2, c.tile)

	x := col
	for _, r := range frame.GlyphFor(Orientation(rotation, flip)) {
		if r != ' ' {
			c.screen.SetCell(x, row, r, frame.Color)
		}
		x++
	}
}

// DrawText implements Canvas. Terminals have one font size, so size is
// ignored.
func (c *ScreenCanvas) DrawText(x, y int, text string, size int, color core.Color, align Align) {
	if c.screen == nil {
		return
	}
	col := core.FloorDiv(x, c.colWidth())
	row := core.FloorDiv(y, c.tile)
	n := len([]rune(text))
	switch align {
	case AlignCenter:
		col -= n / 2
	case AlignRight:
		col -= n
	}
	c.screen.DrawText(col, row, text, color)
}

// Clear implements Canvas.
func (c *ScreenCanvas) Clear() {
	if c.screen != nil {
		c.screen.Clear()
	}
}

// Present implements Canvas. The screen is read by the platform afterwards.
func (c *ScreenCanvas) Present() {
	c.frames++
}
