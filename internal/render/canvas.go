// Package render defines the drawing collaborator the game talks to and the
// sprite sheet descriptors shared by the terminal and window backends.
//
// Coordinates are logical pixels. Backends scale them to whatever they draw on.
package render

import (
	"errors"
	"math"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// ErrEmptySheet is returned when a sheet without frames is loaded.
var ErrEmptySheet = errors.New("render: sprite sheet has no frames")

// Flip mirrors a sprite after rotation.
type Flip int

const (
	FlipNone Flip = iota
	FlipHorizontal
	FlipVertical
)

// Align anchors text at its x coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Texture is a loaded sprite sheet.
type Texture interface {
	Sheet() *Sheet
}

// Canvas is the render collaborator. DrawSprite copies the src rect of the
// texture into the dst rect, rotated clockwise by rotation degrees around its
// center and then flipped.
type Canvas interface {
	LoadTexture(sheet *Sheet) (Texture, error)
	DrawSprite(tex Texture, src, dst core.Rect, rotation float64, flip Flip)
	DrawText(x, y int, text string, size int, color core.Color, align Align)
	Clear()
	Present()
}

// Orientation folds rotation and flip into the direction a right-facing
// sprite ends up looking: 0 right, 1 down, 2 left, 3 up.
func Orientation(rotation float64, flip Flip) int {
	o := int(math.Round(rotation/90)) % 4
	if o < 0 {
		o += 4
	}
	switch flip {
	case FlipHorizontal:
		if o == 0 || o == 2 {
			o = 2 - o
		}
	case FlipVertical:
		if o == 1 || o == 3 {
			o = 4 - o
		}
	}
	return o
}

// sheetTexture is the Texture of backends that draw straight from the
// descriptors.
type sheetTexture struct {
	sheet *Sheet
}

func (t sheetTexture) Sheet() *Sheet { return t.sheet }

// NewTexture wraps a sheet as a Texture.
func NewTexture(sheet *Sheet) (Texture, error) {
	if sheet == nil || len(sheet.Frames) == 0 {
		return nil, ErrEmptySheet
	}
	return sheetTexture{sheet: sheet}, nil
}
