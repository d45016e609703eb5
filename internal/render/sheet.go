package render

import "github.com/vovakirdan/tui-pacman/internal/core"

// Shape is how a backend without an image file paints a frame.
type Shape int

const (
	ShapeNone Shape = iota
	ShapeRect
	ShapeCircle
	ShapeDot
	ShapeGhost
	ShapePacman
)

// Frame is one cell of a sprite sheet.
type Frame struct {
	Src   core.Rect
	Glyph string // terminal text, two columns wide
	// Facing overrides Glyph per Orientation (right, down, left, up) when set.
	Facing [4]string
	Color  core.Color
	Shape  Shape
}

// GlyphFor returns the terminal text for the frame drawn in orientation o.
func (f Frame) GlyphFor(o int) string {
	if o >= 0 && o < len(f.Facing) && f.Facing[o] != "" {
		return f.Facing[o]
	}
	return f.Glyph
}

// Sheet describes an image file cut into frames. Path is relative to the
// assets directory and may not exist; backends then synthesise the frames.
type Sheet struct {
	Path   string
	Frames []Frame
}

// Lookup finds the frame whose source rect is src.
func (s *Sheet) Lookup(src core.Rect) (Frame, bool) {
	for _, f := range s.Frames {
		if f.Src == src {
			return f, true
		}
	}
	return Frame{}, false
}

// Bounds returns the size of the image holding every frame.
func (s *Sheet) Bounds() (w, h int) {
	for _, f := range s.Frames {
		w = max(w, f.Src.Right())
		h = max(h, f.Src.Bottom())
	}
	return w, h
}
