package render

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

func testSheet() *Sheet {
	return &Sheet{
		Path: "test.png",
		Frames: []Frame{
			{Src: core.NewRect(0, 0, 32, 32), Glyph: "##", Color: core.ColorBlue},
			{Src: core.NewRect(32, 0, 32, 32), Glyph: "C ", Facing: [4]string{"R", "D", "L", "U"}, Color: core.ColorYellow},
		},
	}
}

func TestOrientation(t *testing.T) {
	tests := []struct {
		rotation float64
		flip     Flip
		expected int
	}{
		{0, FlipNone, 0},
		{90, FlipNone, 1},
		{180, FlipNone, 2},
		{270, FlipNone, 3},
		{-90, FlipNone, 3},
		{360, FlipNone, 0},
		{0, FlipHorizontal, 2},
		{90, FlipHorizontal, 1},
		{90, FlipVertical, 3},
		{270, FlipVertical, 1},
		{0, FlipVertical, 0},
	}
	for _, tt := range tests {
		if got := Orientation(tt.rotation, tt.flip); got != tt.expected {
			t.Errorf("Orientation(%v, %v) = %d, expected %d", tt.rotation, tt.flip, got, tt.expected)
		}
	}
}

func TestSheetLookupAndBounds(t *testing.T) {
	s := testSheet()
	f, ok := s.Lookup(core.NewRect(32, 0, 32, 32))
	if !ok || f.Color != core.ColorYellow {
		t.Errorf("Lookup() = %+v, %v", f, ok)
	}
	if _, ok := s.Lookup(core.NewRect(64, 0, 32, 32)); ok {
		t.Error("Lookup() of unknown rect should fail")
	}
	w, h := s.Bounds()
	if w != 64 || h != 32 {
		t.Errorf("Bounds() = %d,%d, expected 64,32", w, h)
	}
}

func TestLoadEmptySheet(t *testing.T) {
	c := NewScreenCanvas(core.NewScreen(4, 4), 32)
	if _, err := c.LoadTexture(&Sheet{}); !errors.Is(err, ErrEmptySheet) {
		t.Errorf("LoadTexture() error = %v, expected ErrEmptySheet", err)
	}
	if _, err := c.LoadTexture(nil); !errors.Is(err, ErrEmptySheet) {
		t.Errorf("LoadTexture(nil) error = %v, expected ErrEmptySheet", err)
	}
}

func TestScreenCanvasDrawSprite(t *testing.T) {
	screen := core.NewScreen(8, 3)
	c := NewScreenCanvas(screen, 32)
	tex, err := c.LoadTexture(testSheet())
	if err != nil {
		t.Fatalf("LoadTexture() error = %v", err)
	}

	c.Clear()
	c.DrawSprite(tex, core.NewRect(0, 0, 32, 32), core.NewRect(32, 32, 32, 32), 0, FlipNone)
	if got := screen.Row(1); got != "  ##    " {
		t.Errorf("Row(1) = %q", got)
	}
	if cell := screen.GetCell(2, 1); cell.Color != core.ColorBlue {
		t.Errorf("cell color = %v, expected blue", cell.Color)
	}

	// Half a tile to the right lands one column over and keeps the walls.
	c.DrawSprite(tex, core.NewRect(32, 0, 32, 32), core.NewRect(48, 32, 32, 32), 180, FlipNone)
	if got := screen.Row(1); got != "  #L    " {
		t.Errorf("Row(1) = %q", got)
	}

	// Unknown source rects draw nothing.
	c.DrawSprite(tex, core.NewRect(99, 0, 32, 32), core.NewRect(0, 0, 32, 32), 0, FlipNone)
	if got := screen.Row(0); got != "        " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenCanvasDrawText(t *testing.T) {
	screen := core.NewScreen(10, 2)
	c := NewScreenCanvas(screen, 32)

	c.DrawText(0, 0, "ab", 16, core.ColorWhite, AlignLeft)
	c.DrawText(80, 0, "xy", 16, core.ColorWhite, AlignCenter)
	c.DrawText(160, 32, "end", 16, core.ColorWhite, AlignRight)

	if got := screen.Row(0); got != "ab  xy    " {
		t.Errorf("Row(0) = %q", got)
	}
	if got := screen.Row(1); got != "       end" {
		t.Errorf("Row(1) = %q", got)
	}

	c.Present()
	c.Present()
	if c.Frames() != 2 {
		t.Errorf("Frames() = %d, expected 2", c.Frames())
	}
}
