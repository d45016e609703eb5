// Package gui runs games in a desktop window with Ebitengine.
package gui

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png" // sprite sheets
	"math"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/render"
)

// Debug font cell size.
const (
	glyphW = 6
	glyphH = 16
)

// texture is a sheet backed by an ebiten image.
type texture struct {
	sheet *render.Sheet
	img   *ebiten.Image
}

func (t *texture) Sheet() *render.Sheet { return t.sheet }

// Canvas implements render.Canvas on an ebiten image. Sheets are read from
// the assets directory when the file exists and painted from their frame
// shapes otherwise.
type Canvas struct {
	assets string
	target *ebiten.Image
	text   *ebiten.Image
	white  *ebiten.Image
}

// NewCanvas creates a canvas loading sheets from assetsDir.
func NewCanvas(assetsDir string) *Canvas {
	return &Canvas{assets: assetsDir}
}

// SetTarget sets the image drawn on until the next call.
func (c *Canvas) SetTarget(dst *ebiten.Image) {
	c.target = dst
}

// LoadTexture implements render.Canvas.
func (c *Canvas) LoadTexture(sheet *render.Sheet) (render.Texture, error) {
	if sheet == nil || len(sheet.Frames) == 0 {
		return nil, render.ErrEmptySheet
	}
	if c.assets != "" && sheet.Path != "" {
		path := filepath.Join(c.assets, sheet.Path)
		if _, err := os.Stat(path); err == nil {
			img, _, err := ebitenutil.NewImageFromFile(path)
			if err != nil {
				return nil, fmt.Errorf("gui: load %s: %w", path, err)
			}
			w, h := sheet.Bounds()
			if b := img.Bounds(); b.Dx() < w || b.Dy() < h {
				return nil, fmt.Errorf("gui: %s is %dx%d, frames need %dx%d", path, b.Dx(), b.Dy(), w, h)
			}
			return &texture{sheet: sheet, img: img}, nil
		}
	}
	return &texture{sheet: sheet, img: c.paint(sheet)}, nil
}

// paint synthesises an image for sheet from the frame shapes.
func (c *Canvas) paint(sheet *render.Sheet) *ebiten.Image {
	w, h := sheet.Bounds()
	img := ebiten.NewImage(w, h)
	for _, f := range sheet.Frames {
		c.paintFrame(img, f)
	}
	return img
}

func (c *Canvas) paintFrame(img *ebiten.Image, f render.Frame) {
	clr := rgba(f.Color)
	x, y := float32(f.Src.X), float32(f.Src.Y)
	w, h := float32(f.Src.W), float32(f.Src.H)
	cx, cy := x+w/2, y+h/2

	switch f.Shape {
	case render.ShapeRect:
		vector.DrawFilledRect(img, x+1, y+1, w-2, h-2, clr, false)
	case render.ShapeCircle:
		vector.DrawFilledCircle(img, cx, cy, w/4, clr, true)
	case render.ShapeDot:
		vector.DrawFilledCircle(img, cx, cy, w/10, clr, true)
	case render.ShapeGhost:
		r := w/2 - 2
		vector.DrawFilledCircle(img, cx, cy-h/8, r, clr, true)
		vector.DrawFilledRect(img, cx-r, cy-h/8, 2*r, h/2+h/8-2, clr, false)
		eye := color.RGBA{255, 255, 255, 255}
		vector.DrawFilledCircle(img, cx-r/2, cy-h/8, w/10, eye, true)
		vector.DrawFilledCircle(img, cx+r/2, cy-h/8, w/10, eye, true)
	case render.ShapePacman:
		r := w/2 - 2
		vector.DrawFilledCircle(img, cx, cy, r, clr, true)
		frame := 0
		if f.Src.W > 0 {
			frame = f.Src.X / f.Src.W
		}
		c.clearMouth(img, cx, cy, w/2, mouthAngle(frame))
	}
}

// mouthAngle is the half opening of the mouth in radians for animation
// frame i.
func mouthAngle(i int) float64 {
	return float64(i%3) * 20 * math.Pi / 180
}

// clearMouth erases a right-facing wedge of half angle a from (cx, cy).
func (c *Canvas) clearMouth(img *ebiten.Image, cx, cy, reach float32, a float64) {
	if a <= 0 {
		return
	}
	if c.white == nil {
		base := ebiten.NewImage(3, 3)
		base.Fill(color.White)
		c.white = base.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	dy := reach * float32(math.Tan(a))
	vs := []ebiten.Vertex{
		{DstX: cx, DstY: cy, SrcX: 1, SrcY: 1, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1},
		{DstX: cx + reach, DstY: cy - dy, SrcX: 1, SrcY: 1, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1},
		{DstX: cx + reach, DstY: cy + dy, SrcX: 1, SrcY: 1, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1},
	}
	op := &ebiten.DrawTrianglesOptions{Blend: ebiten.BlendClear}
	img.DrawTriangles(vs, []uint16{0, 1, 2}, c.white, op)
}

// DrawSprite implements render.Canvas.
func (c *Canvas) DrawSprite(tex render.Texture, src, dst core.Rect, rotation float64, flip render.Flip) {
	t, ok := tex.(*texture)
	if !ok || c.target == nil || src.W <= 0 || src.H <= 0 {
		return
	}
	sub := t.img.SubImage(image.Rect(src.X, src.Y, src.Right(), src.Bottom())).(*ebiten.Image)
	op := &ebiten.DrawImageOptions{GeoM: spriteGeoM(src, dst, rotation, flip)}
	op.Filter = ebiten.FilterNearest
	c.target.DrawImage(sub, op)
}

// spriteGeoM maps a src-sized image onto dst: rotated clockwise about its
// center, flipped, then scaled.
func spriteGeoM(src, dst core.Rect, rotation float64, flip render.Flip) ebiten.GeoM {
	var g ebiten.GeoM
	w, h := float64(src.W), float64(src.H)
	g.Translate(-w/2, -h/2)
	g.Rotate(rotation * math.Pi / 180)
	switch flip {
	case render.FlipHorizontal:
		g.Scale(-1, 1)
	case render.FlipVertical:
		g.Scale(1, -1)
	}
	g.Scale(float64(dst.W)/w, float64(dst.H)/h)
	g.Translate(float64(dst.X)+float64(dst.W)/2, float64(dst.Y)+float64(dst.H)/2)
	return g
}

// DrawText implements render.Canvas with the debug font scaled to size.
func (c *Canvas) DrawText(x, y int, text string, size int, clr core.Color, align render.Align) {
	if c.target == nil || text == "" {
		return
	}
	w := textWidth(text)
	if c.text == nil || c.text.Bounds().Dx() < w {
		c.text = ebiten.NewImage(max(w, 256), glyphH)
	}
	c.text.Clear()
	ebitenutil.DebugPrintAt(c.text, text, 0, 0)

	scale := textScale(size)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(textOrigin(x, float64(w)*scale, align), float64(y))
	op.ColorScale.ScaleWithColor(rgba(clr))
	c.target.DrawImage(c.text.SubImage(image.Rect(0, 0, w, glyphH)).(*ebiten.Image), op)
}

func textWidth(text string) int {
	return len([]rune(text)) * glyphW
}

func textScale(size int) float64 {
	if size <= 0 {
		return 1
	}
	return float64(size) / glyphH
}

// textOrigin returns the left edge of text width wide anchored at x.
func textOrigin(x int, width float64, align render.Align) float64 {
	switch align {
	case render.AlignCenter:
		return float64(x) - width/2
	case render.AlignRight:
		return float64(x) - width
	}
	return float64(x)
}

// Clear implements render.Canvas.
func (c *Canvas) Clear() {
	if c.target != nil {
		c.target.Fill(color.Black)
	}
}

// Present implements render.Canvas. Ebitengine shows the frame once Draw
// returns.
func (c *Canvas) Present() {}

func rgba(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
