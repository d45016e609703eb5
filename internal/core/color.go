package core

// Color is a named palette entry. Backends translate it: the terminal maps it
// to ANSI 256-color codes, the window maps it to RGBA.
type Color uint8

// Palette used by tiles, sprites and HUD text.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorPink
	ColorNavy
)

// RGB returns the 8-bit red, green and blue components of c.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorRed:
		return 205, 0, 0
	case ColorGreen:
		return 0, 205, 0
	case ColorYellow:
		return 205, 205, 0
	case ColorBlue:
		return 33, 33, 222
	case ColorMagenta:
		return 205, 0, 205
	case ColorCyan:
		return 0, 205, 205
	case ColorWhite:
		return 229, 229, 229
	case ColorBrightRed:
		return 255, 0, 0
	case ColorBrightGreen:
		return 0, 255, 0
	case ColorBrightYellow:
		return 255, 255, 0
	case ColorBrightBlue:
		return 92, 92, 255
	case ColorBrightMagenta:
		return 255, 0, 255
	case ColorBrightCyan:
		return 0, 255, 255
	case ColorBrightWhite:
		return 255, 255, 255
	case ColorOrange:
		return 255, 184, 82
	case ColorGray:
		return 138, 138, 138
	case ColorPink:
		return 255, 184, 255
	case ColorNavy:
		return 0, 0, 128
	default:
		return 255, 255, 255
	}
}
