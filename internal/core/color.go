package core

// Color represents a foreground color for a screen cell.
// Frontends map it to lipgloss ANSI colours or RGBA.
type Color uint8

// Predefined colors for game elements.
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
)

// RGB returns an approximate 8-bit RGB triple for the colour, used by the
// desktop frontend.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorRed:
		return 170, 0, 0
	case ColorGreen:
		return 0, 170, 0
	case ColorYellow:
		return 215, 175, 0
	case ColorBlue:
		return 0, 0, 170
	case ColorMagenta:
		return 170, 0, 170
	case ColorCyan:
		return 0, 170, 170
	case ColorWhite:
		return 200, 200, 200
	case ColorBrightRed:
		return 255, 85, 85
	case ColorBrightGreen:
		return 85, 255, 85
	case ColorBrightYellow:
		return 255, 255, 85
	case ColorBrightBlue:
		return 85, 85, 255
	case ColorBrightMagenta:
		return 255, 85, 255
	case ColorBrightCyan:
		return 85, 255, 255
	case ColorBrightWhite:
		return 255, 255, 255
	case ColorOrange:
		return 255, 135, 0
	case ColorGray:
		return 128, 128, 128
	default:
		return 230, 230, 230
	}
}
