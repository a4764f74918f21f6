package core

// Color is a named console color.
// ColorDefault means "whatever the terminal uses" and is never drawn at random.
type Color uint8

// Console colors, in classic console order.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorDarkBlue
	ColorDarkGreen
	ColorDarkCyan
	ColorDarkRed
	ColorDarkMagenta
	ColorDarkYellow
	ColorGray
	ColorDarkGray
	ColorBlue
	ColorGreen
	ColorCyan
	ColorRed
	ColorMagenta
	ColorYellow
	ColorWhite
)

var colorNames = [...]string{
	ColorDefault:     "Default",
	ColorBlack:       "Black",
	ColorDarkBlue:    "DarkBlue",
	ColorDarkGreen:   "DarkGreen",
	ColorDarkCyan:    "DarkCyan",
	ColorDarkRed:     "DarkRed",
	ColorDarkMagenta: "DarkMagenta",
	ColorDarkYellow:  "DarkYellow",
	ColorGray:        "Gray",
	ColorDarkGray:    "DarkGray",
	ColorBlue:        "Blue",
	ColorGreen:       "Green",
	ColorCyan:        "Cyan",
	ColorRed:         "Red",
	ColorMagenta:     "Magenta",
	ColorYellow:      "Yellow",
	ColorWhite:       "White",
}

// String returns the color name.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "Unknown"
}

// palette holds the colors eligible for random draws.
var palette = [...]Color{
	ColorBlack,
	ColorDarkBlue,
	ColorDarkGreen,
	ColorDarkCyan,
	ColorDarkRed,
	ColorDarkMagenta,
	ColorDarkYellow,
	ColorGray,
	ColorDarkGray,
	ColorBlue,
	ColorGreen,
	ColorCyan,
	ColorRed,
	ColorMagenta,
	ColorYellow,
	ColorWhite,
}

// PaletteSize is the number of colors in the palette.
const PaletteSize = len(palette)

// Palette returns a copy of the 16 drawable colors.
func Palette() []Color {
	out := make([]Color, PaletteSize)
	copy(out, palette[:])
	return out
}

// PaletteColor returns the palette entry at index i (0 <= i < PaletteSize).
func PaletteColor(i int) Color {
	return palette[i]
}

// InPalette reports whether c is one of the drawable colors.
func (c Color) InPalette() bool {
	return c >= ColorBlack && c <= ColorWhite
}

// ANSI returns the 16-color ANSI index for c, or -1 for ColorDefault.
func (c Color) ANSI() int {
	switch c {
	case ColorBlack:
		return 0
	case ColorDarkRed:
		return 1
	case ColorDarkGreen:
		return 2
	case ColorDarkYellow:
		return 3
	case ColorDarkBlue:
		return 4
	case ColorDarkMagenta:
		return 5
	case ColorDarkCyan:
		return 6
	case ColorGray:
		return 7
	case ColorDarkGray:
		return 8
	case ColorRed:
		return 9
	case ColorGreen:
		return 10
	case ColorYellow:
		return 11
	case ColorBlue:
		return 12
	case ColorMagenta:
		return 13
	case ColorCyan:
		return 14
	case ColorWhite:
		return 15
	default:
		return -1
	}
}
