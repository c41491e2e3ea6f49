package core

// Color is a cell's foreground color. The zero value is the terminal default.
type Color uint8

// Palette entries
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
	colorCount
)

// ansi holds the ANSI 256-color code of each palette entry.
var ansi = [colorCount]string{
	ColorRed:           "1",
	ColorGreen:         "2",
	ColorYellow:        "3",
	ColorBlue:          "4",
	ColorMagenta:       "5",
	ColorCyan:          "6",
	ColorWhite:         "7",
	ColorBrightRed:     "9",
	ColorBrightGreen:   "10",
	ColorBrightYellow:  "11",
	ColorBrightBlue:    "12",
	ColorBrightMagenta: "13",
	ColorBrightCyan:    "14",
	ColorBrightWhite:   "15",
	ColorOrange:        "208",
	ColorGray:          "245",
}

// ANSI returns the ANSI 256-color code, or "" for the default color and
// values outside the palette.
func (c Color) ANSI() string {
	if c >= colorCount {
		return ""
	}
	return ansi[c]
}

// Colors returns every palette entry except the default.
func Colors() []Color {
	out := make([]Color, 0, colorCount-1)
	for c := ColorDefault + 1; c < colorCount; c++ {
		out = append(out, c)
	}
	return out
}
