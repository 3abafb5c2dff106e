package core

import "strconv"

// Color is the logical tint of a cell. The zero value leaves the cell in
// the frontend's default foreground.
type Color uint8

const (
	ColorDefault Color = iota

	// base tones
	ColorWhite
	ColorGray
	ColorRed
	ColorOrange
	ColorYellow
	ColorGreen
	ColorCyan
	ColorBlue
	ColorMagenta

	// highlights for things the player must notice
	ColorBrightWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightGreen
	ColorBrightCyan
	ColorBrightBlue
)

var colorNames = [...]string{
	ColorDefault:      "default",
	ColorWhite:        "white",
	ColorGray:         "gray",
	ColorRed:          "red",
	ColorOrange:       "orange",
	ColorYellow:       "yellow",
	ColorGreen:        "green",
	ColorCyan:         "cyan",
	ColorBlue:         "blue",
	ColorMagenta:      "magenta",
	ColorBrightWhite:  "bright-white",
	ColorBrightRed:    "bright-red",
	ColorBrightYellow: "bright-yellow",
	ColorBrightGreen:  "bright-green",
	ColorBrightCyan:   "bright-cyan",
	ColorBrightBlue:   "bright-blue",
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "color(" + strconv.Itoa(int(c)) + ")"
}
