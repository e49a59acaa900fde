package core

// Color is a foreground color for a screen cell.
// ColorDefault leaves the terminal's own foreground.
type Color uint8

// Colors used by the arcade. Token colors follow the candy palette,
// the rest are for frames, text and accents.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGray
	ColorBrightRed
	ColorOrange
	ColorBrightYellow
	ColorBrightGreen
	ColorBrightBlue
	ColorPurple
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite

	// ColorCount is the number of defined colors.
	ColorCount
)

// ansi256 maps each color to its ANSI 256-color index.
var ansi256 = [ColorCount]string{
	ColorRed:           "1",
	ColorGray:          "245",
	ColorBrightRed:     "9",
	ColorOrange:        "208",
	ColorBrightYellow:  "11",
	ColorBrightGreen:   "10",
	ColorBrightBlue:    "12",
	ColorPurple:        "129",
	ColorBrightMagenta: "13",
	ColorBrightCyan:    "14",
	ColorBrightWhite:   "15",
}

// Code returns the ANSI 256-color index of c as a string.
// It is empty for ColorDefault and for values outside the palette.
func (c Color) Code() string {
	if c >= ColorCount {
		return ""
	}
	return ansi256[c]
}
