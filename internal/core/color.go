package core

// Color is the foreground color of a screen cell.
// The platform layer maps it to an ANSI 256-color code.
type Color uint8

// Colors used by the playfield, the pieces and the HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorBrightRed
)
