package core

// Color is a foreground color for a screen cell. The platform layer maps
// these to terminal styles; the simulation only ever names them.
type Color uint8

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
	ColorBrightMagenta
	ColorOrange
	ColorGold
	ColorGray
	ColorDarkRed
)
