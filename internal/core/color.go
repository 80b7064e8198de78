package core

// Color represents a foreground color for a screen cell.
// The platform maps each value onto an ANSI 256-color code.
type Color uint8

// Palette shared by all games. Games pick colors from here so the platform
// stays the only place that knows about terminal escape codes.
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
	ColorBrightWhite
	ColorOrange
	ColorSlateBlue
	ColorGray
)
