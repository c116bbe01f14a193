package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for scene elements.
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

// ShellColors is the per-shell palette used by the terminal renderer,
// innermost shell first.
var ShellColors = [...]Color{
	ColorBrightYellow,
	ColorYellow,
	ColorOrange,
	ColorBrightGreen,
	ColorBrightCyan,
	ColorBrightBlue,
	ColorBrightMagenta,
}

// ShellColor returns the palette entry for shell i, wrapping around.
func ShellColor(i int) Color {
	if i < 0 {
		return ColorDefault
	}
	return ShellColors[i%len(ShellColors)]
}
