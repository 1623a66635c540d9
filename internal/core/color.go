package core

// Color is the foreground color of a screen cell. The platform layer maps
// each value to a terminal style.
type Color uint8

// Board palette. Comments name what the snake board draws with each color.
const (
	ColorDefault      Color = iota // Text
	ColorRed                       // Normal food, crash marker, game over
	ColorGreen                     // Snake body
	ColorYellow                    // Double food, pause overlay
	ColorBlue                      // Slow food
	ColorMagenta                   // Phase food, body and border while wall-pass is on
	ColorCyan                      // Speed food, effect timers
	ColorWhite                     // Idle overlay
	ColorBrightGreen               // Snake head, board filled
	ColorBrightYellow              // Title
	ColorOrange                    // Triple food
	ColorGray                      // Board border
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorBrightGreen:
		return "bright-green"
	case ColorBrightYellow:
		return "bright-yellow"
	case ColorOrange:
		return "orange"
	case ColorGray:
		return "gray"
	default:
		return "default"
	}
}
