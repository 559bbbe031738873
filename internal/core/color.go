package core

// Color is a foreground color for a screen cell. The host maps each value
// to a terminal color; unknown values render with the terminal default.
type Color uint8

// Colors used by the playfield.
const (
	ColorDefault      Color = iota
	ColorGreen              // green pipes
	ColorBrightRed          // red pipes
	ColorYellow             // ground
	ColorBrightYellow       // body
)
