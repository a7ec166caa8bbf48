package core

// Color is a logical foreground color for a screen cell. The platform layer
// maps it onto the active theme.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGrid          // board lines
	ColorMarkX         // X marks
	ColorMarkO         // O marks
	ColorCursor        // cell under the cursor
	ColorWinLine       // marks on the completed line
	ColorMuted         // hints, help text
	ColorTitle         // headers
	ColorAlert         // rejected input
)
