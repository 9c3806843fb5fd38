package render

import "github.com/Faultbox/sunspiral/internal/sim/palette"

// Background is the frame clear color.
var Background = palette.RGB{R: 30, G: 30, B: 30}

// Canvas is the drawing surface the scene renders to. The GL canvas in
// engine/canvas implements it; tests substitute a recording fake.
//
// Coordinates are pixels with the origin at the top-left. Draw order is
// submission order.
type Canvas interface {
	// Clear fills the whole surface with a color.
	Clear(c palette.RGB)

	// FillCircle draws a filled circle centered at (x, y).
	FillCircle(x, y, radius int, c palette.RGB)

	// StrokeCircle draws a circle outline of the given line width.
	StrokeCircle(x, y, radius, lineWidth int, c palette.RGB)

	// FillRect draws a filled rectangle with the given opacity (0-255).
	FillRect(x, y, w, h int, c palette.RGB, alpha uint8)

	// Text draws a line of text with its top-left corner at (x, y).
	Text(x, y int, s string, c palette.RGB)
}
