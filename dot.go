package lockpattern

import "github.com/gogpu/gg"

// DotColor is the display state of a dot.
type DotColor uint8

const (
	// Unselected is the color of a dot that is not part of the pattern.
	Unselected DotColor = iota

	// Selected is the color of a dot on the selection stack.
	Selected
)

// String returns the color name for debugging.
func (c DotColor) String() string {
	switch c {
	case Unselected:
		return "Unselected"
	case Selected:
		return "Selected"
	default:
		return "Unknown"
	}
}

// Dot is one cell of the pattern grid.
// Position and Radius are fixed when the grid is built.
type Dot struct {
	Position gg.Point
	Radius   float64

	selected bool
	color    DotColor
}

// IsSelected reports whether the dot is part of the current pattern.
func (d Dot) IsSelected() bool {
	return d.selected
}

// Color returns the display state of the dot.
func (d Dot) Color() DotColor {
	return d.color
}

func (d *Dot) mark() {
	d.selected = true
	d.color = Selected
}

func (d *Dot) reset() {
	d.selected = false
	d.color = Unselected
}
