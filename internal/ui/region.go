package ui

import tea "github.com/charmbracelet/bubbletea"

// Region is the screen rectangle a widget was last rendered into.
// Coordinates are terminal cells; the zero Region contains nothing.
type Region struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside the region.
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Row returns the region-relative row of y, or -1 when y is outside.
func (r Region) Row(y int) int {
	if y < r.Y || y >= r.Y+r.Height {
		return -1
	}
	return y - r.Y
}

// isPress reports whether msg is a left-button press, the only mouse event
// widgets react to.
func isPress(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}
