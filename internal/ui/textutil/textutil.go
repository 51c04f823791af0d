// Package textutil sizes text to terminal columns for table-like rows.
package textutil

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies, ignoring ANSI
// escape codes.
func Width(s string) int {
	return lipgloss.Width(s)
}

// Truncate shortens s to at most width columns, ending in Ellipsis when cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, Ellipsis)
}

// Column fits plain text s into exactly width columns, padding on the right
// or truncating.
func Column(s string, width int) string {
	return runewidth.FillRight(Truncate(s, width), width)
}

// RightColumn is Column with padding on the left, for numbers.
func RightColumn(s string, width int) string {
	return runewidth.FillLeft(Truncate(s, width), width)
}
