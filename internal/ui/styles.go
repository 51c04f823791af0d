package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for focused widgets
	ColorDanger    = "196" // Red - sold out
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorLeaf      = "34"  // Green - organic
	ColorEarth     = "172" // Amber - local
	ColorSky       = "39"  // Blue - seasonal
)

// Styles contains shared style definitions used across views.
// None of them add borders or vertical padding: mouse hit-testing counts one
// rendered line per row.
var Styles = struct {
	Title    lipgloss.Style // Bold accent color - screen title
	Subtitle lipgloss.Style // Muted - tagline under the title
	Label    lipgloss.Style // Widget captions
	Focused  lipgloss.Style // Focused widget / cursor row
	Selected lipgloss.Style // Committed value inside an open menu
	Muted    lipgloss.Style // Dimmed text
	Normal   lipgloss.Style // Normal text
	Hint     lipgloss.Style // Help/footer text
	Empty    lipgloss.Style // Empty state text (muted, italic)
	Price    lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Focused: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Price: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
}

// badgeStyle returns the pill style for a badge variant.
func badgeStyle(v BadgeVariant) lipgloss.Style {
	base := lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("0"))
	switch v {
	case BadgeOrganic:
		return base.Background(lipgloss.Color(ColorLeaf))
	case BadgeLocal:
		return base.Background(lipgloss.Color(ColorEarth))
	case BadgeSeasonal:
		return base.Background(lipgloss.Color(ColorSky))
	case BadgeSoldOut:
		return base.Background(lipgloss.Color(ColorDanger)).Foreground(lipgloss.Color("15"))
	default:
		return base.Background(lipgloss.Color(ColorMuted)).Foreground(lipgloss.Color("15"))
	}
}
