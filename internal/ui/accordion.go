package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"freshmarket/internal/disclosure"
)

// Panel is one collapsible section. Title and Body are already translated.
type Panel struct {
	ID    string
	Title string
	Meta  string // short text after the title, e.g. a product count
	Body  string
}

// AccordionView renders panels whose open state lives in a disclosure.Group.
// The view never inspects rendered content; it asks the group for each
// panel's state and passes it to renderPanel.
type AccordionView struct {
	Panels []Panel
	Group  *disclosure.Group
	Cursor int

	focused bool
	region  Region
}

// Ensure AccordionView implements View.
var _ View = (*AccordionView)(nil)

// NewAccordionView creates an accordion over group.
func NewAccordionView(group *disclosure.Group) *AccordionView {
	return &AccordionView{Group: group}
}

// Init implements View.
func (a *AccordionView) Init() tea.Cmd {
	return nil
}

// Focus gives the accordion keyboard input.
func (a *AccordionView) Focus() {
	a.focused = true
}

// Blur takes keyboard input away.
func (a *AccordionView) Blur() tea.Cmd {
	a.focused = false
	return nil
}

// Focused reports whether the accordion has keyboard input.
func (a *AccordionView) Focused() bool {
	return a.focused
}

// SetRegion records where the accordion was rendered.
func (a *AccordionView) SetRegion(r Region) {
	a.region = r
}

// SetPanels replaces the panels, clamping the cursor.
func (a *AccordionView) SetPanels(panels []Panel) {
	a.Panels = panels
	if a.Cursor >= len(panels) {
		a.Cursor = max(len(panels)-1, 0)
	}
}

// Update implements View.
func (a *AccordionView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !a.focused {
			return a, nil
		}
		return a, a.handleKey(msg.String())
	case tea.MouseMsg:
		if !isPress(msg) || !a.region.Contains(msg.X, msg.Y) {
			return a, nil
		}
		row := a.region.Row(msg.Y)
		for i, header := range a.headerRows() {
			if header == row {
				a.Cursor = i
				return a, a.toggle(i)
			}
		}
	}
	return a, nil
}

func (a *AccordionView) handleKey(k string) tea.Cmd {
	switch k {
	case "down", "j":
		if a.Cursor < len(a.Panels)-1 {
			a.Cursor++
		}
	case "up", "k":
		if a.Cursor > 0 {
			a.Cursor--
		}
	case "g", "home":
		a.Cursor = 0
	case "G", "end":
		if len(a.Panels) > 0 {
			a.Cursor = len(a.Panels) - 1
		}
	case "enter", " ":
		return a.toggle(a.Cursor)
	case "m":
		next := disclosure.Multiple
		if a.Group.Mode() == disclosure.Multiple {
			next = disclosure.Single
		}
		a.Group.SetMode(next)
		return interaction("accordion.mode", map[string]string{"mode": next.String()})
	case "c":
		a.Group.CloseAll()
		return interaction("accordion.collapse_all", nil)
	}
	return nil
}

func (a *AccordionView) toggle(i int) tea.Cmd {
	if i < 0 || i >= len(a.Panels) {
		return nil
	}
	id := a.Panels[i].ID
	a.Group.Toggle(id)
	state := "closed"
	if a.Group.IsOpen(id) {
		state = "open"
	}
	return interaction("accordion.toggle", map[string]string{"panel": id, "state": state})
}

// headerRows returns the row of each panel header relative to the
// accordion's first line.
func (a *AccordionView) headerRows() []int {
	rows := make([]int, len(a.Panels))
	y := 0
	for i, p := range a.Panels {
		rows[i] = y
		y++
		if a.Group.IsOpen(p.ID) {
			y += bodyHeight(p.Body)
		}
	}
	return rows
}

func bodyHeight(body string) int {
	if body == "" {
		return 0
	}
	return lipgloss.Height(body)
}

// View implements View.
func (a *AccordionView) View() string {
	parts := make([]string, 0, len(a.Panels))
	for i, p := range a.Panels {
		parts = append(parts, renderPanel(p, a.Group.IsOpen(p.ID), a.focused && i == a.Cursor))
	}
	return strings.Join(parts, "\n")
}

// renderPanel draws one header line and, when open, the indented body.
func renderPanel(p Panel, open, focused bool) string {
	glyph := "▸"
	if open {
		glyph = "▾"
	}
	header := glyph + " " + p.Title
	if focused {
		header = Styles.Focused.Render(header)
	} else {
		header = Styles.Normal.Render(header)
	}
	if p.Meta != "" {
		header += "  " + Styles.Muted.Render(p.Meta)
	}
	if !open || p.Body == "" {
		return header
	}
	lines := strings.Split(p.Body, "\n")
	for i, l := range lines {
		lines[i] = "    " + l
	}
	return header + "\n" + strings.Join(lines, "\n")
}
