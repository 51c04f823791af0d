// Package disclosure tracks which panels of an accordion are open.
//
// A Group owns its open set exclusively. Callers render panels by asking
// IsOpen for each panel id and passing the answer down explicitly; the group
// knows nothing about what is rendered.
package disclosure

import (
	"slices"
	"sort"
)

// Mode controls how many panels may be open at once.
type Mode int

const (
	// Single allows at most one open panel; opening one closes the rest.
	Single Mode = iota
	// Multiple lets panels open and close independently.
	Multiple
)

func (m Mode) String() string {
	switch m {
	case Single:
		return "single"
	case Multiple:
		return "multiple"
	default:
		return "unknown"
	}
}

// ParseMode maps "single" / "multiple" to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "single":
		return Single, true
	case "multiple":
		return Multiple, true
	}
	return Single, false
}

// Group is the open set of one accordion.
type Group struct {
	mode Mode
	// open holds open panel ids in the order they were opened.
	open []string
}

// NewGroup creates a group with the given panels open.
// In Single mode only the last of initiallyOpen stays open.
func NewGroup(mode Mode, initiallyOpen ...string) *Group {
	g := &Group{mode: mode}
	for _, id := range initiallyOpen {
		g.SetOpen(id)
	}
	return g
}

// Mode returns the group's mode.
func (g *Group) Mode() Mode {
	return g.mode
}

// SetMode switches the mode. Going to Single keeps only the most recently
// opened panel.
func (g *Group) SetMode(mode Mode) {
	g.mode = mode
	if mode == Single && len(g.open) > 1 {
		g.open = g.open[len(g.open)-1:]
	}
}

// IsOpen reports whether id is open.
func (g *Group) IsOpen(id string) bool {
	return slices.Contains(g.open, id)
}

// SetOpen opens id. In Single mode every other panel closes.
func (g *Group) SetOpen(id string) {
	if g.mode == Single {
		g.open = append(g.open[:0], id)
		return
	}
	if !g.IsOpen(id) {
		g.open = append(g.open, id)
	}
}

// Close closes id if it is open.
func (g *Group) Close(id string) {
	g.open = slices.DeleteFunc(g.open, func(o string) bool { return o == id })
}

// CloseAll empties the open set.
func (g *Group) CloseAll() {
	g.open = g.open[:0]
}

// Toggle flips id.
//
// Multiple: id is added if closed, removed if open.
// Single: the open set becomes {id}, unless id was already the sole open
// panel, in which case the set empties.
func (g *Group) Toggle(id string) {
	if g.IsOpen(id) {
		g.Close(id)
		return
	}
	g.SetOpen(id)
}

// Open returns a sorted snapshot of the open panel ids.
func (g *Group) Open() []string {
	out := make([]string, len(g.open))
	copy(out, g.open)
	sort.Strings(out)
	return out
}

// Len returns the number of open panels.
func (g *Group) Len() int {
	return len(g.open)
}
