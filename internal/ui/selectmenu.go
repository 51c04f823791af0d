package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"freshmarket/internal/selection"
)

// SelectView renders a selection.Menu as a dropdown.
//
// Keys (when focused): enter/space opens the menu or commits the highlighted
// option, j/k move the highlight, esc closes. A left click outside the
// widget's region while it is open closes it.
type SelectView[V comparable] struct {
	ID          string
	Title       string
	Placeholder string
	Menu        *selection.Menu[V]

	cursor  int
	focused bool
	region  Region
}

// Ensure SelectView implements View.
var _ View = (*SelectView[string])(nil)

// NewSelectView creates a dropdown for menu.
func NewSelectView[V comparable](id string, menu *selection.Menu[V]) *SelectView[V] {
	return &SelectView[V]{ID: id, Menu: menu}
}

// Init implements View.
func (s *SelectView[V]) Init() tea.Cmd {
	return nil
}

// Focus gives the widget keyboard input.
func (s *SelectView[V]) Focus() {
	s.focused = true
}

// Blur takes keyboard input away. Losing focus counts as an interaction
// outside the menu, so an open menu closes.
func (s *SelectView[V]) Blur() tea.Cmd {
	s.focused = false
	return s.outside()
}

// Focused reports whether the widget has keyboard input.
func (s *SelectView[V]) Focused() bool {
	return s.focused
}

// Cursor returns the highlighted option index.
func (s *SelectView[V]) Cursor() int {
	return s.cursor
}

// SetRegion records where the widget was rendered.
func (s *SelectView[V]) SetRegion(r Region) {
	s.region = r
}

// Region returns where the widget was last rendered.
func (s *SelectView[V]) Region() Region {
	return s.region
}

// Update implements View.
func (s *SelectView[V]) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !s.focused {
			return s, nil
		}
		return s, s.handleKey(msg.String())
	case tea.MouseMsg:
		if !isPress(msg) {
			return s, nil
		}
		return s, s.handleClick(msg.X, msg.Y)
	}
	return s, nil
}

func (s *SelectView[V]) handleKey(k string) tea.Cmd {
	switch k {
	case "enter", " ":
		if !s.Menu.IsOpen() {
			return s.open()
		}
		return s.commit(s.cursor)
	case "down", "j":
		if s.Menu.IsOpen() && s.cursor < len(s.Menu.Options())-1 {
			s.cursor++
		}
	case "up", "k":
		if s.Menu.IsOpen() && s.cursor > 0 {
			s.cursor--
		}
	case "esc":
		if s.Menu.IsOpen() {
			s.Menu.Close()
			return interaction("select.close", map[string]string{"select": s.ID})
		}
	}
	return nil
}

func (s *SelectView[V]) handleClick(x, y int) tea.Cmd {
	if !s.region.Contains(x, y) {
		return s.outside()
	}
	row := s.region.Row(y)
	if row == 0 {
		if s.Menu.IsOpen() {
			s.Menu.Close()
			return interaction("select.close", map[string]string{"select": s.ID})
		}
		return s.open()
	}
	if s.Menu.IsOpen() {
		return s.commit(row - 1)
	}
	return nil
}

func (s *SelectView[V]) open() tea.Cmd {
	s.Menu.Open()
	s.cursor = 0
	if v, ok := s.Menu.CurrentValue(); ok {
		if i := s.Menu.Index(v); i >= 0 {
			s.cursor = i
		}
	}
	return interaction("select.open", map[string]string{"select": s.ID})
}

func (s *SelectView[V]) commit(i int) tea.Cmd {
	opts := s.Menu.Options()
	if i < 0 || i >= len(opts) {
		return nil
	}
	s.cursor = i
	s.Menu.Select(opts[i].Value)
	return interaction("select.commit", map[string]string{
		"select": s.ID,
		"value":  fmt.Sprint(opts[i].Value),
	})
}

func (s *SelectView[V]) outside() tea.Cmd {
	if s.Menu.OutsideInteraction() {
		return interaction("select.outside_close", map[string]string{"select": s.ID})
	}
	return nil
}

// View implements View.
func (s *SelectView[V]) View() string {
	current, ok := s.Menu.SelectedLabel()
	if !ok {
		current = s.Placeholder
	}
	opts := s.Menu.Options()
	labels := make([]string, len(opts))
	selected := -1
	v, hasValue := s.Menu.CurrentValue()
	for i, o := range opts {
		labels[i] = o.Label
		if hasValue && o.Value == v {
			selected = i
		}
	}
	return renderSelect(s.Title, current, labels, s.Menu.IsOpen(), s.focused, s.cursor, selected)
}

// renderSelect draws a dropdown: one header row, then one row per option
// while open.
func renderSelect(title, current string, options []string, open, focused bool, cursor, selected int) string {
	arrow := "▾"
	if open {
		arrow = "▴"
	}
	box := fmt.Sprintf("[ %s %s ]", current, arrow)
	if focused {
		box = Styles.Focused.Render(box)
	} else {
		box = Styles.Normal.Render(box)
	}

	var b strings.Builder
	b.WriteString(Styles.Label.Render(title+":") + " " + box)
	if !open {
		return b.String()
	}
	for i, label := range options {
		b.WriteString("\n")
		marker := "  "
		if i == cursor {
			marker = "› "
		}
		check := "  "
		if i == selected {
			check = " ✓"
		}
		line := "  " + marker + label + check
		switch {
		case i == cursor:
			line = Styles.Focused.Render(line)
		case i == selected:
			line = Styles.Selected.Render(line)
		default:
			line = Styles.Muted.Render(line)
		}
		b.WriteString(line)
	}
	return b.String()
}
