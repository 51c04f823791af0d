// Package selection holds the state of a single-choice dropdown menu.
package selection

// Option is one choice in a Menu. Label is what gets rendered.
type Option[V comparable] struct {
	Value V
	Label string
}

// Menu tracks the chosen value and whether the option list is visible.
//
// Select accepts values that are not among the declared options. Callers
// that render the value must handle a missing label (see SelectedLabel).
type Menu[V comparable] struct {
	options  []Option[V]
	value    V
	hasValue bool
	open     bool
	onChange func(V)
}

// MenuOption configures a Menu at construction.
type MenuOption[V comparable] func(*Menu[V])

// WithValue preselects v without firing the change callback.
func WithValue[V comparable](v V) MenuOption[V] {
	return func(m *Menu[V]) {
		m.value = v
		m.hasValue = true
	}
}

// WithOnChange registers fn to be called after every Select.
func WithOnChange[V comparable](fn func(V)) MenuOption[V] {
	return func(m *Menu[V]) {
		m.onChange = fn
	}
}

// NewMenu creates a closed menu. Options with a duplicate value are dropped;
// the first one wins.
func NewMenu[V comparable](options []Option[V], opts ...MenuOption[V]) *Menu[V] {
	m := &Menu[V]{}
	seen := make(map[V]struct{}, len(options))
	for _, o := range options {
		if _, dup := seen[o.Value]; dup {
			continue
		}
		seen[o.Value] = struct{}{}
		m.options = append(m.options, o)
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Options returns the declared options in order.
func (m *Menu[V]) Options() []Option[V] {
	return m.options
}

// SetOptions replaces the declared options. Value and visibility are kept.
func (m *Menu[V]) SetOptions(options []Option[V]) {
	m.options = NewMenu(options).options
}

// Open shows the option list.
func (m *Menu[V]) Open() {
	m.open = true
}

// Close hides the option list.
func (m *Menu[V]) Close() {
	m.open = false
}

// Toggle flips visibility.
func (m *Menu[V]) Toggle() {
	m.open = !m.open
}

// IsOpen reports whether the option list is visible.
func (m *Menu[V]) IsOpen() bool {
	return m.open
}

// Select records v as the chosen value, closes the menu and notifies the
// change callback.
func (m *Menu[V]) Select(v V) {
	m.value = v
	m.hasValue = true
	m.open = false
	if m.onChange != nil {
		m.onChange(v)
	}
}

// Clear drops the chosen value.
func (m *Menu[V]) Clear() {
	var zero V
	m.value = zero
	m.hasValue = false
}

// CurrentValue returns the chosen value; ok is false when nothing is chosen.
func (m *Menu[V]) CurrentValue() (v V, ok bool) {
	return m.value, m.hasValue
}

// OutsideInteraction reacts to a user interaction outside the menu's
// rendered region. It closes an open menu and reports whether it did.
func (m *Menu[V]) OutsideInteraction() bool {
	if !m.open {
		return false
	}
	m.open = false
	return true
}

// Label returns the label of the option whose value is v.
func (m *Menu[V]) Label(v V) (string, bool) {
	for _, o := range m.options {
		if o.Value == v {
			return o.Label, true
		}
	}
	return "", false
}

// Index returns the position of v among the options, or -1.
func (m *Menu[V]) Index(v V) int {
	for i, o := range m.options {
		if o.Value == v {
			return i
		}
	}
	return -1
}

// SelectedLabel returns the label of the chosen value. ok is false when
// nothing is chosen or the chosen value is not a declared option.
func (m *Menu[V]) SelectedLabel() (string, bool) {
	if !m.hasValue {
		return "", false
	}
	return m.Label(m.value)
}
