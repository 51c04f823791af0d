package ui

// FocusManager tracks and rotates keyboard focus across widgets.
type FocusManager struct {
	Current  string   // ID of the focused widget
	Order    []string // Tab order for focus rotation
	OnChange func(from, to string)
}

// Next advances focus to the next widget in order.
// Returns the new current focus ID.
func (f *FocusManager) Next() string {
	return f.step(1)
}

// Prev moves focus to the previous widget in order.
func (f *FocusManager) Prev() string {
	return f.step(-1)
}

func (f *FocusManager) step(delta int) string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := f.indexOf(f.Current)
	if idx < 0 && delta < 0 {
		idx = 0
	}
	next := ((idx+delta)%len(f.Order) + len(f.Order)) % len(f.Order)
	f.set(f.Order[next])
	return f.Current
}

// SetFocus sets focus to the given widget ID.
// Returns true if the ID exists in order.
func (f *FocusManager) SetFocus(id string) bool {
	if f.indexOf(id) < 0 {
		return false
	}
	f.set(id)
	return true
}

func (f *FocusManager) set(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}

func (f *FocusManager) indexOf(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}
