package ui

import tea "github.com/charmbracelet/bubbletea"

// InteractionMsg reports a handled user interaction for logging and tracing.
type InteractionMsg struct {
	Name  string // e.g. "accordion.toggle"
	Attrs map[string]string
}

func interaction(name string, attrs map[string]string) tea.Cmd {
	return func() tea.Msg {
		return InteractionMsg{Name: name, Attrs: attrs}
	}
}

// ToggleHelpMsg switches between short and full key help.
type ToggleHelpMsg struct{}
