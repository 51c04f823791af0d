package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Each View owns its widget state and renders it from explicit parameters.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Translator resolves translation keys. *i18n.Resolver implements it.
type Translator interface {
	Translate(key string) string
	TranslateData(key string, data map[string]any) string
}
