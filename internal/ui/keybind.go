package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps global keys to commands. Descriptions are translation
// keys, resolved when help is rendered so a language switch shows up at once.
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	order        []string
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
	}
}

// Bind registers a key to a command.
// Overwrites any existing binding for the key.
func (r *KeybindRegistry) Bind(k string, cmd tea.Cmd) {
	r.BindWithDesc(k, cmd, "")
}

// BindWithDesc registers a key with a description key for the help view.
func (r *KeybindRegistry) BindWithDesc(k string, cmd tea.Cmd, descKey string) {
	if _, exists := r.bindings[k]; !exists {
		r.order = append(r.order, k)
	}
	r.bindings[k] = cmd
	if descKey != "" {
		r.descriptions[k] = descKey
	}
}

// Lookup returns the command for a key, or nil if not bound.
func (r *KeybindRegistry) Lookup(k string) tea.Cmd {
	return r.bindings[k]
}

// widgetHints documents keys the focused widget handles itself.
var widgetHints = []struct {
	keys    []string
	help    string
	descKey string
}{
	{[]string{"tab"}, "tab", "help.focus_next"},
	{[]string{"shift+tab"}, "⇧tab", "help.focus_prev"},
	{[]string{"enter", " "}, "enter", "help.activate"},
	{[]string{"j", "k", "up", "down"}, "j/k", "help.move"},
	{[]string{"m"}, "m", "help.mode"},
	{[]string{"esc"}, "esc", "help.close"},
}

// KeyMap implements help.KeyMap for bubbles/help, translating descriptions
// with the current language.
type KeyMap struct {
	registry *KeybindRegistry
	tr       Translator
}

// NewKeyMap creates a KeyMap over the registry's described bindings.
func NewKeyMap(registry *KeybindRegistry, tr Translator) help.KeyMap {
	return &KeyMap{registry: registry, tr: tr}
}

// ShortHelp returns the global bindings.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	var out []key.Binding
	for _, k := range km.registry.order {
		descKey, ok := km.registry.descriptions[k]
		if !ok || km.registry.bindings[k] == nil {
			continue
		}
		out = append(out, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, km.tr.Translate(descKey)),
		))
	}
	return out
}

// FullHelp returns widget keys in one column and global keys in another.
func (km *KeyMap) FullHelp() [][]key.Binding {
	widget := make([]key.Binding, 0, len(widgetHints))
	for _, h := range widgetHints {
		widget = append(widget, key.NewBinding(
			key.WithKeys(h.keys...),
			key.WithHelp(h.help, km.tr.Translate(h.descKey)),
		))
	}
	return [][]key.Binding{widget, km.ShortHelp()}
}
