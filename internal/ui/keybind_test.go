package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("j", nil)

	if reg.Lookup("q") == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup("j") != nil {
		t.Error("nil binding should look up as nil")
	}
	if reg.Lookup("unknown") != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeyMap_TranslatesDescriptions(t *testing.T) {
	loc := testLocalizer(t)
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "help.quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "help.quit")
	reg.Bind("x", tea.Quit) // no description: not shown

	km := NewKeyMap(reg, loc)
	short := km.ShortHelp()
	if len(short) != 2 {
		t.Fatalf("expected 2 short bindings, got %d", len(short))
	}
	if short[0].Help().Key != "q" || short[0].Help().Desc != "Quit" {
		t.Errorf("unexpected first binding: %+v", short[0].Help())
	}

	loc.SetLanguage("es")
	if got := km.ShortHelp()[0].Help().Desc; got != "Salir" {
		t.Errorf("expected Spanish description, got %q", got)
	}

	full := km.FullHelp()
	if len(full) != 2 || len(full[0]) != len(widgetHints) {
		t.Fatalf("unexpected full help shape: %d columns", len(full))
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// click creates a left-button press at (x, y).
func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}
