package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"freshmarket/internal/i18n"
	"freshmarket/internal/market"
)

func testLocalizer(t *testing.T) *i18n.Resolver {
	t.Helper()
	r, err := i18n.LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded: %v", err)
	}
	return r
}

func testCatalog(t *testing.T) *market.Catalog {
	t.Helper()
	c, err := market.LoadEmbedded()
	if err != nil {
		t.Fatalf("market.LoadEmbedded: %v", err)
	}
	return c
}

// drain runs cmd and flattens batches into the resulting messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// interactions returns the names of InteractionMsgs produced by cmd.
func interactions(cmd tea.Cmd) []string {
	var names []string
	for _, msg := range drain(cmd) {
		if im, ok := msg.(InteractionMsg); ok {
			names = append(names, im.Name)
		}
	}
	return names
}

func hasInteraction(cmd tea.Cmd, name string) bool {
	for _, n := range interactions(cmd) {
		if n == name {
			return true
		}
	}
	return false
}
