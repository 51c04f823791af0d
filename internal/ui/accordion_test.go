package ui

import (
	"strings"
	"testing"

	"freshmarket/internal/disclosure"
)

func testPanels() []Panel {
	return []Panel{
		{ID: "a", Title: "Alpha", Body: "one\ntwo"},
		{ID: "b", Title: "Beta", Body: "three"},
		{ID: "c", Title: "Gamma"},
	}
}

func newTestAccordion(mode disclosure.Mode) *AccordionView {
	a := NewAccordionView(disclosure.NewGroup(mode))
	a.SetPanels(testPanels())
	a.Focus()
	return a
}

func TestAccordionView_SingleModeScenario(t *testing.T) {
	a := newTestAccordion(disclosure.Single)

	a.Update(keyMsg("enter")) // toggle a
	a.Update(keyMsg("j"))
	_, cmd := a.Update(keyMsg("enter")) // toggle b
	if got := a.Group.Open(); len(got) != 1 || got[0] != "b" {
		t.Errorf("after toggling a then b: open=%v, want [b]", got)
	}
	if !hasInteraction(cmd, "accordion.toggle") {
		t.Errorf("expected accordion.toggle, got %v", interactions(cmd))
	}

	a.Update(keyMsg(" ")) // toggle b again
	if a.Group.Len() != 0 {
		t.Errorf("re-toggling b should close it, open=%v", a.Group.Open())
	}
}

func TestAccordionView_MultipleMode(t *testing.T) {
	a := newTestAccordion(disclosure.Multiple)

	a.Update(keyMsg("enter"))
	a.Update(keyMsg("j"))
	a.Update(keyMsg("enter"))
	if got := a.Group.Open(); len(got) != 2 {
		t.Errorf("multiple mode should keep both open, got %v", got)
	}

	a.Update(keyMsg("c"))
	if a.Group.Len() != 0 {
		t.Error("c should collapse all")
	}
}

func TestAccordionView_CursorMovement(t *testing.T) {
	a := newTestAccordion(disclosure.Single)

	a.Update(keyMsg("G"))
	if a.Cursor != 2 {
		t.Errorf("G: cursor=%d, want 2", a.Cursor)
	}
	a.Update(keyMsg("j"))
	if a.Cursor != 2 {
		t.Errorf("j at bottom: cursor=%d, want 2", a.Cursor)
	}
	a.Update(keyMsg("up"))
	if a.Cursor != 1 {
		t.Errorf("up: cursor=%d, want 1", a.Cursor)
	}
	a.Update(keyMsg("g"))
	a.Update(keyMsg("k"))
	if a.Cursor != 0 {
		t.Errorf("k at top: cursor=%d, want 0", a.Cursor)
	}
}

func TestAccordionView_ModeSwitch(t *testing.T) {
	a := newTestAccordion(disclosure.Multiple)
	a.Update(keyMsg("enter"))
	a.Update(keyMsg("j"))
	a.Update(keyMsg("enter"))

	_, cmd := a.Update(keyMsg("m"))
	if a.Group.Mode() != disclosure.Single {
		t.Fatalf("m should switch to single")
	}
	if got := a.Group.Open(); len(got) != 1 || got[0] != "b" {
		t.Errorf("switching to single should keep the latest panel, got %v", got)
	}
	if !hasInteraction(cmd, "accordion.mode") {
		t.Errorf("expected accordion.mode, got %v", interactions(cmd))
	}
}

func TestAccordionView_IgnoresKeysWhenBlurred(t *testing.T) {
	a := newTestAccordion(disclosure.Single)
	a.Blur()

	a.Update(keyMsg("enter"))
	if a.Group.Len() != 0 {
		t.Error("blurred accordion should ignore keys")
	}
}

func TestAccordionView_ClickHeaders(t *testing.T) {
	a := newTestAccordion(disclosure.Multiple)
	a.Group.SetOpen("a")
	// a is open with a two-line body, so b's header is on row 3.
	a.SetRegion(Region{X: 0, Y: 10, Width: 30, Height: 6})

	a.Update(click(2, 13))
	if !a.Group.IsOpen("b") || a.Cursor != 1 {
		t.Errorf("click on b header: open=%v cursor=%d", a.Group.Open(), a.Cursor)
	}

	// Clicking a body line does nothing.
	a.Update(click(2, 11))
	if got := a.Group.Open(); len(got) != 2 {
		t.Errorf("body click changed state: %v", got)
	}

	// Outside the region does nothing.
	a.Update(click(2, 40))
	if got := a.Group.Open(); len(got) != 2 {
		t.Errorf("outside click changed state: %v", got)
	}
}

func TestAccordionView_Render(t *testing.T) {
	a := newTestAccordion(disclosure.Single)
	a.Group.SetOpen("a")

	out := a.View()
	if !strings.Contains(out, "▾ Alpha") || !strings.Contains(out, "▸ Beta") {
		t.Errorf("unexpected glyphs: %q", out)
	}
	if !strings.Contains(out, "    one") || strings.Contains(out, "three") {
		t.Errorf("only open bodies should render: %q", out)
	}
}

func TestAccordionView_SetPanelsClampsCursor(t *testing.T) {
	a := newTestAccordion(disclosure.Single)
	a.Cursor = 2
	a.SetPanels(testPanels()[:1])
	if a.Cursor != 0 {
		t.Errorf("cursor=%d, want 0", a.Cursor)
	}
}
