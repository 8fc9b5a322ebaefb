package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func TestPickerNavigatesAndAccepts(t *testing.T) {
	p := NewPicker("pick one", []string{"a/list.lm", "b/list.lm", "c/list.lm"})

	model, _ := p.Update(keyMsg("down"))
	model, _ = model.Update(keyMsg("down"))
	model, _ = model.Update(keyMsg("enter"))

	choice, ok := model.(*Picker).Choice()
	if !ok {
		t.Fatalf("expected an accepted choice")
	}
	if choice != "c/list.lm" {
		t.Fatalf("choice: %q", choice)
	}
}

func TestPickerCursorStaysInBounds(t *testing.T) {
	p := NewPicker("pick one", []string{"only.lm"})

	model, _ := p.Update(keyMsg("up"))
	model, _ = model.Update(keyMsg("down"))
	model, _ = model.Update(keyMsg("enter"))

	choice, ok := model.(*Picker).Choice()
	if !ok || choice != "only.lm" {
		t.Fatalf("choice: %q ok=%v", choice, ok)
	}
}

func TestPickerCancel(t *testing.T) {
	p := NewPicker("pick one", []string{"a.lm", "b.lm"})

	model, _ := p.Update(keyMsg("esc"))
	if _, ok := model.(*Picker).Choice(); ok {
		t.Fatalf("cancelled picker must not report a choice")
	}
}

func TestPickerViewMarksSelection(t *testing.T) {
	p := NewPicker("pick one", []string{"a.lm", "b.lm"})
	view := p.View()
	if !strings.Contains(view, "pick one") {
		t.Fatalf("view lacks title:\n%s", view)
	}
	if !strings.Contains(view, "a.lm") || !strings.Contains(view, "b.lm") {
		t.Fatalf("view lacks candidates:\n%s", view)
	}
}
