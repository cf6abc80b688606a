package sessions

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ashwinkumar/biotutor/internal/registry"
	"github.com/ashwinkumar/biotutor/internal/router"
	"github.com/ashwinkumar/biotutor/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeText(scr screen.Screen, text string) screen.Screen {
	for _, r := range text {
		scr, _ = scr.Update(keyPress(r))
	}
	return scr
}

func TestCreateSelectsNewSession(t *testing.T) {
	reg := registry.New(nil)
	s := New(reg)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('n'))

	if reg.Len() != 2 {
		t.Fatalf("expected 2 sessions, got %d", reg.Len())
	}
	if reg.Current().Name != "Study Session 2" {
		t.Errorf("new session should be current, got %q", reg.Current().Name)
	}
	if s.selected != 1 {
		t.Errorf("selection should move to new session, got %d", s.selected)
	}
	_ = scr
}

func TestSwitchOnEnter(t *testing.T) {
	reg := registry.New(nil)
	first := reg.Current()
	reg.Create()

	s := New(reg)
	// Selection starts on the first session; switch to it.
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	if reg.Current().ID != first.ID {
		t.Errorf("expected current session %q, got %q", first.Name, reg.Current().Name)
	}
	_ = scr
}

func TestRenameFlow(t *testing.T) {
	reg := registry.New(nil)
	s := New(reg)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('r'))
	if s.mode != modeRename {
		t.Fatal("expected rename mode")
	}

	// Replace the prefilled name wholesale.
	s.input.Model.SetValue("")
	scr = typeText(scr, "Genetics Review")
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	if got := reg.Current().Name; got != "Genetics Review" {
		t.Errorf("expected renamed session, got %q", got)
	}
	if s.mode != modeList {
		t.Error("expected to return to list mode")
	}
	_ = scr
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	reg := registry.New(nil)
	reg.Create()
	s := New(reg)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('d'))
	if s.mode != modeConfirmDelete {
		t.Fatal("expected delete confirmation mode")
	}

	// Decline.
	scr, _ = scr.Update(keyPress('n'))
	if reg.Len() != 2 {
		t.Fatalf("declined delete should keep both sessions, got %d", reg.Len())
	}

	// Confirm this time.
	scr, _ = scr.Update(keyPress('d'))
	scr, _ = scr.Update(keyPress('y'))
	if reg.Len() != 1 {
		t.Errorf("expected 1 session after delete, got %d", reg.Len())
	}
	_ = scr
}

func TestDeleteLastSessionShowsReplacement(t *testing.T) {
	reg := registry.New(nil)
	s := New(reg)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('d'))
	scr, _ = scr.Update(keyPress('y'))

	if reg.Len() != 1 {
		t.Fatalf("registry must never be empty, got %d sessions", reg.Len())
	}
	view := s.View(80, 24)
	if !strings.Contains(view, reg.Current().Name) {
		t.Error("view should list the replacement session")
	}
	_ = scr
}

func TestEscPopsScreen(t *testing.T) {
	reg := registry.New(nil)
	s := New(reg)

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a command from esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestViewMarksCurrentSession(t *testing.T) {
	reg := registry.New(nil)
	reg.Create()
	s := New(reg)

	view := s.View(80, 24)
	if !strings.Contains(view, "Study Session 1") || !strings.Contains(view, "Study Session 2") {
		t.Errorf("view should list both sessions:\n%s", view)
	}
}
