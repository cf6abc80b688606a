// Package sessions implements the session manager screen: listing,
// creating, switching, renaming, and deleting study sessions.
package sessions

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ashwinkumar/biotutor/internal/registry"
	"github.com/ashwinkumar/biotutor/internal/router"
	"github.com/ashwinkumar/biotutor/internal/screen"
	"github.com/ashwinkumar/biotutor/internal/ui/components"
	"github.com/ashwinkumar/biotutor/internal/ui/layout"
	"github.com/ashwinkumar/biotutor/internal/ui/theme"
)

// mode is the screen's input state.
type mode int

const (
	modeList mode = iota
	modeRename
	modeConfirmDelete
)

// SessionsScreen lists all sessions and lets the user manage them.
type SessionsScreen struct {
	registry *registry.Registry
	selected int
	mode     mode
	input    components.TextInput
	status   string
}

var _ screen.Screen = (*SessionsScreen)(nil)
var _ screen.KeyHintProvider = (*SessionsScreen)(nil)

// New creates a new SessionsScreen.
func New(reg *registry.Registry) *SessionsScreen {
	return &SessionsScreen{registry: reg}
}

func (s *SessionsScreen) Init() tea.Cmd {
	return nil
}

func (s *SessionsScreen) Title() string {
	return "Sessions"
}

func (s *SessionsScreen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeRename:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save name"},
			{Key: "Esc", Description: "Cancel"},
		}
	case modeConfirmDelete:
		return []layout.KeyHint{
			{Key: "Y", Description: "Delete"},
			{Key: "N", Description: "Keep"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Switch"},
			{Key: "N", Description: "New"},
			{Key: "R", Description: "Rename"},
			{Key: "D", Description: "Delete"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *SessionsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch s.mode {
	case modeRename:
		return s.updateRename(msg)
	case modeConfirmDelete:
		return s.updateConfirmDelete(msg)
	}
	return s.updateList(msg)
}

func (s *SessionsScreen) updateList(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	list := s.registry.Sessions()
	s.clampSelection(len(list))

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(list)-1 {
			s.selected++
		}
	case "enter":
		target := list[s.selected]
		if err := s.registry.Switch(target.ID); err != nil {
			s.status = err.Error()
		} else {
			s.status = fmt.Sprintf("Switched to %s", target.Name)
		}
	case "n":
		created := s.registry.Create()
		s.status = fmt.Sprintf("Created %s", created.Name)
		// The new session is appended last; select it.
		s.selected = s.registry.Len() - 1
	case "r":
		s.mode = modeRename
		s.input = components.NewTextInput("New name...", false, 40)
		s.input.Model.SetValue(list[s.selected].Name)
		return s, s.input.Init()
	case "d":
		s.mode = modeConfirmDelete
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	return s, nil
}

func (s *SessionsScreen) updateRename(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			name := strings.TrimSpace(s.input.Value())
			s.mode = modeList
			if name == "" {
				s.status = "Name unchanged"
				return s, nil
			}
			target := s.registry.Sessions()[s.selected]
			if err := s.registry.Rename(target.ID, name); err != nil {
				s.status = err.Error()
			} else {
				s.status = fmt.Sprintf("Renamed to %s", name)
			}
			return s, nil
		case "esc":
			s.mode = modeList
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SessionsScreen) updateConfirmDelete(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "y", "Y":
		target := s.registry.Sessions()[s.selected]
		if err := s.registry.Delete(target.ID); err != nil {
			s.status = err.Error()
		} else {
			s.status = fmt.Sprintf("Deleted %s", target.Name)
		}
		s.mode = modeList
		s.clampSelection(s.registry.Len())
	case "n", "N", "esc":
		s.mode = modeList
	}

	return s, nil
}

func (s *SessionsScreen) clampSelection(n int) {
	if s.selected >= n {
		s.selected = n - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
}

func (s *SessionsScreen) View(width, height int) string {
	list := s.registry.Sessions()
	s.clampSelection(len(list))
	current := s.registry.Current()

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  STUDY SESSIONS"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4)))
	b.WriteString("\n\n")

	for i, sess := range list {
		marker := "  "
		if sess.ID == current.ID {
			marker = lipgloss.NewStyle().Foreground(theme.Success).Render("● ")
		}

		label := fmt.Sprintf("%s%s", marker, sess.Name)
		detail := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("  %d topics, %d quizzes", len(sess.Topics), len(sess.QuizHistory)))

		if i == s.selected {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ " + label))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("  " + label))
		}
		b.WriteString(detail)
		b.WriteString("\n")
	}

	b.WriteString("\n")

	switch s.mode {
	case modeRename:
		b.WriteString("  Rename: " + s.input.View() + "\n")
	case modeConfirmDelete:
		target := list[s.selected]
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Warning).
			Bold(true).
			Render(fmt.Sprintf("  Delete %q? All its topics and quizzes go with it. (y/n)", target.Name)))
		b.WriteString("\n")
	}

	if s.status != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("  "+s.status) + "\n")
	}

	return b.String()
}
