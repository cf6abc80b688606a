// Package library implements the document screen: loading a PDF into
// the current session and asking questions against it.
package library

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ashwinkumar/biotutor/internal/document"
	"github.com/ashwinkumar/biotutor/internal/registry"
	"github.com/ashwinkumar/biotutor/internal/router"
	"github.com/ashwinkumar/biotutor/internal/screen"
	"github.com/ashwinkumar/biotutor/internal/tutor"
	"github.com/ashwinkumar/biotutor/internal/ui/components"
	"github.com/ashwinkumar/biotutor/internal/ui/layout"
	"github.com/ashwinkumar/biotutor/internal/ui/theme"
)

const spinnerInterval = 100 * time.Millisecond

// phase is the screen's display state.
type phase int

const (
	phasePathInput phase = iota
	phaseLoading
	phaseReady
	phaseAsking
)

// LibraryScreen loads a PDF into the current session and runs the
// document Q&A loop. Questions are answered from the document when it
// covers them and from general knowledge otherwise.
type LibraryScreen struct {
	registry *registry.Registry
	tutorSvc *tutor.Service

	phase   phase
	input   components.TextInput
	spinner components.Spinner
	loading string
	summary string
	errMsg  string
}

var _ screen.Screen = (*LibraryScreen)(nil)
var _ screen.KeyHintProvider = (*LibraryScreen)(nil)

// New creates a new LibraryScreen. If the current session already has
// a document it goes straight to Q&A; otherwise it asks for a path.
func New(reg *registry.Registry, tutorSvc *tutor.Service) *LibraryScreen {
	s := &LibraryScreen{
		registry: reg,
		tutorSvc: tutorSvc,
	}
	if reg.Current().Document != nil {
		s.phase = phaseReady
		s.input = components.NewTextInput("Ask about the document...", false, 200)
	} else {
		s.phase = phasePathInput
		s.input = components.NewTextInput("Path to a PDF file...", false, 200)
	}
	return s
}

func (s *LibraryScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *LibraryScreen) Title() string {
	return "Library"
}

func (s *LibraryScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phasePathInput:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Load PDF"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseReady:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Ask"},
			{Key: "Ctrl+O", Description: "Load another PDF"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LibraryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case documentLoadedMsg:
		return s.handleDocumentLoaded(msg)

	case answerMsg:
		return s.handleAnswer(msg)

	case spinnerTickMsg:
		if s.phase == phaseLoading || s.phase == phaseAsking {
			s.spinner.Advance()
			return s, s.tickSpinner()
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "ctrl+o":
			if s.phase == phaseReady {
				s.phase = phasePathInput
				s.input = components.NewTextInput("Path to a PDF file...", false, 200)
				s.errMsg = ""
				return s, s.input.Init()
			}
		case "enter":
			switch s.phase {
			case phasePathInput:
				return s.startLoad()
			case phaseReady:
				return s.startAsk()
			}
			return s, nil
		}
	}

	if s.phase == phasePathInput || s.phase == phaseReady {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *LibraryScreen) tickSpinner() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (s *LibraryScreen) startLoad() (screen.Screen, tea.Cmd) {
	path := strings.TrimSpace(s.input.Value())
	if path == "" {
		return s, nil
	}

	s.phase = phaseLoading
	s.loading = "Reading " + filepath.Base(path) + "..."
	s.errMsg = ""

	return s, tea.Batch(s.tickSpinner(), func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return documentLoadedMsg{Err: fmt.Errorf("read %s: %w", path, err)}
		}

		extractor := document.PDFExtractor{}
		doc := document.New(filepath.Base(path), extractor.Extract(data))
		if !doc.Usable() {
			return documentLoadedMsg{Err: fmt.Errorf("%s contains no extractable text", filepath.Base(path))}
		}

		summary, err := s.tutorSvc.Summarize(context.Background(), doc)
		if err != nil {
			return documentLoadedMsg{Err: err}
		}
		return documentLoadedMsg{Doc: doc, Summary: summary}
	})
}

func (s *LibraryScreen) handleDocumentLoaded(msg documentLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.phase = phasePathInput
		s.errMsg = msg.Err.Error()
		s.input = components.NewTextInput("Path to a PDF file...", false, 200)
		return s, s.input.Init()
	}

	s.registry.Current().SetDocument(msg.Doc)
	s.summary = msg.Summary
	s.phase = phaseReady
	s.errMsg = ""
	s.input = components.NewTextInput("Ask about the document...", false, 200)
	return s, s.input.Init()
}

func (s *LibraryScreen) startAsk() (screen.Screen, tea.Cmd) {
	question := strings.TrimSpace(s.input.Value())
	if question == "" {
		return s, nil
	}

	doc := s.registry.Current().Document
	s.phase = phaseAsking
	s.loading = "Thinking..."
	s.errMsg = ""

	return s, tea.Batch(s.tickSpinner(), func() tea.Msg {
		ans, err := s.tutorSvc.Ask(context.Background(), doc, question)
		return answerMsg{Question: question, Answer: ans, Err: err}
	})
}

func (s *LibraryScreen) handleAnswer(msg answerMsg) (screen.Screen, tea.Cmd) {
	s.phase = phaseReady
	s.input = components.NewTextInput("Ask about the document...", false, 200)

	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, s.input.Init()
	}

	s.errMsg = ""
	answer := msg.Answer.Answer
	if msg.Answer.FromDocument && msg.Answer.Pages != "" {
		answer += "\n" + sourceNote("From the document, pages "+msg.Answer.Pages)
	} else if msg.Answer.FromDocument {
		answer += "\n" + sourceNote("From the document")
	} else {
		answer += "\n" + sourceNote("Not covered by the document; answered from general knowledge")
	}
	s.registry.Current().RecordChat(msg.Question, answer)
	return s, s.input.Init()
}

func sourceNote(text string) string {
	return lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("└ " + text)
}

func (s *LibraryScreen) View(width, height int) string {
	var b strings.Builder

	current := s.registry.Current()

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  DOCUMENT LIBRARY"))
	if current.Document != nil {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("  %s (%d pages)", current.Document.Name, len(current.Document.Pages))))
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4)))
	b.WriteString("\n\n")

	switch s.phase {
	case phasePathInput:
		b.WriteString("  Load a PDF into this session:\n\n")
		b.WriteString("  " + s.input.View() + "\n")

	case phaseLoading, phaseAsking:
		b.WriteString("  " + s.spinner.View(s.loading) + "\n")

	case phaseReady:
		if s.summary != "" {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("  Summary") + "\n")
			b.WriteString(indentWrap(s.summary, width-6) + "\n\n")
		}
		b.WriteString(s.renderChat(width))
		b.WriteString("\n  " + s.input.View() + "\n")
	}

	if s.errMsg != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("  "+s.errMsg) + "\n")
	}

	return b.String()
}

// renderChat shows the most recent document Q&A exchanges.
func (s *LibraryScreen) renderChat(width int) string {
	history := s.registry.Current().ChatHistory
	if len(history) == 0 {
		return ""
	}

	const maxShown = 3
	start := 0
	if len(history) > maxShown {
		start = len(history) - maxShown
	}

	var b strings.Builder
	for _, ex := range history[start:] {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("  ❯ "+ex.Question) + "\n")
		b.WriteString(indentWrap(ex.Answer, width-6) + "\n\n")
	}
	return b.String()
}

// indentWrap wraps text to the given width and indents each line.
func indentWrap(text string, width int) string {
	if width < 20 {
		width = 20
	}
	wrapped := lipgloss.NewStyle().Width(width).Foreground(theme.Text).Render(text)
	lines := strings.Split(wrapped, "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}
