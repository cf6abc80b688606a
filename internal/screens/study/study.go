// Package study implements the topic tutoring screen: entering a
// topic, reading its explanation, and the follow-up question loop.
package study

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ashwinkumar/biotutor/internal/registry"
	"github.com/ashwinkumar/biotutor/internal/router"
	"github.com/ashwinkumar/biotutor/internal/screen"
	"github.com/ashwinkumar/biotutor/internal/topics"
	"github.com/ashwinkumar/biotutor/internal/tutor"
	"github.com/ashwinkumar/biotutor/internal/ui/components"
	"github.com/ashwinkumar/biotutor/internal/ui/layout"
	"github.com/ashwinkumar/biotutor/internal/ui/theme"
)

const spinnerInterval = 100 * time.Millisecond

// phase is the screen's display state.
type phase int

const (
	phaseTopicInput phase = iota
	phaseClassifying
	phaseExplaining
	phaseConversation
	phaseAsking
)

// StudyScreen runs the topic loop: classify the entered subject, show
// its explanation, then answer follow-up questions in context.
type StudyScreen struct {
	registry *registry.Registry
	tutorSvc *tutor.Service
	tracker  *topics.Tracker

	phase   phase
	input   components.TextInput
	spinner components.Spinner
	loading string
	errMsg  string

	// extras holds the latest resources / next-topic block, shown
	// under the conversation until the next exchange replaces it.
	extras string
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)

// New creates a new StudyScreen. If the session already has a current
// topic it resumes that conversation; otherwise it asks for a topic.
func New(reg *registry.Registry, tutorSvc *tutor.Service, tracker *topics.Tracker) *StudyScreen {
	s := &StudyScreen{
		registry: reg,
		tutorSvc: tutorSvc,
		tracker:  tracker,
	}
	if reg.Current().CurrentTopic != "" {
		s.phase = phaseConversation
		s.input = components.NewTextInput("Ask a follow-up...", false, 200)
	} else {
		s.phase = phaseTopicInput
		s.input = components.NewTextInput("What do you want to study?", false, 100)
	}
	return s
}

func (s *StudyScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *StudyScreen) Title() string {
	return "Study"
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseTopicInput:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseConversation:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Ask"},
			{Key: "Ctrl+R", Description: "Resources"},
			{Key: "Ctrl+N", Description: "What next"},
			{Key: "Ctrl+T", Description: "New topic"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case classifiedMsg:
		return s.handleClassified(msg)

	case explanationMsg:
		return s.handleExplanation(msg)

	case followupMsg:
		return s.handleFollowup(msg)

	case resourcesMsg:
		return s.handleResources(msg)

	case nextTopicsMsg:
		return s.handleNextTopics(msg)

	case spinnerTickMsg:
		if s.phase == phaseClassifying || s.phase == phaseExplaining || s.phase == phaseAsking {
			s.spinner.Advance()
			return s, s.tickSpinner()
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "ctrl+t":
			if s.phase == phaseConversation {
				s.phase = phaseTopicInput
				s.input = components.NewTextInput("What do you want to study?", false, 100)
				s.errMsg = ""
				s.extras = ""
				return s, s.input.Init()
			}
		case "ctrl+r":
			if s.phase == phaseConversation {
				return s.startResources()
			}
		case "ctrl+n":
			if s.phase == phaseConversation {
				return s.startNextTopics()
			}
		case "enter":
			switch s.phase {
			case phaseTopicInput:
				return s.startTopic()
			case phaseConversation:
				return s.startFollowup()
			}
			return s, nil
		}
	}

	if s.phase == phaseTopicInput || s.phase == phaseConversation {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *StudyScreen) tickSpinner() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

// startTopic kicks off the topic flow. Previously studied topics skip
// classification and resume their conversation directly.
func (s *StudyScreen) startTopic() (screen.Screen, tea.Cmd) {
	topic := strings.TrimSpace(s.input.Value())
	if topic == "" {
		return s, nil
	}

	current := s.registry.Current()
	if _, studied := current.Topics[topic]; studied {
		s.tracker.Begin(current, topic)
		s.phase = phaseConversation
		s.errMsg = ""
		s.input = components.NewTextInput("Ask a follow-up...", false, 200)
		return s, s.input.Init()
	}

	s.phase = phaseClassifying
	s.loading = "Checking topic..."
	s.errMsg = ""

	return s, tea.Batch(s.tickSpinner(), func() tea.Msg {
		valid, err := s.tutorSvc.ClassifyTopic(context.Background(), topic)
		return classifiedMsg{Topic: topic, Valid: valid, Err: err}
	})
}

func (s *StudyScreen) handleClassified(msg classifiedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.phase = phaseTopicInput
		s.errMsg = msg.Err.Error()
		s.input = components.NewTextInput("What do you want to study?", false, 100)
		return s, s.input.Init()
	}
	if !msg.Valid {
		s.phase = phaseTopicInput
		s.errMsg = fmt.Sprintf("%q doesn't look like a biotech subject. Try something like CRISPR, PCR, or fermentation.", msg.Topic)
		s.input = components.NewTextInput("What do you want to study?", false, 100)
		return s, s.input.Init()
	}

	s.tracker.Begin(s.registry.Current(), msg.Topic)

	s.phase = phaseExplaining
	s.loading = "Preparing an explanation of " + msg.Topic + "..."
	return s, tea.Batch(s.tickSpinner(), func() tea.Msg {
		text, err := s.tutorSvc.Explain(context.Background(), msg.Topic)
		return explanationMsg{Topic: msg.Topic, Text: text, Err: err}
	})
}

func (s *StudyScreen) handleExplanation(msg explanationMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.phase = phaseTopicInput
		s.errMsg = msg.Err.Error()
		s.input = components.NewTextInput("What do you want to study?", false, 100)
		return s, s.input.Init()
	}

	if err := s.tracker.SaveExplanation(s.registry.Current(), msg.Text); err != nil {
		s.errMsg = err.Error()
	}
	s.phase = phaseConversation
	s.input = components.NewTextInput("Ask a follow-up...", false, 200)
	return s, s.input.Init()
}

func (s *StudyScreen) startFollowup() (screen.Screen, tea.Cmd) {
	question := strings.TrimSpace(s.input.Value())
	if question == "" {
		return s, nil
	}

	current := s.registry.Current()
	topic := current.CurrentTopic
	conversation := append([]registry.Exchange(nil), current.ActiveConversation...)

	s.phase = phaseAsking
	s.loading = "Thinking..."
	s.errMsg = ""
	s.extras = ""

	return s, tea.Batch(s.tickSpinner(), func() tea.Msg {
		answer, err := s.tutorSvc.AskTopic(context.Background(), topic, conversation, question)
		return followupMsg{Question: question, Answer: answer, Err: err}
	})
}

func (s *StudyScreen) handleFollowup(msg followupMsg) (screen.Screen, tea.Cmd) {
	s.phase = phaseConversation
	s.input = components.NewTextInput("Ask a follow-up...", false, 200)

	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, s.input.Init()
	}

	s.errMsg = ""
	if err := s.tracker.RecordExchange(s.registry.Current(), msg.Question, msg.Answer); err != nil {
		s.errMsg = err.Error()
	}
	return s, s.input.Init()
}

func (s *StudyScreen) startResources() (screen.Screen, tea.Cmd) {
	topic := s.registry.Current().CurrentTopic
	s.phase = phaseAsking
	s.loading = "Gathering resources..."

	return s, tea.Batch(s.tickSpinner(), func() tea.Msg {
		resources, err := s.tutorSvc.Resources(context.Background(), topic)
		return resourcesMsg{Resources: resources, Err: err}
	})
}

func (s *StudyScreen) handleResources(msg resourcesMsg) (screen.Screen, tea.Cmd) {
	s.phase = phaseConversation
	s.input = components.NewTextInput("Ask a follow-up...", false, 200)

	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, s.input.Init()
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Resources") + "\n")
	for _, r := range msg.Resources {
		b.WriteString(fmt.Sprintf("  • %s (%s) — %s\n", r.Title, r.Kind, r.Description))
	}
	s.extras = b.String()
	s.errMsg = ""
	return s, s.input.Init()
}

func (s *StudyScreen) startNextTopics() (screen.Screen, tea.Cmd) {
	current := s.registry.Current()
	studied := make([]string, 0, len(current.Topics))
	for name := range current.Topics {
		studied = append(studied, name)
	}

	s.phase = phaseAsking
	s.loading = "Looking for what to study next..."

	return s, tea.Batch(s.tickSpinner(), func() tea.Msg {
		text, err := s.tutorSvc.NextTopics(context.Background(), studied)
		return nextTopicsMsg{Text: text, Err: err}
	})
}

func (s *StudyScreen) handleNextTopics(msg nextTopicsMsg) (screen.Screen, tea.Cmd) {
	s.phase = phaseConversation
	s.input = components.NewTextInput("Ask a follow-up...", false, 200)

	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, s.input.Init()
	}

	s.extras = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Study next") + "\n" + msg.Text
	s.errMsg = ""
	return s, s.input.Init()
}

func (s *StudyScreen) View(width, height int) string {
	var b strings.Builder

	current := s.registry.Current()

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  STUDY TOPIC"))
	if current.CurrentTopic != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + current.CurrentTopic))
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4)))
	b.WriteString("\n\n")

	switch s.phase {
	case phaseTopicInput:
		b.WriteString("  Enter a biotech subject to study:\n\n")
		b.WriteString("  " + s.input.View() + "\n")

	case phaseClassifying, phaseExplaining, phaseAsking:
		b.WriteString("  " + s.spinner.View(s.loading) + "\n")

	case phaseConversation:
		b.WriteString(s.renderConversation(width))
		if s.extras != "" {
			b.WriteString(indentWrap(s.extras, width-6) + "\n\n")
		}
		b.WriteString("  " + s.input.View() + "\n")
	}

	if s.errMsg != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("  "+s.errMsg) + "\n")
	}

	return b.String()
}

// renderConversation shows the topic explanation and the most recent
// follow-up exchanges.
func (s *StudyScreen) renderConversation(width int) string {
	current := s.registry.Current()
	topic, ok := current.Topics[current.CurrentTopic]
	if !ok {
		return ""
	}

	var b strings.Builder

	if topic.Explanation != "" {
		b.WriteString(indentWrap(topic.Explanation, width-6) + "\n\n")
	}

	const maxShown = 3
	conv := current.ActiveConversation
	start := 0
	if len(conv) > maxShown {
		start = len(conv) - maxShown
	}
	for _, ex := range conv[start:] {
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
