// Package analytics implements the performance screen: session quiz
// averages, the per-topic breakdown, and tutor feedback.
package analytics

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	stats "github.com/ashwinkumar/biotutor/internal/analytics"
	"github.com/ashwinkumar/biotutor/internal/registry"
	"github.com/ashwinkumar/biotutor/internal/router"
	"github.com/ashwinkumar/biotutor/internal/screen"
	"github.com/ashwinkumar/biotutor/internal/tutor"
	"github.com/ashwinkumar/biotutor/internal/ui/components"
	"github.com/ashwinkumar/biotutor/internal/ui/layout"
	"github.com/ashwinkumar/biotutor/internal/ui/theme"
)

const spinnerInterval = 100 * time.Millisecond

// feedbackMsg is sent when the tutor's performance narrative is ready.
type feedbackMsg struct {
	Text string
	Err  error
}

// spinnerTickMsg is sent at short intervals to animate the loading spinner.
type spinnerTickMsg time.Time

// AnalyticsScreen shows the current session's quiz performance.
type AnalyticsScreen struct {
	registry *registry.Registry
	tutorSvc *tutor.Service

	summary   stats.Summary
	breakdown []stats.TopicScore

	feedback        string
	feedbackPending bool
	spinner         components.Spinner
	errMsg          string
}

var _ screen.Screen = (*AnalyticsScreen)(nil)
var _ screen.KeyHintProvider = (*AnalyticsScreen)(nil)

// New creates a new AnalyticsScreen over the current session.
// tutorSvc may be nil; feedback is skipped then.
func New(reg *registry.Registry, tutorSvc *tutor.Service) *AnalyticsScreen {
	current := reg.Current()
	return &AnalyticsScreen{
		registry:  reg,
		tutorSvc:  tutorSvc,
		summary:   stats.Summarize(current.QuizHistory),
		breakdown: stats.TopicBreakdown(current.TopicPerformance),
	}
}

func (s *AnalyticsScreen) Init() tea.Cmd {
	if s.tutorSvc == nil || !s.summary.Available {
		return nil
	}

	s.feedbackPending = true
	summary, breakdown := s.summary, s.breakdown
	return tea.Batch(s.tickSpinner(), func() tea.Msg {
		text, err := s.tutorSvc.Feedback(context.Background(), summary, breakdown)
		return feedbackMsg{Text: text, Err: err}
	})
}

func (s *AnalyticsScreen) Title() string {
	return "Analytics"
}

func (s *AnalyticsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *AnalyticsScreen) tickSpinner() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (s *AnalyticsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackMsg:
		s.feedbackPending = false
		if msg.Err != nil {
			// Feedback is a garnish; the numbers stand on their own.
			s.errMsg = ""
		} else {
			s.feedback = msg.Text
		}
		return s, nil

	case spinnerTickMsg:
		if s.feedbackPending {
			s.spinner.Advance()
			return s, s.tickSpinner()
		}
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *AnalyticsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  ANALYTICS"))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + s.registry.Current().Name))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4)))
	b.WriteString("\n\n")

	if !s.summary.Available {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			"  No quizzes taken yet — performance unavailable.") + "\n")
		return b.String()
	}

	avgTier := stats.TierFor(s.summary.Average)
	b.WriteString(fmt.Sprintf("  %s  %s\n",
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(
			fmt.Sprintf("Average %.0f%% over %d quizzes (%d/%d questions)",
				s.summary.Average, s.summary.Quizzes, s.summary.Correct, s.summary.Questions)),
		tierBadge(avgTier)))
	b.WriteString("\n")

	if len(s.breakdown) > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("  BY TOPIC") + "\n\n")

		barWidth := width - 10
		if barWidth > 50 {
			barWidth = 50
		}
		for _, ts := range s.breakdown {
			bar := components.NewProgressBar(padTopic(ts.Topic, 24), ts.Percent/100, true, barWidth)
			b.WriteString("  " + bar.View() + "  " + tierBadge(ts.Tier) + "\n")
		}
		b.WriteString("\n")
	}

	if s.feedbackPending {
		b.WriteString("  " + s.spinner.View("Asking the tutor what to make of this...") + "\n")
	} else if s.feedback != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("  TUTOR FEEDBACK") + "\n")
		wrapped := lipgloss.NewStyle().Width(width - 6).Foreground(theme.Text).Render(s.feedback)
		for _, line := range strings.Split(wrapped, "\n") {
			b.WriteString("  " + line + "\n")
		}
	}

	return b.String()
}

func tierBadge(t stats.Tier) string {
	switch t {
	case stats.TierGood:
		return theme.TierGood.Render("good")
	case stats.TierAverage:
		return theme.TierAverage.Render("average")
	default:
		return theme.TierPoor.Render("poor")
	}
}

func padTopic(name string, width int) string {
	if len(name) > width {
		return name[:width-1] + "…"
	}
	return name + strings.Repeat(" ", width-len(name))
}
