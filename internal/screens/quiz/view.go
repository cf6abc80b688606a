package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ashwinkumar/biotutor/internal/analytics"
	qz "github.com/ashwinkumar/biotutor/internal/quiz"
	"github.com/ashwinkumar/biotutor/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  TAKE QUIZ"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4)))
	b.WriteString("\n\n")

	switch s.phase {
	case phaseNoTopics:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			"  Nothing to quiz on yet. Study a topic first.") + "\n")

	case phaseSetup:
		b.WriteString(s.renderSetup())

	case phaseGenerating:
		b.WriteString("  " + s.spinner.View(fmt.Sprintf("Generating a %s %s quiz on %s...",
			difficultyChoices[s.diffIdx], kindLabels[s.kindIdx], s.topicNames[s.topicIdx])) + "\n")

	case phaseAnswering:
		b.WriteString(s.renderQuestion(width))

	case phaseResult:
		b.WriteString(s.renderResult(width))
	}

	if s.errMsg != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("  "+s.errMsg) + "\n")
	}

	return b.String()
}

// renderSetup shows the four-field form with the active field highlighted.
func (s *QuizScreen) renderSetup() string {
	var b strings.Builder

	b.WriteString(renderChoiceField("Topic", s.topicNames, s.topicIdx, s.step == stepTopic, s.step > stepTopic))
	b.WriteString(renderChoiceField("Kind", kindLabels, s.kindIdx, s.step == stepKind, s.step > stepKind))
	b.WriteString(renderChoiceField("Difficulty", difficultyLabels, s.diffIdx, s.step == stepDifficulty, s.step > stepDifficulty))

	label := fieldLabel("Questions", s.step == stepCount)
	if s.step == stepCount {
		b.WriteString(fmt.Sprintf("  %s  %s\n", label, s.countInput.View()))
	} else {
		b.WriteString(fmt.Sprintf("  %s\n", label))
	}

	return b.String()
}

func fieldLabel(name string, active bool) string {
	if active {
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ " + name)
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + name)
}

// renderChoiceField renders one setup field. Active fields list every
// option; settled fields show only the chosen value.
func renderChoiceField(name string, options []string, selected int, active, settled bool) string {
	var b strings.Builder
	b.WriteString("  " + fieldLabel(name, active))

	if active {
		b.WriteString("\n")
		for i, opt := range options {
			if i == selected {
				b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("      ▸ "+opt) + "\n")
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("        "+opt) + "\n")
			}
		}
	} else if settled {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("  " + options[selected]))
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

// renderQuestion shows the current question with its input.
func (s *QuizScreen) renderQuestion(width int) string {
	pending := s.registry.Current().PendingQuiz
	if pending == nil {
		return ""
	}
	q := pending.Questions[s.question]

	var b strings.Builder

	progress := fmt.Sprintf("  Question %d of %d", s.question+1, len(pending.Questions))
	answered := len(s.registry.Current().PendingAnswers)
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(progress))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("   %d answered", answered)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(width - 4).Render("  " + q.Prompt))
	b.WriteString("\n\n")

	switch q.Kind {
	case qz.KindMCQ:
		labels := []string{"A", "B", "C", "D"}
		for i, opt := range q.Options {
			label := "?"
			if i < len(labels) {
				label = labels[i]
			}
			line := fmt.Sprintf("%s)  %s", label, opt)
			b.WriteString(renderOption(line, i == s.selected))
		}
	case qz.KindTrueFalse:
		b.WriteString(renderOption("True", s.selected == 0))
		b.WriteString(renderOption("False", s.selected == 1))
	case qz.KindFillBlank:
		b.WriteString("  " + s.fillIn.View() + "\n")
	}

	return b.String()
}

func renderOption(line string, selected bool) string {
	if selected {
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  ▸ "+line) + "\n"
	}
	return lipgloss.NewStyle().Foreground(theme.Text).Render("    "+line) + "\n"
}

// renderResult shows the graded quiz: score, tier, and a per-question
// review with explanations.
func (s *QuizScreen) renderResult(width int) string {
	if s.result == nil || s.gradedQuiz == nil {
		return ""
	}

	var b strings.Builder

	pct := s.result.Percent()
	tier := analytics.TierFor(pct)

	scoreLine := fmt.Sprintf("  Score: %d/%d  (%.0f%%)  ", s.result.Score, s.result.Total, pct)
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(scoreLine))
	b.WriteString(renderTier(tier))
	b.WriteString("\n\n")

	for i, q := range s.gradedQuiz.Questions {
		answer := s.gradedAnswers[i]
		correct := qz.Grade(q, answer)

		mark := lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("✓")
		if !correct {
			mark = lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("✗")
		}

		b.WriteString(fmt.Sprintf("  %s %s\n", mark,
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(q.Prompt)))

		if !correct {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
				fmt.Sprintf("      Your answer: %s   Correct: %s", displayAnswer(q, answer), correctAnswer(q))) + "\n")
		}
		if q.Explanation != "" {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Width(width-8).Render(
				"      "+q.Explanation) + "\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

func renderTier(tier analytics.Tier) string {
	switch tier {
	case analytics.TierGood:
		return theme.TierGood.Render("GOOD")
	case analytics.TierAverage:
		return theme.TierAverage.Render("AVERAGE")
	default:
		return theme.TierPoor.Render("NEEDS WORK")
	}
}

func displayAnswer(q qz.Question, a qz.Answer) string {
	if q.Kind == qz.KindMCQ {
		if a.Choice >= 0 && a.Choice < len(q.Options) {
			return q.Options[a.Choice]
		}
		return "?"
	}
	return a.Text
}

func correctAnswer(q qz.Question) string {
	if q.Kind == qz.KindMCQ {
		if q.CorrectIndex >= 0 && q.CorrectIndex < len(q.Options) {
			return q.Options[q.CorrectIndex]
		}
		return "?"
	}
	return q.CorrectText
}
