// Package quiz implements the quiz screen: choosing what to generate,
// answering question by question, and the graded result view.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	qz "github.com/ashwinkumar/biotutor/internal/quiz"
	"github.com/ashwinkumar/biotutor/internal/registry"
	"github.com/ashwinkumar/biotutor/internal/router"
	"github.com/ashwinkumar/biotutor/internal/screen"
	"github.com/ashwinkumar/biotutor/internal/store"
	"github.com/ashwinkumar/biotutor/internal/ui/components"
	"github.com/ashwinkumar/biotutor/internal/ui/layout"
)

const spinnerInterval = 100 * time.Millisecond

// phase is the screen's display state.
type phase int

const (
	phaseNoTopics phase = iota
	phaseSetup
	phaseGenerating
	phaseAnswering
	phaseResult
)

// setupStep is the current field of the setup form.
type setupStep int

const (
	stepTopic setupStep = iota
	stepKind
	stepDifficulty
	stepCount
)

var (
	kindChoices = []qz.Kind{qz.QuizMCQ, qz.QuizTrueFalse, qz.QuizFillBlank, qz.QuizMixed}
	kindLabels  = []string{"Multiple choice", "True / false", "Fill in the blank", "Mixed"}

	difficultyChoices = []qz.Difficulty{qz.DifficultyEasy, qz.DifficultyMedium, qz.DifficultyHard}
	difficultyLabels  = []string{"Easy", "Medium", "Hard"}
)

// QuizScreen drives one quiz through its whole lifecycle: setup,
// generation, answering, submission, result.
type QuizScreen struct {
	registry  *registry.Registry
	generator qz.Generator
	events    store.EventRepo

	phase phase

	// setup form
	step        setupStep
	topicNames  []string
	topicIdx    int
	kindIdx     int
	diffIdx     int
	countInput  components.TextInput

	// answering
	question int // index into the pending quiz's questions
	selected int // highlighted option for mcq/tf
	fillIn   components.TextInput

	// result view state, captured at submission since grading clears
	// the session's pending quiz
	result        *qz.Result
	gradedQuiz    *qz.Quiz
	gradedAnswers map[int]qz.Answer

	spinner components.Spinner
	errMsg  string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a new QuizScreen over the current session's topics.
func New(reg *registry.Registry, generator qz.Generator, events store.EventRepo) *QuizScreen {
	s := &QuizScreen{
		registry:  reg,
		generator: generator,
		events:    events,
	}

	current := reg.Current()
	for _, t := range sortedTopicNames(current) {
		s.topicNames = append(s.topicNames, t)
	}
	if len(s.topicNames) == 0 {
		s.phase = phaseNoTopics
		return s
	}

	s.phase = phaseSetup
	// Default to the topic being studied right now.
	for i, name := range s.topicNames {
		if name == current.CurrentTopic {
			s.topicIdx = i
		}
	}
	s.countInput = components.NewTextInput("5", true, 2)
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseSetup:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseAnswering:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Answer"},
			{Key: "←", Description: "Previous question"},
			{Key: "Ctrl+S", Description: "Submit now"},
			{Key: "Esc", Description: "Abandon quiz"},
		}
	case phaseResult:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
		}
	}
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		return s.handleQuizReady(msg)

	case spinnerTickMsg:
		if s.phase == phaseGenerating {
			s.spinner.Advance()
			return s, s.tickSpinner()
		}
		return s, nil

	case tea.KeyMsg:
		switch s.phase {
		case phaseNoTopics:
			if msg.String() == "esc" || msg.String() == "enter" {
				return s, popCmd()
			}
			return s, nil
		case phaseSetup:
			return s.updateSetup(msg)
		case phaseAnswering:
			return s.updateAnswering(msg)
		case phaseResult:
			if msg.String() == "esc" || msg.String() == "enter" {
				return s, popCmd()
			}
			return s, nil
		}
	}

	if s.phase == phaseSetup && s.step == stepCount {
		var cmd tea.Cmd
		s.countInput, cmd = s.countInput.Update(msg)
		return s, cmd
	}
	if s.phase == phaseAnswering && s.currentQuestion().Kind == qz.KindFillBlank {
		var cmd tea.Cmd
		s.fillIn, cmd = s.fillIn.Update(msg)
		return s, cmd
	}
	return s, nil
}

func popCmd() tea.Cmd {
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *QuizScreen) tickSpinner() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

// updateSetup walks the form: topic, kind, difficulty, count.
func (s *QuizScreen) updateSetup(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if key == "esc" {
		if s.step == stepTopic {
			return s, popCmd()
		}
		s.step--
		return s, nil
	}

	if s.step == stepCount {
		switch key {
		case "enter":
			return s.startGeneration()
		default:
			var cmd tea.Cmd
			s.countInput, cmd = s.countInput.Update(msg)
			return s, cmd
		}
	}

	switch key {
	case "up", "k":
		s.moveChoice(-1)
	case "down", "j":
		s.moveChoice(1)
	case "enter":
		s.step++
		if s.step == stepCount {
			return s, s.countInput.Init()
		}
	}
	return s, nil
}

func (s *QuizScreen) moveChoice(delta int) {
	switch s.step {
	case stepTopic:
		s.topicIdx = clamp(s.topicIdx+delta, len(s.topicNames))
	case stepKind:
		s.kindIdx = clamp(s.kindIdx+delta, len(kindChoices))
	case stepDifficulty:
		s.diffIdx = clamp(s.diffIdx+delta, len(difficultyChoices))
	}
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

func (s *QuizScreen) startGeneration() (screen.Screen, tea.Cmd) {
	count := 5
	if n, err := s.countInput.NumericValue(); err == nil && n > 0 {
		count = n
	}
	if count > 20 {
		count = 20
	}

	input := qz.GenerateInput{
		Topic:      s.topicNames[s.topicIdx],
		Kind:       kindChoices[s.kindIdx],
		Difficulty: difficultyChoices[s.diffIdx],
		Count:      count,
	}

	s.phase = phaseGenerating
	s.errMsg = ""

	return s, tea.Batch(s.tickSpinner(), func() tea.Msg {
		quiz, err := s.generator.Generate(context.Background(), input)
		return quizReadyMsg{Quiz: quiz, Err: err}
	})
}

func (s *QuizScreen) handleQuizReady(msg quizReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		// A failed generation leaves the session untouched; back to setup.
		s.phase = phaseSetup
		s.step = stepTopic
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	s.registry.Current().InstallQuiz(msg.Quiz)
	s.phase = phaseAnswering
	s.question = 0
	s.prepareQuestion()
	return s, s.questionInitCmd()
}

// prepareQuestion resets per-question input state, restoring any
// previously given answer so going back shows it.
func (s *QuizScreen) prepareQuestion() {
	current := s.registry.Current()
	q := s.currentQuestion()

	prev, answered := current.PendingAnswers[s.question]

	switch q.Kind {
	case qz.KindMCQ:
		s.selected = 0
		if answered {
			s.selected = prev.Choice
		}
	case qz.KindTrueFalse:
		s.selected = 0
		if answered && prev.Text == "False" {
			s.selected = 1
		}
	case qz.KindFillBlank:
		s.fillIn = components.NewTextInput("Your answer...", false, 80)
		if answered {
			s.fillIn.Model.SetValue(prev.Text)
		}
	}
}

func (s *QuizScreen) questionInitCmd() tea.Cmd {
	if s.currentQuestion().Kind == qz.KindFillBlank {
		return s.fillIn.Init()
	}
	return nil
}

func (s *QuizScreen) currentQuestion() qz.Question {
	pending := s.registry.Current().PendingQuiz
	if pending == nil || s.question >= len(pending.Questions) {
		return qz.Question{}
	}
	return pending.Questions[s.question]
}

func (s *QuizScreen) updateAnswering(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	current := s.registry.Current()
	pending := current.PendingQuiz
	if pending == nil {
		return s, popCmd()
	}

	q := s.currentQuestion()
	key := msg.String()

	switch key {
	case "esc":
		current.ClearQuiz()
		return s, popCmd()

	case "ctrl+s":
		return s.submit()

	case "left", "h":
		if q.Kind == qz.KindFillBlank {
			break // both keys type into / move within the answer field
		}
		if s.question > 0 {
			s.question--
			s.prepareQuestion()
			return s, s.questionInitCmd()
		}
		return s, nil

	case "up", "k":
		if q.Kind != qz.KindFillBlank {
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		}

	case "down", "j":
		if q.Kind != qz.KindFillBlank {
			limit := len(q.Options)
			if q.Kind == qz.KindTrueFalse {
				limit = 2
			}
			if s.selected < limit-1 {
				s.selected++
			}
			return s, nil
		}

	case "enter":
		var answer qz.Answer
		switch q.Kind {
		case qz.KindMCQ:
			answer = qz.Answer{Choice: s.selected}
		case qz.KindTrueFalse:
			answer = qz.Answer{Text: []string{"True", "False"}[s.selected]}
		case qz.KindFillBlank:
			text := strings.TrimSpace(s.fillIn.Value())
			if text == "" {
				return s, nil
			}
			answer = qz.Answer{Text: text}
		}
		if err := current.SetAnswer(s.question, answer); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}

		if s.question+1 < len(pending.Questions) {
			s.question++
			s.prepareQuestion()
			return s, s.questionInitCmd()
		}
		return s.submit()
	}

	if q.Kind == qz.KindFillBlank {
		var cmd tea.Cmd
		s.fillIn, cmd = s.fillIn.Update(msg)
		return s, cmd
	}
	return s, nil
}

// submit grades the pending quiz. Submission is all or nothing: with
// unanswered questions it fails and jumps to the first gap.
func (s *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	current := s.registry.Current()
	graded := current.PendingQuiz
	answers := make(map[int]qz.Answer, len(current.PendingAnswers))
	for i, a := range current.PendingAnswers {
		answers[i] = a
	}

	result, err := current.SubmitQuiz(time.Now())
	if err != nil {
		var incomplete *registry.ErrIncompleteAnswers
		if errors.As(err, &incomplete) {
			s.errMsg = fmt.Sprintf("Answer everything first: %d of %d done", incomplete.Answered, incomplete.Total)
			for i := range graded.Questions {
				if _, ok := current.PendingAnswers[i]; !ok {
					s.question = i
					break
				}
			}
			s.prepareQuestion()
			return s, s.questionInitCmd()
		}
		s.errMsg = err.Error()
		return s, nil
	}

	s.result = result
	s.gradedQuiz = graded
	s.gradedAnswers = answers
	s.errMsg = ""
	s.phase = phaseResult
	s.recordResult(result)
	return s, nil
}

// recordResult appends a quiz event, best-effort.
func (s *QuizScreen) recordResult(r *qz.Result) {
	if s.events == nil {
		return
	}
	err := s.events.AppendQuizEvent(context.Background(), store.QuizEventData{
		QuizID:       r.QuizID,
		SessionID:    s.registry.Current().ID,
		Topic:        r.Topic,
		Kind:         string(r.Kind),
		Difficulty:   string(r.Difficulty),
		NumQuestions: r.Total,
		Score:        r.Score,
		Total:        r.Total,
		Percent:      r.Percent(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log quiz event: %v\n", err)
	}
}

// sortedTopicNames returns the session's topic names ordered by when
// each topic was first studied.
func sortedTopicNames(s *registry.Session) []string {
	names := make([]string, 0, len(s.Topics))
	for name := range s.Topics {
		names = append(names, name)
	}
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && s.Topics[names[j]].StartedAt.Before(s.Topics[names[j-1]].StartedAt); j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
	return names
}
