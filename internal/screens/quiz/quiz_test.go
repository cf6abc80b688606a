package quiz

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	qz "github.com/ashwinkumar/biotutor/internal/quiz"
	"github.com/ashwinkumar/biotutor/internal/registry"
	"github.com/ashwinkumar/biotutor/internal/screen"
	"github.com/ashwinkumar/biotutor/internal/topics"
)

// stubGenerator returns a fixed quiz or error.
type stubGenerator struct {
	quiz *qz.Quiz
	err  error
}

func (g *stubGenerator) Generate(context.Context, qz.GenerateInput) (*qz.Quiz, error) {
	return g.quiz, g.err
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuiz() *qz.Quiz {
	return &qz.Quiz{
		ID:         "quiz-1",
		Topic:      "crispr",
		Kind:       qz.QuizMixed,
		Difficulty: qz.DifficultyEasy,
		Questions: []qz.Question{
			{
				Kind:         qz.KindMCQ,
				Prompt:       "What does Cas9 do?",
				Options:      []string{"Cuts DNA", "Copies RNA", "Folds proteins", "Digests lipids"},
				CorrectIndex: 0,
				Explanation:  "Cas9 is a nuclease.",
			},
			{
				Kind:        qz.KindFillBlank,
				Prompt:      "PCR amplifies ____.",
				CorrectText: "DNA",
			},
		},
	}
}

func newTestScreen(t *testing.T, gen qz.Generator) (*QuizScreen, *registry.Registry) {
	t.Helper()
	reg := registry.New(nil)
	topics.NewTracker(nil).Begin(reg.Current(), "crispr")
	return New(reg, gen, nil), reg
}

func TestNoTopicsShowsHint(t *testing.T) {
	reg := registry.New(nil)
	s := New(reg, &stubGenerator{}, nil)

	if s.phase != phaseNoTopics {
		t.Fatal("expected no-topics phase for a fresh session")
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "Study a topic first") {
		t.Errorf("expected hint in view:\n%s", view)
	}
}

func TestSetupDefaultsToCurrentTopic(t *testing.T) {
	s, _ := newTestScreen(t, &stubGenerator{quiz: testQuiz()})

	if s.phase != phaseSetup {
		t.Fatal("expected setup phase")
	}
	if s.topicNames[s.topicIdx] != "crispr" {
		t.Errorf("expected current topic preselected, got %q", s.topicNames[s.topicIdx])
	}
}

func TestGenerationFailureReturnsToSetup(t *testing.T) {
	s, reg := newTestScreen(t, &stubGenerator{err: &qz.GenerationError{Reason: "malformed response"}})

	s.phase = phaseGenerating
	var scr screen.Screen = s
	scr, _ = scr.Update(quizReadyMsg{Err: &qz.GenerationError{Reason: "malformed response"}})

	if s.phase != phaseSetup {
		t.Error("failed generation should return to setup")
	}
	if s.errMsg == "" {
		t.Error("expected an error message")
	}
	if reg.Current().HasPendingQuiz() {
		t.Error("failed generation must not install a quiz")
	}
	_ = scr
}

func TestFullAnswerFlow(t *testing.T) {
	s, reg := newTestScreen(t, &stubGenerator{quiz: testQuiz()})

	var scr screen.Screen = s
	scr, _ = scr.Update(quizReadyMsg{Quiz: testQuiz()})

	if s.phase != phaseAnswering {
		t.Fatal("expected answering phase")
	}
	if !reg.Current().HasPendingQuiz() {
		t.Fatal("quiz should be installed on the session")
	}

	// Question 1 (mcq): pick option A.
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	if s.question != 1 {
		t.Fatalf("expected to advance to question 2, at %d", s.question)
	}

	// Question 2 (fill): type the answer and submit.
	for _, r := range "dna" {
		scr, _ = scr.Update(keyPress(r))
	}
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	if s.phase != phaseResult {
		t.Fatalf("expected result phase, got %d", s.phase)
	}
	if s.result.Score != 2 || s.result.Total != 2 {
		t.Errorf("score = %d/%d, want 2/2", s.result.Score, s.result.Total)
	}

	current := reg.Current()
	if current.HasPendingQuiz() {
		t.Error("pending quiz should be cleared after submission")
	}
	if len(current.QuizHistory) != 1 {
		t.Errorf("expected 1 history entry, got %d", len(current.QuizHistory))
	}
	if pct := current.TopicPerformance["crispr"]; pct != 100 {
		t.Errorf("topic performance = %v, want 100", pct)
	}

	view := s.View(80, 24)
	if !strings.Contains(view, "2/2") {
		t.Errorf("result view should show the score:\n%s", view)
	}
	_ = scr
}

func TestEarlySubmitReportsIncomplete(t *testing.T) {
	s, reg := newTestScreen(t, &stubGenerator{quiz: testQuiz()})

	var scr screen.Screen = s
	scr, _ = scr.Update(quizReadyMsg{Quiz: testQuiz()})

	// Answer nothing and force a submit.
	scr, _ = scr.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})

	if s.phase != phaseAnswering {
		t.Error("incomplete submit should stay in answering phase")
	}
	if !strings.Contains(s.errMsg, "0 of 2") {
		t.Errorf("errMsg = %q, want incomplete answer counts", s.errMsg)
	}
	if !reg.Current().HasPendingQuiz() {
		t.Error("pending quiz must survive a failed submission")
	}
	if len(reg.Current().QuizHistory) != 0 {
		t.Error("failed submission must not touch history")
	}
	_ = scr
}

func TestAbandonClearsPendingQuiz(t *testing.T) {
	s, reg := newTestScreen(t, &stubGenerator{quiz: testQuiz()})

	var scr screen.Screen = s
	scr, _ = scr.Update(quizReadyMsg{Quiz: testQuiz()})
	scr, _ = scr.Update(specialKey(tea.KeyEscape))

	if reg.Current().HasPendingQuiz() {
		t.Error("abandoning the quiz should clear pending state")
	}
	_ = scr
}

func TestBackNavigationRestoresAnswer(t *testing.T) {
	s, reg := newTestScreen(t, &stubGenerator{quiz: testQuiz()})

	var scr screen.Screen = s
	scr, _ = scr.Update(quizReadyMsg{Quiz: testQuiz()})

	// Answer question 1 with option B.
	scr, _ = scr.Update(keyPress('j'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	if s.question != 1 {
		t.Fatal("expected question 2")
	}

	// Fill questions don't navigate back; check state directly.
	ans := reg.Current().PendingAnswers[0]
	if ans.Choice != 1 {
		t.Errorf("stored choice = %d, want 1", ans.Choice)
	}

	s.question = 0
	s.prepareQuestion()
	if s.selected != 1 {
		t.Errorf("revisiting question should restore selection, got %d", s.selected)
	}
	_ = scr
}
