package registry

import (
	"errors"
	"testing"

	"github.com/ashwinkumar/biotutor/internal/quiz"
)

func TestNewRegistryStartsWithOneSession(t *testing.T) {
	r := New(nil)

	if r.Len() != 1 {
		t.Fatalf("expected 1 session, got %d", r.Len())
	}
	s := r.Current()
	if s == nil {
		t.Fatal("expected a current session")
	}
	if s.Name != "Study Session 1" {
		t.Errorf("name = %q, want %q", s.Name, "Study Session 1")
	}
	if s.ID == "" {
		t.Error("expected a generated ID")
	}
}

func TestCreateMakesNewSessionCurrent(t *testing.T) {
	r := New(nil)
	first := r.Current()

	second := r.Create()
	if r.Current() != second {
		t.Error("new session should become current")
	}
	if second.Name != "Study Session 2" {
		t.Errorf("name = %q, want %q", second.Name, "Study Session 2")
	}
	if second.ID == first.ID {
		t.Error("sessions must have distinct IDs")
	}
}

func TestSwitch(t *testing.T) {
	r := New(nil)
	first := r.Current()
	r.Create()

	if err := r.Switch(first.ID); err != nil {
		t.Fatalf("switch: %v", err)
	}
	if r.Current() != first {
		t.Error("switch did not change the current session")
	}

	err := r.Switch("nope")
	var notFound *ErrSessionNotFound
	if !asErr(err, &notFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if r.Current() != first {
		t.Error("failed switch must not change the current session")
	}
}

func TestDeleteNonCurrentSession(t *testing.T) {
	r := New(nil)
	first := r.Current()
	second := r.Create()

	if err := r.Delete(first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if r.Len() != 1 {
		t.Fatalf("expected 1 session, got %d", r.Len())
	}
	if r.Current() != second {
		t.Error("deleting a non-current session must not change the current one")
	}
}

func TestDeleteCurrentSelectsAnother(t *testing.T) {
	r := New(nil)
	first := r.Current()
	second := r.Create()

	if err := r.Delete(second.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if r.Current() != first {
		t.Error("expected remaining session to become current")
	}
}

func TestDeleteLastSessionRecreates(t *testing.T) {
	r := New(nil)
	only := r.Current()

	if err := r.Delete(only.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if r.Len() != 1 {
		t.Fatalf("expected exactly 1 session after deleting the last, got %d", r.Len())
	}
	fresh := r.Current()
	if fresh == nil {
		t.Fatal("expected a current session")
	}
	if fresh.ID == only.ID {
		t.Error("replacement session must have a distinct ID")
	}
	// Numbers are never reused after deletion.
	if fresh.Name != "Study Session 2" {
		t.Errorf("name = %q, want %q", fresh.Name, "Study Session 2")
	}
}

func TestRegistryNeverEmptyUnderChurn(t *testing.T) {
	r := New(nil)

	for i := 0; i < 20; i++ {
		if i%3 == 0 {
			r.Create()
		}
		cur := r.Current()
		if cur == nil {
			t.Fatalf("iteration %d: no current session", i)
		}
		if err := r.Delete(cur.ID); err != nil {
			t.Fatalf("iteration %d: delete: %v", i, err)
		}
		if r.Len() == 0 {
			t.Fatalf("iteration %d: registry empty", i)
		}
		if r.Current() == nil {
			t.Fatalf("iteration %d: no current session after delete", i)
		}
	}
}

func TestRename(t *testing.T) {
	r := New(nil)
	s := r.Current()

	if err := r.Rename(s.ID, "Genetics Review"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if s.Name != "Genetics Review" {
		t.Errorf("name = %q", s.Name)
	}

	err := r.Rename("nope", "x")
	var notFound *ErrSessionNotFound
	if !asErr(err, &notFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionsOrderedByCreation(t *testing.T) {
	r := New(nil)
	first := r.Current()
	second := r.Create()
	third := r.Create()

	got := r.Sessions()
	want := []*Session{first, second, third}
	if len(got) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %q", i, got[i].Name)
		}
	}
}

func fixtureQuiz() *quiz.Quiz {
	return &quiz.Quiz{
		ID:         "quiz-1",
		Topic:      "crispr",
		Kind:       quiz.QuizMixed,
		Difficulty: quiz.DifficultyEasy,
		Questions: []quiz.Question{
			{Kind: quiz.KindMCQ, Prompt: "q1", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 2},
			{Kind: quiz.KindTrueFalse, Prompt: "q2", CorrectText: "True"},
			{Kind: quiz.KindFillBlank, Prompt: "q3", CorrectText: "Paris"},
		},
	}
}

func TestQuizLifecycle(t *testing.T) {
	r := New(nil)
	s := r.Current()

	// No pending quiz: answer and submit both fail.
	var noPending *ErrNoPendingQuiz
	if err := s.SetAnswer(0, quiz.Answer{Choice: 1}); !asErr(err, &noPending) {
		t.Fatalf("expected ErrNoPendingQuiz, got %v", err)
	}
	if _, err := s.SubmitQuiz(s.CreatedAt); !asErr(err, &noPending) {
		t.Fatalf("expected ErrNoPendingQuiz, got %v", err)
	}

	s.InstallQuiz(fixtureQuiz())
	if !s.HasPendingQuiz() {
		t.Fatal("expected pending quiz")
	}

	if err := s.SetAnswer(0, quiz.Answer{Choice: 2}); err != nil {
		t.Fatalf("answer 0: %v", err)
	}
	if err := s.SetAnswer(1, quiz.Answer{Text: "True"}); err != nil {
		t.Fatalf("answer 1: %v", err)
	}
	if err := s.SetAnswer(5, quiz.Answer{}); err == nil {
		t.Fatal("expected error for out-of-range index")
	}

	// Incomplete submission: rejected, state unchanged.
	_, err := s.SubmitQuiz(s.CreatedAt)
	var incomplete *ErrIncompleteAnswers
	if !asErr(err, &incomplete) {
		t.Fatalf("expected ErrIncompleteAnswers, got %v", err)
	}
	if incomplete.Answered != 2 || incomplete.Total != 3 {
		t.Errorf("incomplete = %+v", incomplete)
	}
	if !s.HasPendingQuiz() || len(s.QuizHistory) != 0 {
		t.Fatal("failed submission must leave state unchanged")
	}

	// Complete and submit; fill answer is trimmed and case-folded.
	if err := s.SetAnswer(2, quiz.Answer{Text: "  paris "}); err != nil {
		t.Fatalf("answer 2: %v", err)
	}
	result, err := s.SubmitQuiz(s.CreatedAt)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Score != 3 || result.Total != 3 {
		t.Errorf("result = %d/%d, want 3/3", result.Score, result.Total)
	}
	if s.HasPendingQuiz() {
		t.Error("submission must clear the pending quiz")
	}
	if len(s.PendingAnswers) != 0 {
		t.Error("submission must clear collected answers")
	}
	if len(s.QuizHistory) != 1 {
		t.Fatalf("quiz history = %d entries, want 1", len(s.QuizHistory))
	}
	if got := s.TopicPerformance["crispr"]; got != 100 {
		t.Errorf("performance = %v, want 100", got)
	}
}

func TestAnswerOverwrite(t *testing.T) {
	r := New(nil)
	s := r.Current()
	s.InstallQuiz(fixtureQuiz())

	if err := s.SetAnswer(0, quiz.Answer{Choice: 0}); err != nil {
		t.Fatal(err)
	}
	if err := s.SetAnswer(0, quiz.Answer{Choice: 2}); err != nil {
		t.Fatal(err)
	}
	if got := s.PendingAnswers[0].Choice; got != 2 {
		t.Errorf("answer = %d, want overwritten value 2", got)
	}
}

func TestTopicPerformanceOverwrittenNotAveraged(t *testing.T) {
	r := New(nil)
	s := r.Current()

	// First quiz: 8/10 (80%), simulated via a 10-question quiz.
	first := &quiz.Quiz{ID: "q-a", Topic: "mitosis", Kind: quiz.QuizTrueFalse, Difficulty: quiz.DifficultyEasy}
	for i := 0; i < 10; i++ {
		first.Questions = append(first.Questions, quiz.Question{Kind: quiz.KindTrueFalse, Prompt: "q", CorrectText: "True"})
	}
	s.InstallQuiz(first)
	for i := 0; i < 10; i++ {
		answer := "True"
		if i >= 8 {
			answer = "False"
		}
		if err := s.SetAnswer(i, quiz.Answer{Text: answer}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := s.SubmitQuiz(s.CreatedAt); err != nil {
		t.Fatal(err)
	}
	if got := s.TopicPerformance["mitosis"]; got != 80 {
		t.Fatalf("performance = %v, want 80", got)
	}

	// Second quiz on the same topic: 2/5 (40%). Performance is the
	// latest score, never an average.
	second := &quiz.Quiz{ID: "q-b", Topic: "mitosis", Kind: quiz.QuizTrueFalse, Difficulty: quiz.DifficultyEasy}
	for i := 0; i < 5; i++ {
		second.Questions = append(second.Questions, quiz.Question{Kind: quiz.KindTrueFalse, Prompt: "q", CorrectText: "True"})
	}
	s.InstallQuiz(second)
	for i := 0; i < 5; i++ {
		answer := "True"
		if i >= 2 {
			answer = "False"
		}
		if err := s.SetAnswer(i, quiz.Answer{Text: answer}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := s.SubmitQuiz(s.CreatedAt); err != nil {
		t.Fatal(err)
	}
	if got := s.TopicPerformance["mitosis"]; got != 40 {
		t.Errorf("performance = %v, want 40 (latest), not 60 (average)", got)
	}
	if len(s.QuizHistory) != 2 {
		t.Errorf("quiz history = %d entries, want 2", len(s.QuizHistory))
	}
}

func TestInstallQuizClearsPreviousAnswers(t *testing.T) {
	r := New(nil)
	s := r.Current()

	s.InstallQuiz(fixtureQuiz())
	if err := s.SetAnswer(0, quiz.Answer{Choice: 1}); err != nil {
		t.Fatal(err)
	}

	s.InstallQuiz(fixtureQuiz())
	if len(s.PendingAnswers) != 0 {
		t.Error("installing a quiz must clear previous answers")
	}

	s.ClearQuiz()
	if s.HasPendingQuiz() {
		t.Error("clear must remove the pending quiz")
	}
}

func asErr[T error](err error, target *T) bool {
	return errors.As(err, target)
}
