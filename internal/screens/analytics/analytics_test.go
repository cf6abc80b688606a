package analytics

import (
	"strings"
	"testing"
	"time"

	qz "github.com/ashwinkumar/biotutor/internal/quiz"
	"github.com/ashwinkumar/biotutor/internal/registry"
)

func seedResults(reg *registry.Registry, results ...qz.Result) {
	current := reg.Current()
	for _, r := range results {
		current.QuizHistory = append(current.QuizHistory, r)
		current.TopicPerformance[r.Topic] = r.Percent()
	}
}

func TestEmptyHistoryShowsUnavailable(t *testing.T) {
	reg := registry.New(nil)
	s := New(reg, nil)

	if cmd := s.Init(); cmd != nil {
		t.Error("no feedback should be requested without history")
	}

	view := s.View(80, 24)
	if !strings.Contains(view, "unavailable") {
		t.Errorf("expected unavailable notice:\n%s", view)
	}
}

func TestSummaryAndTiers(t *testing.T) {
	reg := registry.New(nil)
	seedResults(reg,
		qz.Result{QuizID: "a", Topic: "crispr", Score: 9, Total: 10, Timestamp: time.Now()},
		qz.Result{QuizID: "b", Topic: "pcr", Score: 3, Total: 10, Timestamp: time.Now()},
	)
	s := New(reg, nil)

	view := s.View(100, 30)

	// Average is 100 * 12/20 = 60.
	if !strings.Contains(view, "Average 60%") {
		t.Errorf("expected 60%% average:\n%s", view)
	}
	if !strings.Contains(view, "crispr") || !strings.Contains(view, "pcr") {
		t.Errorf("expected per-topic breakdown:\n%s", view)
	}
	if !strings.Contains(view, "good") || !strings.Contains(view, "poor") {
		t.Errorf("expected tier badges:\n%s", view)
	}
}

func TestFeedbackErrorIsSilent(t *testing.T) {
	reg := registry.New(nil)
	seedResults(reg, qz.Result{QuizID: "a", Topic: "crispr", Score: 5, Total: 10, Timestamp: time.Now()})
	s := New(reg, nil)
	s.feedbackPending = true

	s.Update(feedbackMsg{Err: errTest{}})

	if s.feedbackPending {
		t.Error("feedback should no longer be pending")
	}
	view := s.View(80, 24)
	if strings.Contains(view, "TUTOR FEEDBACK") {
		t.Error("failed feedback should not render a feedback section")
	}
}

func TestFeedbackRendered(t *testing.T) {
	reg := registry.New(nil)
	seedResults(reg, qz.Result{QuizID: "a", Topic: "crispr", Score: 8, Total: 10, Timestamp: time.Now()})
	s := New(reg, nil)

	s.Update(feedbackMsg{Text: "Strong grasp of genome editing."})

	view := s.View(80, 24)
	if !strings.Contains(view, "Strong grasp of genome editing.") {
		t.Errorf("expected feedback text:\n%s", view)
	}
}

type errTest struct{}

func (errTest) Error() string { return "test error" }
