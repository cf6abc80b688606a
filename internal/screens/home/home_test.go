package home

import (
	"strings"
	"testing"
	"time"

	qz "github.com/ashwinkumar/biotutor/internal/quiz"
	"github.com/ashwinkumar/biotutor/internal/registry"
	"github.com/ashwinkumar/biotutor/internal/topics"
)

func TestLLMItemsDisabledWithoutProvider(t *testing.T) {
	reg := registry.New(nil)
	h := New(reg, nil, nil, topics.NewTracker(nil), nil)

	for _, i := range []int{0, 1, 2} {
		if !h.disabled[i] {
			t.Errorf("menu item %d should be disabled without a provider", i)
		}
	}
	// Analytics, sessions, and exit stay usable.
	for _, i := range []int{3, 4, 5} {
		if h.disabled[i] {
			t.Errorf("menu item %d should stay enabled", i)
		}
	}

	view := h.View(100, 30)
	if !strings.Contains(view, "API key") {
		t.Errorf("expected the API key banner:\n%s", view)
	}
}

func TestStatsBarReflectsCurrentSession(t *testing.T) {
	reg := registry.New(nil)
	tracker := topics.NewTracker(nil)
	tracker.Begin(reg.Current(), "crispr")
	tracker.Begin(reg.Current(), "pcr")
	reg.Current().QuizHistory = append(reg.Current().QuizHistory,
		qz.Result{QuizID: "a", Topic: "crispr", Score: 8, Total: 10, Timestamp: time.Now()})

	h := New(reg, nil, nil, tracker, nil)
	view := h.View(100, 30)

	if !strings.Contains(view, "2 TOPICS") {
		t.Errorf("expected topic count in stats bar:\n%s", view)
	}
	if !strings.Contains(view, "1 QUIZZES") {
		t.Errorf("expected quiz count in stats bar:\n%s", view)
	}
}

func TestMascotVariants(t *testing.T) {
	reg := registry.New(nil)
	h := New(reg, nil, nil, topics.NewTracker(nil), nil)
	current := reg.Current()

	if got := h.mascotVariant(current); got != MascotIdle {
		t.Errorf("fresh session variant = %v, want idle", got)
	}

	current.QuizHistory = []qz.Result{{Score: 9, Total: 10, Timestamp: time.Now()}}
	if got := h.mascotVariant(current); got != MascotCelebrating {
		t.Errorf("good quiz variant = %v, want celebrating", got)
	}

	current.QuizHistory = []qz.Result{{Score: 2, Total: 10, Timestamp: time.Now()}}
	if got := h.mascotVariant(current); got != MascotAlert {
		t.Errorf("poor average variant = %v, want alert", got)
	}
}
