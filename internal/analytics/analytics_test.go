package analytics

import (
	"testing"

	"github.com/ashwinkumar/biotutor/internal/quiz"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		percent float64
		want    Tier
	}{
		{0, TierPoor},
		{49.9, TierPoor},
		{50, TierAverage},
		{69.9, TierAverage},
		{70, TierGood},
		{100, TierGood},
	}
	for _, tt := range tests {
		if got := TierFor(tt.percent); got != tt.want {
			t.Errorf("TierFor(%v) = %q, want %q", tt.percent, got, tt.want)
		}
	}
}

func TestSummarizeEmptyHistoryUnavailable(t *testing.T) {
	s := Summarize(nil)
	if s.Available {
		t.Error("empty history must be unavailable, not zero")
	}
}

func TestSummarize(t *testing.T) {
	history := []quiz.Result{
		{Score: 8, Total: 10},
		{Score: 2, Total: 5},
	}
	s := Summarize(history)

	if !s.Available {
		t.Fatal("expected available summary")
	}
	if s.Quizzes != 2 || s.Correct != 10 || s.Questions != 15 {
		t.Errorf("summary = %+v", s)
	}
	want := 100 * 10.0 / 15.0
	if s.Average != want {
		t.Errorf("average = %v, want %v", s.Average, want)
	}
}

func TestTopicBreakdownSorted(t *testing.T) {
	breakdown := TopicBreakdown(map[string]float64{
		"mitosis": 40,
		"crispr":  85,
		"pcr":     60,
	})

	if len(breakdown) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(breakdown))
	}
	wantOrder := []string{"crispr", "mitosis", "pcr"}
	wantTiers := []Tier{TierGood, TierPoor, TierAverage}
	for i, ts := range breakdown {
		if ts.Topic != wantOrder[i] {
			t.Errorf("position %d: topic %q, want %q", i, ts.Topic, wantOrder[i])
		}
		if ts.Tier != wantTiers[i] {
			t.Errorf("topic %q: tier %q, want %q", ts.Topic, ts.Tier, wantTiers[i])
		}
	}
}
