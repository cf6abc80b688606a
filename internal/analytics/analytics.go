// Package analytics computes read-side aggregates over a session's quiz
// history and topic performance. It never mutates session state.
package analytics

import (
	"sort"

	"github.com/ashwinkumar/biotutor/internal/quiz"
)

// Tier buckets a percentage score for display. The thresholds are the
// single source of truth for performance tiering; render sites must
// not re-derive them.
type Tier string

const (
	TierPoor    Tier = "poor"    // below 50
	TierAverage Tier = "average" // 50 to 69
	TierGood    Tier = "good"    // 70 and above
)

// TierFor buckets a percentage score into a Tier.
func TierFor(percent float64) Tier {
	switch {
	case percent < 50:
		return TierPoor
	case percent < 70:
		return TierAverage
	default:
		return TierGood
	}
}

// Summary aggregates a quiz history. Available is false when there is
// no history, in which case Average is meaningless and must be shown
// as unavailable rather than zero.
type Summary struct {
	Available bool
	Quizzes   int
	Correct   int
	Questions int
	Average   float64
}

// Summarize computes the overall summary of a quiz history.
// Average is 100 * sum(score) / sum(total) across all quizzes.
func Summarize(history []quiz.Result) Summary {
	if len(history) == 0 {
		return Summary{}
	}

	var s Summary
	s.Available = true
	s.Quizzes = len(history)
	for _, r := range history {
		s.Correct += r.Score
		s.Questions += r.Total
	}
	if s.Questions > 0 {
		s.Average = 100 * float64(s.Correct) / float64(s.Questions)
	}
	return s
}

// TopicScore is one topic's latest performance with its display tier.
type TopicScore struct {
	Topic   string
	Percent float64
	Tier    Tier
}

// TopicBreakdown lists every studied topic's latest score, sorted by
// topic name for stable display.
func TopicBreakdown(performance map[string]float64) []TopicScore {
	out := make([]TopicScore, 0, len(performance))
	for topic, pct := range performance {
		out = append(out, TopicScore{Topic: topic, Percent: pct, Tier: TierFor(pct)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Topic < out[j].Topic })
	return out
}
