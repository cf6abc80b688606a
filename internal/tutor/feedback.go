package tutor

import (
	"context"
	"fmt"

	"github.com/ashwinkumar/biotutor/internal/analytics"
)

// Feedback generates a short performance narrative over the session's
// quiz summary and per-topic scores. Callers must check
// Summary.Available first; there is nothing to say about zero quizzes.
func (s *Service) Feedback(ctx context.Context, summary analytics.Summary, breakdown []analytics.TopicScore) (string, error) {
	text, err := s.complete(ctx, "feedback", tutorSystem, feedbackPrompt(summary, breakdown))
	if err != nil {
		return "", fmt.Errorf("generate feedback: %w", err)
	}
	return text, nil
}
