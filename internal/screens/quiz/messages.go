package quiz

import (
	"time"

	qz "github.com/ashwinkumar/biotutor/internal/quiz"
)

// quizReadyMsg is sent when quiz generation finishes.
type quizReadyMsg struct {
	Quiz *qz.Quiz
	Err  error
}

// spinnerTickMsg is sent at short intervals to animate the loading spinner.
type spinnerTickMsg time.Time
