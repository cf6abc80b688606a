package registry

import "fmt"

// ErrSessionNotFound indicates an operation referenced a session ID
// that is not in the registry.
type ErrSessionNotFound struct {
	ID string
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("session %q not found", e.ID)
}

// ErrNoPendingQuiz indicates a quiz operation was attempted while no
// quiz was pending on the session.
type ErrNoPendingQuiz struct{}

func (e *ErrNoPendingQuiz) Error() string {
	return "no pending quiz"
}

// ErrIncompleteAnswers indicates a quiz was submitted before every
// question was answered. The pending quiz and collected answers are
// left untouched so the learner can complete and resubmit.
type ErrIncompleteAnswers struct {
	Answered int
	Total    int
}

func (e *ErrIncompleteAnswers) Error() string {
	return fmt.Sprintf("quiz incomplete: %d of %d questions answered", e.Answered, e.Total)
}
