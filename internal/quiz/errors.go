package quiz

import "fmt"

// GenerationError indicates the LLM failed to produce a usable quiz.
// It is recoverable: the caller may retry, and any previously pending
// quiz must be left untouched.
type GenerationError struct {
	Reason string
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("quiz generation failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("quiz generation failed: %s", e.Reason)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
