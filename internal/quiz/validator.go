package quiz

import "fmt"

// Validator checks a generated quiz for structural correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for error messages, e.g. "structural".
	Name() string

	// Validate checks the quiz and returns nil if it passes.
	Validate(qz *Quiz, input GenerateInput) *ValidationError
}

// ValidationError describes why a generated quiz failed validation.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator checks that every question has the fields its
// kind requires and that the quiz is non-empty.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(qz *Quiz, input GenerateInput) *ValidationError {
	if len(qz.Questions) == 0 {
		return &ValidationError{Validator: v.Name(), Message: "quiz has no questions"}
	}

	for i, q := range qz.Questions {
		if q.Prompt == "" {
			return v.fail(i, "empty prompt")
		}
		switch q.Kind {
		case KindMCQ:
			if len(q.Options) < 2 {
				return v.fail(i, fmt.Sprintf("mcq question has %d options", len(q.Options)))
			}
			if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
				return v.fail(i, fmt.Sprintf("correct index %d out of range", q.CorrectIndex))
			}
		case KindTrueFalse:
			if q.CorrectText != "True" && q.CorrectText != "False" {
				return v.fail(i, fmt.Sprintf("tf answer %q is not True/False", q.CorrectText))
			}
		case KindFillBlank:
			if q.CorrectText == "" {
				return v.fail(i, "fill question has empty answer")
			}
		default:
			return v.fail(i, fmt.Sprintf("unknown question kind %q", q.Kind))
		}
	}

	// A mixed request must still produce only known kinds (checked above);
	// a single-kind request must not smuggle in other kinds.
	if input.Kind != QuizMixed {
		want := QuestionKind(input.Kind)
		for i, q := range qz.Questions {
			if q.Kind != want {
				return v.fail(i, fmt.Sprintf("kind %q in a %q quiz", q.Kind, input.Kind))
			}
		}
	}

	return nil
}

func (v *StructuralValidator) fail(idx int, msg string) *ValidationError {
	return &ValidationError{
		Validator: v.Name(),
		Message:   fmt.Sprintf("question %d: %s", idx, msg),
	}
}
