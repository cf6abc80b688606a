package quiz

import "context"

// Generator produces quizzes using an LLM provider.
type Generator interface {
	// Generate produces a quiz for the given input context.
	// Returns a validated Quiz or a *GenerationError; on error no
	// partial quiz is returned.
	Generate(ctx context.Context, input GenerateInput) (*Quiz, error)
}
