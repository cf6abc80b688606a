// Package tutor is the prompt layer: every LLM-backed study operation
// (topic classification, explanations, document Q&A, feedback) lives
// here, built on the llm.Provider abstraction.
package tutor

import (
	"context"
	"strings"

	"github.com/ashwinkumar/biotutor/internal/llm"
)

// Config controls prompt sizes and generation parameters.
type Config struct {
	// MaxTokens is the token budget for LLM responses.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxDocChars caps how much document text is sent in a prompt.
	MaxDocChars int

	// MaxExchanges caps how many recent conversation exchanges are
	// included as context in follow-up questions.
	MaxExchanges int
}

// DefaultConfig returns recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:    1024,
		Temperature:  0.7,
		MaxDocChars:  30000,
		MaxExchanges: 3,
	}
}

// Service answers study requests using the LLM provider. It is
// stateless: all session context is passed in per call.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a tutor service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// complete runs one plain-text request and returns the response text.
func (s *Service) complete(ctx context.Context, purpose, system, user string) (string, error) {
	ctx = llm.WithPurpose(ctx, purpose)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: user},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(llm.UnwrapText(resp.Content)), nil
}

// parseYesNo interprets a yes/no classification response. Anything
// that does not clearly start with "yes" counts as no.
func parseYesNo(text string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(text)), "yes")
}

// clipDoc truncates document text to the configured prompt budget.
func (s *Service) clipDoc(text string) string {
	if s.cfg.MaxDocChars > 0 && len(text) > s.cfg.MaxDocChars {
		return text[:s.cfg.MaxDocChars]
	}
	return text
}
