package tutor

import (
	"context"
	"fmt"

	"github.com/ashwinkumar/biotutor/internal/llm"
	"github.com/ashwinkumar/biotutor/internal/registry"
)

// ClassifyTopic reports whether the user-entered string is a biotech
// study topic. The tracker trusts this decision; nothing else
// validates topic names.
func (s *Service) ClassifyTopic(ctx context.Context, topic string) (bool, error) {
	text, err := s.complete(ctx, "classify", classifySystem, classifyPrompt(topic))
	if err != nil {
		return false, fmt.Errorf("classify topic: %w", err)
	}
	return parseYesNo(text), nil
}

// Explain generates a study explanation for the topic.
func (s *Service) Explain(ctx context.Context, topic string) (string, error) {
	text, err := s.complete(ctx, "explanation", tutorSystem, explainPrompt(topic))
	if err != nil {
		return "", fmt.Errorf("explain topic: %w", err)
	}
	return text, nil
}

// AskTopic answers a follow-up question about the current topic, with
// the most recent conversation exchanges as context.
func (s *Service) AskTopic(ctx context.Context, topic string, conversation []registry.Exchange, question string) (string, error) {
	prompt := askTopicPrompt(topic, conversation, question, s.cfg.MaxExchanges)
	text, err := s.complete(ctx, "topic-qa", tutorSystem, prompt)
	if err != nil {
		return "", fmt.Errorf("answer topic question: %w", err)
	}
	return text, nil
}

// Resource is one suggested learning resource.
type Resource struct {
	Title       string `json:"title"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
}

// Resources suggests learning resources for the topic.
func (s *Service) Resources(ctx context.Context, topic string) ([]Resource, error) {
	ctx = llm.WithPurpose(ctx, "resources")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: tutorSystem,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: resourcesPrompt(topic)},
		},
		Schema:      ResourcesSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("suggest resources: %w", err)
	}

	var out struct {
		Resources []Resource `json:"resources"`
	}
	if err := llm.ExtractJSON(llm.UnwrapText(resp.Content), &out); err != nil {
		return nil, fmt.Errorf("parse resources: %w", err)
	}
	return out.Resources, nil
}

// NextTopics suggests what to study next based on covered topics.
func (s *Service) NextTopics(ctx context.Context, studied []string) (string, error) {
	text, err := s.complete(ctx, "next-topics", tutorSystem, nextTopicsPrompt(studied))
	if err != nil {
		return "", fmt.Errorf("suggest next topics: %w", err)
	}
	return text, nil
}
