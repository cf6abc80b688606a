package quiz

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ashwinkumar/biotutor/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// quizOutput is the raw LLM response before validation.
type quizOutput struct {
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	Type         string   `json:"type"`
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	CorrectText  string   `json:"correct_text"`
	Explanation  string   `json:"explanation"`
}

// Generate produces a quiz for the given input context.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Quiz, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	if input.Count <= 0 {
		input.Count = g.config.DefaultCount
	}
	if input.Difficulty == "" {
		input.Difficulty = DifficultyMedium
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, &GenerationError{Reason: "LLM request failed", Err: err}
	}

	// Models occasionally wrap the JSON in prose.
	var raw quizOutput
	if err := llm.ExtractJSON(llm.UnwrapText(resp.Content), &raw); err != nil {
		return nil, &GenerationError{Reason: "unparseable response", Err: err}
	}

	qz := &Quiz{
		ID:         uuid.NewString(),
		Topic:      input.Topic,
		Kind:       input.Kind,
		Difficulty: input.Difficulty,
		Questions:  make([]Question, len(raw.Questions)),
	}
	for i, q := range raw.Questions {
		qz.Questions[i] = Question{
			Kind:         QuestionKind(q.Type),
			Prompt:       q.Question,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
			CorrectText:  q.CorrectText,
			Explanation:  q.Explanation,
		}
	}

	// Run validators in order.
	for _, v := range g.config.Validators {
		if verr := v.Validate(qz, input); verr != nil {
			return nil, &GenerationError{
				Reason: fmt.Sprintf("invalid quiz (%s)", v.Name()),
				Err:    verr,
			}
		}
	}

	return qz, nil
}
