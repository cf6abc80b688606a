package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/ashwinkumar/biotutor/internal/llm"
)

const goodQuizJSON = `{
	"questions": [
		{"type": "mcq", "question": "Which enzyme cuts DNA in CRISPR-Cas9?",
		 "options": ["Cas9", "Ligase", "Polymerase", "Helicase"],
		 "correct_index": 0, "correct_text": "", "explanation": "Cas9 is the nuclease."},
		{"type": "tf", "question": "CRISPR arrays contain spacer sequences.",
		 "options": [], "correct_index": -1, "correct_text": "True", "explanation": "They do."}
	]
}`

func TestLLMGenerator_Success(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(goodQuizJSON)},
	)
	g := New(mock, DefaultConfig())

	qz, err := g.Generate(context.Background(), GenerateInput{
		Topic: "crispr", Kind: QuizMixed, Difficulty: DifficultyEasy, Count: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if qz.ID == "" {
		t.Error("expected generated quiz ID")
	}
	if qz.Topic != "crispr" || qz.Kind != QuizMixed || qz.Difficulty != DifficultyEasy {
		t.Errorf("quiz metadata = %+v", qz)
	}
	if len(qz.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(qz.Questions))
	}
	if qz.Questions[0].Kind != KindMCQ || qz.Questions[0].CorrectIndex != 0 {
		t.Errorf("first question = %+v", qz.Questions[0])
	}
	if qz.Questions[1].Kind != KindTrueFalse || qz.Questions[1].CorrectText != "True" {
		t.Errorf("second question = %+v", qz.Questions[1])
	}
}

func TestLLMGenerator_ProseWrappedJSON(t *testing.T) {
	wrapped := "Here is your quiz:\n" + goodQuizJSON + "\nGood luck!"
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(wrapped)},
	)
	g := New(mock, DefaultConfig())

	qz, err := g.Generate(context.Background(), GenerateInput{
		Topic: "crispr", Kind: QuizMixed, Count: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qz.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(qz.Questions))
	}
}

func TestLLMGenerator_MalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`the model rambled with no json`)},
	)
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), GenerateInput{Topic: "crispr", Kind: QuizMCQ})
	if err == nil {
		t.Fatal("expected error")
	}
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %T: %v", err, err)
	}
}

func TestLLMGenerator_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), GenerateInput{Topic: "crispr", Kind: QuizMCQ})
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %T: %v", err, err)
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Error("expected GenerationError to wrap the provider error")
	}
}

func TestLLMGenerator_StructuralFailure(t *testing.T) {
	// tf question inside an mcq-only quiz.
	bad := `{"questions": [{"type": "tf", "question": "q", "options": [],
		"correct_index": -1, "correct_text": "True", "explanation": "e"}]}`
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(bad)},
	)
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), GenerateInput{Topic: "crispr", Kind: QuizMCQ, Count: 1})
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %T: %v", err, err)
	}
}

func TestLLMGenerator_DefaultsApplied(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(goodQuizJSON)},
	)
	g := New(mock, DefaultConfig())

	qz, err := g.Generate(context.Background(), GenerateInput{Topic: "crispr", Kind: QuizMixed})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if qz.Difficulty != DifficultyMedium {
		t.Errorf("difficulty = %q, want medium default", qz.Difficulty)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	if mock.Calls[0].Schema != QuizSchema {
		t.Error("expected quiz schema on the request")
	}
}
