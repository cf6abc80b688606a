package quiz

import "testing"

func validMCQQuiz() *Quiz {
	return &Quiz{
		Topic: "crispr",
		Kind:  QuizMCQ,
		Questions: []Question{
			{Kind: KindMCQ, Prompt: "q1", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 1, Explanation: "e"},
		},
	}
}

func TestStructuralValidator(t *testing.T) {
	v := &StructuralValidator{}
	input := GenerateInput{Topic: "crispr", Kind: QuizMCQ, Count: 1}

	t.Run("valid quiz passes", func(t *testing.T) {
		if err := v.Validate(validMCQQuiz(), input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty quiz fails", func(t *testing.T) {
		if err := v.Validate(&Quiz{}, input); err == nil {
			t.Fatal("expected error for empty quiz")
		}
	})

	t.Run("empty prompt fails", func(t *testing.T) {
		qz := validMCQQuiz()
		qz.Questions[0].Prompt = ""
		if err := v.Validate(qz, input); err == nil {
			t.Fatal("expected error for empty prompt")
		}
	})

	t.Run("mcq index out of range fails", func(t *testing.T) {
		qz := validMCQQuiz()
		qz.Questions[0].CorrectIndex = 4
		if err := v.Validate(qz, input); err == nil {
			t.Fatal("expected error for out-of-range index")
		}
	})

	t.Run("tf answer must be literal", func(t *testing.T) {
		qz := &Quiz{Questions: []Question{
			{Kind: KindTrueFalse, Prompt: "q", CorrectText: "yes"},
		}}
		if err := v.Validate(qz, GenerateInput{Kind: QuizTrueFalse}); err == nil {
			t.Fatal("expected error for non-literal tf answer")
		}
	})

	t.Run("fill answer must be non-empty", func(t *testing.T) {
		qz := &Quiz{Questions: []Question{
			{Kind: KindFillBlank, Prompt: "q", CorrectText: ""},
		}}
		if err := v.Validate(qz, GenerateInput{Kind: QuizFillBlank}); err == nil {
			t.Fatal("expected error for empty fill answer")
		}
	})

	t.Run("kind mismatch in single-kind quiz fails", func(t *testing.T) {
		qz := &Quiz{Questions: []Question{
			{Kind: KindTrueFalse, Prompt: "q", CorrectText: "True"},
		}}
		if err := v.Validate(qz, GenerateInput{Kind: QuizMCQ}); err == nil {
			t.Fatal("expected error for tf question in mcq quiz")
		}
	})

	t.Run("mixed quiz accepts all kinds", func(t *testing.T) {
		qz := &Quiz{Questions: []Question{
			{Kind: KindMCQ, Prompt: "q1", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 0},
			{Kind: KindTrueFalse, Prompt: "q2", CorrectText: "False"},
			{Kind: KindFillBlank, Prompt: "q3", CorrectText: "ligase"},
		}}
		if err := v.Validate(qz, GenerateInput{Kind: QuizMixed}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
