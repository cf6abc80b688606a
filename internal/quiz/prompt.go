package quiz

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a biotechnology tutor creating quizzes for an undergraduate-level student.

Rules:
- Generate exactly the requested number of questions on the given topic at the given difficulty.
- Every question must be answerable from general biotechnology knowledge of the topic; do not require information the student has not been given.
- For multiple choice (type "mcq"): provide exactly 4 options where exactly one is correct. Distractors should reflect common misconceptions, not random values. Set correct_index to the index of the right option and leave correct_text empty.
- For true/false (type "tf"): set correct_text to exactly "True" or "False", leave options empty and correct_index at -1.
- For fill-in-the-blank (type "fill"): phrase the question with a single blank, set correct_text to the expected word or short phrase (keep it to a few words so exact matching is fair), leave options empty and correct_index at -1.
- For a mixed quiz, vary the kinds across questions roughly evenly.
- Every question gets a short explanation of the correct answer.`

var kindInstructions = map[Kind]string{
	QuizMCQ:       "All questions must be multiple choice (type \"mcq\").",
	QuizTrueFalse: "All questions must be true/false (type \"tf\").",
	QuizFillBlank: "All questions must be fill-in-the-blank (type \"fill\").",
	QuizMixed:     "Mix the question kinds: use mcq, tf, and fill questions.",
}

// buildUserMessage constructs the user message for a quiz request.
func buildUserMessage(input GenerateInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)
	fmt.Fprintf(&b, "Number of questions: %d\n", input.Count)
	b.WriteString("\n")
	b.WriteString(kindInstructions[input.Kind])

	return b.String()
}
