package quiz

import "time"

// QuestionKind describes how a single question is answered.
type QuestionKind string

const (
	// KindMCQ means the learner picks one of 4 options.
	KindMCQ QuestionKind = "mcq"

	// KindTrueFalse means the learner picks "True" or "False".
	KindTrueFalse QuestionKind = "tf"

	// KindFillBlank means the learner types a short free-text answer.
	KindFillBlank QuestionKind = "fill"
)

// Kind describes the composition of a whole quiz. It extends QuestionKind
// with "mixed", which draws questions from all three kinds.
type Kind string

const (
	QuizMCQ       Kind = "mcq"
	QuizTrueFalse Kind = "tf"
	QuizFillBlank Kind = "fill"
	QuizMixed     Kind = "mixed"
)

// Difficulty is the requested difficulty of a generated quiz.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Question is one question of a generated quiz. The Kind tag determines
// which answer fields are meaningful; grading and rendering must switch
// exhaustively on it.
type Question struct {
	// Kind determines how the question is answered and graded.
	Kind QuestionKind

	// Prompt is the question text shown to the learner.
	Prompt string

	// Options holds the 4 choices for mcq questions. Empty otherwise.
	Options []string

	// CorrectIndex is the index into Options of the right choice (mcq only).
	CorrectIndex int

	// CorrectText is the right answer for tf ("True"/"False" literal)
	// and fill (free text, compared case-insensitively) questions.
	CorrectText string

	// Explanation is a short justification shown after grading.
	Explanation string
}

// Quiz is a generated, not-yet-graded quiz.
type Quiz struct {
	ID         string
	Topic      string
	Kind       Kind
	Difficulty Difficulty
	Questions  []Question
}

// Answer is a learner's response to one question. Choice is used for
// mcq questions, Text for tf and fill.
type Answer struct {
	Choice int
	Text   string
}

// Result is a graded, persisted quiz outcome.
type Result struct {
	QuizID     string
	Topic      string
	Kind       Kind
	Difficulty Difficulty
	Score      int
	Total      int
	Timestamp  time.Time
}

// Percent returns the score as a percentage of total.
// A zero-question result scores zero rather than dividing by zero.
func (r Result) Percent() float64 {
	if r.Total == 0 {
		return 0
	}
	return 100 * float64(r.Score) / float64(r.Total)
}

// GenerateInput holds all context needed to generate a quiz.
type GenerateInput struct {
	// Topic is the subject of the quiz, as entered by the learner.
	Topic string

	// Difficulty is the requested difficulty.
	Difficulty Difficulty

	// Kind is the requested quiz composition.
	Kind Kind

	// Count is the number of questions to generate.
	Count int
}
