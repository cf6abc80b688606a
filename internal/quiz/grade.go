package quiz

import "strings"

// Grade reports whether the answer is correct for the question.
// It is pure and deterministic.
//
// Grading rules per kind:
//   - mcq: the chosen option index must equal CorrectIndex.
//   - tf: the literal text must equal CorrectText exactly.
//   - fill: the text is trimmed and compared case-insensitively
//     against CorrectText.
//
// An answer whose shape does not match the question's kind simply
// grades as incorrect.
func Grade(q Question, a Answer) bool {
	switch q.Kind {
	case KindMCQ:
		return a.Choice == q.CorrectIndex
	case KindTrueFalse:
		return a.Text == q.CorrectText
	case KindFillBlank:
		given := strings.ToLower(strings.TrimSpace(a.Text))
		want := strings.ToLower(q.CorrectText)
		return given == want
	default:
		return false
	}
}

// Score grades every question against the answer map and returns the
// number correct and the total question count.
func Score(qz *Quiz, answers map[int]Answer) (score, total int) {
	total = len(qz.Questions)
	for i, q := range qz.Questions {
		if Grade(q, answers[i]) {
			score++
		}
	}
	return score, total
}
