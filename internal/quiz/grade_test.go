package quiz

import "testing"

func TestGradeMCQ(t *testing.T) {
	q := Question{Kind: KindMCQ, Options: []string{"a", "b", "c", "d"}, CorrectIndex: 2}

	if !Grade(q, Answer{Choice: 2}) {
		t.Error("correct index should grade true")
	}
	if Grade(q, Answer{Choice: 0}) {
		t.Error("wrong index should grade false")
	}
}

func TestGradeTrueFalse(t *testing.T) {
	q := Question{Kind: KindTrueFalse, CorrectText: "True"}

	if !Grade(q, Answer{Text: "True"}) {
		t.Error("exact match should grade true")
	}
	// Literal comparison is case-sensitive.
	if Grade(q, Answer{Text: "true"}) {
		t.Error("case mismatch should grade false")
	}
	if Grade(q, Answer{Text: "False"}) {
		t.Error("wrong answer should grade false")
	}
}

func TestGradeFillBlank(t *testing.T) {
	q := Question{Kind: KindFillBlank, CorrectText: "Paris"}

	tests := []struct {
		answer string
		want   bool
	}{
		{"Paris", true},
		{"paris", true},
		{"  paris ", true},
		{"PARIS", true},
		{"London", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := Grade(q, Answer{Text: tt.answer}); got != tt.want {
			t.Errorf("Grade(fill, %q) = %v, want %v", tt.answer, got, tt.want)
		}
	}
}

func TestGradeUnknownKind(t *testing.T) {
	q := Question{Kind: "essay", CorrectText: "anything"}
	if Grade(q, Answer{Text: "anything"}) {
		t.Error("unknown kind must grade false")
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	qz := &Quiz{
		Questions: []Question{
			{Kind: KindMCQ, Options: []string{"a", "b", "c", "d"}, CorrectIndex: 2},
			{Kind: KindTrueFalse, CorrectText: "True"},
			{Kind: KindFillBlank, CorrectText: "Paris"},
		},
	}
	answers := map[int]Answer{
		0: {Choice: 2},
		1: {Text: "True"},
		2: {Text: "  paris "},
	}

	score, total := Score(qz, answers)
	if score != 3 || total != 3 {
		t.Errorf("score = %d/%d, want 3/3", score, total)
	}

	// Missing answers grade as incorrect, never panic.
	score, total = Score(qz, map[int]Answer{0: {Choice: 2}})
	if score != 1 || total != 3 {
		t.Errorf("score = %d/%d, want 1/3", score, total)
	}
}

func TestResultPercent(t *testing.T) {
	r := Result{Score: 2, Total: 5}
	if got := r.Percent(); got != 40 {
		t.Errorf("Percent() = %v, want 40", got)
	}

	empty := Result{}
	if got := empty.Percent(); got != 0 {
		t.Errorf("Percent() on empty result = %v, want 0", got)
	}
}
