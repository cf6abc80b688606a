package registry

import (
	"fmt"
	"time"

	"github.com/ashwinkumar/biotutor/internal/document"
	"github.com/ashwinkumar/biotutor/internal/quiz"
)

// Exchange is one question/answer pair of a conversation.
type Exchange struct {
	Question string
	Answer   string
}

// Topic is a named subject of study within a session.
type Topic struct {
	Name        string
	StartedAt   time.Time
	Explanation string
	// ConversationLog mirrors the session's active conversation at the
	// time of the last exchange for this topic.
	ConversationLog []Exchange
	// QuizIDs references entries in the session's quiz history.
	QuizIDs []string
}

// Session is one independent study context. It exclusively owns its
// document, topics, pending quiz, and quiz history; nothing is shared
// across sessions.
//
// All mutation goes through methods; the single-user TUI drives one
// session at a time, so no locking is needed.
type Session struct {
	ID        string
	Name      string
	CreatedAt time.Time

	// Document is the currently loaded document, replaced wholesale on
	// each new load. Nil until the first load.
	Document *document.Document

	// ChatHistory is the append-only document Q&A log.
	ChatHistory []Exchange

	// CurrentTopic names the topic being studied, or "" when none.
	CurrentTopic string

	// ActiveConversation holds the Q&A exchanges for the current topic.
	// It is reset when a brand-new topic begins.
	ActiveConversation []Exchange

	// Topics maps topic name (case-sensitive, as entered) to its record.
	Topics map[string]*Topic

	// TopicPerformance maps topic name to the percentage score of the
	// most recent submitted quiz for that topic. Overwritten on every
	// submission, never averaged.
	TopicPerformance map[string]float64

	// QuizHistory is the append-only record of graded quizzes.
	QuizHistory []quiz.Result

	// PendingQuiz is the generated-but-not-yet-submitted quiz, at most
	// one at a time. PendingAnswers collects the learner's selections
	// by question index and is cleared whenever PendingQuiz changes.
	PendingQuiz    *quiz.Quiz
	PendingAnswers map[int]quiz.Answer
}

func newSession(id, name string, now time.Time) *Session {
	return &Session{
		ID:               id,
		Name:             name,
		CreatedAt:        now,
		Topics:           make(map[string]*Topic),
		TopicPerformance: make(map[string]float64),
		PendingAnswers:   make(map[int]quiz.Answer),
	}
}

// SetDocument replaces the session's document. The previous document
// is discarded entirely.
func (s *Session) SetDocument(doc *document.Document) {
	s.Document = doc
}

// RecordChat appends one exchange to the document Q&A history.
func (s *Session) RecordChat(question, answer string) {
	s.ChatHistory = append(s.ChatHistory, Exchange{Question: question, Answer: answer})
}

// HasPendingQuiz reports whether a quiz is awaiting submission.
func (s *Session) HasPendingQuiz() bool {
	return s.PendingQuiz != nil
}

// InstallQuiz makes qz the pending quiz, discarding any previous
// pending quiz and its collected answers. Callers must only install
// fully generated quizzes; a failed generation leaves the prior state
// untouched by never reaching this call.
func (s *Session) InstallQuiz(qz *quiz.Quiz) {
	s.PendingQuiz = qz
	s.PendingAnswers = make(map[int]quiz.Answer)
}

// ClearQuiz discards the pending quiz and its answers.
func (s *Session) ClearQuiz() {
	s.PendingQuiz = nil
	s.PendingAnswers = make(map[int]quiz.Answer)
}

// SetAnswer stores or overwrites the learner's answer for one question
// of the pending quiz.
func (s *Session) SetAnswer(index int, a quiz.Answer) error {
	if s.PendingQuiz == nil {
		return &ErrNoPendingQuiz{}
	}
	if index < 0 || index >= len(s.PendingQuiz.Questions) {
		return fmt.Errorf("question index %d out of range [0, %d)", index, len(s.PendingQuiz.Questions))
	}
	s.PendingAnswers[index] = a
	return nil
}

// SubmitQuiz grades the pending quiz. It is all-or-nothing: if any
// question is unanswered it fails with *ErrIncompleteAnswers and
// leaves the pending quiz, collected answers, history, and performance
// untouched. On success it appends the result to QuizHistory,
// overwrites TopicPerformance for the quiz's topic, links the result
// to the topic record, clears the pending quiz, and returns the result.
func (s *Session) SubmitQuiz(now time.Time) (*quiz.Result, error) {
	qz := s.PendingQuiz
	if qz == nil {
		return nil, &ErrNoPendingQuiz{}
	}

	total := len(qz.Questions)
	for i := range qz.Questions {
		if _, ok := s.PendingAnswers[i]; !ok {
			return nil, &ErrIncompleteAnswers{Answered: len(s.PendingAnswers), Total: total}
		}
	}

	score, total := quiz.Score(qz, s.PendingAnswers)
	result := quiz.Result{
		QuizID:     qz.ID,
		Topic:      qz.Topic,
		Kind:       qz.Kind,
		Difficulty: qz.Difficulty,
		Score:      score,
		Total:      total,
		Timestamp:  now,
	}

	s.QuizHistory = append(s.QuizHistory, result)
	s.TopicPerformance[qz.Topic] = result.Percent()
	if topic, ok := s.Topics[qz.Topic]; ok {
		topic.QuizIDs = append(topic.QuizIDs, qz.ID)
	}

	s.PendingQuiz = nil
	s.PendingAnswers = make(map[int]quiz.Answer)

	return &result, nil
}
