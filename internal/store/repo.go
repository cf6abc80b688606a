package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsageStat aggregates LLM usage for one purpose label.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// QuizEventData captures a submitted quiz result.
type QuizEventData struct {
	QuizID       string
	SessionID    string
	Topic        string
	Kind         string
	Difficulty   string
	NumQuestions int
	Score        int
	Total        int
	Percent      float64
}

// QuizEventRecord is a stored quiz event.
type QuizEventRecord struct {
	Sequence     int64
	Timestamp    time.Time
	QuizID       string
	SessionID    string
	Topic        string
	Kind         string
	Difficulty   string
	NumQuestions int
	Score        int
	Total        int
	Percent      float64
}

// QuizTotals aggregates all recorded quiz results.
type QuizTotals struct {
	Quizzes int
	Score   int
	Total   int
}

// SessionEventData captures a session lifecycle action.
type SessionEventData struct {
	SessionID   string
	SessionName string
	Action      string // create, switch, rename, delete
	Detail      string
}

// TopicEventData captures a topic being studied.
type TopicEventData struct {
	SessionID string
	Topic     string
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns a single LLM event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// AppendQuizEvent records a submitted quiz result.
	AppendQuizEvent(ctx context.Context, data QuizEventData) error

	// QueryQuizEvents returns quiz events, newest first.
	QueryQuizEvents(ctx context.Context, opts QueryOpts) ([]QuizEventRecord, error)

	// QuizTotals sums all recorded quiz scores.
	QuizTotals(ctx context.Context) (QuizTotals, error)

	// AppendSessionEvent records a session lifecycle action.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendTopicEvent records a topic being studied.
	AppendTopicEvent(ctx context.Context, data TopicEventData) error

	// TopicCount returns the number of distinct topics studied.
	TopicCount(ctx context.Context) (int, error)
}
