package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var last int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next sequence: %v", err)
		}
		if seq <= last {
			t.Fatalf("sequence %d not greater than previous %d", seq, last)
		}
		last = seq
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-5",
		Purpose:      "quiz-gen",
		InputTokens:  120,
		OutputTokens: 450,
		LatencyMs:    830,
		Success:      true,
		RequestBody:  "[user]\nGenerate a quiz on photosynthesis\n",
		ResponseBody: `{"questions":[]}`,
	}
	if err := repo.AppendLLMRequest(ctx, data); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "anthropic",
		Model:    "claude-sonnet-4-5",
		Purpose:  "explanation",
		Success:  false, ErrorMessage: "rate limited",
	}); err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	// Newest first.
	if events[0].Purpose != "explanation" {
		t.Errorf("expected newest event first, got purpose %q", events[0].Purpose)
	}
	if events[1].RequestBody != data.RequestBody {
		t.Errorf("request body not persisted: %q", events[1].RequestBody)
	}

	got, err := repo.GetLLMEvent(ctx, events[1].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.ResponseBody != data.ResponseBody {
		t.Errorf("get by ID returned %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}
}

func TestLLMEventQueryLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "mock", Model: "mock", Purpose: "quiz-gen", Success: true,
		}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 3})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appends := []LLMRequestEventData{
		{Provider: "anthropic", Model: "m1", Purpose: "quiz-gen", InputTokens: 100, OutputTokens: 200, LatencyMs: 400, Success: true},
		{Provider: "anthropic", Model: "m1", Purpose: "quiz-gen", InputTokens: 50, OutputTokens: 100, LatencyMs: 600, Success: true},
		{Provider: "anthropic", Model: "m2", Purpose: "explanation", InputTokens: 10, OutputTokens: 20, LatencyMs: 300, Success: true},
	}
	for _, d := range appends {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 purpose buckets, got %d", len(stats))
	}
	// Sorted by purpose: explanation, quiz-gen.
	if stats[1].Purpose != "quiz-gen" || stats[1].Calls != 2 {
		t.Errorf("quiz-gen stat = %+v", stats[1])
	}
	if stats[1].InputTokens != 150 || stats[1].OutputTokens != 300 {
		t.Errorf("quiz-gen tokens = %d in / %d out", stats[1].InputTokens, stats[1].OutputTokens)
	}
	if stats[1].AvgLatencyMs != 500 {
		t.Errorf("quiz-gen avg latency = %d, want 500", stats[1].AvgLatencyMs)
	}

	models, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(models) != 2 {
		t.Fatalf("expected 2 model buckets, got %d", len(models))
	}
	if models[0].Model != "m1" || models[0].Calls != 2 {
		t.Errorf("m1 usage = %+v", models[0])
	}
}

func TestQuizEventAppendAndTotals(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	totals, err := repo.QuizTotals(ctx)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if totals.Quizzes != 0 {
		t.Fatalf("expected empty totals, got %+v", totals)
	}

	quizzes := []QuizEventData{
		{QuizID: "q1", SessionID: "s1", Topic: "crispr", Kind: "mcq", Difficulty: "easy", NumQuestions: 5, Score: 4, Total: 5, Percent: 80},
		{QuizID: "q2", SessionID: "s1", Topic: "crispr", Kind: "tf", Difficulty: "medium", NumQuestions: 4, Score: 2, Total: 4, Percent: 50},
	}
	for _, q := range quizzes {
		if err := repo.AppendQuizEvent(ctx, q); err != nil {
			t.Fatalf("append quiz: %v", err)
		}
	}

	totals, err = repo.QuizTotals(ctx)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if totals.Quizzes != 2 || totals.Score != 6 || totals.Total != 9 {
		t.Errorf("totals = %+v, want 2 quizzes 6/9", totals)
	}

	events, err := repo.QueryQuizEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query quizzes: %v", err)
	}
	if len(events) != 1 || events[0].QuizID != "q2" {
		t.Errorf("expected newest quiz first, got %+v", events)
	}
}

func TestSessionAndTopicEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", SessionName: "Study Session 1", Action: "create",
	}); err != nil {
		t.Fatalf("append session event: %v", err)
	}
	if err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", SessionName: "Study Session 1", Action: "rename", Detail: "Genetics Review",
	}); err != nil {
		t.Fatalf("append session event: %v", err)
	}

	topics := []string{"crispr", "mitosis", "crispr"}
	for _, topic := range topics {
		if err := repo.AppendTopicEvent(ctx, TopicEventData{SessionID: "s1", Topic: topic}); err != nil {
			t.Fatalf("append topic event: %v", err)
		}
	}

	count, err := repo.TopicCount(ctx)
	if err != nil {
		t.Fatalf("topic count: %v", err)
	}
	if count != 2 {
		t.Errorf("distinct topics = %d, want 2", count)
	}
}
