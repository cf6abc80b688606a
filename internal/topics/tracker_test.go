package topics

import (
	"errors"
	"testing"

	"github.com/ashwinkumar/biotutor/internal/registry"
)

func TestBeginNewTopicResetsConversation(t *testing.T) {
	tr := NewTracker(nil)
	s := registry.New(nil).Current()

	tr.Begin(s, "crispr")
	if s.CurrentTopic != "crispr" {
		t.Fatalf("current topic = %q", s.CurrentTopic)
	}
	if len(s.ActiveConversation) != 0 {
		t.Fatal("new topic must start with an empty conversation")
	}
	if s.Topics["crispr"] == nil || s.Topics["crispr"].StartedAt.IsZero() {
		t.Fatal("expected a topic record with a start time")
	}

	if err := tr.RecordExchange(s, "what is cas9?", "a nuclease"); err != nil {
		t.Fatalf("record: %v", err)
	}

	// Switching to a different new topic resets the conversation.
	tr.Begin(s, "mitosis")
	if len(s.ActiveConversation) != 0 {
		t.Error("switching to a new topic must reset the active conversation")
	}
}

func TestBeginExistingTopicResumesLog(t *testing.T) {
	tr := NewTracker(nil)
	s := registry.New(nil).Current()

	tr.Begin(s, "crispr")
	if err := tr.RecordExchange(s, "q1", "a1"); err != nil {
		t.Fatal(err)
	}
	if err := tr.RecordExchange(s, "q2", "a2"); err != nil {
		t.Fatal(err)
	}

	tr.Begin(s, "mitosis")
	tr.Begin(s, "crispr")

	if len(s.ActiveConversation) != 2 {
		t.Fatalf("resumed conversation = %d exchanges, want 2", len(s.ActiveConversation))
	}
	if s.ActiveConversation[0].Question != "q1" || s.ActiveConversation[1].Answer != "a2" {
		t.Errorf("resumed conversation = %+v", s.ActiveConversation)
	}
}

func TestRecordExchangeMirrorsLog(t *testing.T) {
	tr := NewTracker(nil)
	s := registry.New(nil).Current()

	tr.Begin(s, "crispr")
	if err := tr.RecordExchange(s, "q1", "a1"); err != nil {
		t.Fatal(err)
	}

	log := s.Topics["crispr"].ConversationLog
	if len(log) != 1 || log[0] != (registry.Exchange{Question: "q1", Answer: "a1"}) {
		t.Errorf("conversation log = %+v", log)
	}
}

func TestNoCurrentTopicErrors(t *testing.T) {
	tr := NewTracker(nil)
	s := registry.New(nil).Current()

	var noTopic *ErrNoCurrentTopic
	if err := tr.RecordExchange(s, "q", "a"); !errors.As(err, &noTopic) {
		t.Errorf("expected ErrNoCurrentTopic, got %v", err)
	}
	if err := tr.SaveExplanation(s, "text"); !errors.As(err, &noTopic) {
		t.Errorf("expected ErrNoCurrentTopic, got %v", err)
	}
}

func TestSaveExplanationLastWriteWins(t *testing.T) {
	tr := NewTracker(nil)
	s := registry.New(nil).Current()

	tr.Begin(s, "crispr")
	if err := tr.SaveExplanation(s, "first"); err != nil {
		t.Fatal(err)
	}
	if err := tr.SaveExplanation(s, "second"); err != nil {
		t.Fatal(err)
	}
	if got := s.Topics["crispr"].Explanation; got != "second" {
		t.Errorf("explanation = %q, want %q", got, "second")
	}
}
