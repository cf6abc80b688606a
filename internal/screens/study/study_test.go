package study

import (
	"errors"
	"strings"
	"testing"

	"github.com/ashwinkumar/biotutor/internal/registry"
	"github.com/ashwinkumar/biotutor/internal/topics"
)

func newTestScreen() (*StudyScreen, *registry.Registry) {
	reg := registry.New(nil)
	return New(reg, nil, topics.NewTracker(nil)), reg
}

func TestInvalidTopicRejected(t *testing.T) {
	s, reg := newTestScreen()
	s.phase = phaseClassifying

	s.handleClassified(classifiedMsg{Topic: "cooking pasta", Valid: false})

	if s.phase != phaseTopicInput {
		t.Error("invalid topic should return to input")
	}
	if !strings.Contains(s.errMsg, "cooking pasta") {
		t.Errorf("errMsg = %q, want mention of the rejected topic", s.errMsg)
	}
	if reg.Current().CurrentTopic != "" {
		t.Error("rejected topic must not become current")
	}
}

func TestValidTopicBeginsTracking(t *testing.T) {
	s, reg := newTestScreen()
	s.phase = phaseClassifying

	// Without a provider the explain command would fail when run; the
	// handler itself must still begin the topic synchronously.
	s.handleClassified(classifiedMsg{Topic: "crispr", Valid: true})

	if reg.Current().CurrentTopic != "crispr" {
		t.Errorf("current topic = %q, want crispr", reg.Current().CurrentTopic)
	}
	if s.phase != phaseExplaining {
		t.Error("expected explaining phase")
	}
}

func TestExplanationSavedOnTopic(t *testing.T) {
	s, reg := newTestScreen()
	s.tracker.Begin(reg.Current(), "crispr")
	s.phase = phaseExplaining

	s.handleExplanation(explanationMsg{Topic: "crispr", Text: "CRISPR edits genomes."})

	if got := reg.Current().Topics["crispr"].Explanation; got != "CRISPR edits genomes." {
		t.Errorf("explanation = %q", got)
	}
	if s.phase != phaseConversation {
		t.Error("expected conversation phase")
	}
}

func TestFollowupRecordedInConversation(t *testing.T) {
	s, reg := newTestScreen()
	s.tracker.Begin(reg.Current(), "crispr")
	s.phase = phaseAsking

	s.handleFollowup(followupMsg{Question: "What is Cas9?", Answer: "A nuclease."})

	conv := reg.Current().ActiveConversation
	if len(conv) != 1 || conv[0].Question != "What is Cas9?" {
		t.Errorf("conversation = %+v", conv)
	}
	log := reg.Current().Topics["crispr"].ConversationLog
	if len(log) != 1 {
		t.Errorf("topic log should mirror the conversation, got %+v", log)
	}
}

func TestFollowupErrorKeepsConversation(t *testing.T) {
	s, reg := newTestScreen()
	s.tracker.Begin(reg.Current(), "crispr")
	s.phase = phaseAsking

	s.handleFollowup(followupMsg{Question: "q", Err: errors.New("provider down")})

	if len(reg.Current().ActiveConversation) != 0 {
		t.Error("failed exchange must not be recorded")
	}
	if s.errMsg == "" {
		t.Error("expected an error message")
	}
}

func TestResumingTopicSkipsClassification(t *testing.T) {
	s, reg := newTestScreen()
	s.tracker.Begin(reg.Current(), "crispr")
	s.tracker.RecordExchange(reg.Current(), "q1", "a1")

	// Start over from the input with the same topic name.
	s.phase = phaseTopicInput
	s.input.Model.SetValue("crispr")
	s.startTopic()

	if s.phase != phaseConversation {
		t.Errorf("known topic should resume directly, phase = %d", s.phase)
	}
	if len(reg.Current().ActiveConversation) != 1 {
		t.Error("resumed topic should keep its conversation log")
	}
}
