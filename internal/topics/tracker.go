// Package topics tracks which subjects a session has studied, their
// cached explanations, and the per-topic conversation log.
package topics

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ashwinkumar/biotutor/internal/registry"
	"github.com/ashwinkumar/biotutor/internal/store"
)

// ErrNoCurrentTopic indicates a topic-scoped operation was attempted
// while the session has no current topic.
type ErrNoCurrentTopic struct{}

func (e *ErrNoCurrentTopic) Error() string {
	return "no current topic"
}

// Tracker mutates the topic state of sessions. Topic validity (is this
// user-entered string actually a biotech subject) is decided by the
// tutor's classifier before Begin is called; the tracker trusts its
// callers.
type Tracker struct {
	events store.EventRepo
	now    func() time.Time
}

// NewTracker creates a Tracker. events may be nil to disable telemetry.
func NewTracker(events store.EventRepo) *Tracker {
	return &Tracker{events: events, now: time.Now}
}

// Begin makes name the session's current topic. A brand-new name gets
// a fresh Topic record and an empty active conversation; a previously
// studied name is resumed with its conversation log intact.
func (t *Tracker) Begin(s *registry.Session, name string) {
	topic, exists := s.Topics[name]
	if !exists {
		topic = &registry.Topic{Name: name, StartedAt: t.now()}
		s.Topics[name] = topic
		s.ActiveConversation = nil

		t.record(s, name)
	} else {
		s.ActiveConversation = append([]registry.Exchange(nil), topic.ConversationLog...)
	}
	s.CurrentTopic = name
}

// RecordExchange appends one Q&A pair to the active conversation and
// mirrors it into the current topic's log.
func (t *Tracker) RecordExchange(s *registry.Session, question, answer string) error {
	topic, err := t.currentTopic(s)
	if err != nil {
		return err
	}

	s.ActiveConversation = append(s.ActiveConversation, registry.Exchange{
		Question: question,
		Answer:   answer,
	})
	topic.ConversationLog = append([]registry.Exchange(nil), s.ActiveConversation...)
	return nil
}

// SaveExplanation caches the generated explanation on the current
// topic. Last write wins.
func (t *Tracker) SaveExplanation(s *registry.Session, text string) error {
	topic, err := t.currentTopic(s)
	if err != nil {
		return err
	}
	topic.Explanation = text
	return nil
}

func (t *Tracker) currentTopic(s *registry.Session) (*registry.Topic, error) {
	if s.CurrentTopic == "" {
		return nil, &ErrNoCurrentTopic{}
	}
	topic, ok := s.Topics[s.CurrentTopic]
	if !ok {
		return nil, &ErrNoCurrentTopic{}
	}
	return topic, nil
}

// record appends a topic-started event, best-effort.
func (t *Tracker) record(s *registry.Session, topic string) {
	if t.events == nil {
		return
	}
	err := t.events.AppendTopicEvent(context.Background(), store.TopicEventData{
		SessionID: s.ID,
		Topic:     topic,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log topic event: %v\n", err)
	}
}
