package store

import (
	"context"
	"fmt"

	"github.com/ashwinkumar/biotutor/ent/topicevent"
)

func (r *eventRepo) AppendTopicEvent(ctx context.Context, data TopicEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.TopicEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetTopic(data.Topic).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save topic event: %w", err)
	}
	return nil
}

func (r *eventRepo) TopicCount(ctx context.Context) (int, error) {
	topics, err := r.client.TopicEvent.Query().
		Select(topicevent.FieldTopic).
		Strings(ctx)
	if err != nil {
		return 0, fmt.Errorf("count topics: %w", err)
	}

	seen := make(map[string]struct{}, len(topics))
	for _, t := range topics {
		seen[t] = struct{}{}
	}
	return len(seen), nil
}
