package store

import (
	"context"
	"fmt"

	"github.com/ashwinkumar/biotutor/ent"
	"github.com/ashwinkumar/biotutor/ent/quizevent"
)

func (r *eventRepo) AppendQuizEvent(ctx context.Context, data QuizEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizEvent.Create().
		SetSequence(seqNum).
		SetQuizID(data.QuizID).
		SetSessionID(data.SessionID).
		SetTopic(data.Topic).
		SetKind(data.Kind).
		SetDifficulty(data.Difficulty).
		SetNumQuestions(data.NumQuestions).
		SetScore(data.Score).
		SetTotal(data.Total).
		SetPercent(data.Percent).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryQuizEvents(ctx context.Context, opts QueryOpts) ([]QuizEventRecord, error) {
	query := r.client.QuizEvent.Query().
		Order(ent.Desc(quizevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(quizevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(quizevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(quizevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(quizevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz events: %w", err)
	}

	records := make([]QuizEventRecord, len(events))
	for i, e := range events {
		records[i] = QuizEventRecord{
			Sequence:     e.Sequence,
			Timestamp:    e.Timestamp,
			QuizID:       e.QuizID,
			SessionID:    e.SessionID,
			Topic:        e.Topic,
			Kind:         e.Kind,
			Difficulty:   e.Difficulty,
			NumQuestions: e.NumQuestions,
			Score:        e.Score,
			Total:        e.Total,
			Percent:      e.Percent,
		}
	}
	return records, nil
}

func (r *eventRepo) QuizTotals(ctx context.Context) (QuizTotals, error) {
	events, err := r.client.QuizEvent.Query().All(ctx)
	if err != nil {
		return QuizTotals{}, fmt.Errorf("query quiz totals: %w", err)
	}

	var totals QuizTotals
	totals.Quizzes = len(events)
	for _, e := range events {
		totals.Score += e.Score
		totals.Total += e.Total
	}
	return totals, nil
}
