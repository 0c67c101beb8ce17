package store

import (
	"context"
	"fmt"
)

// AppendSessionEvent records a session lifecycle transition (start,
// complete, or abandon) with its aggregate counters.
func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	if _, err := r.client.SessionEvent.Create().
		SetSequence(seq).
		SetSessionID(data.SessionID).
		SetSkillID(data.SkillID).
		SetAction(data.Action).
		SetQuestionsServed(data.QuestionsServed).
		SetCorrectAnswers(data.CorrectAnswers).
		SetDurationSecs(data.DurationSecs).
		Save(ctx); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}
