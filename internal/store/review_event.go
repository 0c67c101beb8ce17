package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendReviewEvent(ctx context.Context, data ReviewEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ReviewEvent.Create().
		SetSequence(seqNum).
		SetCardID(data.CardID).
		SetGrade(data.Grade).
		SetIntervalMinutes(data.IntervalMinutes).
		SetEaseFactor(data.EaseFactor).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save review event: %w", err)
	}
	return nil
}
