package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendDrillEvent(ctx context.Context, data DrillEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.DrillEvent.Create().
		SetSequence(seqNum).
		SetClusterID(data.ClusterID).
		SetDrillID(data.DrillID).
		SetDrillType(data.DrillType).
		SetCorrect(data.Correct)
	if len(data.Words) > 0 {
		builder = builder.SetWords(data.Words)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save drill event: %w", err)
	}
	return nil
}
