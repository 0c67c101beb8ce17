package store

import (
	"context"
	"fmt"
	"time"

	"github.com/aeroSapphire/greprep/ent"
	"github.com/aeroSapphire/greprep/ent/answerevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence
// counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestionID(data.QuestionID).
		SetSkillID(data.SkillID).
		SetDifficulty(data.Difficulty).
		SetSelected(data.Selected).
		SetCorrect(data.Correct).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) SkillAccuracy(ctx context.Context, skillID string) (float64, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.SkillID(skillID)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query skill accuracy: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(events)), nil
}

func (r *eventRepo) LatestAnswerTime(ctx context.Context, skillID string) (time.Time, error) {
	ae, err := r.client.AnswerEvent.Query().
		Where(answerevent.SkillID(skillID)).
		Order(ent.Desc(answerevent.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("query latest answer time: %w", err)
	}
	return ae.Timestamp, nil
}
