// Package profile loads the full learner state from the latest snapshot
// and writes it back as one new snapshot, so every screen and command
// shares the same load/save cycle.
package profile

import (
	"context"
	"time"

	"github.com/aeroSapphire/greprep/internal/cluster"
	"github.com/aeroSapphire/greprep/internal/llm"
	"github.com/aeroSapphire/greprep/internal/mastery"
	"github.com/aeroSapphire/greprep/internal/mistakes"
	"github.com/aeroSapphire/greprep/internal/srs"
	"github.com/aeroSapphire/greprep/internal/store"
)

// Profile bundles the learner-state services built from one snapshot.
type Profile struct {
	Mastery  *mastery.Service
	Reviews  *srs.Scheduler
	Clusters *cluster.Service
	Mistakes *mistakes.Service

	lessonsCompleted map[string]bool
	streakDays       int
	lastStudyDay     string
}

// Load builds a Profile from the latest snapshot. A nil snapshot (fresh
// database) yields empty services. provider may be nil; mistake
// classification then runs rules-only.
func Load(ctx context.Context, snapRepo store.SnapshotRepo, provider llm.Provider) (*Profile, error) {
	var data *store.SnapshotData
	snap, err := snapRepo.Latest(ctx)
	if err != nil {
		return nil, err
	}
	if snap != nil {
		data = &snap.Data
	}
	return FromSnapshot(data, provider), nil
}

// FromSnapshot builds a Profile directly from snapshot data.
func FromSnapshot(data *store.SnapshotData, provider llm.Provider) *Profile {
	p := &Profile{
		Mastery:          mastery.NewService(data),
		Reviews:          srs.NewScheduler(data),
		Clusters:         cluster.NewService(data),
		Mistakes:         mistakes.NewService(provider, data),
		lessonsCompleted: make(map[string]bool),
	}
	if data != nil {
		for _, id := range data.LessonsCompleted {
			p.lessonsCompleted[id] = true
		}
		p.streakDays = data.StreakDays
		p.lastStudyDay = data.LastStudyDay
	}
	return p
}

const dayLayout = "2006-01-02"

// Streak returns the consecutive-study-day count, zero when the chain
// is broken (more than a day since the last session).
func (p *Profile) Streak(now time.Time) int {
	if p.lastStudyDay == "" {
		return 0
	}
	last, err := time.ParseInLocation(dayLayout, p.lastStudyDay, now.Location())
	if err != nil {
		return 0
	}
	today := now.Format(dayLayout)
	yesterday := now.AddDate(0, 0, -1).Format(dayLayout)
	if last.Format(dayLayout) == today || last.Format(dayLayout) == yesterday {
		return p.streakDays
	}
	return 0
}

// touchStreak extends or restarts the study-day chain for now's date.
func (p *Profile) touchStreak(now time.Time) {
	today := now.Format(dayLayout)
	yesterday := now.AddDate(0, 0, -1).Format(dayLayout)
	switch p.lastStudyDay {
	case today:
		// Already counted.
	case yesterday:
		p.streakDays++
	default:
		p.streakDays = 1
	}
	p.lastStudyDay = today
}

// LessonsCompleted returns the completed-lesson set keyed by skill ID.
func (p *Profile) LessonsCompleted() map[string]bool {
	return p.lessonsCompleted
}

// MarkLessonCompleted records that the lesson for a skill is done.
func (p *Profile) MarkLessonCompleted(skillID string) {
	p.lessonsCompleted[skillID] = true
}

// SnapshotData assembles the full state for persistence.
func (p *Profile) SnapshotData() store.SnapshotData {
	learned, drills, confusion := p.Clusters.SnapshotData()

	var lessons []string
	for id := range p.lessonsCompleted {
		lessons = append(lessons, id)
	}

	return store.SnapshotData{
		Version:          store.SnapshotVersion,
		Mastery:          p.Mastery.SnapshotData(),
		Reviews:          p.Reviews.SnapshotData(),
		Drills:           drills,
		Confusion:        confusion,
		LearnedWords:     learned,
		LessonsCompleted: lessons,
		Mistakes:         p.Mistakes.SnapshotData(),
		StreakDays:       p.streakDays,
		LastStudyDay:     p.lastStudyDay,
	}
}

// Save marks today as studied and writes the current state as a new
// snapshot.
func (p *Profile) Save(ctx context.Context, snapRepo store.SnapshotRepo) error {
	p.touchStreak(time.Now())
	snap := &store.Snapshot{
		Timestamp: time.Now(),
		Data:      p.SnapshotData(),
	}
	return snapRepo.Save(ctx, snap)
}
