package studyplan

import (
	"fmt"
	"sort"
	"time"

	"github.com/aeroSapphire/greprep/internal/mastery"
	"github.com/aeroSapphire/greprep/internal/skills"
	"github.com/aeroSapphire/greprep/internal/srs"
)

// RecommendationType says what kind of action is being suggested.
type RecommendationType string

const (
	RecLesson     RecommendationType = "lesson"
	RecPractice   RecommendationType = "practice"
	RecReview     RecommendationType = "review"
	RecFlashcards RecommendationType = "flashcards"
)

// weakThreshold is the effective mastery below which a practiced skill
// counts as weak.
const weakThreshold = 0.5

// perSectionCap limits how many entries each signal contributes.
const perSectionCap = 3

// Recommendation is one suggested study action.
type Recommendation struct {
	Type             RecommendationType
	SkillID          string
	SkillName        string
	Category         skills.Category
	Description      string
	EstimatedMinutes int
	Priority         int // 1 = highest
}

// Plan is the ranked set of recommendations plus coaching context.
type Plan struct {
	Today          []Recommendation
	ThisWeek       []Recommendation
	FocusAreas     []skills.Category
	DueCards       int
	OverallMessage string
}

// Generate ranks next actions from the learner's current state:
// incomplete lessons first, then weak-skill practice, then decay
// reviews, then due flashcards.
func Generate(tracker *mastery.Service, sched *srs.Scheduler, lessonsCompleted map[string]bool, now time.Time) Plan {
	var recs []Recommendation

	// Trap-recognition skills have no standalone lessons; they are
	// trained inside the question-type lessons.
	var lessonSkills []skills.Skill
	for _, s := range skills.All() {
		if !s.IsTrap() {
			lessonSkills = append(lessonSkills, s)
		}
	}

	var incomplete []skills.Skill
	for _, s := range lessonSkills {
		if !lessonsCompleted[s.ID] {
			incomplete = append(incomplete, s)
		}
	}
	for i, s := range incomplete {
		if i >= perSectionCap {
			break
		}
		recs = append(recs, Recommendation{
			Type:             RecLesson,
			SkillID:          s.ID,
			SkillName:        s.Name,
			Category:         s.Category,
			Description:      fmt.Sprintf("Complete the %s lesson", s.Name),
			EstimatedMinutes: 10,
			Priority:         1,
		})
	}

	// Weak skills: practiced but under the mastery bar.
	weakSet := make(map[string]bool)
	var focus []skills.Category
	focusSeen := make(map[skills.Category]bool)
	weakCount := 0
	allWeak := 0
	for _, id := range tracker.WeakSkills(weakThreshold, now) {
		s, err := skills.Get(id)
		if err != nil || s.IsTrap() {
			continue
		}
		sm := tracker.GetMastery(id)
		if sm.QuestionsSeen == 0 {
			continue
		}
		allWeak++
		if weakCount >= perSectionCap {
			continue
		}
		weakCount++
		weakSet[id] = true
		if !focusSeen[s.Category] {
			focusSeen[s.Category] = true
			focus = append(focus, s.Category)
		}
		recs = append(recs, Recommendation{
			Type:             RecPractice,
			SkillID:          id,
			SkillName:        s.Name,
			Category:         s.Category,
			Description:      fmt.Sprintf("Practice %s (%d%% mastery)", s.Name, int(tracker.EffectiveMastery(id, now)*100+0.5)),
			EstimatedMinutes: 15,
			Priority:         2,
		})
	}

	// Decaying skills not already covered by the weak list.
	decaying := tracker.DecayingSkills(now)
	sort.Strings(decaying)
	decayCount := 0
	for _, id := range decaying {
		if decayCount >= perSectionCap {
			break
		}
		if weakSet[id] {
			continue
		}
		s, err := skills.Get(id)
		if err != nil {
			continue
		}
		decayCount++
		recs = append(recs, Recommendation{
			Type:             RecReview,
			SkillID:          id,
			SkillName:        s.Name,
			Category:         s.Category,
			Description:      fmt.Sprintf("Review %s (hasn't been practiced recently)", s.Name),
			EstimatedMinutes: 10,
			Priority:         3,
		})
	}

	// Due flashcards.
	due := 0
	if sched != nil {
		due = len(sched.Due(now))
	}
	if due > 0 {
		recs = append(recs, Recommendation{
			Type:             RecFlashcards,
			Description:      fmt.Sprintf("Review %d due flashcards", due),
			EstimatedMinutes: estimateReviewMinutes(due),
			Priority:         4,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Priority < recs[j].Priority })

	plan := Plan{
		FocusAreas:     focus,
		DueCards:       due,
		OverallMessage: overallMessage(tracker, len(incomplete), len(lessonSkills), allWeak),
	}
	if len(recs) > perSectionCap {
		plan.Today = recs[:perSectionCap]
		rest := recs[perSectionCap:]
		if len(rest) > 5 {
			rest = rest[:5]
		}
		plan.ThisWeek = rest
	} else {
		plan.Today = recs
	}
	return plan
}

// estimateReviewMinutes budgets roughly half a minute per card.
func estimateReviewMinutes(due int) int {
	min := (due + 1) / 2
	if min < 5 {
		min = 5
	}
	return min
}

func overallMessage(tracker *mastery.Service, incompleteLessons, totalLessons, weakSkills int) string {
	practiced := 0
	for _, sm := range tracker.AllSkillMasteries() {
		if sm.QuestionsSeen > 0 {
			practiced++
		}
	}
	switch {
	case practiced == 0:
		return "Welcome! Start with the pattern lessons to build your foundation."
	case incompleteLessons*2 > totalLessons:
		return "Focus on completing lessons first. Understanding patterns before testing is key."
	case weakSkills > 3:
		return "You have several weak areas. Targeted practice will help improve your score."
	default:
		return "Good progress! Keep practicing weak areas and review due cards to lock in gains."
	}
}
