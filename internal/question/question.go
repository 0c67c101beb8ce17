package question

// Type indicates the GRE question family.
type Type string

const (
	TypeTextCompletion      Type = "TC"
	TypeSentenceEquivalence Type = "SE"
	TypeReadingComp         Type = "RC"
)

// Option is one answer choice.
type Option struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

// Question is a single practice question ready for display.
type Question struct {
	// ID uniquely identifies the question within the bank.
	ID string `json:"id"`

	// Type is the question family (TC, SE, RC).
	Type Type `json:"type"`

	// Prompt is the question text shown to the learner.
	Prompt string `json:"prompt"`

	// Passage holds the reading passage for RC questions, empty otherwise.
	Passage string `json:"passage,omitempty"`

	// Options are the answer choices. SE questions carry six options with
	// exactly two correct; TC and RC carry five with one correct.
	Options []Option `json:"options"`

	// MultiSelect is true when the learner must select every correct
	// option (sentence equivalence).
	MultiSelect bool `json:"multi_select"`

	// Difficulty is the question's calibrated difficulty, 1 (easiest)
	// through 5 (hardest).
	Difficulty int `json:"difficulty"`

	// SkillIDs are the taxonomy skills this question exercises. A question
	// may carry several tags and updates mastery for each.
	SkillIDs []string `json:"skill_ids"`

	// Explanation is a brief worked solution shown after answering.
	Explanation string `json:"explanation"`
}

// CorrectOptionIDs returns the IDs of all correct options.
func (q *Question) CorrectOptionIDs() []string {
	var ids []string
	for _, o := range q.Options {
		if o.Correct {
			ids = append(ids, o.ID)
		}
	}
	return ids
}

// HasSkill reports whether the question carries the given skill tag.
func (q *Question) HasSkill(skillID string) bool {
	for _, id := range q.SkillIDs {
		if id == skillID {
			return true
		}
	}
	return false
}
