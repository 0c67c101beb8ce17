package mistakes

import (
	"github.com/aeroSapphire/greprep/internal/question"
)

// ClassifyInput holds the context for classifying one wrong answer.
type ClassifyInput struct {
	Question       *question.Question
	Selected       []string // option IDs the learner chose
	ResponseTimeMs int
	SkillAccuracy  float64 // Historical accuracy on the question's primary skill (0.0–1.0)
}

// Result is the outcome of classifying a wrong answer.
type Result struct {
	Label       Label
	Explanation string
	Confidence  float64
	Source      string // which rule or backend produced this result
}

// RuleClassifier is a cheap, synchronous rule check.
// Returns a label and confidence, or ("", 0) if the rule doesn't apply.
type RuleClassifier interface {
	Name() string
	Classify(input *ClassifyInput) (Label, float64)
}

// DefaultRules returns rule classifiers in priority order. The rush check
// runs first: a near-instant wrong answer tells us more than its content.
func DefaultRules() []RuleClassifier {
	return []RuleClassifier{
		&RushGuessClassifier{},
		&PartialPairClassifier{},
	}
}

// RunRules executes rule classifiers in order.
// Returns the first match, or ("", 0, "") if no rules apply.
func RunRules(rules []RuleClassifier, input *ClassifyInput) (Label, float64, string) {
	for _, r := range rules {
		label, conf := r.Classify(input)
		if label != "" {
			return label, conf, r.Name()
		}
	}
	return "", 0, ""
}

// RushThresholdMs is the maximum response time (exclusive) for a wrong
// answer to be treated as a guess without elimination.
const RushThresholdMs = 2000

// RushGuessClassifier flags answers submitted too quickly to have involved
// reading the options.
type RushGuessClassifier struct{}

func (c *RushGuessClassifier) Name() string { return "rush-guess" }

func (c *RushGuessClassifier) Classify(input *ClassifyInput) (Label, float64) {
	if input.ResponseTimeMs > 0 && input.ResponseTimeMs < RushThresholdMs {
		return LabelEliminationFailure, 0.85
	}
	return "", 0
}

// PartialPairClassifier flags sentence-equivalence answers that caught one
// word of the correct pair but paired it with a near-synonym distractor.
type PartialPairClassifier struct{}

func (c *PartialPairClassifier) Name() string { return "partial-pair" }

func (c *PartialPairClassifier) Classify(input *ClassifyInput) (Label, float64) {
	q := input.Question
	if q == nil || q.Type != question.TypeSentenceEquivalence {
		return "", 0
	}
	correct := make(map[string]bool)
	for _, id := range q.CorrectOptionIDs() {
		correct[id] = true
	}
	hits := 0
	for _, id := range input.Selected {
		if correct[id] {
			hits++
		}
	}
	if len(input.Selected) == 2 && len(correct) == 2 && hits == 1 {
		return LabelPartialSynonymTrap, 0.7
	}
	return "", 0
}
