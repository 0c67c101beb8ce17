// Package mistakes classifies wrong verbal answers into a fixed error
// taxonomy, using cheap rule checks first and an LLM for the rest, and
// surfaces the learner's dominant error pattern as a daily nudge.
package mistakes

// Label is one category in the mistake taxonomy.
type Label string

const (
	LabelPolarityError           Label = "POLARITY_ERROR"
	LabelIntensityMismatch       Label = "INTENSITY_MISMATCH"
	LabelScopeError              Label = "SCOPE_ERROR"
	LabelLogicalContradiction    Label = "LOGICAL_CONTRADICTION"
	LabelToneRegisterMismatch    Label = "TONE_REGISTER_MISMATCH"
	LabelTemporalError           Label = "TEMPORAL_ERROR"
	LabelPartialSynonymTrap      Label = "PARTIAL_SYNONYM_TRAP"
	LabelDoubleNegativeConfusion Label = "DOUBLE_NEGATIVE_CONFUSION"
	LabelContextMisread          Label = "CONTEXT_MISREAD"
	LabelEliminationFailure      Label = "ELIMINATION_FAILURE"
	LabelNone                    Label = "NONE"
)

// AllLabels lists every taxonomy label in canonical order.
var AllLabels = []Label{
	LabelPolarityError,
	LabelIntensityMismatch,
	LabelScopeError,
	LabelLogicalContradiction,
	LabelToneRegisterMismatch,
	LabelTemporalError,
	LabelPartialSynonymTrap,
	LabelDoubleNegativeConfusion,
	LabelContextMisread,
	LabelEliminationFailure,
	LabelNone,
}

// labelDescriptions feed the LLM prompt; keep them one line each.
var labelDescriptions = map[Label]string{
	LabelPolarityError:           "Chose a word with the opposite meaning direction, usually by missing a contrast cue",
	LabelIntensityMismatch:       "Right direction but wrong strength (mild word where an extreme one fits, or vice versa)",
	LabelScopeError:              "Over-generalized or over-narrowed the sentence's intent",
	LabelLogicalContradiction:    "Answer directly conflicts with a premise stated in the sentence",
	LabelToneRegisterMismatch:    "Wrong formality or connotation for the sentence's tone",
	LabelTemporalError:           "Missed a time-based cue that shifts the sentence's meaning",
	LabelPartialSynonymTrap:      "Picked a near-synonym that does not fit this specific context",
	LabelDoubleNegativeConfusion: "Mis-resolved stacked negations and reversed the intended meaning",
	LabelContextMisread:          "Missed the overall clue in the sentence structure",
	LabelEliminationFailure:      "No evidence of eliminating clearly wrong options before choosing",
}

var validLabels = func() map[Label]bool {
	m := make(map[Label]bool, len(AllLabels))
	for _, l := range AllLabels {
		m[l] = true
	}
	return m
}()

// Valid reports whether l is a known taxonomy label.
func (l Label) Valid() bool { return validLabels[l] }

// NudgeMessages maps each label to the coaching line shown when that
// mistake dominates the learner's recent history.
var NudgeMessages = map[Label]string{
	LabelPolarityError:           "You often miss meaning reversals created by contrast words.",
	LabelIntensityMismatch:       "Your choices match the direction but miss the required strength.",
	LabelScopeError:              "You tend to overgeneralize or narrow the sentence's intent too much.",
	LabelLogicalContradiction:    "Your answer creates a direct logical conflict with the premise.",
	LabelToneRegisterMismatch:    "You're choosing words with the wrong formality or connotation.",
	LabelTemporalError:           "You're missing time-based cues that shift the sentence's meaning.",
	LabelPartialSynonymTrap:      "Be careful: that word is similar, but doesn't fit this specific context.",
	LabelDoubleNegativeConfusion: "Watch out for double negatives: they reverse the meaning back to positive.",
	LabelContextMisread:          "You're missing the overall clue provided by the sentence structure.",
	LabelEliminationFailure:      "Try to eliminate obviously wrong answers before guessing.",
	LabelNone:                    "",
}
