package skills

// Category groups verbal skills by GRE question family.
type Category string

const (
	CategoryReadingComp   Category = "reading_comprehension"
	CategoryTextCompletion Category = "text_completion"
	CategorySentenceEquiv Category = "sentence_equivalence"
	CategoryTrapRecognition Category = "trap_recognition"
)

// AllCategories returns categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryReadingComp,
		CategoryTextCompletion,
		CategorySentenceEquiv,
		CategoryTrapRecognition,
	}
}

// CategoryDisplayName returns a human-readable name for a category.
func CategoryDisplayName(c Category) string {
	switch c {
	case CategoryReadingComp:
		return "Reading Comprehension"
	case CategoryTextCompletion:
		return "Text Completion"
	case CategorySentenceEquiv:
		return "Sentence Equivalence"
	case CategoryTrapRecognition:
		return "Trap Recognition"
	default:
		return string(c)
	}
}

// Skill is a single verbal skill node in the taxonomy.
type Skill struct {
	ID          string
	Name        string
	Category    Category
	Description string
	// Triggers are signal words or phrasings that indicate a question
	// exercises this skill. Empty for skills without lexical signals.
	Triggers []string
}

// IsTrap reports whether the skill is a cross-cutting trap-recognition skill.
func (s Skill) IsTrap() bool {
	return s.Category == CategoryTrapRecognition
}
