package skills

func init() {
	reg = buildRegistry(seedSkills)
}

// seedSkills is the static GRE verbal taxonomy.
var seedSkills = []Skill{
	// Reading comprehension
	{
		ID:          "RC-STR",
		Name:        "Passage Structure Recognition",
		Category:    CategoryReadingComp,
		Description: "Identifying the organizational pattern of a passage: general to specific, common view challenged, phenomenon and explanations, claim with concession and rebuttal.",
		Triggers:    []string{"passage organization", "structure", "how the passage is organized"},
	},
	{
		ID:          "RC-FN",
		Name:        "Function Questions",
		Category:    CategoryReadingComp,
		Description: "Identifying the role a specific sentence or paragraph plays in the argument: example, counterargument, evidence, transition.",
		Triggers:    []string{"in order to", "serves primarily to", "the author mentions X to"},
	},
	{
		ID:          "RC-INF",
		Name:        "Inference Questions",
		Category:    CategoryReadingComp,
		Description: "Drawing conclusions that are necessarily true based on the passage, not merely plausible.",
		Triggers:    []string{"it can be inferred", "the author would most likely agree", "suggests that"},
	},
	{
		ID:          "RC-EXC",
		Name:        "EXCEPT/NOT Questions",
		Category:    CategoryReadingComp,
		Description: "Finding the one answer that is not supported or is contradicted by the passage.",
		Triggers:    []string{"EXCEPT", "NOT", "all of the following EXCEPT"},
	},
	{
		ID:          "RC-SW",
		Name:        "Strengthen/Weaken Questions",
		Category:    CategoryReadingComp,
		Description: "Identifying the argument's assumptions, then finding what would attack or support them.",
		Triggers:    []string{"most weaken", "most strengthen", "would undermine", "would support"},
	},
	{
		ID:          "RC-TONE",
		Name:        "Author's Tone/Attitude",
		Category:    CategoryReadingComp,
		Description: "Determining the author's stance. Correct answers are usually qualified; extreme answers are usually traps.",
		Triggers:    []string{"author's attitude", "tone of the passage"},
	},
	{
		ID:          "RC-PP",
		Name:        "Primary Purpose",
		Category:    CategoryReadingComp,
		Description: "Capturing what the entire passage is about; the answer must cover the whole passage, not one part.",
		Triggers:    []string{"primary purpose", "mainly concerned with"},
	},
	{
		ID:          "RC-VOC",
		Name:        "Vocabulary in Context",
		Category:    CategoryReadingComp,
		Description: "Selecting the meaning that fits this specific passage context, which is often not the most common definition.",
		Triggers:    []string{"as used in the passage", "most nearly means"},
	},

	// Text completion
	{
		ID:          "TC-CON",
		Name:        "Contrast Signals",
		Category:    CategoryTextCompletion,
		Description: "The blank must contain the opposite of what is stated in the other clause.",
		Triggers:    []string{"but", "however", "although", "yet", "despite", "whereas", "nevertheless"},
	},
	{
		ID:          "TC-CONT",
		Name:        "Continuation Signals",
		Category:    CategoryTextCompletion,
		Description: "The blank must contain something similar to or consistent with the other clause.",
		Triggers:    []string{"and", "moreover", "indeed", "furthermore", "likewise", "therefore"},
	},
	{
		ID:          "TC-ELAB",
		Name:        "Colon/Dash Elaboration",
		Category:    CategoryTextCompletion,
		Description: "A colon or dash signals that what follows defines or explains what came before; the blank must match the elaboration.",
		Triggers:    []string{":", "that is", "namely"},
	},
	{
		ID:          "TC-CE",
		Name:        "Cause-Effect",
		Category:    CategoryTextCompletion,
		Description: "One part of the sentence is the cause, the other the effect; the blank must complete the causal chain.",
		Triggers:    []string{"because", "since", "consequently", "as a result", "due to"},
	},
	{
		ID:          "TC-IRO",
		Name:        "Irony/Paradox Markers",
		Category:    CategoryTextCompletion,
		Description: "The blank must contain the opposite of what would normally be expected.",
		Triggers:    []string{"ironically", "paradoxically", "surprisingly", "unexpectedly"},
	},
	{
		ID:          "TC-DEG",
		Name:        "Degree Intensifiers",
		Category:    CategoryTextCompletion,
		Description: "Intensifiers demand a blank extreme enough to justify them.",
		Triggers:    []string{"even", "so X that", "too X to"},
	},

	// Sentence equivalence
	{
		ID:          "SE-SYN",
		Name:        "Synonym Pair Recognition",
		Category:    CategorySentenceEquiv,
		Description: "Finding the two answer choices that produce sentences with the same meaning when plugged in.",
	},
	{
		ID:          "SE-CTX",
		Name:        "Context-Driven Selection",
		Category:    CategorySentenceEquiv,
		Description: "Both selected words must fit the sentence's logic and grammar, not merely be synonyms of each other.",
	},
	{
		ID:          "SE-TRAP",
		Name:        "SE Trap Avoidance",
		Category:    CategorySentenceEquiv,
		Description: "Rejecting near-synonym pairs that do not fit context, and one-perfect-plus-one-almost pairs.",
	},

	// Trap recognition (cross-cutting)
	{
		ID:          "TRAP-EXT",
		Name:        "Too Extreme",
		Category:    CategoryTrapRecognition,
		Description: "Answer choices with absolute words are usually wrong on the GRE.",
		Triggers:    []string{"always", "never", "completely", "only", "entirely"},
	},
	{
		ID:          "TRAP-IRR",
		Name:        "True but Irrelevant",
		Category:    CategoryTrapRecognition,
		Description: "The statement is factually correct but does not answer this question.",
	},
	{
		ID:          "TRAP-REV",
		Name:        "Reversal",
		Category:    CategoryTrapRecognition,
		Description: "The answer switches the relationship, for example saying A causes B when the passage says B causes A.",
	},
	{
		ID:          "TRAP-OOS",
		Name:        "Out of Scope",
		Category:    CategoryTrapRecognition,
		Description: "The answer introduces concepts the passage never discusses.",
	},
}
