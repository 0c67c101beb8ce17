package question

// seedQuestions returns the built-in question set. Intentionally small; the
// bank is the content boundary and real deployments load a larger set.
func seedQuestions() []*Question {
	return []*Question{
		{
			ID:     "tc-001",
			Type:   TypeTextCompletion,
			Prompt: "Although the committee's report was ______, its conclusions were surprisingly bold.",
			Options: []Option{
				{ID: "a", Text: "circumspect", Correct: true},
				{ID: "b", Text: "audacious"},
				{ID: "c", Text: "polemical"},
				{ID: "d", Text: "turgid"},
				{ID: "e", Text: "lucid"},
			},
			Difficulty:  2,
			SkillIDs:    []string{"TC-CON"},
			Explanation: "\"Although\" signals contrast with \"bold\"; circumspect (cautious) is the opposite.",
		},
		{
			ID:     "tc-002",
			Type:   TypeTextCompletion,
			Prompt: "The professor's lectures were famously ______: dense with digressions and nearly impossible to follow.",
			Options: []Option{
				{ID: "a", Text: "labyrinthine", Correct: true},
				{ID: "b", Text: "pellucid"},
				{ID: "c", Text: "succinct"},
				{ID: "d", Text: "anodyne"},
				{ID: "e", Text: "mellifluous"},
			},
			Difficulty:  3,
			SkillIDs:    []string{"TC-ELAB"},
			Explanation: "The colon elaborates: dense and impossible to follow means labyrinthine.",
		},
		{
			ID:     "tc-003",
			Type:   TypeTextCompletion,
			Prompt: "Because the evidence was ______, the jury had little choice but to acquit.",
			Options: []Option{
				{ID: "a", Text: "tenuous", Correct: true},
				{ID: "b", Text: "damning"},
				{ID: "c", Text: "incontrovertible"},
				{ID: "d", Text: "voluminous"},
				{ID: "e", Text: "forensic"},
			},
			Difficulty:  1,
			SkillIDs:    []string{"TC-CE"},
			Explanation: "Cause and effect: weak (tenuous) evidence leads to acquittal.",
		},
		{
			ID:     "tc-004",
			Type:   TypeTextCompletion,
			Prompt: "Paradoxically, the critic's most ______ reviews were reserved for the films she privately adored.",
			Options: []Option{
				{ID: "a", Text: "scathing", Correct: true},
				{ID: "b", Text: "laudatory"},
				{ID: "c", Text: "equivocal"},
				{ID: "d", Text: "perfunctory"},
				{ID: "e", Text: "effusive"},
			},
			Difficulty:  4,
			SkillIDs:    []string{"TC-IRO"},
			Explanation: "\"Paradoxically\" reverses expectation: harsh (scathing) reviews for adored films.",
		},
		{
			ID:     "se-001",
			Type:   TypeSentenceEquivalence,
			Prompt: "The senator's remarks were so ______ that even her allies could not determine where she stood.",
			Options: []Option{
				{ID: "a", Text: "equivocal", Correct: true},
				{ID: "b", Text: "ambiguous", Correct: true},
				{ID: "c", Text: "strident"},
				{ID: "d", Text: "candid"},
				{ID: "e", Text: "laconic"},
				{ID: "f", Text: "trenchant"},
			},
			MultiSelect: true,
			Difficulty:  2,
			SkillIDs:    []string{"SE-SYN"},
			Explanation: "Equivocal and ambiguous both produce a sentence about unclear positions.",
		},
		{
			ID:     "se-002",
			Type:   TypeSentenceEquivalence,
			Prompt: "Years of field work had left the archaeologist with a ______ skepticism toward dramatic claims of discovery.",
			Options: []Option{
				{ID: "a", Text: "healthy", Correct: true},
				{ID: "b", Text: "salutary", Correct: true},
				{ID: "c", Text: "credulous"},
				{ID: "d", Text: "feigned"},
				{ID: "e", Text: "wholesale"},
				{ID: "f", Text: "grudging"},
			},
			MultiSelect: true,
			Difficulty:  4,
			SkillIDs:    []string{"SE-CTX", "SE-TRAP"},
			Explanation: "Healthy and salutary both yield beneficial skepticism; credulous reverses the meaning.",
		},
		{
			ID:     "se-003",
			Type:   TypeSentenceEquivalence,
			Prompt: "The manuscript's marginalia, long dismissed as ______, proved central to dating the text.",
			Options: []Option{
				{ID: "a", Text: "trivial", Correct: true},
				{ID: "b", Text: "inconsequential", Correct: true},
				{ID: "c", Text: "apocryphal"},
				{ID: "d", Text: "illegible"},
				{ID: "e", Text: "seminal"},
				{ID: "f", Text: "spurious"},
			},
			MultiSelect: true,
			Difficulty:  3,
			SkillIDs:    []string{"SE-SYN", "SE-TRAP"},
			Explanation: "Trivial and inconsequential match; apocryphal/spurious concern authenticity, not importance.",
		},
		{
			ID:      "rc-001",
			Type:    TypeReadingComp,
			Passage: "The conventional account holds that the printing press democratized knowledge overnight. Recent scholarship complicates this picture: for decades after Gutenberg, printed books remained luxury goods, and literacy rates rose only slowly.",
			Prompt:  "The author mentions literacy rates primarily in order to",
			Options: []Option{
				{ID: "a", Text: "challenge the conventional account of the press's immediate impact", Correct: true},
				{ID: "b", Text: "argue that Gutenberg's contribution has been overstated"},
				{ID: "c", Text: "demonstrate that books were luxury goods"},
				{ID: "d", Text: "celebrate the eventual spread of literacy"},
				{ID: "e", Text: "introduce a new theory of technological change"},
			},
			Difficulty:  3,
			SkillIDs:    []string{"RC-FN"},
			Explanation: "The slow rise in literacy is evidence against the overnight-democratization view.",
		},
		{
			ID:      "rc-002",
			Type:    TypeReadingComp,
			Passage: "Coral bleaching was once attributed solely to rising water temperature. Researchers now recognize that acidification, pollution, and microbial shifts interact with warming, so single-factor explanations are increasingly untenable.",
			Prompt:  "It can be inferred that the author would most likely agree that",
			Options: []Option{
				{ID: "a", Text: "models of bleaching should incorporate multiple stressors", Correct: true},
				{ID: "b", Text: "water temperature plays no role in bleaching"},
				{ID: "c", Text: "microbial shifts are the primary cause of bleaching"},
				{ID: "d", Text: "bleaching research before acidification studies was worthless"},
				{ID: "e", Text: "pollution affects coral only in warm water"},
			},
			Difficulty:  2,
			SkillIDs:    []string{"RC-INF", "TRAP-EXT"},
			Explanation: "Multi-factor interaction is required; (b) and (d) are too extreme.",
		},
		{
			ID:      "rc-003",
			Type:    TypeReadingComp,
			Passage: "Critics of behavioral economics charge that its laboratory anomalies vanish in real markets, where experience and incentives discipline choice. Defenders respond that many field studies document persistent bias among even professional traders.",
			Prompt:  "Which of the following, if true, would most weaken the defenders' response?",
			Options: []Option{
				{ID: "a", Text: "The field studies cited measured traders during unusually volatile periods atypical of normal markets", Correct: true},
				{ID: "b", Text: "Laboratory experiments often use student participants"},
				{ID: "c", Text: "Professional traders receive extensive training"},
				{ID: "d", Text: "Behavioral economics has grown in popularity"},
				{ID: "e", Text: "Some biases are stronger in laboratory settings"},
			},
			Difficulty:  5,
			SkillIDs:    []string{"RC-SW"},
			Explanation: "If the field evidence comes from atypical conditions, it no longer shows persistent bias in real markets.",
		},
		{
			ID:     "tc-005",
			Type:   TypeTextCompletion,
			Prompt: "Far from being ______, the novelist's later style grew even more ornate.",
			Options: []Option{
				{ID: "a", Text: "austere", Correct: true},
				{ID: "b", Text: "baroque"},
				{ID: "c", Text: "florid"},
				{ID: "d", Text: "prolix"},
				{ID: "e", Text: "opulent"},
			},
			Difficulty:  2,
			SkillIDs:    []string{"TC-CON"},
			Explanation: "\"Far from being\" demands the opposite of ornate: austere.",
		},
		{
			ID:      "rc-004",
			Type:    TypeReadingComp,
			Passage: "The historian's tone in describing the failed reform movement is neither dismissive nor celebratory; she records its contradictions with an almost clinical detachment, pausing only occasionally to note the reformers' genuine, if naive, idealism.",
			Prompt:  "The author's attitude toward the reformers is best described as",
			Options: []Option{
				{ID: "a", Text: "measured sympathy tempered by critical distance", Correct: true},
				{ID: "b", Text: "unqualified admiration"},
				{ID: "c", Text: "open hostility"},
				{ID: "d", Text: "complete indifference"},
				{ID: "e", Text: "bitter disappointment"},
			},
			Difficulty:  3,
			SkillIDs:    []string{"RC-TONE", "TRAP-EXT"},
			Explanation: "Clinical detachment plus acknowledgment of genuine idealism is qualified, measured sympathy.",
		},
	}
}
