package cluster

func init() {
	register(&Cluster{
		ID:          "ex-prefix",
		Name:        "ex- Prefix Words",
		Description: "Words starting with \"ex-\" that sound alike but mean different things",
		Words:       []string{"exacerbate", "exculpate", "expostulate", "expiate", "extenuate"},
		Pairs: []ConfusionPair{
			{
				Words:      [2]string{"exacerbate", "extenuate"},
				WhyMixedUp: "Both describe changing the severity of something, in opposite directions",
				Mnemonic:   "eXacerbate makes it eXtra bad; exTENuate TONES it down",
			},
			{
				Words:      [2]string{"exculpate", "expiate"},
				WhyMixedUp: "Both relate to guilt: clearing it versus atoning for it",
				Mnemonic:   "exCULPate removes the CULPability; exPIate PAYS for it",
			},
		},
		Drills: []Drill{
			{
				ID:         "exp-d1",
				ClusterID:  "ex-prefix",
				Type:       DrillConfusionResolver,
				Difficulty: 2,
				Prompt:     "The new evidence served to ___ the defendant, proving she was elsewhere that night.",
				Options: []DrillOption{
					{ID: "a", Text: "exacerbate"},
					{ID: "b", Text: "exculpate"},
					{ID: "c", Text: "expiate"},
					{ID: "d", Text: "expostulate"},
				},
				Answer:  []string{"b"},
				Words:   []string{"exculpate", "exacerbate", "expiate", "expostulate"},
				Explain: "To exculpate is to clear of blame; atoning (expiate) admits guilt rather than removing it.",
			},
			{
				ID:         "exp-d2",
				ClusterID:  "ex-prefix",
				Type:       DrillShadeDistinction,
				Difficulty: 3,
				Prompt:     "Which word means to make a bad situation worse?",
				Options: []DrillOption{
					{ID: "a", Text: "extenuate"},
					{ID: "b", Text: "expostulate"},
					{ID: "c", Text: "exacerbate"},
				},
				Answer:  []string{"c"},
				Words:   []string{"exacerbate", "extenuate", "expostulate"},
				Explain: "Exacerbate intensifies a problem; extenuate lessens perceived seriousness.",
			},
		},
	})

	register(&Cluster{
		ID:          "flaunt-flout",
		Name:        "Flaunt vs Flout",
		Description: "Flaunt means to show off; flout means to openly disregard rules",
		Words:       []string{"flaunt", "flout"},
		Pairs: []ConfusionPair{
			{
				Words:      [2]string{"flaunt", "flout"},
				WhyMixedUp: "Near-identical sound, unrelated meanings",
				Mnemonic:   "flOUT throws the rules OUT",
			},
		},
		Drills: []Drill{
			{
				ID:         "ff-d1",
				ClusterID:  "flaunt-flout",
				Type:       DrillConfusionResolver,
				Difficulty: 1,
				Prompt:     "Cyclists who ___ traffic laws endanger pedestrians.",
				Options: []DrillOption{
					{ID: "a", Text: "flaunt"},
					{ID: "b", Text: "flout"},
				},
				Answer:  []string{"b"},
				Words:   []string{"flaunt", "flout"},
				Explain: "Rules are flouted (defied); wealth is flaunted (displayed).",
			},
		},
	})

	register(&Cluster{
		ID:          "enervate-energize",
		Name:        "Enervate vs Energize",
		Description: "Enervate weakens and drains energy, the opposite of what it sounds like",
		Words:       []string{"enervate", "energize"},
		Pairs: []ConfusionPair{
			{
				Words:      [2]string{"enervate", "energize"},
				WhyMixedUp: "Enervate sounds like it should add energy; it removes it",
				Mnemonic:   "enervate = \"un-nerve\": it saps strength",
			},
		},
		Drills: []Drill{
			{
				ID:         "ee-d1",
				ClusterID:  "enervate-energize",
				Type:       DrillConfusionResolver,
				Difficulty: 2,
				Prompt:     "Months of bureaucratic delays had ___ the once-ambitious team.",
				Options: []DrillOption{
					{ID: "a", Text: "energized"},
					{ID: "b", Text: "enervated"},
				},
				Answer:  []string{"b"},
				Words:   []string{"enervate", "energize"},
				Explain: "Delays drain; enervate means to weaken or exhaust.",
			},
		},
	})

	register(&Cluster{
		ID:          "ingenious-ingenuous",
		Name:        "Ingenious vs Ingenuous",
		Description: "Ingenious means clever and inventive; ingenuous means innocent and naive",
		Words:       []string{"ingenious", "ingenuous", "disingenuous"},
		Pairs: []ConfusionPair{
			{
				Words:      [2]string{"ingenious", "ingenuous"},
				WhyMixedUp: "One letter apart, unrelated meanings",
				Mnemonic:   "inGENIous has a GENIUS inside",
			},
			{
				Words:      [2]string{"ingenuous", "disingenuous"},
				WhyMixedUp: "Disingenuous is the true opposite of ingenuous, not of ingenious",
				Mnemonic:   "",
			},
		},
		Drills: []Drill{
			{
				ID:         "ii-d1",
				ClusterID:  "ingenious-ingenuous",
				Type:       DrillShadeDistinction,
				Difficulty: 3,
				Prompt:     "Which word describes a candidly naive remark?",
				Options: []DrillOption{
					{ID: "a", Text: "ingenious"},
					{ID: "b", Text: "ingenuous"},
					{ID: "c", Text: "disingenuous"},
				},
				Answer:  []string{"b"},
				Words:   []string{"ingenious", "ingenuous", "disingenuous"},
				Explain: "Ingenuous means artless and sincere; disingenuous means feigning that sincerity.",
			},
			{
				ID:         "ii-d2",
				ClusterID:  "ingenious-ingenuous",
				Type:       DrillOddOneOut,
				Difficulty: 2,
				Prompt:     "Which word does not describe a quality of character?",
				Options: []DrillOption{
					{ID: "a", Text: "ingenuous"},
					{ID: "b", Text: "disingenuous"},
					{ID: "c", Text: "ingenious"},
				},
				Answer:  []string{"c"},
				Words:   []string{"ingenious", "ingenuous", "disingenuous"},
				Explain: "Ingenious describes cleverness of ideas, not sincerity of character.",
			},
		},
	})

	register(&Cluster{
		ID:          "prescribe-proscribe",
		Name:        "Prescribe vs Proscribe",
		Description: "Prescribe means to recommend or order; proscribe means to forbid",
		Words:       []string{"prescribe", "proscribe"},
		Pairs: []ConfusionPair{
			{
				Words:      [2]string{"prescribe", "proscribe"},
				WhyMixedUp: "One vowel apart, opposite force",
				Mnemonic:   "PROscribe PROhibits",
			},
		},
		Drills: []Drill{
			{
				ID:         "pp-d1",
				ClusterID:  "prescribe-proscribe",
				Type:       DrillConfusionResolver,
				Difficulty: 2,
				Prompt:     "The treaty ___ the use of chemical weapons.",
				Options: []DrillOption{
					{ID: "a", Text: "prescribes"},
					{ID: "b", Text: "proscribes"},
				},
				Answer:  []string{"b"},
				Words:   []string{"prescribe", "proscribe"},
				Explain: "Treaties proscribe (ban) weapons; doctors prescribe remedies.",
			},
		},
	})

	register(&Cluster{
		ID:          "eminent-imminent-immanent",
		Name:        "Eminent vs Imminent vs Immanent",
		Description: "Eminent means distinguished; imminent means about to happen; immanent means inherent",
		Words:       []string{"eminent", "imminent", "immanent"},
		Pairs: []ConfusionPair{
			{
				Words:      [2]string{"eminent", "imminent"},
				WhyMixedUp: "Homophone-adjacent; one describes a person, the other an event",
				Mnemonic:   "IMMinent is IMMediate",
			},
			{
				Words:      [2]string{"imminent", "immanent"},
				WhyMixedUp: "Identical sound; immanent is rare and philosophical",
				Mnemonic:   "",
			},
		},
		Drills: []Drill{
			{
				ID:         "eii-d1",
				ClusterID:  "eminent-imminent-immanent",
				Type:       DrillRelationshipLabeling,
				Difficulty: 3,
				Prompt:     "Storm clouds gathered; the downpour was ___.",
				Options: []DrillOption{
					{ID: "a", Text: "eminent"},
					{ID: "b", Text: "imminent"},
					{ID: "c", Text: "immanent"},
				},
				Answer:  []string{"b"},
				Words:   []string{"eminent", "imminent", "immanent"},
				Explain: "Events about to happen are imminent; people of standing are eminent.",
			},
		},
	})

	register(&Cluster{
		ID:          "frugal-scale",
		Name:        "Thrift Intensity Scale",
		Description: "Words for spending little, from virtue to vice",
		Words:       []string{"thrifty", "frugal", "parsimonious", "miserly"},
		Pairs: []ConfusionPair{
			{
				Words:      [2]string{"frugal", "parsimonious"},
				WhyMixedUp: "Both mean careful with money; parsimonious carries blame",
				Mnemonic:   "",
			},
		},
		Drills: []Drill{
			{
				ID:         "fs-d1",
				ClusterID:  "frugal-scale",
				Type:       DrillIntensityOrdering,
				Difficulty: 3,
				Prompt:     "Order from mildest thrift to harshest stinginess.",
				Options: []DrillOption{
					{ID: "a", Text: "thrifty"},
					{ID: "b", Text: "frugal"},
					{ID: "c", Text: "parsimonious"},
					{ID: "d", Text: "miserly"},
				},
				Answer:  []string{"a", "b", "c", "d"},
				Ordered: true,
				Words:   []string{"thrifty", "frugal", "parsimonious", "miserly"},
				Explain: "Thrifty and frugal are neutral-to-positive; parsimonious and miserly condemn.",
			},
		},
	})

	register(&Cluster{
		ID:          "venal-venial",
		Name:        "Venal vs Venial",
		Description: "Venal means corrupt or bribable; venial means minor and pardonable",
		Words:       []string{"venal", "venial"},
		Pairs: []ConfusionPair{
			{
				Words:      [2]string{"venal", "venial"},
				WhyMixedUp: "One letter apart; both often appear near \"sin\"",
				Mnemonic:   "venAL officials take it ALL",
			},
		},
		Drills: []Drill{
			{
				ID:         "vv-d1",
				ClusterID:  "venal-venial",
				Type:       DrillConfusionResolver,
				Difficulty: 4,
				Prompt:     "The auditors uncovered a ___ inspector who approved permits for cash.",
				Options: []DrillOption{
					{ID: "a", Text: "venial"},
					{ID: "b", Text: "venal"},
				},
				Answer:  []string{"b"},
				Words:   []string{"venal", "venial"},
				Explain: "Bribable officials are venal; forgivable lapses are venial.",
			},
		},
	})
}
