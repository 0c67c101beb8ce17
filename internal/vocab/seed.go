package vocab

func init() {
	reg = buildRegistry(seedCards)
}

// seedCards is the starter deck. Card IDs are stable: review state in
// snapshots is keyed by them, so never renumber existing entries.
var seedCards = []Card{
	{
		ID:           "w-exacerbate",
		Word:         "exacerbate",
		PartOfSpeech: "verb",
		Definition:   "to make a bad situation worse",
		Example:      "Cutting the budget mid-project only exacerbated the delays.",
		Etymology:    "Latin acerbus, bitter or harsh",
	},
	{
		ID:           "w-exculpate",
		Word:         "exculpate",
		PartOfSpeech: "verb",
		Definition:   "to clear from blame or guilt",
		Example:      "The security footage exculpated the clerk entirely.",
		Etymology:    "Latin ex- (out of) + culpa (blame)",
	},
	{
		ID:           "w-expostulate",
		Word:         "expostulate",
		PartOfSpeech: "verb",
		Definition:   "to reason earnestly with someone in protest",
		Example:      "She expostulated with the committee over the ruling, to no avail.",
	},
	{
		ID:           "w-expiate",
		Word:         "expiate",
		PartOfSpeech: "verb",
		Definition:   "to make amends for wrongdoing",
		Example:      "He spent years of volunteer work trying to expiate the fraud.",
	},
	{
		ID:           "w-extenuate",
		Word:         "extenuate",
		PartOfSpeech: "verb",
		Definition:   "to lessen the seriousness of a fault or offense",
		Example:      "Nothing extenuates the deception, though the pressure she faced explains it.",
		Etymology:    "Latin tenuis, thin — to thin out an offense",
	},
	{
		ID:           "w-flaunt",
		Word:         "flaunt",
		PartOfSpeech: "verb",
		Definition:   "to display ostentatiously",
		Example:      "He flaunted the award at every meeting for a month.",
	},
	{
		ID:           "w-flout",
		Word:         "flout",
		PartOfSpeech: "verb",
		Definition:   "to openly disregard a rule or convention",
		Example:      "The startup flouted the reporting requirements for two quarters.",
	},
	{
		ID:           "w-enervate",
		Word:         "enervate",
		PartOfSpeech: "verb",
		Definition:   "to weaken or drain of energy",
		Example:      "The humidity enervated the crew before noon.",
		Etymology:    "Latin e- (out) + nervus (sinew) — to cut the sinews",
	},
	{
		ID:           "w-energize",
		Word:         "energize",
		PartOfSpeech: "verb",
		Definition:   "to give vitality or enthusiasm to",
		Example:      "The early results energized the whole lab.",
	},
	{
		ID:           "w-ingenious",
		Word:         "ingenious",
		PartOfSpeech: "adjective",
		Definition:   "clever, original, and inventive",
		Example:      "An ingenious workaround kept the service running during the outage.",
	},
	{
		ID:           "w-ingenuous",
		Word:         "ingenuous",
		PartOfSpeech: "adjective",
		Definition:   "innocent, unsuspecting, and candid",
		Example:      "Her ingenuous reply made it clear she had no idea of the office politics.",
	},
	{
		ID:           "w-disingenuous",
		Word:         "disingenuous",
		PartOfSpeech: "adjective",
		Definition:   "not candid; pretending to know less than one does",
		Example:      "It was disingenuous of him to feign surprise at the audit findings.",
	},
	{
		ID:           "w-prescribe",
		Word:         "prescribe",
		PartOfSpeech: "verb",
		Definition:   "to authoritatively recommend or order",
		Example:      "The style guide prescribes one import block per file.",
	},
	{
		ID:           "w-proscribe",
		Word:         "proscribe",
		PartOfSpeech: "verb",
		Definition:   "to forbid, especially by law",
		Example:      "The treaty proscribes testing of any kind in the region.",
		Etymology:    "Latin proscribere, to publish the name of an outlaw",
	},
	{
		ID:           "w-eminent",
		Word:         "eminent",
		PartOfSpeech: "adjective",
		Definition:   "famous and respected within a field",
		Example:      "An eminent geologist reviewed the survey.",
	},
	{
		ID:           "w-imminent",
		Word:         "imminent",
		PartOfSpeech: "adjective",
		Definition:   "about to happen",
		Example:      "With the deadline imminent, the team froze the feature list.",
	},
	{
		ID:           "w-immanent",
		Word:         "immanent",
		PartOfSpeech: "adjective",
		Definition:   "inherent; existing within",
		Example:      "She argued that meaning is immanent in the text itself.",
	},
	{
		ID:           "w-thrifty",
		Word:         "thrifty",
		PartOfSpeech: "adjective",
		Definition:   "careful with money; economical",
		Example:      "A thrifty grant manager, she stretched the funding a full extra year.",
	},
	{
		ID:           "w-frugal",
		Word:         "frugal",
		PartOfSpeech: "adjective",
		Definition:   "sparing with money or resources, sometimes to a fault",
		Example:      "His frugal habits predated the lean years.",
	},
	{
		ID:           "w-parsimonious",
		Word:         "parsimonious",
		PartOfSpeech: "adjective",
		Definition:   "excessively unwilling to spend",
		Example:      "The parsimonious landlord wouldn't replace a forty-year-old boiler.",
	},
	{
		ID:           "w-miserly",
		Word:         "miserly",
		PartOfSpeech: "adjective",
		Definition:   "hoarding wealth to the point of self-denial",
		Example:      "Miserly to the end, he died rich and cold in an unheated house.",
	},
	{
		ID:           "w-venal",
		Word:         "venal",
		PartOfSpeech: "adjective",
		Definition:   "open to bribery; corruptible",
		Example:      "The permits moved quickly once a venal inspector took over the file.",
		Etymology:    "Latin venum, something for sale",
	},
	{
		ID:           "w-venial",
		Word:         "venial",
		PartOfSpeech: "adjective",
		Definition:   "(of a fault) minor and forgivable",
		Example:      "Arriving five minutes late is a venial offense at worst.",
	},
	{
		ID:           "w-laconic",
		Word:         "laconic",
		PartOfSpeech: "adjective",
		Definition:   "using very few words",
		Example:      "His laconic status reports rarely ran past one line.",
		Etymology:    "Greek Lakonikos, Spartan — famed for terse speech",
	},
	{
		ID:           "w-garrulous",
		Word:         "garrulous",
		PartOfSpeech: "adjective",
		Definition:   "excessively talkative, especially about trivial matters",
		Example:      "A garrulous seatmate narrated the entire flight.",
	},
	{
		ID:           "w-obdurate",
		Word:         "obdurate",
		PartOfSpeech: "adjective",
		Definition:   "stubbornly refusing to change one's opinion",
		Example:      "The maintainer stayed obdurate through three rounds of review.",
		Etymology:    "Latin durus, hard",
	},
	{
		ID:           "w-ephemeral",
		Word:         "ephemeral",
		PartOfSpeech: "adjective",
		Definition:   "lasting a very short time",
		Example:      "The cache is ephemeral; nothing survives a restart.",
		Etymology:    "Greek ephemeros, lasting a day",
	},
	{
		ID:           "w-soporific",
		Word:         "soporific",
		PartOfSpeech: "adjective",
		Definition:   "inducing sleep; tediously boring",
		Example:      "The soporific keynote emptied half the hall by slide ten.",
		Etymology:    "Latin sopor, deep sleep",
	},
}
