package cluster

// DrillType identifies the exercise format of a cluster drill.
type DrillType string

const (
	DrillShadeDistinction     DrillType = "shade_distinction"
	DrillIntensityOrdering    DrillType = "intensity_ordering"
	DrillOddOneOut            DrillType = "odd_one_out"
	DrillConfusionResolver    DrillType = "confusion_resolver"
	DrillRelationshipLabeling DrillType = "relationship_labeling"
)

// DrillOption is one selectable choice in a drill.
type DrillOption struct {
	ID   string
	Text string
}

// Drill is a single cluster exercise. Answer holds the correct option
// IDs; for ordering drills the order matters and Ordered is set.
type Drill struct {
	ID         string
	ClusterID  string
	Type       DrillType
	Difficulty int
	Prompt     string
	Options    []DrillOption
	Answer     []string
	Ordered    bool
	Words      []string
	Explain    string
}

// ConfusionPair names two cluster words learners mix up, with the
// reason and a disambiguating mnemonic when one exists.
type ConfusionPair struct {
	Words      [2]string
	WhyMixedUp string
	Mnemonic   string
}

// Cluster is a group of commonly confused GRE words drilled together.
type Cluster struct {
	ID          string
	Name        string
	Description string
	Words       []string
	Pairs       []ConfusionPair
	Drills      []Drill
}

// PairCount returns the number of listed confusion pairs.
func (c *Cluster) PairCount() int {
	return len(c.Pairs)
}

// HasWord reports whether the word belongs to this cluster.
func (c *Cluster) HasWord(word string) bool {
	for _, w := range c.Words {
		if w == word {
			return true
		}
	}
	return false
}
