package cluster

import (
	"fmt"
	"sort"
)

type registry struct {
	clusters map[string]*Cluster
	byWord   map[string]string
}

var reg = &registry{
	clusters: make(map[string]*Cluster),
	byWord:   make(map[string]string),
}

func register(c *Cluster) {
	if _, dup := reg.clusters[c.ID]; dup {
		panic(fmt.Sprintf("cluster: duplicate id %q", c.ID))
	}
	reg.clusters[c.ID] = c
	for _, w := range c.Words {
		reg.byWord[w] = c.ID
	}
}

// Get returns the cluster with the given ID.
func Get(id string) (*Cluster, error) {
	c, ok := reg.clusters[id]
	if !ok {
		return nil, fmt.Errorf("cluster: unknown id %q", id)
	}
	return c, nil
}

// ForWord returns the cluster containing the word, or nil if the word
// is not in any cluster.
func ForWord(word string) *Cluster {
	id, ok := reg.byWord[word]
	if !ok {
		return nil
	}
	return reg.clusters[id]
}

// All returns every registered cluster sorted by ID.
func All() []*Cluster {
	out := make([]*Cluster, 0, len(reg.clusters))
	for _, c := range reg.clusters {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AllWords returns every word that appears in any cluster.
func AllWords() []string {
	out := make([]string, 0, len(reg.byWord))
	for w := range reg.byWord {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
