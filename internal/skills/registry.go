package skills

import (
	"fmt"
	"sort"
)

// registry holds the seeded taxonomy with precomputed indexes.
type registry struct {
	skills     []Skill
	byID       map[string]*Skill
	byCategory map[Category][]Skill
}

// reg is the package-level registry singleton, set by init() in seed.go.
var reg *registry

func buildRegistry(skills []Skill) *registry {
	r := &registry{
		skills:     skills,
		byID:       make(map[string]*Skill, len(skills)),
		byCategory: make(map[Category][]Skill),
	}
	for i := range r.skills {
		s := &r.skills[i]
		r.byID[s.ID] = s
		r.byCategory[s.Category] = append(r.byCategory[s.Category], *s)
	}
	for c := range r.byCategory {
		list := r.byCategory[c]
		sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
		r.byCategory[c] = list
	}
	return r
}

// Get returns the skill with the given ID.
func Get(id string) (Skill, error) {
	s, ok := reg.byID[id]
	if !ok {
		return Skill{}, fmt.Errorf("unknown skill %q", id)
	}
	return *s, nil
}

// Exists reports whether a skill ID is part of the taxonomy.
func Exists(id string) bool {
	_, ok := reg.byID[id]
	return ok
}

// All returns every skill, sorted by ID.
func All() []Skill {
	out := make([]Skill, len(reg.skills))
	copy(out, reg.skills)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ByCategory returns the skills in a category, sorted by ID.
func ByCategory(c Category) []Skill {
	list := reg.byCategory[c]
	out := make([]Skill, len(list))
	copy(out, list)
	return out
}

// DisplayName resolves a skill ID to its name, falling back to the ID itself
// for unknown skills.
func DisplayName(id string) string {
	if s, ok := reg.byID[id]; ok {
		return s.Name
	}
	return id
}
