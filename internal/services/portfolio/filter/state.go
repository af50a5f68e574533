// Package filter decides which projects satisfy the visitor's search text and
// role/skill selections.
package filter

// Facet names one tag category a visitor can filter by.
type Facet string

const (
	FacetRole  Facet = "role"
	FacetSkill Facet = "skill"
)

// Set is a set of tag labels compared by exact equality.
type Set map[string]struct{}

// NewSet returns a set holding labels.
func NewSet(labels ...string) Set {
	s := make(Set, len(labels))
	for _, label := range labels {
		s[label] = struct{}{}
	}
	return s
}

// Has reports whether label is in the set. A nil set is empty.
func (s Set) Has(label string) bool {
	_, ok := s[label]
	return ok
}

// Toggle adds label when absent and removes it when present.
func (s Set) Toggle(label string) {
	if s.Has(label) {
		delete(s, label)
		return
	}
	s[label] = struct{}{}
}

// Intersects reports whether any of labels is in the set.
func (s Set) Intersects(labels []string) bool {
	for _, label := range labels {
		if s.Has(label) {
			return true
		}
	}
	return false
}

// State is the filter state of one page view.
type State struct {
	Query  string
	Roles  Set
	Skills Set
}

// NewState returns an empty state: no query and no selections.
func NewState() State {
	return State{Roles: Set{}, Skills: Set{}}
}

// Clear resets the query and both selections.
func (s *State) Clear() {
	s.Query = ""
	s.Roles = Set{}
	s.Skills = Set{}
}

// Selected returns the selection set for facet, or nil for an unknown facet.
func (s *State) Selected(facet Facet) Set {
	switch facet {
	case FacetRole:
		if s.Roles == nil {
			s.Roles = Set{}
		}
		return s.Roles
	case FacetSkill:
		if s.Skills == nil {
			s.Skills = Set{}
		}
		return s.Skills
	default:
		return nil
	}
}
