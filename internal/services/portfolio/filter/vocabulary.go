package filter

import (
	"github.com/louisbranch/portfolio/internal/services/portfolio/project"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Vocabulary holds the distinct role and skill labels of a dataset.
type Vocabulary struct {
	Roles  []string
	Skills []string
}

// Labels returns the vocabulary for facet.
func (v Vocabulary) Labels(facet Facet) []string {
	switch facet {
	case FacetRole:
		return v.Roles
	case FacetSkill:
		return v.Skills
	default:
		return nil
	}
}

// Contains reports whether label is part of facet's vocabulary.
func (v Vocabulary) Contains(facet Facet, label string) bool {
	for _, candidate := range v.Labels(facet) {
		if candidate == label {
			return true
		}
	}
	return false
}

// DeriveVocabulary flattens the dataset's roles and skills, drops exact
// duplicates, and sorts each list by the collation rules of tag.
func DeriveVocabulary(projects []project.Project, tag language.Tag) Vocabulary {
	var roles, skills []string
	for _, p := range projects {
		roles = append(roles, p.Roles...)
		skills = append(skills, p.Skills...)
	}
	return Vocabulary{
		Roles:  uniqueSorted(roles, tag),
		Skills: uniqueSorted(skills, tag),
	}
}

func uniqueSorted(labels []string, tag language.Tag) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, label := range labels {
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}
	collate.New(tag).SortStrings(out)
	return out
}
