package filter

import (
	"strings"

	"github.com/louisbranch/portfolio/internal/services/portfolio/project"
)

// MatchesQuery reports whether the lowercased query is a substring of the
// project's searchable text. An empty query matches every project.
func MatchesQuery(p project.Project, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(searchText(p), strings.ToLower(query))
}

// searchText joins the searchable fields with single spaces and lowercases
// the result. Empty optional fields still contribute their separator.
func searchText(p project.Project) string {
	fields := make([]string, 0, 3+len(p.Roles)+len(p.Skills)+len(p.Tools)+len(p.Highlights))
	fields = append(fields, p.Title, p.Tagline, p.Category)
	fields = append(fields, p.Roles...)
	fields = append(fields, p.Skills...)
	fields = append(fields, p.Tools...)
	fields = append(fields, p.Highlights...)
	return strings.ToLower(strings.Join(fields, " "))
}

// MatchesTags applies the facet rule: within a facet any selected label
// matches, across facets every non-empty selection must match.
func MatchesTags(p project.Project, roles, skills Set) bool {
	rolesOK := len(roles) == 0 || roles.Intersects(p.Roles)
	skillsOK := len(skills) == 0 || skills.Intersects(p.Skills)
	return rolesOK && skillsOK
}

// Matches combines the text and tag predicates.
func Matches(p project.Project, state State) bool {
	return MatchesQuery(p, state.Query) && MatchesTags(p, state.Roles, state.Skills)
}

// Apply returns the projects matching state in source order.
func Apply(projects []project.Project, state State) []project.Project {
	out := make([]project.Project, 0, len(projects))
	for _, p := range projects {
		if Matches(p, state) {
			out = append(out, p)
		}
	}
	return out
}
