package projects

import (
	"net/url"
	"strings"

	"github.com/louisbranch/portfolio/internal/services/portfolio/controller"
	"github.com/louisbranch/portfolio/internal/services/portfolio/filter"
	"github.com/louisbranch/portfolio/internal/services/portfolio/render"
)

// parseEvents turns one form submission into controller events: the search
// text first, then pill toggles in submission order, then clear.
func parseEvents(form url.Values) (events []controller.Event, cleared bool) {
	if values, ok := form[render.FieldQuery]; ok {
		query := ""
		if len(values) > 0 {
			query = values[0]
		}
		events = append(events, controller.Search{Query: query})
	}
	for _, label := range form[render.FieldToggleRole] {
		events = append(events, controller.Toggle{Facet: filter.FacetRole, Label: label})
	}
	for _, label := range form[render.FieldToggleSkill] {
		events = append(events, controller.Toggle{Facet: filter.FacetSkill, Label: label})
	}
	if strings.TrimSpace(form.Get(render.FieldClear)) != "" {
		events = append(events, controller.Clear{})
		cleared = true
	}
	return events, cleared
}

// browserView maps a recompute onto the render model. An empty action
// renders the controls disabled.
func browserView(action string, view controller.View) render.BrowserView {
	return render.BrowserView{
		Action: action,
		Query:  view.Query,
		Results: render.ResultsView{
			Failed:   view.Failed(),
			Projects: view.Projects,
			Total:    view.Total,
			Roles:    pillViews(view.Roles),
			Skills:   pillViews(view.Skills),
		},
	}
}

func pillViews(pills []controller.Pill) []render.PillView {
	out := make([]render.PillView, 0, len(pills))
	for _, pill := range pills {
		out = append(out, render.PillView{Label: pill.Label, Active: pill.Active})
	}
	return out
}
