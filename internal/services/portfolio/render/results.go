package render

import (
	"context"

	"github.com/a-h/templ"
	"github.com/dustin/go-humanize"
	"github.com/louisbranch/portfolio/internal/services/portfolio/project"
)

// DOM ids shared by the page, the HTMX swaps, and tests.
const (
	ResultsID      = "projectResults"
	ProjectListID  = "projectList"
	SearchInputID  = "searchInput"
	RolePillsID    = "rolePills"
	SkillPillsID   = "skillPills"
	ClearFiltersID = "clearFilters"
	ResultCountID  = "resultCount"
)

// Form field names submitted by the browser form.
const (
	FieldQuery       = "q"
	FieldToggleRole  = "toggle_role"
	FieldToggleSkill = "toggle_skill"
	FieldClear       = "clear"
)

// PillView is one toggle in a pill bar.
type PillView struct {
	Label  string
	Active bool
}

// ResultsView is the recomputed output region of the browser.
type ResultsView struct {
	Failed   bool
	Projects []project.Project
	Total    int
	Roles    []PillView
	Skills   []PillView
}

// Pill renders a toggle button. Submitting it toggles label in the facet
// named by field.
func Pill(field string, pill PillView) templ.Component {
	return component(func(_ context.Context, hw *htmlWriter) {
		class := "pill"
		if pill.Active {
			class = "pill pill--active"
		}
		hw.raw(`<button type="submit"`)
		hw.attr("class", class)
		hw.attr("name", field)
		hw.attr("value", pill.Label)
		hw.attr("data-pill", pill.Label)
		if pill.Active {
			hw.raw(` data-active="true"`)
		}
		hw.raw(`>`)
		hw.text(pill.Label)
		hw.raw(`</button>`)
	})
}

// PillBar renders every pill of one facet inside the container with id.
func PillBar(id, field string, pills []PillView) templ.Component {
	return component(func(ctx context.Context, hw *htmlWriter) {
		hw.raw(`<div class="pill-bar"`)
		hw.attr("id", id)
		hw.raw(`>`)
		for _, pill := range pills {
			hw.component(ctx, Pill(field, pill))
		}
		hw.raw(`</div>`)
	})
}

// ResultCount renders "<visible> / <total>".
func ResultCount(visible, total int) templ.Component {
	return component(func(_ context.Context, hw *htmlWriter) {
		hw.raw(`<span class="result-count"`)
		hw.attr("id", ResultCountID)
		hw.raw(`>`)
		hw.text(FormatCount(visible, total))
		hw.raw(`</span>`)
	})
}

// FormatCount formats the result counter with grouped digits.
func FormatCount(visible, total int) string {
	return humanize.Comma(int64(visible)) + " / " + humanize.Comma(int64(total))
}

// EmptyState is shown when no project passes the filters.
func EmptyState(loc Localizer) templ.Component {
	return component(func(_ context.Context, hw *htmlWriter) {
		hw.raw(`<div class="panel panel--empty"><p class="panel__title">`)
		hw.text(T(loc, "portfolio.empty.title"))
		hw.raw(`</p><p class="panel__detail">`)
		hw.text(T(loc, "portfolio.empty.detail"))
		hw.raw(`</p></div>`)
	})
}

// ErrorPanel replaces the list when the feed failed to load.
func ErrorPanel(loc Localizer) templ.Component {
	return component(func(_ context.Context, hw *htmlWriter) {
		hw.raw(`<div class="panel panel--error" role="alert"><p class="panel__title">`)
		hw.text(T(loc, "portfolio.load_error.title"))
		hw.raw(`</p><p class="panel__detail">`)
		hw.text(T(loc, "portfolio.load_error.detail"))
		hw.raw(`</p></div>`)
	})
}

// ProjectList renders the cards in order, or the empty state.
func ProjectList(loc Localizer, projects []project.Project) templ.Component {
	return component(func(ctx context.Context, hw *htmlWriter) {
		hw.raw(`<div class="project-list"`)
		hw.attr("id", ProjectListID)
		hw.raw(`>`)
		if len(projects) == 0 {
			hw.component(ctx, EmptyState(loc))
		}
		for _, p := range projects {
			hw.component(ctx, ProjectCard(loc, p))
		}
		hw.raw(`</div>`)
	})
}

// Results renders the region replaced on every recompute: both pill bars,
// the counter, and the list. A failed view keeps the pill bars and counter
// empty and shows the error panel in place of the list.
func Results(loc Localizer, view ResultsView) templ.Component {
	return component(func(ctx context.Context, hw *htmlWriter) {
		hw.raw(`<div class="results"`)
		hw.attr("id", ResultsID)
		hw.raw(`>`)

		hw.raw(`<section class="facet"><h2 class="facet__title">`)
		hw.text(T(loc, "portfolio.filters.roles"))
		hw.raw(`</h2>`)
		hw.component(ctx, PillBar(RolePillsID, FieldToggleRole, pillsUnlessFailed(view, view.Roles)))
		hw.raw(`</section>`)

		hw.raw(`<section class="facet"><h2 class="facet__title">`)
		hw.text(T(loc, "portfolio.filters.skills"))
		hw.raw(`</h2>`)
		hw.component(ctx, PillBar(SkillPillsID, FieldToggleSkill, pillsUnlessFailed(view, view.Skills)))
		hw.raw(`</section>`)

		if view.Failed {
			hw.raw(`<span class="result-count"`)
			hw.attr("id", ResultCountID)
			hw.raw(`></span>`)
			hw.raw(`<div class="project-list"`)
			hw.attr("id", ProjectListID)
			hw.raw(`>`)
			hw.component(ctx, ErrorPanel(loc))
			hw.raw(`</div>`)
		} else {
			hw.component(ctx, ResultCount(len(view.Projects), view.Total))
			hw.component(ctx, ProjectList(loc, view.Projects))
		}
		hw.raw(`</div>`)
	})
}

func pillsUnlessFailed(view ResultsView, pills []PillView) []PillView {
	if view.Failed {
		return nil
	}
	return pills
}
