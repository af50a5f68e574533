package render

import (
	"context"

	"github.com/a-h/templ"
)

// BrowserView is the interactive part of the projects page. An empty Action
// renders the controls disabled, as for a view whose load failed.
type BrowserView struct {
	Action  string
	Query   string
	Results ResultsView
}

// SearchInput renders the search box. With oob set the element carries
// hx-swap-oob so it can ride along a results swap to reset its value.
func SearchInput(loc Localizer, action, query string, oob bool) templ.Component {
	return component(func(_ context.Context, hw *htmlWriter) {
		hw.raw(`<input type="search" class="search__input"`)
		hw.attr("id", SearchInputID)
		hw.attr("name", FieldQuery)
		hw.attr("value", query)
		hw.attr("placeholder", T(loc, "portfolio.search.placeholder"))
		hw.attr("aria-label", T(loc, "portfolio.search.label"))
		hw.raw(` autocomplete="off"`)
		if action == "" {
			hw.raw(` disabled`)
		} else {
			hw.attr("hx-post", action)
			hw.raw(` hx-trigger="input changed delay:200ms, search"`)
			hw.attr("hx-target", "#"+ResultsID)
			hw.raw(` hx-swap="outerHTML"`)
		}
		if oob {
			hw.raw(` hx-swap-oob="true"`)
		}
		hw.raw(`>`)
	})
}

// Browser renders the filter form around the results region. Without
// JavaScript the form posts and the server redirects back to the view.
func Browser(loc Localizer, view BrowserView) templ.Component {
	return component(func(ctx context.Context, hw *htmlWriter) {
		hw.raw(`<form class="browser" method="post"`)
		if view.Action != "" {
			hw.attr("action", view.Action)
			hw.attr("hx-post", view.Action)
			hw.attr("hx-target", "#"+ResultsID)
			hw.raw(` hx-swap="outerHTML"`)
		}
		hw.raw(`>`)

		hw.raw(`<div class="search"><label class="search__label"`)
		hw.attr("for", SearchInputID)
		hw.raw(`>`)
		hw.text(T(loc, "portfolio.search.label"))
		hw.raw(`</label>`)
		hw.component(ctx, SearchInput(loc, view.Action, view.Query, false))
		// Must stay the form's first submit button: implicit submission
		// sends it, and it carries no event of its own.
		hw.raw(`<button type="submit" class="search__submit"`)
		if view.Action == "" {
			hw.raw(` disabled`)
		}
		hw.raw(`>`)
		hw.text(T(loc, "portfolio.search.submit"))
		hw.raw(`</button>`)
		hw.raw(`<button type="submit" class="clear"`)
		hw.attr("id", ClearFiltersID)
		hw.attr("name", FieldClear)
		hw.raw(` value="1"`)
		if view.Action == "" {
			hw.raw(` disabled`)
		}
		hw.raw(`>`)
		hw.text(T(loc, "portfolio.filters.clear"))
		hw.raw(`</button></div>`)

		hw.component(ctx, Results(loc, view.Results))
		hw.raw(`</form>`)
	})
}

// ResultsSwap is the HTMX response to a browser event: the results region,
// plus a search input reset when the filters were cleared.
func ResultsSwap(loc Localizer, view BrowserView, resetSearch bool) templ.Component {
	return component(func(ctx context.Context, hw *htmlWriter) {
		hw.component(ctx, Results(loc, view.Results))
		if resetSearch {
			hw.component(ctx, SearchInput(loc, view.Action, view.Query, true))
		}
	})
}
