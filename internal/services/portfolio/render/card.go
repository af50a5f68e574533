package render

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/portfolio/internal/services/portfolio/project"
)

const (
	maxRoleBadges  = 3
	maxSkillBadges = 5
	maxHighlights  = 3
)

// Badge renders one label chip.
func Badge(label string) templ.Component {
	return component(func(_ context.Context, hw *htmlWriter) {
		hw.raw(`<span class="badge">`)
		hw.text(label)
		hw.raw(`</span>`)
	})
}

// ProjectCard renders one project. Roles, skills and highlights are
// truncated to fixed limits; category and status fall back to localized
// defaults; the GitHub link appears only when the project has one.
func ProjectCard(loc Localizer, p project.Project) templ.Component {
	return component(func(ctx context.Context, hw *htmlWriter) {
		category := p.Category
		if category == "" {
			category = T(loc, "portfolio.card.default_category")
		}
		status := p.Status
		if status == "" {
			status = T(loc, "portfolio.card.default_status")
		}
		href := safeURL(p.URL)

		hw.raw(`<article class="card">`)
		hw.raw(`<div class="card__head"><div>`)
		hw.raw(`<p class="card__category">`)
		hw.text(category)
		hw.raw(`</p><h3 class="card__title"><a`)
		hw.attr("href", href)
		hw.raw(`>`)
		hw.text(p.Title)
		hw.raw(`</a></h3></div><span class="card__status">`)
		hw.text(status)
		hw.raw(`</span></div>`)

		hw.raw(`<p class="card__tagline">`)
		hw.text(p.Tagline)
		hw.raw(`</p>`)

		hw.raw(`<div class="card__badges" data-facet="role">`)
		for _, role := range head(p.Roles, maxRoleBadges) {
			hw.component(ctx, Badge(role))
		}
		hw.raw(`</div><div class="card__badges" data-facet="skill">`)
		for _, skill := range head(p.Skills, maxSkillBadges) {
			hw.component(ctx, Badge(skill))
		}
		hw.raw(`</div>`)

		hw.raw(`<ul class="card__highlights">`)
		for _, highlight := range head(p.Highlights, maxHighlights) {
			hw.raw(`<li>`)
			hw.text(highlight)
			hw.raw(`</li>`)
		}
		hw.raw(`</ul>`)

		hw.raw(`<div class="card__links"><a class="card__case-study"`)
		hw.attr("href", href)
		hw.raw(`>`)
		hw.text(T(loc, "portfolio.card.case_study"))
		hw.raw(` <span aria-hidden="true">&rarr;</span></a>`)
		if p.HasGitHub() {
			hw.raw(`<a class="card__github"`)
			hw.attr("href", safeURL(p.GitHub))
			hw.raw(` target="_blank" rel="noreferrer">`)
			hw.text(T(loc, "portfolio.card.github"))
			hw.raw(`</a>`)
		}
		hw.raw(`</div></article>`)
	})
}

func head(values []string, limit int) []string {
	if len(values) > limit {
		return values[:limit]
	}
	return values
}
