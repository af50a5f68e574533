// Package pagerender centralizes page rendering for full-page and HTMX flows.
package pagerender

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	platformi18n "github.com/louisbranch/portfolio/internal/platform/i18n"
	"github.com/louisbranch/portfolio/internal/services/portfolio/platform/httpx"
	"github.com/louisbranch/portfolio/internal/services/portfolio/render"
	"github.com/louisbranch/portfolio/internal/services/shared/htmx"
	"github.com/louisbranch/portfolio/internal/services/shared/i18nhttp"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Page describes one response for both full-page and HTMX flows.
type Page struct {
	Loc             render.Localizer
	Lang            language.Tag
	Title           string
	MetaDescription string
	StatusCode      int
	HTMXScriptURL   string
	// Body is the main content of a full page.
	Body templ.Component
	// Fragment answers HTMX requests; nil renders the full page instead.
	Fragment templ.Component
}

// WritePage renders page into a buffer and writes it with its status.
func WritePage(w http.ResponseWriter, r *http.Request, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	if page.Fragment != nil && htmx.IsRequest(r) {
		return htmx.WriteFragment(w, r, statusCode, page.Fragment)
	}

	lang := page.Lang
	if lang == language.Und {
		lang = platformi18n.DefaultTag()
	}
	layout := render.Page(render.PageOptions{
		Lang:            lang.String(),
		Title:           page.Title,
		AppName:         render.T(page.Loc, "core.app_name"),
		MetaDescription: page.MetaDescription,
		HomeURL:         "/",
		HTMXScriptURL:   page.HTMXScriptURL,
		Languages:       languageLinks(r, lang),
	}, page.Body)

	var buf bytes.Buffer
	if err := layout.Render(httpx.RequestContext(r), &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

func languageLinks(r *http.Request, active language.Tag) []render.LanguageLink {
	path := "/"
	if r != nil && r.URL != nil && strings.TrimSpace(r.URL.Path) != "" {
		path = r.URL.Path
	}
	options := i18nhttp.BuildLanguageOptions(platformi18n.SupportedTags(), active, func(tag language.Tag) string {
		return display.Self.Name(tag)
	})
	links := make([]render.LanguageLink, 0, len(options))
	for _, option := range options {
		links = append(links, render.LanguageLink{
			Label:  option.Label,
			URL:    i18nhttp.LanguageURL(path, option.Tag),
			Active: option.Active,
		})
	}
	return links
}
