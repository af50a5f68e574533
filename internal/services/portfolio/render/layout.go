package render

import (
	"context"
	"strings"

	"github.com/a-h/templ"
)

const (
	// StylesheetPath is where the embedded stylesheet is served.
	StylesheetPath = "/static/app.css"
	// DefaultHTMXScriptURL loads the HTMX client used for partial swaps.
	DefaultHTMXScriptURL = "https://unpkg.com/htmx.org@2.0.4"
)

// LanguageLink is one entry of the language switcher.
type LanguageLink struct {
	Label  string
	URL    string
	Active bool
}

// PageOptions configures the document shell.
type PageOptions struct {
	Lang            string
	Title           string
	AppName         string
	MetaDescription string
	HomeURL         string
	HTMXScriptURL   string
	Languages       []LanguageLink
}

// ComposePageTitle appends the app name to a page title.
func ComposePageTitle(title, appName string) string {
	title = strings.TrimSpace(title)
	appName = strings.TrimSpace(appName)
	switch {
	case title == "":
		return appName
	case appName == "" || strings.HasSuffix(title, " | "+appName):
		return title
	default:
		return title + " | " + appName
	}
}

// Page renders a full document with body as the main content.
func Page(opts PageOptions, body templ.Component) templ.Component {
	return component(func(ctx context.Context, hw *htmlWriter) {
		lang := opts.Lang
		if lang == "" {
			lang = "en-US"
		}
		script := opts.HTMXScriptURL
		if script == "" {
			script = DefaultHTMXScriptURL
		}
		home := opts.HomeURL
		if home == "" {
			home = "/"
		}

		hw.raw(`<!doctype html><html`)
		hw.attr("lang", lang)
		hw.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.raw(`<title>`)
		hw.text(ComposePageTitle(opts.Title, opts.AppName))
		hw.raw(`</title>`)
		if opts.MetaDescription != "" {
			hw.raw(`<meta name="description"`)
			hw.attr("content", opts.MetaDescription)
			hw.raw(`>`)
		}
		hw.raw(`<link rel="stylesheet"`)
		hw.attr("href", StylesheetPath)
		hw.raw(`><script defer`)
		hw.attr("src", script)
		hw.raw(`></script></head><body>`)

		hw.raw(`<header class="site-header"><a class="site-header__brand"`)
		hw.attr("href", home)
		hw.raw(`>`)
		hw.text(opts.AppName)
		hw.raw(`</a>`)
		if len(opts.Languages) > 1 {
			hw.raw(`<nav class="site-header__languages">`)
			for _, link := range opts.Languages {
				hw.raw(`<a`)
				hw.attr("href", link.URL)
				if link.Active {
					hw.raw(` aria-current="true" class="active"`)
				}
				hw.raw(`>`)
				hw.text(link.Label)
				hw.raw(`</a>`)
			}
			hw.raw(`</nav>`)
		}
		hw.raw(`</header><main class="site-main">`)
		if title := strings.TrimSpace(opts.Title); title != "" {
			hw.raw(`<h1>`)
			hw.text(title)
			hw.raw(`</h1>`)
		}
		hw.component(ctx, body)
		hw.raw(`</main></body></html>`)
	})
}

// ErrorPage is the body of not-found and server-error pages.
func ErrorPage(heading, detail, backLabel, backURL string) templ.Component {
	return component(func(_ context.Context, hw *htmlWriter) {
		hw.raw(`<div class="panel panel--error"><p class="panel__title">`)
		hw.text(heading)
		hw.raw(`</p><p class="panel__detail">`)
		hw.text(detail)
		hw.raw(`</p>`)
		if backURL != "" {
			hw.raw(`<a class="panel__action"`)
			hw.attr("href", backURL)
			hw.raw(`>`)
			hw.text(backLabel)
			hw.raw(`</a>`)
		}
		hw.raw(`</div>`)
	})
}
