package render

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/louisbranch/portfolio/internal/platform/i18n/catalog"
	"github.com/louisbranch/portfolio/internal/services/portfolio/project"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func englishPrinter(t *testing.T) *message.Printer {
	t.Helper()
	if catalog.Default() == nil {
		t.Fatal("catalog not loaded")
	}
	return message.NewPrinter(language.MustParse("en-US"))
}

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	if err := c.Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return b.String()
}

func renderDoc(t *testing.T, c templ.Component) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(renderString(t, c)))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func TestEscape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "plain", want: "plain"},
		{in: "<script>", want: "&lt;script&gt;"},
		{in: `a & "b" 'c'`, want: "a &amp; &quot;b&quot; &#039;c&#039;"},
		{in: "&amp;", want: "&amp;amp;"},
		{in: "", want: ""},
	}
	for _, tc := range tests {
		if got := Escape(tc.in); got != tc.want {
			t.Fatalf("Escape(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestProjectCardEscapesDataSuppliedText(t *testing.T) {
	t.Parallel()

	p := project.Project{
		Title:      `<img src=x onerror="alert('x')">`,
		URL:        "/p?a=1&b=2",
		Tagline:    "Fast & <safe>",
		Roles:      []string{"<b>Design</b>"},
		Highlights: []string{`"quoted"`},
	}
	got := renderString(t, ProjectCard(englishPrinter(t), p))

	for _, raw := range []string{"<img", "<b>", "<safe>", `"quoted"`} {
		if strings.Contains(got, raw) {
			t.Fatalf("card contains raw %q: %s", raw, got)
		}
	}
	for _, escaped := range []string{"&lt;img src=x onerror=&quot;alert(&#039;x&#039;)&quot;&gt;", "Fast &amp; &lt;safe&gt;", "&lt;b&gt;Design&lt;/b&gt;", `href="/p?a=1&amp;b=2"`} {
		if !strings.Contains(got, escaped) {
			t.Fatalf("card missing %q: %s", escaped, got)
		}
	}
}

func TestProjectCardTruncatesBadgesAndHighlights(t *testing.T) {
	t.Parallel()

	p := project.Project{
		Title:      "Atlas",
		URL:        "/atlas",
		Roles:      []string{"r1", "r2", "r3", "r4"},
		Skills:     []string{"s1", "s2", "s3", "s4", "s5", "s6", "s7"},
		Highlights: []string{"h1", "h2", "h3", "h4"},
	}
	doc := renderDoc(t, ProjectCard(englishPrinter(t), p))

	if got := doc.Find(`[data-facet="role"] .badge`).Length(); got != 3 {
		t.Fatalf("role badges = %d, want 3", got)
	}
	if got := doc.Find(`[data-facet="skill"] .badge`).Length(); got != 5 {
		t.Fatalf("skill badges = %d, want 5", got)
	}
	if got := doc.Find(".card__highlights li").Length(); got != 3 {
		t.Fatalf("highlights = %d, want 3", got)
	}
	if got := doc.Find(`[data-facet="role"] .badge`).Last().Text(); got != "r3" {
		t.Fatalf("last role badge = %q, want %q", got, "r3")
	}
}

func TestProjectCardDefaultsAndLinks(t *testing.T) {
	t.Parallel()

	loc := englishPrinter(t)
	doc := renderDoc(t, ProjectCard(loc, project.Project{Title: "Atlas", URL: "/atlas"}))

	if got := doc.Find(".card__category").Text(); got != "Project" {
		t.Fatalf("category = %q, want %q", got, "Project")
	}
	if got := doc.Find(".card__status").Text(); got != "Shipped" {
		t.Fatalf("status = %q, want %q", got, "Shipped")
	}
	if href, _ := doc.Find(".card__title a").Attr("href"); href != "/atlas" {
		t.Fatalf("title href = %q, want %q", href, "/atlas")
	}
	if doc.Find(".card__github").Length() != 0 {
		t.Fatal("GitHub link rendered without a github field")
	}

	doc = renderDoc(t, ProjectCard(loc, project.Project{
		Title:    "Beacon",
		URL:      "/beacon",
		Category: "Platform",
		Status:   "In progress",
		GitHub:   "https://github.com/example/beacon",
	}))
	if got := doc.Find(".card__category").Text(); got != "Platform" {
		t.Fatalf("category = %q, want %q", got, "Platform")
	}
	if got := doc.Find(".card__status").Text(); got != "In progress" {
		t.Fatalf("status = %q, want %q", got, "In progress")
	}
	github := doc.Find(".card__github")
	if href, _ := github.Attr("href"); href != "https://github.com/example/beacon" {
		t.Fatalf("github href = %q", href)
	}
	if target, _ := github.Attr("target"); target != "_blank" {
		t.Fatalf("github target = %q, want _blank", target)
	}
}

func TestProjectCardNeutralizesScriptURLs(t *testing.T) {
	t.Parallel()

	doc := renderDoc(t, ProjectCard(englishPrinter(t), project.Project{Title: "x", URL: "javascript:alert(1)"}))
	href, _ := doc.Find(".card__title a").Attr("href")
	if strings.HasPrefix(href, "javascript:") {
		t.Fatalf("href = %q, want sanitized", href)
	}
}

func TestPillReflectsMembership(t *testing.T) {
	t.Parallel()

	doc := renderDoc(t, PillBar(RolePillsID, FieldToggleRole, []PillView{
		{Label: "API"},
		{Label: `R&D "core"`, Active: true},
	}))

	pills := doc.Find("#rolePills button[data-pill]")
	if pills.Length() != 2 {
		t.Fatalf("pills = %d, want 2", pills.Length())
	}
	first := pills.Eq(0)
	if first.HasClass("pill--active") {
		t.Fatal("inactive pill rendered active")
	}
	second := pills.Eq(1)
	if !second.HasClass("pill--active") {
		t.Fatal("active pill rendered inactive")
	}
	if label, _ := second.Attr("data-pill"); label != `R&D "core"` {
		t.Fatalf("data-pill = %q", label)
	}
	if name, _ := second.Attr("name"); name != FieldToggleRole {
		t.Fatalf("name = %q, want %q", name, FieldToggleRole)
	}
	if value, _ := second.Attr("value"); value != `R&D "core"` {
		t.Fatalf("value = %q", value)
	}
}

func TestFormatCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		visible int
		total   int
		want    string
	}{
		{visible: 2, total: 5, want: "2 / 5"},
		{visible: 0, total: 0, want: "0 / 0"},
		{visible: 1200, total: 15000, want: "1,200 / 15,000"},
	}
	for _, tc := range tests {
		if got := FormatCount(tc.visible, tc.total); got != tc.want {
			t.Fatalf("FormatCount(%d, %d) = %q, want %q", tc.visible, tc.total, got, tc.want)
		}
	}
}

func TestProjectListEmptyState(t *testing.T) {
	t.Parallel()

	doc := renderDoc(t, ProjectList(englishPrinter(t), nil))
	if got := doc.Find("#projectList .panel--empty .panel__title").Text(); got != "No matches." {
		t.Fatalf("empty title = %q, want %q", got, "No matches.")
	}
	if doc.Find("#projectList article").Length() != 0 {
		t.Fatal("empty list rendered cards")
	}
}

func TestResultsRendersPillsCountAndCards(t *testing.T) {
	t.Parallel()

	view := ResultsView{
		Projects: []project.Project{{Title: "Atlas", URL: "/a"}, {Title: "Delta", URL: "/d"}},
		Total:    5,
		Roles:    []PillView{{Label: "Backend"}, {Label: "Design", Active: true}},
		Skills:   []PillView{{Label: "Go"}},
	}
	doc := renderDoc(t, Results(englishPrinter(t), view))

	if got := doc.Find("#resultCount").Text(); got != "2 / 5" {
		t.Fatalf("count = %q, want %q", got, "2 / 5")
	}
	if got := doc.Find("#rolePills button").Length(); got != 2 {
		t.Fatalf("role pills = %d, want 2", got)
	}
	if got := doc.Find("#skillPills button").Length(); got != 1 {
		t.Fatalf("skill pills = %d, want 1", got)
	}
	var got []string
	doc.Find("#projectList .card__title a").Each(func(_ int, s *goquery.Selection) {
		got = append(got, s.Text())
	})
	if strings.Join(got, ",") != "Atlas,Delta" {
		t.Fatalf("cards = %v, want [Atlas Delta]", got)
	}
}

func TestResultsFailedShowsErrorPanelOnly(t *testing.T) {
	t.Parallel()

	view := ResultsView{
		Failed: true,
		Roles:  []PillView{{Label: "ignored"}},
	}
	doc := renderDoc(t, Results(englishPrinter(t), view))

	if got := doc.Find("#projectList .panel--error .panel__title").Text(); got != "Projects failed to load." {
		t.Fatalf("error title = %q", got)
	}
	if got := doc.Find("#rolePills button, #skillPills button").Length(); got != 0 {
		t.Fatalf("pills = %d, want 0", got)
	}
	if doc.Find("#projectList article").Length() != 0 {
		t.Fatal("failed view rendered cards")
	}
	if got := strings.TrimSpace(doc.Find("#resultCount").Text()); got != "" {
		t.Fatalf("count = %q, want empty", got)
	}
}

func TestBrowserWiresForm(t *testing.T) {
	t.Parallel()

	doc := renderDoc(t, Browser(englishPrinter(t), BrowserView{
		Action: "/projects/abc/events",
		Query:  `a"b`,
	}))

	form := doc.Find("form.browser")
	if action, _ := form.Attr("action"); action != "/projects/abc/events" {
		t.Fatalf("action = %q", action)
	}
	if target, _ := form.Attr("hx-target"); target != "#projectResults" {
		t.Fatalf("hx-target = %q", target)
	}
	if value, _ := doc.Find("#searchInput").Attr("value"); value != `a"b` {
		t.Fatalf("search value = %q", value)
	}
	if name, _ := doc.Find("#clearFilters").Attr("name"); name != FieldClear {
		t.Fatalf("clear name = %q", name)
	}
	first := form.Find(`button[type="submit"]`).First()
	if !first.HasClass("search__submit") {
		t.Fatalf("first submit button class = %q, want search__submit", first.AttrOr("class", ""))
	}
	if _, ok := first.Attr("name"); ok {
		t.Fatalf("first submit button name = %q, want none", first.AttrOr("name", ""))
	}
	if doc.Find("#projectResults").Length() != 1 {
		t.Fatal("missing results region")
	}
}

func TestBrowserWithoutActionDisablesControls(t *testing.T) {
	t.Parallel()

	doc := renderDoc(t, Browser(englishPrinter(t), BrowserView{Results: ResultsView{Failed: true}}))
	if _, ok := doc.Find("form.browser").Attr("hx-post"); ok {
		t.Fatal("disabled form should not post")
	}
	if _, ok := doc.Find("#searchInput").Attr("disabled"); !ok {
		t.Fatal("search input should be disabled")
	}
	if _, ok := doc.Find("#clearFilters").Attr("disabled"); !ok {
		t.Fatal("clear button should be disabled")
	}
	if _, ok := doc.Find("button.search__submit").Attr("disabled"); !ok {
		t.Fatal("search button should be disabled")
	}
}

func TestResultsSwapResetsSearchOutOfBand(t *testing.T) {
	t.Parallel()

	loc := englishPrinter(t)
	view := BrowserView{Action: "/projects/abc/events"}

	doc := renderDoc(t, ResultsSwap(loc, view, true))
	input := doc.Find("#searchInput")
	if oob, _ := input.Attr("hx-swap-oob"); oob != "true" {
		t.Fatalf("hx-swap-oob = %q, want true", oob)
	}
	if value, _ := input.Attr("value"); value != "" {
		t.Fatalf("value = %q, want empty", value)
	}

	doc = renderDoc(t, ResultsSwap(loc, view, false))
	if doc.Find("#searchInput").Length() != 0 {
		t.Fatal("search input swapped without reset")
	}
}

func TestPageRendersShell(t *testing.T) {
	t.Parallel()

	doc := renderDoc(t, Page(PageOptions{
		Lang:            "pt-BR",
		Title:           "Projetos",
		AppName:         "Portfólio",
		MetaDescription: "desc",
		Languages: []LanguageLink{
			{Label: "English", URL: "/projects/?lang=en-US"},
			{Label: "Português", URL: "/projects/?lang=pt-BR", Active: true},
		},
	}, Badge("body")))

	if lang, _ := doc.Find("html").Attr("lang"); lang != "pt-BR" {
		t.Fatalf("lang = %q", lang)
	}
	if got := doc.Find("title").Text(); got != "Projetos | Portfólio" {
		t.Fatalf("title = %q", got)
	}
	if href, _ := doc.Find(`link[rel="stylesheet"]`).Attr("href"); href != StylesheetPath {
		t.Fatalf("stylesheet = %q", href)
	}
	if src, _ := doc.Find("script").Attr("src"); src != DefaultHTMXScriptURL {
		t.Fatalf("script = %q", src)
	}
	if got := doc.Find(".site-header__languages a").Length(); got != 2 {
		t.Fatalf("language links = %d, want 2", got)
	}
	if got := doc.Find("main .badge").Text(); got != "body" {
		t.Fatalf("body = %q", got)
	}
}

func TestComposePageTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title string
		app   string
		want  string
	}{
		{title: "Projects", app: "Portfolio", want: "Projects | Portfolio"},
		{title: "", app: "Portfolio", want: "Portfolio"},
		{title: "Projects | Portfolio", app: "Portfolio", want: "Projects | Portfolio"},
		{title: "Projects", app: "", want: "Projects"},
	}
	for _, tc := range tests {
		if got := ComposePageTitle(tc.title, tc.app); got != tc.want {
			t.Fatalf("ComposePageTitle(%q, %q) = %q, want %q", tc.title, tc.app, got, tc.want)
		}
	}
}

func TestTWithoutLocalizerReturnsKey(t *testing.T) {
	t.Parallel()

	if got := T(nil, "portfolio.title"); got != "portfolio.title" {
		t.Fatalf("T(nil) = %q", got)
	}
}
