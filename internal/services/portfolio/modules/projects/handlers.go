package projects

import (
	"net/http"
	"strings"

	"github.com/louisbranch/portfolio/internal/platform/id"
	"github.com/louisbranch/portfolio/internal/services/portfolio/controller"
	module "github.com/louisbranch/portfolio/internal/services/portfolio/module"
	apperrors "github.com/louisbranch/portfolio/internal/services/portfolio/platform/errors"
	"github.com/louisbranch/portfolio/internal/services/portfolio/platform/httpx"
	"github.com/louisbranch/portfolio/internal/services/portfolio/platform/pagerender"
	"github.com/louisbranch/portfolio/internal/services/portfolio/platform/weberror"
	"github.com/louisbranch/portfolio/internal/services/portfolio/render"
	"github.com/louisbranch/portfolio/internal/services/portfolio/routepath"
	"github.com/louisbranch/portfolio/internal/services/shared/htmx"
	"github.com/louisbranch/portfolio/internal/services/shared/i18nhttp"
	"golang.org/x/text/language"
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

// handleNewView starts a page view: one feed load, then the first
// recompute. Failed views render the error panel and are not kept.
func (h handlers) handleNewView(w http.ResponseWriter, r *http.Request) {
	ctx := httpx.RequestContext(r)
	loc, tag := i18nhttp.ResolvePrinter(w, r)

	c := controller.New(h.deps.Source, h.deps.FeedPath, controller.WithLanguage(tag))
	if err := c.Init(ctx); err != nil {
		err = apperrors.Wrap(apperrors.KindUnavailable, "portfolio.load_error.title", err)
		h.deps.Log().Printf("projects load failed path=%s status=%s request_id=%s err=%v", h.deps.FeedPath, c.Status(), httpx.RequestIDFrom(r), err)
		h.writeBrowserPage(w, r, loc, tag, apperrors.HTTPStatus(err), browserView("", c.View(ctx)), false)
		return
	}

	viewID, err := id.NewID()
	if err != nil {
		h.deps.Log().Printf("projects view id failed request_id=%s err=%v", httpx.RequestIDFrom(r), err)
		weberror.WriteAppError(w, r, http.StatusInternalServerError, h.deps.HTMXScriptURL)
		return
	}
	h.deps.Views.Put(viewID, c)
	h.writeBrowserPage(w, r, loc, tag, http.StatusOK, browserView(routepath.ProjectViewEvents(viewID), c.View(ctx)), false)
}

// handleView re-renders a live view, the target of no-JS form posts. HTMX
// requests get only the results region.
func (h handlers) handleView(w http.ResponseWriter, r *http.Request) {
	viewID := strings.TrimSpace(r.PathValue("view"))
	c, ok := h.lookup(viewID)
	if !ok {
		htmx.WriteRedirect(w, r, routepath.Projects)
		return
	}
	loc, tag := i18nhttp.ResolvePrinter(w, r)
	h.writeBrowserPage(w, r, loc, tag, http.StatusOK, browserView(routepath.ProjectViewEvents(viewID), c.View(httpx.RequestContext(r))), true)
}

// handleEvents applies one batch of browser events to a live view.
func (h handlers) handleEvents(w http.ResponseWriter, r *http.Request) {
	viewID := strings.TrimSpace(r.PathValue("view"))
	c, ok := h.lookup(viewID)
	if !ok {
		htmx.WriteRedirect(w, r, routepath.Projects)
		return
	}
	if target := htmx.Target(r); target != "" && target != render.ResultsID {
		weberror.WriteModuleError(w, r, apperrors.EK(apperrors.KindInvalidInput, "core.error.invalid_request", "unexpected swap target "+target), h.deps.HTMXScriptURL)
		return
	}
	if err := r.ParseForm(); err != nil {
		weberror.WriteModuleError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "core.error.invalid_request", err), h.deps.HTMXScriptURL)
		return
	}
	events, cleared := parseEvents(r.PostForm)
	view := c.Dispatch(httpx.RequestContext(r), events...)

	if !htmx.IsRequest(r) {
		http.Redirect(w, r, routepath.ProjectView(viewID), http.StatusSeeOther)
		return
	}
	loc, _ := i18nhttp.ResolvePrinter(w, r)
	swap := render.ResultsSwap(loc, browserView(routepath.ProjectViewEvents(viewID), view), cleared)
	if err := htmx.WriteFragment(w, r, http.StatusOK, swap); err != nil {
		h.deps.Log().Printf("projects swap render failed view=%s request_id=%s err=%v", viewID, httpx.RequestIDFrom(r), err)
		weberror.WriteAppError(w, r, http.StatusInternalServerError, h.deps.HTMXScriptURL)
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps.HTMXScriptURL)
}

// lookup returns a stored view. Views that are not Loaded are dropped from
// the store and reported missing.
func (h handlers) lookup(viewID string) (*controller.Controller, bool) {
	if !id.Valid(viewID) {
		return nil, false
	}
	c, ok := h.deps.Views.Get(viewID)
	if !ok || c == nil {
		return nil, false
	}
	if c.Status() != controller.StatusLoaded {
		h.deps.Views.Delete(viewID)
		return nil, false
	}
	return c, true
}

func (h handlers) writeBrowserPage(w http.ResponseWriter, r *http.Request, loc render.Localizer, tag language.Tag, status int, view render.BrowserView, fragment bool) {
	page := pagerender.Page{
		Loc:             loc,
		Lang:            tag,
		Title:           render.T(loc, "portfolio.title"),
		MetaDescription: render.T(loc, "portfolio.meta_description"),
		StatusCode:      status,
		HTMXScriptURL:   h.deps.HTMXScriptURL,
		Body:            render.Browser(loc, view),
	}
	if fragment {
		page.Fragment = render.Results(loc, view.Results)
	}
	if err := pagerender.WritePage(w, r, page); err != nil {
		h.deps.Log().Printf("projects page render failed request_id=%s err=%v", httpx.RequestIDFrom(r), err)
		weberror.WriteAppError(w, r, http.StatusInternalServerError, h.deps.HTMXScriptURL)
	}
}
