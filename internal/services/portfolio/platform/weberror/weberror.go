// Package weberror renders localized error pages for portfolio modules.
package weberror

import (
	"log"
	"net/http"
	"strings"

	apperrors "github.com/louisbranch/portfolio/internal/services/portfolio/platform/errors"
	"github.com/louisbranch/portfolio/internal/services/portfolio/platform/pagerender"
	"github.com/louisbranch/portfolio/internal/services/portfolio/render"
	"github.com/louisbranch/portfolio/internal/services/portfolio/routepath"
	"github.com/louisbranch/portfolio/internal/services/shared/i18nhttp"
)

// ShouldRenderAppError reports whether status should use the error page.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc render.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes a localized error page. HTMX requests get the same
// full page so the client can swap or redirect on its own terms.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, htmxScriptURL string) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	loc, lang := i18nhttp.ResolvePrinter(w, r)
	keys := errorKeys(statusCode)
	body := render.ErrorPage(
		render.T(loc, keys.title),
		render.T(loc, keys.message),
		render.T(loc, "core.error.action_back"),
		routepath.Projects,
	)
	err := pagerender.WritePage(w, r, pagerender.Page{
		Loc:           loc,
		Lang:          lang,
		Title:         render.T(loc, keys.pageTitle),
		StatusCode:    statusCode,
		HTMXScriptURL: htmxScriptURL,
		Body:          body,
	})
	if err != nil {
		log.Printf("render error page status=%d err=%v", statusCode, err)
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteModuleError writes an error page for page-level failures and a
// plain localized message otherwise.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, htmxScriptURL string) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, htmxScriptURL)
		return
	}
	loc, _ := i18nhttp.ResolvePrinter(w, r)
	http.Error(w, PublicMessage(loc, err), statusCode)
}

type errorCopy struct {
	pageTitle string
	title     string
	message   string
}

func errorKeys(statusCode int) errorCopy {
	if statusCode == http.StatusNotFound {
		return errorCopy{
			pageTitle: "core.error.page_title_not_found",
			title:     "core.error.title_not_found",
			message:   "core.error.message_not_found",
		}
	}
	return errorCopy{
		pageTitle: "core.error.page_title_server_error",
		title:     "core.error.title_server_error",
		message:   "core.error.message_server_error",
	}
}
