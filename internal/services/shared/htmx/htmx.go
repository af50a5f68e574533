// Package htmx holds the request and response conventions the portfolio
// pages share with the HTMX client.
package htmx

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

const (
	// RequestHeader marks requests issued by HTMX.
	RequestHeader = "HX-Request"
	// TargetHeader carries the id of the element HTMX will swap.
	TargetHeader = "HX-Target"
	// RedirectHeader asks HTMX to perform a full client-side navigation.
	RedirectHeader = "HX-Redirect"
)

// IsRequest reports whether the request was initiated by HTMX.
func IsRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(RequestHeader), "true")
}

// Target returns the element id HTMX is about to swap, without a leading '#'.
func Target(r *http.Request) string {
	if r == nil {
		return ""
	}
	return strings.TrimPrefix(strings.TrimSpace(r.Header.Get(TargetHeader)), "#")
}

// WriteFragment renders component fully before writing, so a render failure
// never leaves a half-written swap target.
func WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, component templ.Component) error {
	if w == nil || component == nil {
		return nil
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	var buf bytes.Buffer
	if err := component.Render(requestContext(r), &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Add("Vary", RequestHeader)
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

// WriteRedirect sends HTMX clients an HX-Redirect and everyone else a 303.
func WriteRedirect(w http.ResponseWriter, r *http.Request, location string) {
	if w == nil {
		return
	}
	if IsRequest(r) {
		w.Header().Set(RedirectHeader, location)
		w.WriteHeader(http.StatusOK)
		return
	}
	if r == nil {
		w.Header().Set("Location", location)
		w.WriteHeader(http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, location, http.StatusSeeOther)
}
