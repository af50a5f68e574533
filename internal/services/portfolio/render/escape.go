// Package render turns project records and browser state into HTML
// fragments. Every data-supplied string is written through Escape.
package render

import "strings"

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Escape replaces the five HTML-significant characters with entities.
// It is safe in text nodes and in double- or single-quoted attributes.
func Escape(value string) string {
	return escaper.Replace(value)
}
