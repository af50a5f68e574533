// Package static embeds the portfolio stylesheet.
package static

import "embed"

// FS exposes static assets for HTTP serving.
//
//go:embed *.css
var FS embed.FS
