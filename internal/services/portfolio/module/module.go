// Package module defines the feature contract used by portfolio composition.
package module

import (
	"log"
	"net/http"

	"github.com/louisbranch/portfolio/internal/services/portfolio/controller"
	"github.com/louisbranch/portfolio/internal/services/portfolio/viewstore"
)

// Views holds the live page views keyed by view id.
type Views = viewstore.Store[*controller.Controller]

// Dependencies carries shared collaborators handed to every module.
type Dependencies struct {
	// Source loads the project feed for new page views.
	Source controller.Source
	// FeedPath is the feed location passed to Source.
	FeedPath string
	// Views stores live page views between browser events.
	Views *Views
	// DataDir is the directory served under /data/.
	DataDir string
	// HTMXScriptURL overrides where pages load the HTMX client from.
	HTMXScriptURL string
	// Logger receives module diagnostics; nil uses log.Default.
	Logger *log.Logger
}

// Log returns the configured logger.
func (d Dependencies) Log() *log.Logger {
	if d.Logger == nil {
		return log.Default()
	}
	return d.Logger
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by portfolio composition.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
