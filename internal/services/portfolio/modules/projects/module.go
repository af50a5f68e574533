// Package projects serves the interactive project browser.
package projects

import (
	"errors"
	"net/http"
	"strings"

	module "github.com/louisbranch/portfolio/internal/services/portfolio/module"
	"github.com/louisbranch/portfolio/internal/services/portfolio/routepath"
)

// Module provides the project browser routes.
type Module struct{}

// New returns the projects module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string {
	return "projects"
}

// Mount wires the browser routes under /projects/.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Source == nil {
		return module.Mount{}, errors.New("project source is required")
	}
	if deps.Views == nil {
		return module.Mount{}, errors.New("view store is required")
	}
	if strings.TrimSpace(deps.FeedPath) == "" {
		deps.FeedPath = routepath.DefaultFeed
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.Projects, Handler: mux}, nil
}
