// Package public serves the root redirect, the health probe, and the
// catch-all not-found page.
package public

import (
	"net/http"

	module "github.com/louisbranch/portfolio/internal/services/portfolio/module"
	"github.com/louisbranch/portfolio/internal/services/portfolio/routepath"
)

// Module provides public root routes.
type Module struct{}

// New returns the public module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string {
	return "public"
}

// Mount wires the root routes.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, handlers{deps: deps})
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
