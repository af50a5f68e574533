// Package feed serves the project feed directory to browsers and to the
// service's own loader.
package feed

import (
	"errors"
	"net/http"
	"os"
	"strings"

	module "github.com/louisbranch/portfolio/internal/services/portfolio/module"
	"github.com/louisbranch/portfolio/internal/services/portfolio/platform/httpx"
	"github.com/louisbranch/portfolio/internal/services/portfolio/routepath"
)

// Module serves DataDir under /data/.
type Module struct{}

// New returns the feed module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string {
	return "feed"
}

// Mount serves files read-only, uncached, and without directory listings.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	dir := strings.TrimSpace(deps.DataDir)
	if dir == "" {
		return module.Mount{}, errors.New("data directory is required")
	}
	files := http.StripPrefix(routepath.DataPrefix, http.FileServerFS(noListingFS{os.DirFS(dir)}))
	mux := http.NewServeMux()
	mux.Handle(http.MethodGet+" "+routepath.DataPrefix+"{path...}", httpx.Chain(files, httpx.NoStore()))
	mux.HandleFunc(routepath.DataPrefix+"{path...}", httpx.MethodNotAllowed(http.MethodGet+", "+http.MethodHead))
	return module.Mount{Prefix: routepath.DataPrefix, Handler: mux}, nil
}
