package projects

import (
	"net/http"

	"github.com/louisbranch/portfolio/internal/services/portfolio/platform/httpx"
	"github.com/louisbranch/portfolio/internal/services/portfolio/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Projects+"{$}", h.handleNewView)
	mux.HandleFunc(http.MethodGet+" "+routepath.Projects+"{view}", h.handleView)

	mux.HandleFunc(http.MethodPost+" "+routepath.Projects+"{view}/events", h.handleEvents)
	mux.HandleFunc(http.MethodGet+" "+routepath.Projects+"{view}/events", httpx.MethodNotAllowed(http.MethodPost))

	mux.HandleFunc(routepath.Projects+"{rest...}", h.handleNotFound)
}
