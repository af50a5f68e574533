package public

import (
	"net/http"

	"github.com/louisbranch/portfolio/internal/services/portfolio/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleRoot)
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
	mux.HandleFunc(routepath.Root+"{rest...}", h.handleNotFound)
}
