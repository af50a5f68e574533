package public

import (
	"io"
	"net/http"

	module "github.com/louisbranch/portfolio/internal/services/portfolio/module"
	"github.com/louisbranch/portfolio/internal/services/portfolio/platform/weberror"
	"github.com/louisbranch/portfolio/internal/services/portfolio/routepath"
)

type handlers struct {
	deps module.Dependencies
}

func (handlers) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, routepath.Projects, http.StatusFound)
}

func (handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok")
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps.HTMXScriptURL)
}
