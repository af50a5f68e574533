// Package modules lists the portfolio feature modules.
package modules

import (
	module "github.com/louisbranch/portfolio/internal/services/portfolio/module"
	"github.com/louisbranch/portfolio/internal/services/portfolio/modules/feed"
	"github.com/louisbranch/portfolio/internal/services/portfolio/modules/projects"
	"github.com/louisbranch/portfolio/internal/services/portfolio/modules/public"
)

// DefaultModules returns the modules mounted by the portfolio service.
func DefaultModules() []module.Module {
	return []module.Module{
		public.New(),
		projects.New(),
		feed.New(),
	}
}
