// Package api provides the HTTP API for the application
package api

import (
	"daybook/internal/platform/config"
	"daybook/internal/platform/logger"
	phttp "daybook/internal/platform/net/http"
	"daybook/internal/platform/store"

	"daybook/internal/modkit"
	"daybook/internal/modkit/httpkit"
	"daybook/internal/modkit/module"
	"daybook/internal/modkit/swaggerkit"

	metamod "daybook/internal/services/api/meta/module"
	journalmod "daybook/internal/services/journal/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	mods := []module.Module{
		metamod.New(deps),
		journalmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
