// @title         Daybook API
// @version       0.1.0
// @description   Personal journal entries with pluggable text analysis

package main

import (
	"context"

	"daybook/internal/platform/config"
	"daybook/internal/platform/logger"
	phttp "daybook/internal/platform/net/http"
	"daybook/internal/platform/store"

	"daybook/internal/services/api"
	"daybook/migrations"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_") // pgCfg lives under SERVICE_PGSQL_*

	// bring up logging early
	l := logger.Get()

	dbURL := pgCfg.MustString("DBURL")

	// schema first, the API is useless without it
	if err := store.Migrate(context.Background(), dbURL, migrations.FS); err != nil {
		l.Panic().Err(err).Msg("migrations failed")
	}

	// open the platform store
	st, err := store.Open(
		context.Background(),
		store.Config{
			AppName: "daybook",
			PG: store.PGConfig{
				Enabled:     true,
				URL:         dbURL,
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", true),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// http server (reads CORE_API_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API; module config (ANALYSIS_*) reads from the root view
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
