// Package module wires the journal vertical into the API using modkit
package module

import (
	"net/http"

	"daybook/internal/adapters/analysis/lexicon"
	"daybook/internal/adapters/analysis/openai"
	modkit "daybook/internal/modkit"
	"daybook/internal/modkit/httpkit"
	str "daybook/internal/platform/strings"
	"daybook/internal/services/journal/domain"
	journalhttp "daybook/internal/services/journal/http"
	journalrepo "daybook/internal/services/journal/repo"
	journalsvc "daybook/internal/services/journal/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc journalsvc.Service
}

// New constructs the journal module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("journal"), modkit.WithPrefix("/entries")}, opts...)...)

	acfg := AnalysisFromConfig(deps.Cfg)
	svc := journalsvc.New(
		deps.PG,
		journalrepo.NewPG(),
		analyzerFor(acfg),
		journalsvc.WithAnalysisTimeout(acfg.Timeout),
	)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptJournalPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		journalhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// analyzerFor builds the configured analyzer implementation
func analyzerFor(cfg AnalysisConfig) domain.AnalyzerPort {
	switch cfg.Provider {
	case ProviderOpenAI:
		return openai.New(openai.Config{
			APIKey:  cfg.OpenAIKey,
			Model:   cfg.OpenAIModel,
			BaseURL: cfg.OpenAIBaseURL,
			Timeout: cfg.Timeout,
		})
	default:
		return lexicon.New()
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
