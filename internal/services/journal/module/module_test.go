package module

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	modkit "daybook/internal/modkit"
	"daybook/internal/modkit/repokit"
	"daybook/internal/platform/config"
	phttp "daybook/internal/platform/net/http"
	"daybook/internal/services/journal/domain"
)

type nopTx struct{}

func (nopTx) Exec(context.Context, string, ...any) (repokit.CommandTag, error) { return nil, nil }
func (nopTx) Query(context.Context, string, ...any) (repokit.Rows, error)      { return nil, nil }
func (nopTx) QueryRow(context.Context, string, ...any) repokit.Row             { return nil }
func (nopTx) Tx(ctx context.Context, fn func(q repokit.Queryer) error) error   { return fn(nopTx{}) }

func testDeps() modkit.Deps {
	return modkit.Deps{Cfg: config.New(), PG: nopTx{}}
}

func TestModuleDefaults(t *testing.T) {
	m := New(testDeps())

	if m.Name() != "journal" {
		t.Fatalf("name = %q", m.Name())
	}
	if _, ok := m.Ports().(domain.ServicePort); !ok {
		t.Fatalf("ports do not satisfy the service contract: %T", m.Ports())
	}
}

func TestModuleMountsEntryRoutes(t *testing.T) {
	m := New(testDeps())

	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))
	srv := httptest.NewServer(mux)
	defer srv.Close()

	// validation fires before any storage access, so a bad body proves
	// the full route and service wiring without a database
	resp, err := http.Post(srv.URL+"/entries", "application/json",
		strings.NewReader(`{"work":"","struggle":"","intention":""}`))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestAnalysisFromConfigDefaults(t *testing.T) {
	cfg := AnalysisFromConfig(config.New())

	if cfg.Provider != ProviderLexicon {
		t.Fatalf("provider = %q", cfg.Provider)
	}
	if cfg.Timeout != 10*time.Second {
		t.Fatalf("timeout = %s", cfg.Timeout)
	}
	if cfg.OpenAIKey != "" {
		t.Fatalf("key should stay unread for lexicon: %q", cfg.OpenAIKey)
	}
}

func TestAnalysisFromConfigOpenAI(t *testing.T) {
	t.Setenv("ANALYSIS_PROVIDER", "openai")
	t.Setenv("ANALYSIS_OPENAI_API_KEY", "sk-test")
	t.Setenv("ANALYSIS_TIMEOUT", "3s")

	cfg := AnalysisFromConfig(config.New())
	if cfg.Provider != ProviderOpenAI || cfg.OpenAIKey != "sk-test" || cfg.Timeout != 3*time.Second {
		t.Fatalf("cfg = %+v", cfg)
	}
}
