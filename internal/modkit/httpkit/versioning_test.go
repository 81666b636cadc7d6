package httpkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "daybook/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestMountAPIPrefixesRoutes(t *testing.T) {
	m := chi.NewRouter()
	r := phttp.AdaptChi(m)

	MountAPIV1(r, nil, func(api Router) {
		Get(api, "/entries", func(_ *http.Request) (any, error) { return "ok", nil })
	})

	srv := httptest.NewServer(m)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/entries")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	resp2, err := http.Get(srv.URL + "/entries")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusNotFound {
		t.Fatalf("unprefixed path should 404, got %d", resp2.StatusCode)
	}
}

func TestMountAPITrimsLeadingSlash(t *testing.T) {
	m := chi.NewRouter()
	r := phttp.AdaptChi(m)

	MountAPI(r, "/v2", nil, func(api Router) {
		Get(api, "/ping", func(_ *http.Request) (any, error) { return "pong", nil })
	})

	srv := httptest.NewServer(m)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v2/ping")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}
