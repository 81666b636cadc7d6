package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	perr "daybook/internal/platform/errors"
	phttp "daybook/internal/platform/net/http"
)

// reqWithParam plants a chi route param on the request context
func reqWithParam(name, value string) *http.Request {
	req := httptest.NewRequest("GET", "/entries/x", nil)
	rctx := chi.NewRouteContext()
	if value != "" {
		rctx.URLParams.Add(name, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestParam(t *testing.T) {
	req := reqWithParam("id", "abc")
	if got := phttp.Param(req, "id"); got != "abc" {
		t.Fatalf("param = %q", got)
	}
}

func TestParamUUID(t *testing.T) {
	want := uuid.MustParse("5c0f7a34-9b1d-4e2f-8a6b-3d7c9e0f1a2b")
	req := reqWithParam("id", want.String())

	got, err := phttp.ParamUUID(req, "id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("got %s want %s", got, want)
	}
}

func TestParamUUIDMissing(t *testing.T) {
	req := reqWithParam("id", "")
	_, err := phttp.ParamUUID(req, "id")
	if perr.CodeOf(err) != perr.ErrorCodeInvalidArgument {
		t.Fatalf("expected invalid argument, got %v (%v)", perr.CodeOf(err), err)
	}
}

func TestParamUUIDMalformed(t *testing.T) {
	req := reqWithParam("id", "not-a-uuid")
	_, err := phttp.ParamUUID(req, "id")
	if perr.CodeOf(err) != perr.ErrorCodeInvalidArgument {
		t.Fatalf("expected invalid argument, got %v (%v)", perr.CodeOf(err), err)
	}
	if perr.HTTPStatus(err) != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 mapping, got %d", perr.HTTPStatus(err))
	}
}
