package http

import (
	"net/http"

	perr "daybook/internal/platform/errors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Param returns the named URL parameter from the chi route context
func Param(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}

// ParamUUID parses the named URL parameter as a uuid
// A missing or malformed value maps to an invalid argument error
func ParamUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return uuid.Nil, perr.InvalidArgf("%s is required", name)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, perr.InvalidArgf("%s must be a valid uuid", name)
	}
	return id, nil
}
