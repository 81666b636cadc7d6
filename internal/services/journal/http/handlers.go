// Package http provides http transport for journal entries
package http

import (
	stdhttp "net/http"

	"daybook/internal/modkit/httpkit"
	phttp "daybook/internal/platform/net/http"
	"daybook/internal/services/journal/domain"
	svc "daybook/internal/services/journal/service"
)

// Register mounts journal endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSONCreated[domain.EntryInput](r, "/", h.create)
	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{id}", h.get)
	httpkit.PutJSON[domain.EntryInput](r, "/{id}", h.update)
	httpkit.Delete(r, "/{id}", h.remove)
	httpkit.Post(r, "/{id}/analyze", h.analyze)
}

type handlers struct{ svc svc.Service }

// @Summary Create a journal entry
// @Tags Entries
// @Accept json
// @Produce json
// @Param payload body domain.EntryInput true "Entry fields"
// @Success 201 {object} domain.Entry "created"
// @Failure 400 {object} phttp.Envelope "validation failed"
// @Router /entries [post]
func (h *handlers) create(r *stdhttp.Request, in domain.EntryInput) (any, error) {
	return h.svc.Create(r.Context(), in)
}

// @Summary List journal entries oldest first
// @Tags Entries
// @Produce json
// @Success 200 {object} domain.EntryList "ok"
// @Router /entries [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context())
}

// @Summary Fetch a journal entry
// @Tags Entries
// @Produce json
// @Param id path string true "Entry id" format(uuid)
// @Success 200 {object} domain.Entry "ok"
// @Failure 404 {object} phttp.Envelope "not found"
// @Failure 422 {object} phttp.Envelope "malformed id"
// @Router /entries/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	id, err := phttp.ParamUUID(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), id)
}

// @Summary Replace a journal entry's text fields
// @Tags Entries
// @Accept json
// @Produce json
// @Param id path string true "Entry id" format(uuid)
// @Param payload body domain.EntryInput true "Replacement fields"
// @Success 200 {object} domain.Entry "updated"
// @Failure 400 {object} phttp.Envelope "validation failed"
// @Failure 404 {object} phttp.Envelope "not found"
// @Router /entries/{id} [put]
func (h *handlers) update(r *stdhttp.Request, in domain.EntryInput) (any, error) {
	id, err := phttp.ParamUUID(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Update(r.Context(), id, in)
}

// @Summary Delete a journal entry
// @Tags Entries
// @Param id path string true "Entry id" format(uuid)
// @Success 204 "deleted"
// @Failure 404 {object} phttp.Envelope "not found"
// @Router /entries/{id} [delete]
func (h *handlers) remove(r *stdhttp.Request) error {
	id, err := phttp.ParamUUID(r, "id")
	if err != nil {
		return err
	}
	return h.svc.Delete(r.Context(), id)
}

// @Summary Analyze a journal entry's text
// @Tags Entries
// @Produce json
// @Param id path string true "Entry id" format(uuid)
// @Success 200 {object} domain.AnalysisResult "ok"
// @Failure 404 {object} phttp.Envelope "not found"
// @Failure 502 {object} phttp.Envelope "provider returned garbage"
// @Failure 503 {object} phttp.Envelope "provider unavailable"
// @Router /entries/{id}/analyze [post]
func (h *handlers) analyze(r *stdhttp.Request) (any, error) {
	id, err := phttp.ParamUUID(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Analyze(r.Context(), id)
}
