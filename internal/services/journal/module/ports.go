package module

import (
	"context"

	"github.com/google/uuid"

	journaldom "daybook/internal/services/journal/domain"
	journalsvc "daybook/internal/services/journal/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptJournalPort adapts the journal service to the domain port interface
type adaptJournalPort struct{ svc journalsvc.Service }

// Create implements the domain ServicePort interface
func (a adaptJournalPort) Create(ctx context.Context, in journaldom.EntryInput) (journaldom.Entry, error) {
	return a.svc.Create(ctx, in)
}

// Get implements the domain ServicePort interface
func (a adaptJournalPort) Get(ctx context.Context, id uuid.UUID) (journaldom.Entry, error) {
	return a.svc.Get(ctx, id)
}

// List implements the domain ServicePort interface
func (a adaptJournalPort) List(ctx context.Context) (journaldom.EntryList, error) {
	return a.svc.List(ctx)
}

// Update implements the domain ServicePort interface
func (a adaptJournalPort) Update(ctx context.Context, id uuid.UUID, in journaldom.EntryInput) (journaldom.Entry, error) {
	return a.svc.Update(ctx, id, in)
}

// Delete implements the domain ServicePort interface
func (a adaptJournalPort) Delete(ctx context.Context, id uuid.UUID) error {
	return a.svc.Delete(ctx, id)
}

// Analyze implements the domain ServicePort interface
func (a adaptJournalPort) Analyze(ctx context.Context, id uuid.UUID) (journaldom.AnalysisResult, error) {
	return a.svc.Analyze(ctx, id)
}

// Purge implements the domain ServicePort interface
func (a adaptJournalPort) Purge(ctx context.Context) (int64, error) {
	return a.svc.Purge(ctx)
}
