package domain

import (
	"context"

	"github.com/google/uuid"
)

// ServicePort defines the entry lifecycle contract
type ServicePort interface {
	Create(ctx context.Context, in EntryInput) (Entry, error)
	Get(ctx context.Context, id uuid.UUID) (Entry, error)
	List(ctx context.Context) (EntryList, error)
	Update(ctx context.Context, id uuid.UUID, in EntryInput) (Entry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Analyze(ctx context.Context, id uuid.UUID) (AnalysisResult, error)

	// Purge removes every entry. Kept off the HTTP surface; used by
	// maintenance tooling and tests
	Purge(ctx context.Context) (int64, error)
}

// AnalyzerPort derives sentiment, summary, and topics from entry text
// Implementations must keep Sentiment within the closed label set and
// Topics within the 2..4 bound
type AnalyzerPort interface {
	Analyze(ctx context.Context, work, struggle, intention string) (Analysis, error)
}
