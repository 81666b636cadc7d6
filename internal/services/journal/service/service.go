// Package service contains journal workflows
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"daybook/internal/modkit/repokit"
	perr "daybook/internal/platform/errors"
	"daybook/internal/services/journal/domain"
	"daybook/internal/services/journal/repo"
)

// Service defines the service contract for journal entries
type Service interface{ domain.ServicePort }

// maxInsertAttempts bounds id regeneration on duplicate key collisions
const maxInsertAttempts = 3

// Svc implements the Service interface
type Svc struct {
	Repo     repo.Repo
	binder   repokit.Binder[repo.Repo]
	db       repokit.TxRunner
	analyzer domain.AnalyzerPort

	analysisTimeout time.Duration

	// seams for tests
	now   func() time.Time
	newID func() uuid.UUID
}

// Option tweaks Svc construction
type Option func(*Svc)

// WithClock overrides the timestamp source
func WithClock(now func() time.Time) Option {
	return func(s *Svc) { s.now = now }
}

// WithIDSource overrides uuid generation
func WithIDSource(newID func() uuid.UUID) Option {
	return func(s *Svc) { s.newID = newID }
}

// WithAnalysisTimeout bounds analyzer calls
func WithAnalysisTimeout(d time.Duration) Option {
	return func(s *Svc) {
		if d > 0 {
			s.analysisTimeout = d
		}
	}
}

// New creates a new journal service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], analyzer domain.AnalyzerPort, opts ...Option) *Svc {
	if db == nil {
		panic("journal.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("journal.Service requires a non nil Repo binder")
	}
	if analyzer == nil {
		panic("journal.Service requires a non nil Analyzer")
	}
	s := &Svc{
		Repo:            binder.Bind(db),
		binder:          binder,
		db:              db,
		analyzer:        analyzer,
		analysisTimeout: 10 * time.Second,
		now:             time.Now,
		newID:           uuid.New,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// stamp returns the current time in UTC at microsecond precision,
// matching what timestamptz round-trips through postgres
func (s *Svc) stamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

// Create validates in, assigns server side identity and timestamps, and persists the entry
func (s *Svc) Create(ctx context.Context, in domain.EntryInput) (domain.Entry, error) {
	if err := in.Validate(); err != nil {
		return domain.Entry{}, err
	}

	at := s.stamp()
	e := domain.Entry{
		Work:      in.Work,
		Struggle:  in.Struggle,
		Intention: in.Intention,
		CreatedAt: at,
		UpdatedAt: at,
	}

	var err error
	for attempt := 0; attempt < maxInsertAttempts; attempt++ {
		e.ID = s.newID()
		err = s.Repo.Insert(ctx, e)
		if err == nil {
			return e, nil
		}
		if !perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
			return domain.Entry{}, err
		}
	}
	return domain.Entry{}, err
}

// Get fetches a single entry by id
func (s *Svc) Get(ctx context.Context, id uuid.UUID) (domain.Entry, error) {
	return s.Repo.Get(ctx, id)
}

// List returns all entries oldest first
func (s *Svc) List(ctx context.Context) (domain.EntryList, error) {
	rows, err := s.Repo.List(ctx)
	if err != nil {
		return domain.EntryList{}, err
	}
	return domain.EntryList{Entries: rows, Count: len(rows)}, nil
}

// Update validates in and replaces the mutable fields of the entry, last writer wins
func (s *Svc) Update(ctx context.Context, id uuid.UUID, in domain.EntryInput) (domain.Entry, error) {
	if err := in.Validate(); err != nil {
		return domain.Entry{}, err
	}

	e := domain.Entry{
		ID:        id,
		Work:      in.Work,
		Struggle:  in.Struggle,
		Intention: in.Intention,
		UpdatedAt: s.stamp(),
	}
	return s.Repo.Update(ctx, e)
}

// Delete removes the entry permanently
func (s *Svc) Delete(ctx context.Context, id uuid.UUID) error {
	return s.Repo.Delete(ctx, id)
}

// Analyze runs the configured analyzer over the entry's text under a bounded timeout
// the result is returned to the caller and never persisted
func (s *Svc) Analyze(ctx context.Context, id uuid.UUID) (domain.AnalysisResult, error) {
	e, err := s.Repo.Get(ctx, id)
	if err != nil {
		return domain.AnalysisResult{}, err
	}

	actx, cancel := context.WithTimeout(ctx, s.analysisTimeout)
	defer cancel()

	a, err := s.analyzer.Analyze(actx, e.Work, e.Struggle, e.Intention)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return domain.AnalysisResult{}, perr.Unavailablef("analysis timed out after %s", s.analysisTimeout)
		}
		return domain.AnalysisResult{}, err
	}

	if !a.Sentiment.Valid() {
		return domain.AnalysisResult{}, perr.BadUpstreamf("analyzer returned unknown sentiment %q", a.Sentiment)
	}
	if len(a.Topics) < domain.MinTopics {
		return domain.AnalysisResult{}, perr.BadUpstreamf("analyzer returned %d topics, need at least %d", len(a.Topics), domain.MinTopics)
	}
	if len(a.Topics) > domain.MaxTopics {
		a.Topics = a.Topics[:domain.MaxTopics]
	}

	return domain.AnalysisResult{
		EntryID:   e.ID,
		Sentiment: a.Sentiment,
		Summary:   a.Summary,
		Topics:    a.Topics,
		CreatedAt: s.stamp(),
	}, nil
}

// Purge deletes every entry and reports how many were removed
func (s *Svc) Purge(ctx context.Context) (int64, error) {
	return s.Repo.Purge(ctx)
}
