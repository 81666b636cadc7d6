// Package repo provides postgres persistence for journal entries.
package repo

import (
	"context"

	"github.com/google/uuid"

	"daybook/internal/modkit/repokit"
	perr "daybook/internal/platform/errors"
	"daybook/internal/services/journal/domain"
)

// Repo is the storage port for journal entries
type Repo interface {
	Insert(ctx context.Context, e domain.Entry) error
	Get(ctx context.Context, id uuid.UUID) (domain.Entry, error)
	List(ctx context.Context) ([]domain.Entry, error)
	Update(ctx context.Context, e domain.Entry) (domain.Entry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Purge(ctx context.Context) (int64, error)
}

// PG binds Repo implementations to a postgres queryer
type PG struct{}

// NewPG returns the postgres binder for the journal repo
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind attaches q and returns the bound Repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

type queries struct {
	q repokit.Queryer
}

const entryCols = `id, work, struggle, intention, created_at, updated_at`

func (r *queries) Insert(ctx context.Context, e domain.Entry) error {
	const sql = `
		insert into journal_entries (id, work, struggle, intention, created_at, updated_at)
		values ($1, $2, $3, $4, $5, $6)`

	if _, err := r.q.Exec(ctx, sql, e.ID, e.Work, e.Struggle, e.Intention, e.CreatedAt, e.UpdatedAt); err != nil {
		return perr.FromPostgres(err, "insert journal entry")
	}
	return nil
}

func (r *queries) Get(ctx context.Context, id uuid.UUID) (domain.Entry, error) {
	const sql = `select ` + entryCols + ` from journal_entries where id = $1`

	var e domain.Entry
	err := r.q.QueryRow(ctx, sql, id).
		Scan(&e.ID, &e.Work, &e.Struggle, &e.Intention, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return domain.Entry{}, perr.FromPostgres(err, "get journal entry")
	}
	return e, nil
}

func (r *queries) List(ctx context.Context) ([]domain.Entry, error) {
	const sql = `select ` + entryCols + ` from journal_entries order by created_at asc, id asc`

	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, perr.FromPostgres(err, "list journal entries")
	}
	defer rows.Close()

	out := make([]domain.Entry, 0, 16)
	for rows.Next() {
		var e domain.Entry
		if err := rows.Scan(&e.ID, &e.Work, &e.Struggle, &e.Intention, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, perr.FromPostgres(err, "scan journal entry")
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.FromPostgres(err, "iterate journal entries")
	}
	return out, nil
}

func (r *queries) Update(ctx context.Context, e domain.Entry) (domain.Entry, error) {
	const sql = `
		update journal_entries
		set work = $2, struggle = $3, intention = $4, updated_at = $5
		where id = $1
		returning ` + entryCols

	var out domain.Entry
	err := r.q.QueryRow(ctx, sql, e.ID, e.Work, e.Struggle, e.Intention, e.UpdatedAt).
		Scan(&out.ID, &out.Work, &out.Struggle, &out.Intention, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return domain.Entry{}, perr.FromPostgres(err, "update journal entry")
	}
	return out, nil
}

func (r *queries) Delete(ctx context.Context, id uuid.UUID) error {
	const sql = `delete from journal_entries where id = $1`

	tag, err := r.q.Exec(ctx, sql, id)
	if err != nil {
		return perr.FromPostgres(err, "delete journal entry")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("journal entry %s not found", id)
	}
	return nil
}

func (r *queries) Purge(ctx context.Context) (int64, error) {
	const sql = `delete from journal_entries`

	tag, err := r.q.Exec(ctx, sql)
	if err != nil {
		return 0, perr.FromPostgres(err, "purge journal entries")
	}
	return tag.RowsAffected(), nil
}
