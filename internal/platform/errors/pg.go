package errors

// Postgres-specific helpers for mapping pgx errors to project ErrorCodes

import (
	"context"
	stderrs "errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes we care about
const (
	pgErrUniqueViolation      = "23505"
	pgErrForeignKeyViolation  = "23503"
	pgErrCheckViolation       = "23514"
	pgErrSerializationFailure = "40001"
	pgErrDeadlockDetected     = "40P01"
	pgErrQueryCanceled        = "57014"
)

// ExtractPgError returns (*pgconn.PgError, true) if the root cause is a PgError
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(Root(err), &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsSQLState reports whether the error is a Postgres error with the given SQLSTATE code
func IsSQLState(err error, code string) bool {
	pgErr, ok := ExtractPgError(err)
	return ok && pgErr.Code == code
}

// IsDuplicateKey reports whether the error is a unique constraint violation
func IsDuplicateKey(err error) bool { return IsSQLState(err, pgErrUniqueViolation) }

// FromPostgres maps a pgx/pgconn error into our structured *Error with msg as context.
// Returns nil when err is nil. Non-postgres errors come back as ErrorCodeDB
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	if stderrs.Is(err, pgx.ErrNoRows) {
		return Wrap(err, ErrorCodeNotFound, msg)
	}
	if stderrs.Is(err, context.DeadlineExceeded) || stderrs.Is(err, context.Canceled) {
		return Wrap(err, ErrorCodeUnavailable, msg)
	}

	var pgErr *pgconn.PgError
	if stderrs.As(err, &pgErr) {
		return fromSQLState(err, pgErr, msg)
	}
	return Wrap(err, ErrorCodeDB, msg)
}

func fromSQLState(err error, pgErr *pgconn.PgError, msg string) error {
	switch pgErr.Code {
	case pgErrUniqueViolation:
		e := Wrap(err, ErrorCodeDuplicateKey, msg)
		if pgErr.ConstraintName != "" {
			e = WithField(e, pgErr.ConstraintName)
		}
		return e
	case pgErrForeignKeyViolation:
		return Wrap(err, ErrorCodeConflict, msg)
	case pgErrCheckViolation:
		e := Wrap(err, ErrorCodeInvalidArgument, msg)
		if pgErr.ConstraintName != "" {
			e = WithField(e, pgErr.ConstraintName)
		}
		return e
	case pgErrSerializationFailure, pgErrDeadlockDetected, pgErrQueryCanceled:
		return Wrap(err, ErrorCodeUnavailable, msg)
	}

	// Class 08 covers connection exceptions; class 53 resource exhaustion
	switch {
	case strings.HasPrefix(pgErr.Code, "08"), strings.HasPrefix(pgErr.Code, "53"):
		return Wrap(err, ErrorCodeUnavailable, msg)
	case strings.HasPrefix(pgErr.Code, "22"): // data exception
		return Wrap(err, ErrorCodeInvalidArgument, msg)
	}
	return Wrap(err, ErrorCodeDB, msg)
}
