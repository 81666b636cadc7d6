package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestWrapAndUnwrap(t *testing.T) {
	root := stderrs.New("boom")
	err := Wrap(root, ErrorCodeDB, "insert failed")

	if got := err.Error(); got != "insert failed: boom" {
		t.Fatalf("Error() = %q", got)
	}
	if Root(err) != root {
		t.Fatalf("Root did not reach the cause")
	}
	if !stderrs.Is(err, root) {
		t.Fatalf("errors.Is should see through the wrap")
	}
	if CodeOf(err) != ErrorCodeDB {
		t.Fatalf("CodeOf = %v", CodeOf(err))
	}
}

func TestCodeOfPlainError(t *testing.T) {
	if CodeOf(stderrs.New("plain")) != ErrorCodeUnknown {
		t.Fatalf("plain errors should map to Unknown")
	}
	if CodeOf(nil) != ErrorCodeUnknown {
		t.Fatalf("nil should map to Unknown")
	}
}

func TestInvalidCarriesAllViolations(t *testing.T) {
	err := Invalid(
		Violation{Field: "work", Rule: "blank", Message: "must not be blank"},
		Violation{Field: "intention", Rule: "too_long", Message: "must be at most 256 characters"},
	)

	if !IsCode(err, ErrorCodeValidation) {
		t.Fatalf("code = %v", CodeOf(err))
	}
	vs := ViolationsOf(err)
	if len(vs) != 2 {
		t.Fatalf("violations = %d, want 2", len(vs))
	}
	if vs[0].Field != "work" || vs[1].Rule != "too_long" {
		t.Fatalf("violations mangled: %+v", vs)
	}
	if e, _ := As(err); e.Field() != "work" {
		t.Fatalf("field should default to the first violation, got %q", e.Field())
	}
	if got := err.Error(); got != "validation failed: work:blank, intention:too_long" {
		t.Fatalf("message = %q", got)
	}
}

func TestInvalidEmpty(t *testing.T) {
	err := Invalid()
	if !IsCode(err, ErrorCodeValidation) {
		t.Fatalf("code = %v", CodeOf(err))
	}
	if ViolationsOf(err) != nil {
		t.Fatalf("no violations expected")
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeDuplicateKey, http.StatusConflict},
		{ErrorCodeConflict, http.StatusConflict},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeBadUpstream, http.StatusBadGateway},
		{ErrorCodeDB, http.StatusInternalServerError},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Errorf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestWireFrom(t *testing.T) {
	w := WireFrom(NotFoundf("entry %s", "abc"))
	if w.Code != ErrorCodeNotFound || w.Message != "entry abc" {
		t.Fatalf("wire = %+v", w)
	}

	w = WireFrom(stderrs.New("oops"))
	if w.Code != ErrorCodeUnknown || w.Message != "oops" {
		t.Fatalf("wire = %+v", w)
	}

	w = WireFrom(nil)
	if w.Code != ErrorCodeUnknown || w.Message != "" {
		t.Fatalf("nil wire = %+v", w)
	}
}

func TestWithFieldAndOpCopyOnWrite(t *testing.T) {
	base := New(ErrorCodeDB, "base")
	withF := WithField(base, "title")
	withO := WithOp(withF, "repo.insert")

	be, _ := As(base)
	if be.Field() != "" || be.Op() != "" {
		t.Fatalf("base mutated: %+v", be)
	}
	oe, _ := As(withO)
	if oe.Field() != "title" || oe.Op() != "repo.insert" {
		t.Fatalf("mutators lost data: field=%q op=%q", oe.Field(), oe.Op())
	}

	plain := stderrs.New("plain")
	if WithField(plain, "x") != plain {
		t.Fatalf("WithField should pass through foreign errors")
	}
}

func TestHTTPHelper(t *testing.T) {
	status, wire := HTTP(Unavailablef("down"))
	if status != http.StatusServiceUnavailable || wire.Message != "down" {
		t.Fatalf("HTTP() = %d %+v", status, wire)
	}
	status, _ = HTTP(nil)
	if status != http.StatusOK {
		t.Fatalf("HTTP(nil) = %d", status)
	}
}

func TestFromPostgres(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want ErrorCode
	}{
		{"nil is nil", nil, ErrorCodeUnknown},
		{"no rows", pgx.ErrNoRows, ErrorCodeNotFound},
		{"wrapped no rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), ErrorCodeNotFound},
		{"deadline", context.DeadlineExceeded, ErrorCodeUnavailable},
		{"unique", &pgconn.PgError{Code: "23505", ConstraintName: "journal_entries_pkey"}, ErrorCodeDuplicateKey},
		{"fk", &pgconn.PgError{Code: "23503"}, ErrorCodeConflict},
		{"check", &pgconn.PgError{Code: "23514"}, ErrorCodeInvalidArgument},
		{"serialization", &pgconn.PgError{Code: "40001"}, ErrorCodeUnavailable},
		{"conn refused class", &pgconn.PgError{Code: "08006"}, ErrorCodeUnavailable},
		{"too many conns", &pgconn.PgError{Code: "53300"}, ErrorCodeUnavailable},
		{"data exception", &pgconn.PgError{Code: "22001"}, ErrorCodeInvalidArgument},
		{"anything else", &pgconn.PgError{Code: "42703"}, ErrorCodeDB},
		{"plain error", stderrs.New("net is sad"), ErrorCodeDB},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := FromPostgres(c.in, "journal query")
			if c.in == nil {
				if got != nil {
					t.Fatalf("want nil, got %v", got)
				}
				return
			}
			if CodeOf(got) != c.want {
				t.Fatalf("code = %v, want %v", CodeOf(got), c.want)
			}
			if !stderrs.Is(got, c.in) && !stderrs.Is(got, Root(got)) {
				t.Fatalf("cause lost: %v", got)
			}
		})
	}
}

func TestFromPostgresKeepsConstraintField(t *testing.T) {
	err := FromPostgres(&pgconn.PgError{Code: "23505", ConstraintName: "journal_entries_pkey"}, "insert journal entry")
	e, ok := As(err)
	if !ok || e.Field() != "journal_entries_pkey" {
		t.Fatalf("constraint not carried: %+v", err)
	}
}
