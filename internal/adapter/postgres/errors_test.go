package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/forensiclab-backend/internal/domain"
)

func TestMapError_Nil(t *testing.T) {
	t.Parallel()

	if got := MapError(nil, "user", uuid.New()); got != nil {
		t.Errorf("MapError(nil) = %v, want nil", got)
	}
}

func TestMapError_NoRows(t *testing.T) {
	t.Parallel()

	got := MapError(pgx.ErrNoRows, "user", "alice")

	if !errors.Is(got, domain.ErrNotFound) {
		t.Fatalf("MapError(ErrNoRows) does not wrap domain.ErrNotFound: %v", got)
	}
	if want := "user alice: not found"; got.Error() != want {
		t.Errorf("MapError(ErrNoRows).Error() = %q, want %q", got.Error(), want)
	}
}

func TestMapError_WrappedNoRows(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("scan row: %w", pgx.ErrNoRows)
	got := MapError(wrapped, "user", uuid.New())

	if !errors.Is(got, domain.ErrNotFound) {
		t.Errorf("MapError(wrapped ErrNoRows) does not wrap domain.ErrNotFound: %v", got)
	}
}

func TestMapError_PgCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code string
		want error
	}{
		{name: "unique violation", code: "23505", want: domain.ErrAlreadyExists},
		{name: "foreign key violation", code: "23503", want: domain.ErrNotFound},
		{name: "check violation", code: "23514", want: domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pgErr := &pgconn.PgError{Code: tt.code, Message: tt.name}
			got := MapError(pgErr, "user", uuid.New())

			if !errors.Is(got, tt.want) {
				t.Errorf("MapError(%s) does not wrap %v: %v", tt.code, tt.want, got)
			}
		})
	}
}

func TestMapError_UnknownPgCode(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: "42P01", Message: "undefined table"}
	got := MapError(pgErr, "user", "alice")

	var target *pgconn.PgError
	if !errors.As(got, &target) {
		t.Fatalf("MapError should keep the original PgError in the chain: %v", got)
	}
	for _, sentinel := range []error{domain.ErrNotFound, domain.ErrAlreadyExists, domain.ErrValidation} {
		if errors.Is(got, sentinel) {
			t.Errorf("unknown code should not map to %v", sentinel)
		}
	}
}

func TestMapError_ContextErrorsPassThrough(t *testing.T) {
	t.Parallel()

	for _, ctxErr := range []error{context.DeadlineExceeded, context.Canceled} {
		got := MapError(ctxErr, "user", "alice")
		if !errors.Is(got, ctxErr) {
			t.Errorf("MapError(%v) lost context error: %v", ctxErr, got)
		}
		if errors.Is(got, domain.ErrNotFound) {
			t.Errorf("MapError(%v) must not map to ErrNotFound", ctxErr)
		}
	}
}

func TestMapError_GenericError(t *testing.T) {
	t.Parallel()

	orig := errors.New("connection reset")
	got := MapError(orig, "user", "alice")

	if !errors.Is(got, orig) {
		t.Errorf("MapError should wrap the original error: %v", got)
	}
	if want := "user alice: connection reset"; got.Error() != want {
		t.Errorf("Error() = %q, want %q", got.Error(), want)
	}
}
