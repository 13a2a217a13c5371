// Package token implements the RefreshToken repository using PostgreSQL.
package token

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/forensiclab-backend/internal/adapter/postgres"
)

const table = "refresh_tokens"

// Repo provides refresh-token persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new token repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// RevokeAllByUser revokes all active refresh tokens for the given user and
// returns how many were revoked. Already revoked or expired tokens are left
// untouched, so calling it twice is safe.
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("revoked_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"user_id": userID, "revoked_at": nil}).
		Where("expires_at > now()").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("refresh_token: build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", userID)
	}

	return tag.RowsAffected(), nil
}

// CountActiveByUser returns the number of non-revoked, non-expired tokens of a user.
func (r *Repo) CountActiveByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	sql, args, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(squirrel.Eq{"user_id": userID, "revoked_at": nil}).
		Where("expires_at > now()").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("refresh_token: build query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "refresh_token", userID)
	}

	return n, nil
}

// DeleteStale permanently removes expired and revoked tokens and returns how
// many rows were deleted.
func (r *Repo) DeleteStale(ctx context.Context) (int64, error) {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Or{
			squirrel.Expr("expires_at < now()"),
			squirrel.NotEq{"revoked_at": nil},
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("refresh_token: build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", "stale")
	}

	return tag.RowsAffected(), nil
}
