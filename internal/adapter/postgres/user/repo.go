// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/forensiclab-backend/internal/adapter/postgres"
	"github.com/heartmarshall/forensiclab-backend/internal/domain"
)

const table = "users"

var columns = []string{"id", "username", "email", "role", "created_at", "updated_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository. db is normally a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByUsername returns the user whose username equals username exactly.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"username": username})

	return r.getOne(ctx, q, username)
}

// UpdateRole sets the role of the user with the given username and returns
// the updated row. Setting the role a user already has is not an error.
func (r *Repo) UpdateRole(ctx context.Context, username string, role domain.UserRole) (*domain.User, error) {
	q := postgres.Builder().
		Update(table).
		Set("role", role.String()).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"username": username}).
		Suffix(returning)

	return r.getOne(ctx, q, username)
}

// ListByRole returns all users holding role, oldest first.
func (r *Repo) ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"role": role.String()}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("user role %s: build query: %w", role, err)
	}

	var rows []userRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user role", role)
	}

	users := make([]domain.User, len(rows))
	for i, row := range rows {
		users[i] = row.toDomain()
	}
	return users, nil
}

func (r *Repo) getOne(ctx context.Context, q squirrel.Sqlizer, key any) (*domain.User, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("user %v: build query: %w", key, err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", key)
	}

	u := row.toDomain()
	return &u, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

var returning = "RETURNING " + strings.Join(columns, ", ")

// userRow is the field set returned by all user queries.
type userRow struct {
	ID        uuid.UUID `db:"id"`
	Username  string    `db:"username"`
	Email     string    `db:"email"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (row userRow) toDomain() domain.User {
	return domain.User{
		ID:        row.ID,
		Username:  row.Username,
		Email:     row.Email,
		Role:      domain.UserRole(row.Role),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
