package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/forensiclab-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a USER-role account with a unique username and email.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return SeedUserWithRole(t, pool, domain.UserRoleUser)
}

// SeedUserWithRole creates an account with the given role.
func SeedUserWithRole(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()
	suffix := uniqueSuffix()
	return seedUser(t, pool, "user-"+suffix, "user-"+suffix+"@example.com", role)
}

// SeedNamedUser creates a USER-role account with exactly the given username
// and email. Callers are responsible for uniqueness.
func SeedNamedUser(t *testing.T, pool *pgxpool.Pool, username, email string) domain.User {
	t.Helper()
	return seedUser(t, pool, username, email, domain.UserRoleUser)
}

func seedUser(t *testing.T, pool *pgxpool.Pool, username, email string, role domain.UserRole) domain.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, email, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Username, user.Email, user.Role.String(), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedRefreshToken creates a refresh token for userID expiring after ttl.
// A negative ttl creates an already expired token.
func SeedRefreshToken(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, ttl time.Duration) domain.RefreshToken {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	token := domain.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: "hash-" + uuid.New().String(),
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		token.ID, token.UserID, token.TokenHash, token.ExpiresAt, token.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRefreshToken insert: %v", err)
	}

	return token
}
