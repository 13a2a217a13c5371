package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a platform account. Its lifecycle is owned by the main backend;
// operator commands only read it and change its role.
type User struct {
	ID        uuid.UUID
	Username  string
	Email     string
	Role      UserRole
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}
