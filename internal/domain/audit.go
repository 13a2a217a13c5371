package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord logs a mutation event on a domain entity.
// UserID is the account the mutation applied to.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}

// NewRoleChangeRecord builds the audit record for a role transition of u.
func NewRoleChangeRecord(u User, oldRole UserRole, now time.Time) AuditRecord {
	id := u.ID
	return AuditRecord{
		ID:         uuid.New(),
		UserID:     u.ID,
		EntityType: EntityTypeUser,
		EntityID:   &id,
		Action:     AuditActionRoleChange,
		Changes: map[string]any{
			"role": map[string]any{
				"old": oldRole.String(),
				"new": u.Role.String(),
			},
		},
		CreatedAt: now,
	}
}
