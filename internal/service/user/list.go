package user

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/forensiclab-backend/internal/domain"
)

// elevatedRoles are listed in this order, highest first.
var elevatedRoles = []domain.UserRole{domain.UserRoleAdmin, domain.UserRoleModerator}

// ElevatedUser is an account with admin-panel access.
type ElevatedUser struct {
	User           domain.User
	ActiveSessions int
	// RoleChangedAt is the latest audited role change; nil when the role was
	// granted outside this tool.
	RoleChangedAt *time.Time
}

// ListElevated returns every ADMIN followed by every MODERATOR, with their
// active session count and the time of their latest audited role change.
func (s *Service) ListElevated(ctx context.Context) ([]ElevatedUser, error) {
	var out []ElevatedUser

	for _, role := range elevatedRoles {
		users, err := s.users.ListByRole(ctx, role)
		if err != nil {
			return nil, fmt.Errorf("user.ListElevated: list %s: %w", role, err)
		}

		for _, u := range users {
			entry, err := s.describe(ctx, u)
			if err != nil {
				return nil, fmt.Errorf("user.ListElevated: %s: %w", u.Username, err)
			}
			out = append(out, entry)
		}
	}

	s.log.DebugContext(ctx, "elevated users listed", "count", len(out))

	return out, nil
}

func (s *Service) describe(ctx context.Context, u domain.User) (ElevatedUser, error) {
	entry := ElevatedUser{User: u}

	n, err := s.tokens.CountActiveByUser(ctx, u.ID)
	if err != nil {
		return ElevatedUser{}, fmt.Errorf("count sessions: %w", err)
	}
	entry.ActiveSessions = n

	records, err := s.audit.ListByEntity(ctx, domain.EntityTypeUser, u.ID, 1)
	if err != nil {
		return ElevatedUser{}, fmt.Errorf("audit history: %w", err)
	}
	if len(records) > 0 && records[0].Action == domain.AuditActionRoleChange {
		at := records[0].CreatedAt
		entry.RoleChangedAt = &at
	}

	return entry, nil
}
