package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/forensiclab-backend/internal/domain"
)

// Promote elevates the user identified by username to in.Role (ADMIN by default).
//
// The lookup always precedes the write, and an unknown username returns
// domain.ErrNotFound without issuing an update. The role update, its audit
// record and the optional session revocation commit in one transaction.
// Promoting a user who already holds the role succeeds and writes no audit record.
// A target role below the current one (MODERATOR for an ADMIN) is rejected
// with domain.ErrValidation; Promote never demotes.
func (s *Service) Promote(ctx context.Context, in PromoteInput) (*PromoteResult, error) {
	in = in.normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	current, err := s.users.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, fmt.Errorf("user.Promote: find %q: %w", in.Username, err)
	}

	if in.Role.Rank() < current.Role.Rank() {
		return nil, fmt.Errorf("user.Promote: %w", domain.NewValidationError("role",
			fmt.Sprintf("user already holds %s; refusing to downgrade to %s", current.Role, in.Role)))
	}

	result := PromoteResult{PreviousRole: current.Role}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		updated, err := s.users.UpdateRole(ctx, in.Username, in.Role)
		if err != nil {
			return fmt.Errorf("update role: %w", err)
		}
		result.User = *updated

		if result.Changed() {
			record := domain.NewRoleChangeRecord(*updated, current.Role, s.now())
			if err := s.audit.Create(ctx, record); err != nil {
				return fmt.Errorf("audit role change: %w", err)
			}
		}

		if in.RevokeSessions {
			n, err := s.tokens.RevokeAllByUser(ctx, updated.ID)
			if err != nil {
				return fmt.Errorf("revoke sessions: %w", err)
			}
			result.SessionsRevoked = n
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("user.Promote: %w", err)
	}

	s.log.InfoContext(ctx, "user promoted",
		slog.String("user_id", result.User.ID.String()),
		slog.String("username", result.User.Username),
		slog.String("old_role", result.PreviousRole.String()),
		slog.String("new_role", result.User.Role.String()),
		slog.Bool("changed", result.Changed()),
		slog.Int64("sessions_revoked", result.SessionsRevoked),
	)

	return &result, nil
}
