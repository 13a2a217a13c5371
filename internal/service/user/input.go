package user

import (
	"strings"

	"github.com/heartmarshall/forensiclab-backend/internal/domain"
)

// PromoteInput holds parameters for the promote operation.
type PromoteInput struct {
	// Username is matched exactly as given, surrounding whitespace included.
	Username string
	// Role defaults to ADMIN when empty.
	Role           domain.UserRole
	RevokeSessions bool
}

// normalize fills in the default role.
func (i PromoteInput) normalize() PromoteInput {
	if i.Role == "" {
		i.Role = domain.UserRoleAdmin
	}
	return i
}

// Validate validates the promote input. Call it on normalized input.
// A blank username cannot match a real account and is rejected.
func (i PromoteInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Username) == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}

	if !i.Role.IsValid() || !i.Role.IsElevated() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be ADMIN or MODERATOR"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// PromoteResult is the outcome of a successful promotion.
type PromoteResult struct {
	// User is the record as stored after the update.
	User         domain.User
	PreviousRole domain.UserRole
	// SessionsRevoked is the number of refresh tokens revoked; zero unless
	// RevokeSessions was requested.
	SessionsRevoked int64
}

// Changed reports whether the role actually changed.
func (r *PromoteResult) Changed() bool {
	return r.PreviousRole != r.User.Role
}
