package domain

import "strings"

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser      UserRole = "USER"
	UserRoleModerator UserRole = "MODERATOR"
	UserRoleAdmin     UserRole = "ADMIN"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleModerator, UserRoleAdmin:
		return true
	}
	return false
}

// Rank orders roles by privilege: USER < MODERATOR < ADMIN.
// Unknown roles rank below USER.
func (r UserRole) Rank() int {
	switch r {
	case UserRoleUser:
		return 1
	case UserRoleModerator:
		return 2
	case UserRoleAdmin:
		return 3
	}
	return 0
}

// IsElevated reports whether the role grants access to the admin panel.
func (r UserRole) IsElevated() bool {
	return r == UserRoleAdmin || r == UserRoleModerator
}

// ParseUserRole converts user input such as "admin" into a UserRole.
// It returns false for unknown values.
func ParseUserRole(s string) (UserRole, bool) {
	r := UserRole(strings.ToUpper(strings.TrimSpace(s)))
	if !r.IsValid() {
		return "", false
	}
	return r, true
}

// EntityType identifies the kind of entity an audit record refers to.
type EntityType string

const (
	EntityTypeUser EntityType = "user"
)

func (e EntityType) String() string { return string(e) }

// AuditAction identifies the mutation recorded by an audit record.
type AuditAction string

const (
	AuditActionRoleChange AuditAction = "role_change"
)

func (a AuditAction) String() string { return string(a) }
