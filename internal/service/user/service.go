package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/forensiclab-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateRole(ctx context.Context, username string, role domain.UserRole) (*domain.User, error)
	ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error)
}

// tokenRepo defines the refresh-token repository interface needed by user service.
type tokenRepo interface {
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	CountActiveByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

// auditRepo defines the audit repository interface needed by user service.
type auditRepo interface {
	Create(ctx context.Context, record domain.AuditRecord) error
	ListByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements operator-level user management.
type Service struct {
	log    *slog.Logger
	users  userRepo
	tokens tokenRepo
	audit  auditRepo
	tx     txManager
	now    func() time.Time
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tokens tokenRepo,
	audit auditRepo,
	tx txManager,
) *Service {
	return &Service{
		log:    logger.With("service", "user"),
		users:  users,
		tokens: tokens,
		audit:  audit,
		tx:     tx,
		now:    func() time.Time { return time.Now().UTC() },
	}
}
