package user

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/forensiclab-backend/internal/domain"
)

// Mocks follow the moq layout: a Func field per method plus recorded calls.

var (
	_ userRepo  = (*userRepoMock)(nil)
	_ tokenRepo = (*tokenRepoMock)(nil)
	_ auditRepo = (*auditRepoMock)(nil)
	_ txManager = (*txManagerMock)(nil)
)

type userRepoMock struct {
	GetByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)
	UpdateRoleFunc    func(ctx context.Context, username string, role domain.UserRole) (*domain.User, error)
	ListByRoleFunc    func(ctx context.Context, role domain.UserRole) ([]domain.User, error)

	mu    sync.RWMutex
	calls struct {
		GetByUsername []struct {
			Ctx      context.Context
			Username string
		}
		UpdateRole []struct {
			Ctx      context.Context
			Username string
			Role     domain.UserRole
		}
		ListByRole []struct {
			Ctx  context.Context
			Role domain.UserRole
		}
	}
}

func (m *userRepoMock) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFunc == nil {
		panic("userRepoMock.GetByUsernameFunc: method is nil but userRepo.GetByUsername was just called")
	}
	m.mu.Lock()
	m.calls.GetByUsername = append(m.calls.GetByUsername, struct {
		Ctx      context.Context
		Username string
	}{ctx, username})
	m.mu.Unlock()
	return m.GetByUsernameFunc(ctx, username)
}

func (m *userRepoMock) GetByUsernameCalls() []struct {
	Ctx      context.Context
	Username string
} {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls.GetByUsername
}

func (m *userRepoMock) UpdateRole(ctx context.Context, username string, role domain.UserRole) (*domain.User, error) {
	if m.UpdateRoleFunc == nil {
		panic("userRepoMock.UpdateRoleFunc: method is nil but userRepo.UpdateRole was just called")
	}
	m.mu.Lock()
	m.calls.UpdateRole = append(m.calls.UpdateRole, struct {
		Ctx      context.Context
		Username string
		Role     domain.UserRole
	}{ctx, username, role})
	m.mu.Unlock()
	return m.UpdateRoleFunc(ctx, username, role)
}

func (m *userRepoMock) UpdateRoleCalls() []struct {
	Ctx      context.Context
	Username string
	Role     domain.UserRole
} {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls.UpdateRole
}

func (m *userRepoMock) ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	if m.ListByRoleFunc == nil {
		panic("userRepoMock.ListByRoleFunc: method is nil but userRepo.ListByRole was just called")
	}
	m.mu.Lock()
	m.calls.ListByRole = append(m.calls.ListByRole, struct {
		Ctx  context.Context
		Role domain.UserRole
	}{ctx, role})
	m.mu.Unlock()
	return m.ListByRoleFunc(ctx, role)
}

func (m *userRepoMock) ListByRoleCalls() []struct {
	Ctx  context.Context
	Role domain.UserRole
} {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls.ListByRole
}

type tokenRepoMock struct {
	RevokeAllByUserFunc   func(ctx context.Context, userID uuid.UUID) (int64, error)
	CountActiveByUserFunc func(ctx context.Context, userID uuid.UUID) (int, error)

	mu    sync.RWMutex
	calls struct {
		RevokeAllByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		CountActiveByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
}

func (m *tokenRepoMock) RevokeAllByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	if m.RevokeAllByUserFunc == nil {
		panic("tokenRepoMock.RevokeAllByUserFunc: method is nil but tokenRepo.RevokeAllByUser was just called")
	}
	m.mu.Lock()
	m.calls.RevokeAllByUser = append(m.calls.RevokeAllByUser, struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{ctx, userID})
	m.mu.Unlock()
	return m.RevokeAllByUserFunc(ctx, userID)
}

func (m *tokenRepoMock) RevokeAllByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls.RevokeAllByUser
}

func (m *tokenRepoMock) CountActiveByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if m.CountActiveByUserFunc == nil {
		panic("tokenRepoMock.CountActiveByUserFunc: method is nil but tokenRepo.CountActiveByUser was just called")
	}
	m.mu.Lock()
	m.calls.CountActiveByUser = append(m.calls.CountActiveByUser, struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{ctx, userID})
	m.mu.Unlock()
	return m.CountActiveByUserFunc(ctx, userID)
}

func (m *tokenRepoMock) CountActiveByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls.CountActiveByUser
}

type auditRepoMock struct {
	CreateFunc       func(ctx context.Context, record domain.AuditRecord) error
	ListByEntityFunc func(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error)

	mu    sync.RWMutex
	calls struct {
		Create []struct {
			Ctx    context.Context
			Record domain.AuditRecord
		}
		ListByEntity []struct {
			Ctx        context.Context
			EntityType domain.EntityType
			EntityID   uuid.UUID
			Limit      int
		}
	}
}

func (m *auditRepoMock) Create(ctx context.Context, record domain.AuditRecord) error {
	if m.CreateFunc == nil {
		panic("auditRepoMock.CreateFunc: method is nil but auditRepo.Create was just called")
	}
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, struct {
		Ctx    context.Context
		Record domain.AuditRecord
	}{ctx, record})
	m.mu.Unlock()
	return m.CreateFunc(ctx, record)
}

func (m *auditRepoMock) CreateCalls() []struct {
	Ctx    context.Context
	Record domain.AuditRecord
} {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls.Create
}

func (m *auditRepoMock) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	if m.ListByEntityFunc == nil {
		panic("auditRepoMock.ListByEntityFunc: method is nil but auditRepo.ListByEntity was just called")
	}
	m.mu.Lock()
	m.calls.ListByEntity = append(m.calls.ListByEntity, struct {
		Ctx        context.Context
		EntityType domain.EntityType
		EntityID   uuid.UUID
		Limit      int
	}{ctx, entityType, entityID, limit})
	m.mu.Unlock()
	return m.ListByEntityFunc(ctx, entityType, entityID, limit)
}

func (m *auditRepoMock) ListByEntityCalls() []struct {
	Ctx        context.Context
	EntityType domain.EntityType
	EntityID   uuid.UUID
	Limit      int
} {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls.ListByEntity
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	mu    sync.RWMutex
	calls struct {
		RunInTx []struct {
			Ctx context.Context
		}
	}
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	m.mu.Lock()
	m.calls.RunInTx = append(m.calls.RunInTx, struct {
		Ctx context.Context
	}{ctx})
	m.mu.Unlock()
	return m.RunInTxFunc(ctx, fn)
}

func (m *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
} {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls.RunInTx
}
