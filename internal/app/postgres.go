package app

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/forensiclab-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/forensiclab-backend/internal/adapter/postgres/audit"
	tokenrepo "github.com/heartmarshall/forensiclab-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/forensiclab-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/forensiclab-backend/internal/config"
	"github.com/heartmarshall/forensiclab-backend/internal/service/user"
)

// ConnectPostgres opens a connection pool and wires the user service on top
// of it. The returned release func closes the pool.
func ConnectPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (UserService, func(), error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	logger.DebugContext(ctx, "database connected",
		slog.Int("max_conns", int(cfg.Database.MaxConns)),
	)

	svc := user.NewService(
		logger,
		userrepo.New(pool),
		tokenrepo.New(pool),
		auditrepo.New(pool),
		postgres.NewTxManager(pool),
	)

	release := func() {
		pool.Close()
		logger.Debug("database connection closed")
	}

	return svc, release, nil
}
