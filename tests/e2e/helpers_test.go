//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/forensiclab-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/forensiclab-backend/internal/app"
	"github.com/heartmarshall/forensiclab-backend/internal/config"
)

// promoteRun is the captured outcome of one promote invocation.
type promoteRun struct {
	code   int
	stdout string
	stderr string
}

type testEnv struct {
	pool *pgxpool.Pool
	cfg  *config.Config
}

// setupEnv prepares a migrated database and a config pointing at it.
func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	cfg := &config.Config{
		Database: config.DatabaseConfig{
			DSN:             testhelper.DSN(t),
			MaxConns:        2,
			MaxConnLifetime: time.Hour,
			MaxConnIdleTime: time.Minute,
		},
		Log:     config.LogConfig{Level: "error", Format: "text"},
		Promote: config.PromoteConfig{Timeout: 30 * time.Second},
	}

	return &testEnv{pool: pool, cfg: cfg}
}

// promote runs the command exactly as cmd/promote wires it, minus os.Exit.
func (e *testEnv) promote(t *testing.T, args ...string) promoteRun {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := &app.PromoteCommand{
		Stdout:     &stdout,
		Stderr:     &stderr,
		LoadConfig: func() (*config.Config, error) { return e.cfg, nil },
		Connect:    app.ConnectPostgres,
	}

	code := cmd.Run(context.Background(), args)
	return promoteRun{code: code, stdout: stdout.String(), stderr: stderr.String()}
}
