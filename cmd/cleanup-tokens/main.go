// Command cleanup-tokens deletes expired and revoked refresh tokens,
// including the ones revoked by promote -revoke-sessions.
//
// Usage:
//
//	cleanup-tokens
//
// Reads the same configuration as promote.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/heartmarshall/forensiclab-backend/internal/adapter/postgres"
	tokenrepo "github.com/heartmarshall/forensiclab-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/forensiclab-backend/internal/app"
	"github.com/heartmarshall/forensiclab-backend/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error cleaning up tokens: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Promote.Timeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	deleted, err := tokenrepo.New(pool).DeleteStale(ctx)
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "refresh tokens cleaned up", slog.Int64("deleted", deleted))
	fmt.Printf("Deleted %d expired/revoked refresh tokens.\n", deleted)
	return nil
}
