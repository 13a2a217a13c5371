// Command promote elevates an existing user to an admin role.
// It is used to bootstrap the first admin and to grant moderator access.
//
// Usage:
//
//	promote [-role=ADMIN|MODERATOR] [-revoke-sessions] [-timeout=30s] <username>
//
// Requires DATABASE_DSN (or database.dsn in CONFIG_PATH) to be set.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/forensiclab-backend/internal/app"
	"github.com/heartmarshall/forensiclab-backend/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cmd := &app.PromoteCommand{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		LoadConfig: config.Load,
		Connect:    app.ConnectPostgres,
	}

	code := cmd.Run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
