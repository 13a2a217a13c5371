// Package migrations embeds the goose SQL migrations so tests and tooling can
// apply them without resolving paths on disk.
package migrations

import "embed"

// FS holds every *.sql migration in this directory.
//
//go:embed *.sql
var FS embed.FS
