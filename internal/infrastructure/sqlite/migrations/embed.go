package migrations

import "embed"

// FS migraciones SQLite.
//
//go:embed *.sql
var FS embed.FS
