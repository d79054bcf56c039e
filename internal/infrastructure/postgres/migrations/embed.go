package migrations

import "embed"

// FS migraciones PostgreSQL.
//
//go:embed *.sql
var FS embed.FS
