package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const migrationTable = "schema_migrations"

// Migrate aplica en orden los *.sql de fsys que aún no figuran en schema_migrations.
// Cada archivo corre en su propia transacción.
func Migrate(ctx context.Context, db DB, d Dialect, fsys fs.FS) (applied []string, err error) {
	b := base{q: db, d: d}
	_, err = db.Exec(ctx, `CREATE TABLE IF NOT EXISTS `+migrationTable+` (
	name TEXT PRIMARY KEY,
	applied_at TEXT NOT NULL
)`)
	if err != nil {
		return nil, fmt.Errorf("crear tabla de migraciones: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("leer migraciones: %w", err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	for _, name := range files {
		done, err := isApplied(ctx, b, name)
		if err != nil {
			return applied, err
		}
		if done {
			continue
		}
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return applied, fmt.Errorf("leer migración %s: %w", name, err)
		}
		err = NewTxRunner(db, d).Run(ctx, func(tx Querier) error {
			if _, err := tx.Exec(ctx, string(content)); err != nil {
				return err
			}
			_, err := base{q: tx, d: d}.exec(ctx, b.sql().Insert(migrationTable).
				Columns("name", "applied_at").
				Values(name, time.Now().UTC().Format(time.RFC3339)))
			return err
		})
		if err != nil {
			return applied, fmt.Errorf("aplicar migración %s: %w", name, err)
		}
		applied = append(applied, name)
	}
	return applied, nil
}

func isApplied(ctx context.Context, b base, name string) (bool, error) {
	row, err := b.queryRow(ctx, b.sql().Select("name").From(migrationTable).Where(sq.Eq{"name": name}))
	if err != nil {
		return false, err
	}
	var got string
	err = row.Scan(&got)
	if errors.Is(err, ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("consultar migración %s: %w", name, err)
	}
	return true, nil
}
