// Package sqlite adapta modernc.org/sqlite a sqlstore. Se usa en desarrollo local y en los tests.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	sq "github.com/Masterminds/squirrel"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/jhoicas/store-admin-api/internal/domain"
	"github.com/jhoicas/store-admin-api/internal/infrastructure/sqlite/migrations"
	"github.com/jhoicas/store-admin-api/internal/infrastructure/sqlstore"
)

// Dialect SQLite: placeholders ? y códigos extendidos de constraint.
var Dialect = sqlstore.Dialect{
	Name:        "sqlite",
	Placeholder: sq.Question,
	Translate:   translate,
}

var _ sqlstore.DB = (*DB)(nil)

// MemoryPath abre una base en memoria (vive mientras la conexión siga abierta).
const MemoryPath = ":memory:"

// DB adapta *sql.DB a sqlstore.DB.
type DB struct {
	querier
	sqlDB *sql.DB
}

// Open abre (o crea) la base en path con claves foráneas activas.
func Open(path string) (*DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("ruta de sqlite requerida")
	}
	dsn := "file::memory:?_pragma=foreign_keys(1)"
	if path != MemoryPath {
		dsn = "file:" + filepath.Clean(path) + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	// Una sola conexión: en memoria cada conexión sería una base distinta y SQLite serializa escrituras.
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return &DB{querier: querier{q: sqlDB}, sqlDB: sqlDB}, nil
}

// OpenMigrated abre la base y aplica las migraciones embebidas.
func OpenMigrated(ctx context.Context, path string) (*DB, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	if _, err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate aplica las migraciones embebidas.
func Migrate(ctx context.Context, db *DB) ([]string, error) {
	return sqlstore.Migrate(ctx, db, Dialect, migrations.FS)
}

// Close cierra la base.
func (d *DB) Close() error {
	if d == nil || d.sqlDB == nil {
		return nil
	}
	return d.sqlDB.Close()
}

// Begin abre una transacción.
func (d *DB) Begin(ctx context.Context) (sqlstore.Tx, error) {
	tx, err := d.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &Tx{querier: querier{q: tx}, tx: tx}, nil
}

// Tx adapta *sql.Tx a sqlstore.Tx.
type Tx struct {
	querier
	tx *sql.Tx
}

func (t *Tx) Commit(context.Context) error   { return t.tx.Commit() }
func (t *Tx) Rollback(context.Context) error { return t.tx.Rollback() }

// sqlQuerier lo cumplen *sql.DB y *sql.Tx.
type sqlQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type querier struct {
	q sqlQuerier
}

func (q querier) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := q.q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (q querier) QueryRow(ctx context.Context, query string, args ...any) sqlstore.Row {
	return row{q.q.QueryRowContext(ctx, query, args...)}
}

func (q querier) Query(ctx context.Context, query string, args ...any) (sqlstore.Rows, error) {
	r, err := q.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows{r}, nil
}

type row struct {
	r *sql.Row
}

func (r row) Scan(dest ...any) error {
	err := r.r.Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return sqlstore.ErrNoRows
	}
	return err
}

type rows struct {
	*sql.Rows
}

func (r rows) Close() { _ = r.Rows.Close() }

func translate(err error) error {
	var sqliteErr *msqlite.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}
	switch sqliteErr.Code() {
	case sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY:
		return fmt.Errorf("%w: %s", domain.ErrReferenced, sqliteErr.Error())
	case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
		return fmt.Errorf("%w: %s", domain.ErrDuplicate, sqliteErr.Error())
	}
	return err
}
