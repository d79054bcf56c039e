package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/store-admin-api/internal/domain"
	"github.com/jhoicas/store-admin-api/internal/infrastructure/postgres/migrations"
	"github.com/jhoicas/store-admin-api/internal/infrastructure/sqlstore"
)

// Dialect PostgreSQL: placeholders $n y SQLSTATE para FK / unique.
var Dialect = sqlstore.Dialect{
	Name:        "postgres",
	Placeholder: sq.Dollar,
	Translate:   translate,
}

var _ sqlstore.DB = (*DB)(nil)

// pgxQuerier lo cumplen *pgxpool.Pool y pgx.Tx.
type pgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type querier struct {
	q pgxQuerier
}

func (q querier) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	tag, err := q.q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (q querier) QueryRow(ctx context.Context, sql string, args ...any) sqlstore.Row {
	return row{q.q.QueryRow(ctx, sql, args...)}
}

func (q querier) Query(ctx context.Context, sql string, args ...any) (sqlstore.Rows, error) {
	rows, err := q.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

type row struct {
	r pgx.Row
}

func (r row) Scan(dest ...any) error {
	err := r.r.Scan(dest...)
	if errors.Is(err, pgx.ErrNoRows) {
		return sqlstore.ErrNoRows
	}
	return err
}

// DB adapta un pgxpool.Pool a sqlstore.DB.
type DB struct {
	querier
	pool *pgxpool.Pool
}

// NewDB envuelve el pool.
func NewDB(pool *pgxpool.Pool) *DB {
	return &DB{querier: querier{q: pool}, pool: pool}
}

// Begin abre una transacción.
func (d *DB) Begin(ctx context.Context) (sqlstore.Tx, error) {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return &Tx{querier: querier{q: tx}, tx: tx}, nil
}

// Pool devuelve el pool subyacente.
func (d *DB) Pool() *pgxpool.Pool { return d.pool }

// Tx adapta pgx.Tx a sqlstore.Tx.
type Tx struct {
	querier
	tx pgx.Tx
}

func (t *Tx) Commit(ctx context.Context) error   { return t.tx.Commit(ctx) }
func (t *Tx) Rollback(ctx context.Context) error { return t.tx.Rollback(ctx) }

// Migrate aplica las migraciones embebidas.
func Migrate(ctx context.Context, db *DB) ([]string, error) {
	return sqlstore.Migrate(ctx, db, Dialect, migrations.FS)
}

func translate(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case "23503": // foreign_key_violation
		return fmt.Errorf("%w: %s", domain.ErrReferenced, pgErr.ConstraintName)
	case "23505": // unique_violation
		return fmt.Errorf("%w: %s", domain.ErrDuplicate, pgErr.ConstraintName)
	}
	return err
}
