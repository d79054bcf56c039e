// Package sqlstore implementa los repositorios del dominio sobre SQL construido con squirrel.
// Los drivers (postgres, sqlite) solo aportan un Querier y un Dialect.
package sqlstore

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
)

// ErrNoRows lo devuelven los adaptadores en lugar del error propio de cada driver.
var ErrNoRows = errors.New("sqlstore: sin filas")

// Row resultado de una consulta de una fila.
type Row interface {
	Scan(dest ...any) error
}

// Rows cursor de resultados.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// Querier ejecuta sentencias sobre una conexión o una transacción.
type Querier interface {
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	QueryRow(ctx context.Context, query string, args ...any) Row
	Query(ctx context.Context, query string, args ...any) (Rows, error)
}

// Tx transacción abierta.
type Tx interface {
	Querier
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// DB conexión (o pool) capaz de abrir transacciones.
type DB interface {
	Querier
	Begin(ctx context.Context) (Tx, error)
}

// Dialect diferencias entre motores.
type Dialect struct {
	Name        string
	Placeholder sq.PlaceholderFormat
	// Translate convierte errores del driver en errores de dominio (FK -> ErrReferenced, unique -> ErrDuplicate).
	Translate func(err error) error
}

// base comparte el Querier y el dialecto entre repositorios.
type base struct {
	q Querier
	d Dialect
}

func (b base) sql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(b.d.Placeholder)
}

func (b base) translate(err error) error {
	if err == nil || b.d.Translate == nil {
		return err
	}
	return b.d.Translate(err)
}

func (b base) exec(ctx context.Context, s sq.Sqlizer) (int64, error) {
	query, args, err := s.ToSql()
	if err != nil {
		return 0, err
	}
	n, err := b.q.Exec(ctx, query, args...)
	if err != nil {
		return 0, b.translate(err)
	}
	return n, nil
}

func (b base) queryRow(ctx context.Context, s sq.Sqlizer) (Row, error) {
	query, args, err := s.ToSql()
	if err != nil {
		return nil, err
	}
	return b.q.QueryRow(ctx, query, args...), nil
}

func (b base) query(ctx context.Context, s sq.Sqlizer) (Rows, error) {
	query, args, err := s.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := b.q.Query(ctx, query, args...)
	if err != nil {
		return nil, b.translate(err)
	}
	return rows, nil
}

// scanAll recorre rows aplicando scan a cada fila.
func scanAll[T any](rows Rows, scan func(Row) (*T, error)) ([]*T, error) {
	defer rows.Close()
	out := make([]*T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
