package sqlstore

import (
	"context"
	"fmt"

	"github.com/jhoicas/store-admin-api/internal/application/catalog"
	"github.com/jhoicas/store-admin-api/internal/domain/repository"
)

var _ catalog.ProductTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción.
type TxRunner struct {
	db DB
	d  Dialect
}

// NewTxRunner construye el runner.
func NewTxRunner(db DB, d Dialect) *TxRunner {
	return &TxRunner{db: db, d: d}
}

// Run inicia una transacción, ejecuta fn y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(tx Querier) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunProducts ejecuta fn con un repositorio de productos atado a la transacción.
func (r *TxRunner) RunProducts(ctx context.Context, fn func(products repository.ProductRepository) error) error {
	return r.Run(ctx, func(tx Querier) error {
		return fn(NewProductRepository(tx, r.d))
	})
}
