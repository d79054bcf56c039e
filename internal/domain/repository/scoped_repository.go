package repository

import "context"

// ScopedRepository es el puerto de persistencia común a las entidades que pertenecen a una tienda.
// Todas las búsquedas van por (storeID, id): un ID de otra tienda se trata como inexistente.
type ScopedRepository[T any] interface {
	Create(ctx context.Context, item *T) error
	GetByID(ctx context.Context, storeID, id string) (*T, error)
	ListByStore(ctx context.Context, storeID string) ([]*T, error)
	// Update reemplaza todos los campos editables. Devuelve domain.ErrNotFound si no afecta filas.
	Update(ctx context.Context, item *T) error
	// Delete elimina y devuelve el registro borrado. domain.ErrReferenced si otra fila lo referencia.
	Delete(ctx context.Context, storeID, id string) (*T, error)
}
