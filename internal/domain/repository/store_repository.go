package repository

import (
	"context"

	"github.com/jhoicas/store-admin-api/internal/domain/entity"
)

// StoreRepository define el puerto de persistencia para Store (DIP).
type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	GetByID(ctx context.Context, id string) (*entity.Store, error)
	// GetByIDAndOwner devuelve nil, nil si la tienda no existe o no pertenece a userID.
	GetByIDAndOwner(ctx context.Context, id, userID string) (*entity.Store, error)
	ListByOwner(ctx context.Context, userID string) ([]*entity.Store, error)
	Update(ctx context.Context, store *entity.Store) error
	Delete(ctx context.Context, id string) (*entity.Store, error)
}
