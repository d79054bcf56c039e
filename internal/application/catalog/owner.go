package catalog

import (
	"context"
	"fmt"

	"github.com/jhoicas/store-admin-api/internal/domain"
	"github.com/jhoicas/store-admin-api/internal/domain/entity"
	"github.com/jhoicas/store-admin-api/internal/domain/repository"
)

// RequireOwner verifica que exista una tienda (storeID, userID). Inexistente y ajena
// responden igual (ErrUnauthorized) para no revelar qué tiendas existen.
func RequireOwner(ctx context.Context, stores repository.StoreRepository, storeID, userID string) (*entity.Store, error) {
	store, err := stores.GetByIDAndOwner(ctx, storeID, userID)
	if err != nil {
		return nil, fmt.Errorf("verificar propiedad de la tienda: %w", err)
	}
	if store == nil {
		return nil, domain.ErrUnauthorized
	}
	return store, nil
}
