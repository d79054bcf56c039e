package catalog

import (
	"context"

	"github.com/jhoicas/store-admin-api/internal/domain/entity"
	"github.com/jhoicas/store-admin-api/internal/domain/repository"
)

// ProductSearch listado público de productos con filtros (la vitrina oculta los archivados).
type ProductSearch struct {
	repo repository.ProductRepository
}

// NewProductSearch construye el caso de uso.
func NewProductSearch(repo repository.ProductRepository) *ProductSearch {
	return &ProductSearch{repo: repo}
}

// Search lista los productos de la tienda que cumplen el filtro.
func (s *ProductSearch) Search(ctx context.Context, storeID string, filter repository.ProductFilter) ([]*entity.Product, error) {
	return s.repo.List(ctx, storeID, filter)
}
