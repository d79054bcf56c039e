package repository

import (
	"context"

	"github.com/jhoicas/store-admin-api/internal/domain/entity"
)

// ProductFilter filtros del listado de productos. Vacío = sin filtro.
type ProductFilter struct {
	CategoryID      string
	SizeID          string
	ColorID         string
	OnlyFeatured    bool
	IncludeArchived bool
}

// ProductRepository define el puerto de persistencia para Product e Image.
// Create persiste también product.Images; Update solo toca los campos escalares.
type ProductRepository interface {
	ScopedRepository[entity.Product]
	List(ctx context.Context, storeID string, filter ProductFilter) ([]*entity.Product, error)
	// ReplaceImages borra todas las imágenes del producto y crea las indicadas, en orden.
	ReplaceImages(ctx context.Context, productID string, images []entity.Image) error
}
