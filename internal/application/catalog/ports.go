package catalog

import (
	"context"

	"github.com/jhoicas/store-admin-api/internal/domain/repository"
)

// ProductTxRunner ejecuta fn dentro de una transacción con un repositorio de productos atado a ella.
// Garantiza que el reemplazo de imágenes no deje productos a medias.
type ProductTxRunner interface {
	RunProducts(ctx context.Context, fn func(products repository.ProductRepository) error) error
}
