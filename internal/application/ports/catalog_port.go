package ports

import (
	"context"

	"github.com/jhoicas/store-admin-api/internal/application/dto"
)

// CatalogRenderer puerto de salida que convierte el catálogo de una tienda en un documento (PDF).
type CatalogRenderer interface {
	RenderCatalog(ctx context.Context, doc dto.CatalogDocument) ([]byte, error)
}
