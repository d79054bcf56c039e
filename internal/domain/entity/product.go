package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto de la tienda con su colección ordenada de imágenes.
type Product struct {
	ID         string
	StoreID    string
	CategoryID string
	SizeID     string
	ColorID    string
	Name       string
	Price      decimal.Decimal
	IsFeatured bool
	IsArchived bool
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Images []Image

	// Relaciones cargadas por el repositorio en lecturas.
	Category *Category
	Size     *Size
	Color    *Color
}
