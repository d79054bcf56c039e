package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CatalogDocument catálogo exportable de una tienda, agrupado por categoría.
type CatalogDocument struct {
	StoreID     string
	StoreName   string
	PublicURL   string // destino del QR; vacío = sin QR
	GeneratedAt time.Time
	Sections    []CatalogSection
}

// CatalogSection productos de una categoría.
type CatalogSection struct {
	Category string
	Items    []CatalogItem
}

// CatalogItem una línea del catálogo.
type CatalogItem struct {
	Name     string
	Price    decimal.Decimal
	Size     string
	Color    string
	Featured bool
}

// ProductCount total de líneas del documento.
func (d CatalogDocument) ProductCount() int {
	n := 0
	for _, s := range d.Sections {
		n += len(s.Items)
	}
	return n
}
