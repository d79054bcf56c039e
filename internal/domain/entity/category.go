package entity

import "time"

// Category agrupa productos de una tienda y muestra un billboard.
type Category struct {
	ID          string
	StoreID     string
	BillboardID string
	Name        string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Billboard *Billboard // solo se carga en lecturas individuales
}
