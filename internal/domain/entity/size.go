package entity

import "time"

// Size es una talla (nombre visible + valor, ej. "Mediana"/"M").
type Size struct {
	ID        string
	StoreID   string
	Name      string
	Value     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
