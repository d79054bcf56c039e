package entity

import "time"

// Color es un color de producto; Value suele ser un código hexadecimal (#RRGGBB).
type Color struct {
	ID        string
	StoreID   string
	Name      string
	Value     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
