package entity

import "time"

// Image es una URL de imagen de un producto. Position define el orden dentro del producto.
type Image struct {
	ID        string
	ProductID string
	URL       string
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
