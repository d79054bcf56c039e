package dto

import (
	"time"

	"github.com/jhoicas/store-admin-api/internal/domain/entity"
)

// AttributeRequest entrada para tallas y colores (ambos son nombre + valor).
type AttributeRequest struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SizeResponse salida de una talla.
type SizeResponse struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"storeId"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ColorResponse salida de un color.
type ColorResponse SizeResponse

// NewSizeResponse convierte la entidad.
func NewSizeResponse(s *entity.Size) SizeResponse {
	return SizeResponse{
		ID:        s.ID,
		StoreID:   s.StoreID,
		Name:      s.Name,
		Value:     s.Value,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// NewColorResponse convierte la entidad.
func NewColorResponse(c *entity.Color) ColorResponse {
	return ColorResponse{
		ID:        c.ID,
		StoreID:   c.StoreID,
		Name:      c.Name,
		Value:     c.Value,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
