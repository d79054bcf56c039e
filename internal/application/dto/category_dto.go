package dto

import (
	"time"

	"github.com/jhoicas/store-admin-api/internal/domain/entity"
)

// CategoryRequest entrada para crear o reemplazar una categoría.
type CategoryRequest struct {
	Name        string `json:"name"`
	BillboardID string `json:"billboardId"`
}

// CategoryResponse salida de una categoría (incluye el billboard en lecturas individuales).
type CategoryResponse struct {
	ID          string             `json:"id"`
	StoreID     string             `json:"storeId"`
	BillboardID string             `json:"billboardId"`
	Name        string             `json:"name"`
	Billboard   *BillboardResponse `json:"billboard,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// NewCategoryResponse convierte la entidad.
func NewCategoryResponse(c *entity.Category) CategoryResponse {
	out := CategoryResponse{
		ID:          c.ID,
		StoreID:     c.StoreID,
		BillboardID: c.BillboardID,
		Name:        c.Name,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if c.Billboard != nil {
		b := NewBillboardResponse(c.Billboard)
		out.Billboard = &b
	}
	return out
}
