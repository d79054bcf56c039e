package dto

import (
	"time"

	"github.com/jhoicas/store-admin-api/internal/domain/entity"
)

// BillboardRequest entrada para crear o reemplazar un billboard.
type BillboardRequest struct {
	Label    string `json:"label"`
	ImageURL string `json:"imageUrl"`
}

// BillboardResponse salida de un billboard.
type BillboardResponse struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"storeId"`
	Label     string    `json:"label"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewBillboardResponse convierte la entidad.
func NewBillboardResponse(b *entity.Billboard) BillboardResponse {
	return BillboardResponse{
		ID:        b.ID,
		StoreID:   b.StoreID,
		Label:     b.Label,
		ImageURL:  b.ImageURL,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
