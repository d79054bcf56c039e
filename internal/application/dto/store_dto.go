package dto

import (
	"time"

	"github.com/jhoicas/store-admin-api/internal/domain/entity"
)

// StoreRequest entrada para crear o renombrar una tienda.
type StoreRequest struct {
	Name string `json:"name"`
}

// StoreResponse salida de una tienda.
type StoreResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewStoreResponse convierte la entidad.
func NewStoreResponse(s *entity.Store) StoreResponse {
	return StoreResponse{
		ID:        s.ID,
		Name:      s.Name,
		UserID:    s.UserID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
