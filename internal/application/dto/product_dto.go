package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/store-admin-api/internal/domain/entity"
)

// ImageRequest URL de una imagen ya subida al hosting de archivos.
type ImageRequest struct {
	URL string `json:"url"`
}

// ProductRequest entrada para crear o reemplazar un producto (PATCH reemplaza todas las imágenes).
type ProductRequest struct {
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	CategoryID string          `json:"categoryId"`
	SizeID     string          `json:"sizeId"`
	ColorID    string          `json:"colorId"`
	Images     []ImageRequest  `json:"images"`
	IsFeatured bool            `json:"isFeatured"`
	IsArchived bool            `json:"isArchived"`
}

// ImageResponse salida de una imagen.
type ImageResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProductResponse salida de un producto. Las relaciones solo vienen en lecturas individuales.
type ProductResponse struct {
	ID         string            `json:"id"`
	StoreID    string            `json:"storeId"`
	CategoryID string            `json:"categoryId"`
	SizeID     string            `json:"sizeId"`
	ColorID    string            `json:"colorId"`
	Name       string            `json:"name"`
	Price      decimal.Decimal   `json:"price"`
	IsFeatured bool              `json:"isFeatured"`
	IsArchived bool              `json:"isArchived"`
	Images     []ImageResponse   `json:"images"`
	Category   *CategoryResponse `json:"category,omitempty"`
	Size       *SizeResponse     `json:"size,omitempty"`
	Color      *ColorResponse    `json:"color,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

// NewProductResponse convierte la entidad con sus relaciones cargadas.
func NewProductResponse(p *entity.Product) ProductResponse {
	out := ProductResponse{
		ID:         p.ID,
		StoreID:    p.StoreID,
		CategoryID: p.CategoryID,
		SizeID:     p.SizeID,
		ColorID:    p.ColorID,
		Name:       p.Name,
		Price:      p.Price,
		IsFeatured: p.IsFeatured,
		IsArchived: p.IsArchived,
		Images:     make([]ImageResponse, 0, len(p.Images)),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
	for _, img := range p.Images {
		out.Images = append(out.Images, ImageResponse{
			ID:        img.ID,
			ProductID: img.ProductID,
			URL:       img.URL,
			CreatedAt: img.CreatedAt,
			UpdatedAt: img.UpdatedAt,
		})
	}
	if p.Category != nil {
		c := NewCategoryResponse(p.Category)
		out.Category = &c
	}
	if p.Size != nil {
		s := NewSizeResponse(p.Size)
		out.Size = &s
	}
	if p.Color != nil {
		c := NewColorResponse(p.Color)
		out.Color = &c
	}
	return out
}
