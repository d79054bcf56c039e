package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/store-admin-api/internal/application/dto"
	"github.com/jhoicas/store-admin-api/internal/domain/entity"
	"github.com/jhoicas/store-admin-api/internal/domain/repository"
)

// Servicios concretos por entidad.
type (
	BillboardService = Service[entity.Billboard, dto.BillboardRequest]
	CategoryService  = Service[entity.Category, dto.CategoryRequest]
	SizeService      = Service[entity.Size, dto.AttributeRequest]
	ColorService     = Service[entity.Color, dto.AttributeRequest]
	ProductService   = Service[entity.Product, dto.ProductRequest]
)

// NewBillboardService billboards: label + imageUrl obligatorios.
func NewBillboardService(stores repository.StoreRepository, repo repository.BillboardRepository) *BillboardService {
	return NewService(stores, Resource[entity.Billboard, dto.BillboardRequest]{
		Name: "billboard",
		Repo: repo,
		Required: func(in dto.BillboardRequest) []Requirement {
			return []Requirement{Text("label", in.Label), Text("imageUrl", in.ImageURL)}
		},
		Build: func(storeID, id string, in dto.BillboardRequest, now time.Time) *entity.Billboard {
			return &entity.Billboard{
				ID:        id,
				StoreID:   storeID,
				Label:     in.Label,
				ImageURL:  in.ImageURL,
				CreatedAt: now,
				UpdatedAt: now,
			}
		},
	})
}

// NewCategoryService categorías: name + billboardId obligatorios; el billboard debe ser de la tienda.
func NewCategoryService(stores repository.StoreRepository, repo repository.CategoryRepository, billboards repository.BillboardRepository) *CategoryService {
	return NewService(stores, Resource[entity.Category, dto.CategoryRequest]{
		Name: "category",
		Repo: repo,
		Required: func(in dto.CategoryRequest) []Requirement {
			return []Requirement{Text("name", in.Name), Text("billboardId", in.BillboardID)}
		},
		Refs: func(ctx context.Context, storeID string, in dto.CategoryRequest) error {
			return BelongsTo(ctx, billboards, storeID, "billboardId", in.BillboardID)
		},
		Build: func(storeID, id string, in dto.CategoryRequest, now time.Time) *entity.Category {
			return &entity.Category{
				ID:          id,
				StoreID:     storeID,
				BillboardID: in.BillboardID,
				Name:        in.Name,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
		},
	})
}

func attributeRequired(in dto.AttributeRequest) []Requirement {
	return []Requirement{Text("name", in.Name), Text("value", in.Value)}
}

// NewSizeService tallas: name + value obligatorios.
func NewSizeService(stores repository.StoreRepository, repo repository.SizeRepository) *SizeService {
	return NewService(stores, Resource[entity.Size, dto.AttributeRequest]{
		Name:     "size",
		Repo:     repo,
		Required: attributeRequired,
		Build: func(storeID, id string, in dto.AttributeRequest, now time.Time) *entity.Size {
			return &entity.Size{ID: id, StoreID: storeID, Name: in.Name, Value: in.Value, CreatedAt: now, UpdatedAt: now}
		},
	})
}

// NewColorService colores: name + value obligatorios.
func NewColorService(stores repository.StoreRepository, repo repository.ColorRepository) *ColorService {
	return NewService(stores, Resource[entity.Color, dto.AttributeRequest]{
		Name:     "color",
		Repo:     repo,
		Required: attributeRequired,
		Build: func(storeID, id string, in dto.AttributeRequest, now time.Time) *entity.Color {
			return &entity.Color{ID: id, StoreID: storeID, Name: in.Name, Value: in.Value, CreatedAt: now, UpdatedAt: now}
		},
	})
}

// ProductRefs repositorios donde deben existir la categoría, la talla y el color de un producto.
type ProductRefs struct {
	Categories repository.CategoryRepository
	Sizes      repository.SizeRepository
	Colors     repository.ColorRepository
}

// NewProductService productos: name, images, price, categoryId, sizeId, colorId obligatorios,
// y las tres referencias deben ser de la misma tienda.
// Crear y actualizar corren en una transacción para que las imágenes se reemplacen completas.
func NewProductService(stores repository.StoreRepository, repo repository.ProductRepository, tx ProductTxRunner, refs ProductRefs) *ProductService {
	return NewService(stores, Resource[entity.Product, dto.ProductRequest]{
		Name: "product",
		Repo: repo,
		Required: func(in dto.ProductRequest) []Requirement {
			return []Requirement{
				Text("name", in.Name),
				Present("images", hasImages(in.Images)),
				Present("price", in.Price.IsPositive()),
				Text("categoryId", in.CategoryID),
				Text("sizeId", in.SizeID),
				Text("colorId", in.ColorID),
			}
		},
		Refs: func(ctx context.Context, storeID string, in dto.ProductRequest) error {
			if err := BelongsTo(ctx, refs.Categories, storeID, "categoryId", in.CategoryID); err != nil {
				return err
			}
			if err := BelongsTo(ctx, refs.Sizes, storeID, "sizeId", in.SizeID); err != nil {
				return err
			}
			return BelongsTo(ctx, refs.Colors, storeID, "colorId", in.ColorID)
		},
		Build: buildProduct,
		Insert: func(ctx context.Context, p *entity.Product) error {
			return tx.RunProducts(ctx, func(products repository.ProductRepository) error {
				return products.Create(ctx, p)
			})
		},
		Save: func(ctx context.Context, p *entity.Product) error {
			return tx.RunProducts(ctx, func(products repository.ProductRepository) error {
				if err := products.Update(ctx, p); err != nil {
					return err
				}
				return products.ReplaceImages(ctx, p.ID, p.Images)
			})
		},
	})
}

func hasImages(images []dto.ImageRequest) bool {
	if len(images) == 0 {
		return false
	}
	for _, img := range images {
		if strings.TrimSpace(img.URL) == "" {
			return false
		}
	}
	return true
}

func buildProduct(storeID, id string, in dto.ProductRequest, now time.Time) *entity.Product {
	p := &entity.Product{
		ID:         id,
		StoreID:    storeID,
		CategoryID: in.CategoryID,
		SizeID:     in.SizeID,
		ColorID:    in.ColorID,
		Name:       in.Name,
		Price:      in.Price,
		IsFeatured: in.IsFeatured,
		IsArchived: in.IsArchived,
		CreatedAt:  now,
		UpdatedAt:  now,
		Images:     make([]entity.Image, 0, len(in.Images)),
	}
	for i, img := range in.Images {
		p.Images = append(p.Images, entity.Image{
			ProductID: id,
			URL:       img.URL,
			Position:  i,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return p
}
