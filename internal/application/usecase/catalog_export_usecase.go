package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/store-admin-api/internal/application/catalog"
	"github.com/jhoicas/store-admin-api/internal/application/dto"
	"github.com/jhoicas/store-admin-api/internal/application/ports"
	"github.com/jhoicas/store-admin-api/internal/domain"
	"github.com/jhoicas/store-admin-api/internal/domain/entity"
	"github.com/jhoicas/store-admin-api/internal/domain/repository"
)

// CatalogExportUseCase genera el catálogo PDF de una tienda (solo el dueño).
type CatalogExportUseCase struct {
	stores     repository.StoreRepository
	products   repository.ProductRepository
	categories repository.CategoryRepository
	renderer   ports.CatalogRenderer
	publicURL  string
}

// NewCatalogExportUseCase construye el caso de uso. publicURL es la base pública de la API (puede ir vacía).
func NewCatalogExportUseCase(
	stores repository.StoreRepository,
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	renderer ports.CatalogRenderer,
	publicURL string,
) *CatalogExportUseCase {
	return &CatalogExportUseCase{
		stores:     stores,
		products:   products,
		categories: categories,
		renderer:   renderer,
		publicURL:  strings.TrimRight(publicURL, "/"),
	}
}

// Export arma el documento con los productos visibles (no archivados) y lo renderiza.
func (uc *CatalogExportUseCase) Export(ctx context.Context, userID, storeID string) ([]byte, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	if strings.TrimSpace(storeID) == "" {
		return nil, domain.Required("storeId")
	}
	store, err := catalog.RequireOwner(ctx, uc.stores, storeID, userID)
	if err != nil {
		return nil, err
	}

	var (
		products   []*entity.Product
		categories []*entity.Category
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = uc.products.List(gctx, storeID, repository.ProductFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = uc.categories.ListByStore(gctx, storeID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("cargar catálogo: %w", err)
	}

	doc := BuildCatalogDocument(store, categories, products, time.Now().UTC())
	if uc.publicURL != "" {
		doc.PublicURL = uc.publicURL + "/api/" + store.ID
	}
	return uc.renderer.RenderCatalog(ctx, doc)
}

// BuildCatalogDocument agrupa los productos por categoría, en orden alfabético de categoría y producto.
// Las categorías sin productos se omiten.
func BuildCatalogDocument(store *entity.Store, categories []*entity.Category, products []*entity.Product, now time.Time) dto.CatalogDocument {
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	bySection := map[string][]dto.CatalogItem{}
	for _, p := range products {
		section := names[p.CategoryID]
		if section == "" && p.Category != nil {
			section = p.Category.Name
		}
		item := dto.CatalogItem{Name: p.Name, Price: p.Price, Featured: p.IsFeatured}
		if p.Size != nil {
			item.Size = p.Size.Value
		}
		if p.Color != nil {
			item.Color = p.Color.Name
		}
		bySection[section] = append(bySection[section], item)
	}

	doc := dto.CatalogDocument{StoreID: store.ID, StoreName: store.Name, GeneratedAt: now}
	for section, items := range bySection {
		sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
		doc.Sections = append(doc.Sections, dto.CatalogSection{Category: section, Items: items})
	}
	sort.Slice(doc.Sections, func(i, j int) bool { return doc.Sections[i].Category < doc.Sections[j].Category })
	return doc
}
