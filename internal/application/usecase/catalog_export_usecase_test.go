package usecase

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/store-admin-api/internal/application/dto"
	"github.com/jhoicas/store-admin-api/internal/domain/entity"
)

func TestBuildCatalogDocument_AgrupaYOrdena(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	store := &entity.Store{ID: "st1", Name: "Acme"}
	categories := []*entity.Category{
		{ID: "c1", Name: "Pantalones"},
		{ID: "c2", Name: "Camisetas"},
		{ID: "c3", Name: "Vacía"},
	}
	price := decimal.RequireFromString("10")
	products := []*entity.Product{
		{Name: "Zeta", CategoryID: "c2", Price: price, Size: &entity.Size{Value: "M"}, Color: &entity.Color{Name: "Negro"}},
		{Name: "Alfa", CategoryID: "c2", Price: price, IsFeatured: true},
		{Name: "Jean", CategoryID: "c1", Price: price},
	}

	got := BuildCatalogDocument(store, categories, products, now)

	want := dto.CatalogDocument{
		StoreID:     "st1",
		StoreName:   "Acme",
		GeneratedAt: now,
		Sections: []dto.CatalogSection{
			{Category: "Camisetas", Items: []dto.CatalogItem{
				{Name: "Alfa", Price: price, Featured: true},
				{Name: "Zeta", Price: price, Size: "M", Color: "Negro"},
			}},
			{Category: "Pantalones", Items: []dto.CatalogItem{
				{Name: "Jean", Price: price},
			}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("documento (-want +got):\n%s", diff)
	}
	if got.ProductCount() != 3 {
		t.Errorf("ProductCount = %d, want 3", got.ProductCount())
	}
}
