// Package app arma el grafo de dependencias de la API sobre una conexión sqlstore.
package app

import (
	"github.com/jhoicas/store-admin-api/internal/application/auth"
	"github.com/jhoicas/store-admin-api/internal/application/catalog"
	"github.com/jhoicas/store-admin-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/store-admin-api/internal/infrastructure/pdf"
	"github.com/jhoicas/store-admin-api/internal/infrastructure/sqlstore"
	apphttp "github.com/jhoicas/store-admin-api/internal/interfaces/http"
	"github.com/jhoicas/store-admin-api/pkg/logger"
)

// Options parámetros de armado.
type Options struct {
	JWT       auth.JWTConfig
	PublicURL string // base pública de la API para el QR del catálogo
	Lang      string // formato de precios del PDF
	Log       *logger.Logger
}

// Services casos de uso sobre una base. Los comparten la API y cmd/seed.
type Services struct {
	Stores        *usecase.StoreUseCase
	Billboards    *catalog.BillboardService
	Categories    *catalog.CategoryService
	Sizes         *catalog.SizeService
	Colors        *catalog.ColorService
	Products      *catalog.ProductService
	ProductSearch *catalog.ProductSearch
	CatalogExport *usecase.CatalogExportUseCase
	Auth          *auth.AuthUseCase
}

// NewServices construye repositorios y servicios sobre db.
func NewServices(db sqlstore.DB, d sqlstore.Dialect, opts Options) Services {
	repos := sqlstore.NewRepositories(db, d)
	lang := opts.Lang
	if lang == "" {
		lang = "es"
	}
	productRefs := catalog.ProductRefs{
		Categories: repos.Categories,
		Sizes:      repos.Sizes,
		Colors:     repos.Colors,
	}
	return Services{
		Stores:        usecase.NewStoreUseCase(repos.Stores),
		Billboards:    catalog.NewBillboardService(repos.Stores, repos.Billboards),
		Categories:    catalog.NewCategoryService(repos.Stores, repos.Categories, repos.Billboards),
		Sizes:         catalog.NewSizeService(repos.Stores, repos.Sizes),
		Colors:        catalog.NewColorService(repos.Stores, repos.Colors),
		Products:      catalog.NewProductService(repos.Stores, repos.Products, repos.Tx, productRefs),
		ProductSearch: catalog.NewProductSearch(repos.Products),
		CatalogExport: usecase.NewCatalogExportUseCase(
			repos.Stores, repos.Products, repos.Categories,
			infrapdf.NewMarotoCatalogGenerator(lang), opts.PublicURL,
		),
		Auth: auth.NewAuthUseCase(repos.Users, opts.JWT),
	}
}

// RouterDeps construye las dependencias del router HTTP sobre db.
func RouterDeps(db sqlstore.DB, d sqlstore.Dialect, opts Options) apphttp.RouterDeps {
	svc := NewServices(db, d, opts)
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	return apphttp.RouterDeps{
		StoreUC:       svc.Stores,
		Billboards:    svc.Billboards,
		Categories:    svc.Categories,
		Sizes:         svc.Sizes,
		Colors:        svc.Colors,
		Products:      svc.Products,
		ProductSearch: svc.ProductSearch,
		CatalogExport: svc.CatalogExport,
		AuthUC:        svc.Auth,
		JWTSecret:     opts.JWT.Secret,
		Log:           log,
	}
}
