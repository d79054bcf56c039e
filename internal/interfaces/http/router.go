package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/store-admin-api/internal/application/auth"
	"github.com/jhoicas/store-admin-api/internal/application/catalog"
	"github.com/jhoicas/store-admin-api/internal/application/dto"
	"github.com/jhoicas/store-admin-api/internal/application/usecase"
	"github.com/jhoicas/store-admin-api/internal/domain/entity"
	"github.com/jhoicas/store-admin-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StoreUC       *usecase.StoreUseCase
	Billboards    *catalog.BillboardService
	Categories    *catalog.CategoryService
	Sizes         *catalog.SizeService
	Colors        *catalog.ColorService
	Products      *catalog.ProductService
	ProductSearch *catalog.ProductSearch
	CatalogExport *usecase.CatalogExportUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
	Log           *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Auth (emisor local de tokens)
	authHandler := NewAuthHandler(deps.AuthUC, log)
	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)

	// Stores (antes que /:storeId para que "stores" no se tome como id)
	storeHandler := NewStoreHandler(deps.StoreUC, log)
	api.Post("/stores", storeHandler.Create)
	api.Get("/stores", storeHandler.List)
	api.Get("/stores/:storeId", storeHandler.GetByID)
	api.Patch("/stores/:storeId", storeHandler.Update)
	api.Delete("/stores/:storeId", storeHandler.Delete)

	// Catálogo PDF (solo el dueño)
	if deps.CatalogExport != nil {
		api.Get("/:storeId/catalog.pdf", NewCatalogHandler(deps.CatalogExport, log).PDF)
	}

	// Entidades de la tienda: mismas cinco rutas para todas
	RegisterResource(api, log, Resource[entity.Billboard, dto.BillboardRequest, dto.BillboardResponse]{
		Path:    "billboards",
		Service: deps.Billboards,
		Present: dto.NewBillboardResponse,
	})
	RegisterResource(api, log, Resource[entity.Category, dto.CategoryRequest, dto.CategoryResponse]{
		Path:    "categories",
		Service: deps.Categories,
		Present: dto.NewCategoryResponse,
	})
	RegisterResource(api, log, Resource[entity.Size, dto.AttributeRequest, dto.SizeResponse]{
		Path:    "sizes",
		Service: deps.Sizes,
		Present: dto.NewSizeResponse,
	})
	RegisterResource(api, log, Resource[entity.Color, dto.AttributeRequest, dto.ColorResponse]{
		Path:    "colors",
		Service: deps.Colors,
		Present: dto.NewColorResponse,
	})
	products := Resource[entity.Product, dto.ProductRequest, dto.ProductResponse]{
		Path:    "products",
		Service: deps.Products,
		Present: dto.NewProductResponse,
	}
	if deps.ProductSearch != nil {
		products.List = NewProductListHandler(deps.ProductSearch, log).List
	}
	RegisterResource(api, log, products)
}
