package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/store-admin-api/internal/application/catalog"
	"github.com/jhoicas/store-admin-api/internal/application/dto"
	"github.com/jhoicas/store-admin-api/internal/domain/repository"
	"github.com/jhoicas/store-admin-api/pkg/logger"
)

// ProductListHandler listado público de productos con filtros.
type ProductListHandler struct {
	search *catalog.ProductSearch
	log    *logger.Logger
}

// NewProductListHandler construye el handler.
func NewProductListHandler(search *catalog.ProductSearch, log *logger.Logger) *ProductListHandler {
	return &ProductListHandler{search: search, log: log}
}

// List godoc
// @Summary      Listar productos
// @Description  Los archivados se omiten salvo includeArchived=true.
// @Tags         products
// @Produce      json
// @Param        storeId          path   string  true   "ID de la tienda"
// @Param        categoryId       query  string  false  "Filtrar por categoría"
// @Param        sizeId           query  string  false  "Filtrar por talla"
// @Param        colorId          query  string  false  "Filtrar por color"
// @Param        isFeatured       query  bool    false  "Solo destacados"
// @Param        includeArchived  query  bool    false  "Incluir archivados"
// @Success      200  {object}  dto.ListResponse[dto.ProductResponse]
// @Router       /api/{storeId}/products [get]
func (h *ProductListHandler) List(c *fiber.Ctx) error {
	filter := repository.ProductFilter{
		CategoryID:      c.Query("categoryId"),
		SizeID:          c.Query("sizeId"),
		ColorID:         c.Query("colorId"),
		OnlyFeatured:    c.Query("isFeatured") == "true",
		IncludeArchived: c.Query("includeArchived") == "true",
	}
	products, err := h.search.Search(c.UserContext(), c.Params("storeId"), filter)
	if err != nil {
		return writeError(c, h.log, "product.list", err)
	}
	return c.JSON(dto.NewList(products, dto.NewProductResponse))
}
