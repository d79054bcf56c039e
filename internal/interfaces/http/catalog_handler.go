package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/store-admin-api/internal/application/usecase"
	"github.com/jhoicas/store-admin-api/pkg/logger"
)

// CatalogHandler exporta el catálogo PDF.
type CatalogHandler struct {
	uc  *usecase.CatalogExportUseCase
	log *logger.Logger
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogExportUseCase, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{uc: uc, log: log}
}

// PDF godoc
// @Summary      Catálogo PDF de la tienda
// @Tags         stores
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        storeId  path  string  true  "ID de la tienda"
// @Success      200  {file}    binary
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/{storeId}/catalog.pdf [get]
func (h *CatalogHandler) PDF(c *fiber.Ctx) error {
	out, err := h.uc.Export(c.UserContext(), GetUserID(c), c.Params("storeId"))
	if err != nil {
		return writeError(c, h.log, "catalog.pdf", err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="catalogo.pdf"`)
	return c.Send(out)
}
