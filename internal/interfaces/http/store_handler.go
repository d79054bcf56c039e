package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/store-admin-api/internal/application/dto"
	"github.com/jhoicas/store-admin-api/internal/application/usecase"
	"github.com/jhoicas/store-admin-api/internal/domain"
	"github.com/jhoicas/store-admin-api/pkg/logger"
)

// StoreHandler maneja las tiendas.
type StoreHandler struct {
	uc  *usecase.StoreUseCase
	log *logger.Logger
}

// NewStoreHandler construye el handler.
func NewStoreHandler(uc *usecase.StoreUseCase, log *logger.Logger) *StoreHandler {
	return &StoreHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear tienda
// @Tags         stores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.StoreRequest  true  "name"
// @Success      200   {object}  dto.StoreResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/stores [post]
func (h *StoreHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return writeError(c, h.log, "store.create", domain.ErrUnauthenticated)
	}
	var in dto.StoreRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	store, err := h.uc.Create(c.UserContext(), userID, in)
	if err != nil {
		return writeError(c, h.log, "store.create", err)
	}
	return c.JSON(dto.NewStoreResponse(store))
}

// List godoc
// @Summary      Tiendas del usuario
// @Tags         stores
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ListResponse[dto.StoreResponse]
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/stores [get]
func (h *StoreHandler) List(c *fiber.Ctx) error {
	stores, err := h.uc.ListMine(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, h.log, "store.list", err)
	}
	return c.JSON(dto.NewList(stores, dto.NewStoreResponse))
}

// GetByID godoc
// @Summary      Obtener tienda
// @Tags         stores
// @Produce      json
// @Param        storeId  path  string  true  "ID de la tienda"
// @Success      200  {object}  dto.StoreResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stores/{storeId} [get]
func (h *StoreHandler) GetByID(c *fiber.Ctx) error {
	store, err := h.uc.Get(c.UserContext(), c.Params("storeId"))
	if err != nil {
		return writeError(c, h.log, "store.get", err)
	}
	return c.JSON(dto.NewStoreResponse(store))
}

// Update godoc
// @Summary      Renombrar tienda
// @Tags         stores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        storeId  path  string           true  "ID de la tienda"
// @Param        body     body  dto.StoreRequest  true  "name"
// @Success      200  {object}  dto.StoreResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/stores/{storeId} [patch]
func (h *StoreHandler) Update(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return writeError(c, h.log, "store.update", domain.ErrUnauthenticated)
	}
	var in dto.StoreRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	store, err := h.uc.Update(c.UserContext(), userID, c.Params("storeId"), in)
	if err != nil {
		return writeError(c, h.log, "store.update", err)
	}
	return c.JSON(dto.NewStoreResponse(store))
}

// Delete godoc
// @Summary      Eliminar tienda
// @Description  Falla con 500 mientras la tienda tenga registros asociados.
// @Tags         stores
// @Produce      json
// @Security     BearerAuth
// @Param        storeId  path  string  true  "ID de la tienda"
// @Success      200  {object}  dto.StoreResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stores/{storeId} [delete]
func (h *StoreHandler) Delete(c *fiber.Ctx) error {
	store, err := h.uc.Delete(c.UserContext(), GetUserID(c), c.Params("storeId"))
	if err != nil {
		return writeError(c, h.log, "store.delete", err)
	}
	return c.JSON(dto.NewStoreResponse(store))
}
