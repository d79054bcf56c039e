package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/store-admin-api/internal/application/dto"
	"github.com/jhoicas/store-admin-api/internal/domain"
	"github.com/jhoicas/store-admin-api/pkg/logger"
)

// ResourceService contrato de una entidad de la tienda; lo cumple catalog.Service.
type ResourceService[T any, In any] interface {
	Name() string
	Get(ctx context.Context, storeID, id string) (*T, error)
	List(ctx context.Context, storeID string) ([]*T, error)
	Create(ctx context.Context, userID, storeID string, in In) (*T, error)
	Update(ctx context.Context, userID, storeID, id string, in In) (*T, error)
	Delete(ctx context.Context, userID, storeID, id string) (*T, error)
}

// Resource describe cómo se expone una entidad bajo /api/:storeId/<Path>.
type Resource[T any, In any, Out any] struct {
	Path    string
	Service ResourceService[T, In]
	Present func(*T) Out
	// List reemplaza el listado por defecto (productos con filtros).
	List fiber.Handler
}

type resourceHandler[T any, In any, Out any] struct {
	res Resource[T, In, Out]
	log *logger.Logger
}

// RegisterResource monta GET/POST sobre la colección y GET/PATCH/DELETE sobre el registro.
func RegisterResource[T any, In any, Out any](r fiber.Router, log *logger.Logger, res Resource[T, In, Out]) {
	h := &resourceHandler[T, In, Out]{res: res, log: log}
	g := r.Group("/:storeId/" + res.Path)
	if res.List != nil {
		g.Get("/", res.List)
	} else {
		g.Get("/", h.list)
	}
	g.Post("/", h.create)
	g.Get("/:id", h.get)
	g.Patch("/:id", h.update)
	g.Delete("/:id", h.delete)
}

func (h *resourceHandler[T, In, Out]) op(action string) string {
	return h.res.Service.Name() + "." + action
}

func (h *resourceHandler[T, In, Out]) get(c *fiber.Ctx) error {
	item, err := h.res.Service.Get(c.UserContext(), c.Params("storeId"), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, h.op("get"), err)
	}
	return c.JSON(h.res.Present(item))
}

func (h *resourceHandler[T, In, Out]) list(c *fiber.Ctx) error {
	items, err := h.res.Service.List(c.UserContext(), c.Params("storeId"))
	if err != nil {
		return writeError(c, h.log, h.op("list"), err)
	}
	return c.JSON(dto.NewList(items, h.res.Present))
}

func (h *resourceHandler[T, In, Out]) create(c *fiber.Ctx) error {
	// Sin identidad la respuesta es 401 aunque el cuerpo sea inválido.
	userID := GetUserID(c)
	if userID == "" {
		return writeError(c, h.log, h.op("create"), domain.ErrUnauthenticated)
	}
	var in In
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	item, err := h.res.Service.Create(c.UserContext(), userID, c.Params("storeId"), in)
	if err != nil {
		return writeError(c, h.log, h.op("create"), err)
	}
	return c.JSON(h.res.Present(item))
}

func (h *resourceHandler[T, In, Out]) update(c *fiber.Ctx) error {
	// Sin identidad la respuesta es 401 aunque el cuerpo sea inválido.
	userID := GetUserID(c)
	if userID == "" {
		return writeError(c, h.log, h.op("update"), domain.ErrUnauthenticated)
	}
	var in In
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	item, err := h.res.Service.Update(c.UserContext(), userID, c.Params("storeId"), c.Params("id"), in)
	if err != nil {
		return writeError(c, h.log, h.op("update"), err)
	}
	return c.JSON(h.res.Present(item))
}

func (h *resourceHandler[T, In, Out]) delete(c *fiber.Ctx) error {
	item, err := h.res.Service.Delete(c.UserContext(), GetUserID(c), c.Params("storeId"), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, h.op("delete"), err)
	}
	return c.JSON(h.res.Present(item))
}
