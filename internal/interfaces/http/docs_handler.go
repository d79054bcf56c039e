package http

import (
	"fmt"
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/swaggo/swag"

	"github.com/jhoicas/store-admin-api/docs"
)

// Docs monta Swagger UI en /docs. Sin overridePath sirve el documento registrado en swag
// (embebido en el binario); con overridePath lee ese archivo del disco.
func Docs(overridePath string) (fiber.Handler, error) {
	cfg := swagger.Config{
		BasePath: "/",
		FilePath: "swagger.json",
		Path:     "docs",
		Title:    "Store Admin API",
	}
	if overridePath != "" {
		if _, err := os.Stat(overridePath); err != nil {
			return nil, fmt.Errorf("docs: %w", err)
		}
		cfg.FilePath = overridePath
		return swagger.New(cfg), nil
	}

	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		return nil, fmt.Errorf("docs: leer documento registrado: %w", err)
	}
	cfg.FileContent = []byte(doc)
	return swagger.New(cfg), nil
}
