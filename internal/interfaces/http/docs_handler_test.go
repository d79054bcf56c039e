package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/store-admin-api/internal/interfaces/http"
)

func docsApp(t *testing.T, overridePath string) *fiber.App {
	t.Helper()
	h, err := apphttp.Docs(overridePath)
	require.NoError(t, err)
	app := fiber.New()
	app.Use(h)
	return app
}

func TestDocs_ServesEmbeddedDocument(t *testing.T) {
	app := docsApp(t, "")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/swagger.json", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var doc struct {
		Swagger string                    `json:"swagger"`
		Paths   map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "2.0", doc.Swagger)
	assert.Contains(t, doc.Paths, "/api/stores")

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDocs_OverridePathMustExist(t *testing.T) {
	_, err := apphttp.Docs(filepath.Join(t.TempDir(), "no-existe.json"))
	assert.Error(t, err)
}
