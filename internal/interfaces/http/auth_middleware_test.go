package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/store-admin-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/store-admin-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "store-admin-test"
	testExpMin    = 60
)

// bearerFor genera el header Authorization para el usuario.
func bearerFor(t *testing.T, userID string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, userID+"@example.com", testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// buildIdentityApp expone la identidad que dejó el middleware en /whoami.
func buildIdentityApp() *fiber.App {
	app := fiber.New()
	app.Get("/whoami", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"email":   apphttp.GetEmail(c),
		})
	})
	return app
}

func whoami(t *testing.T, authHeader string) map[string]string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := buildIdentityApp().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	// El middleware nunca corta la petición.
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]string
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ValidToken_LoadsIdentity(t *testing.T) {
	got := whoami(t, bearerFor(t, "user-1"))
	assert.Equal(t, "user-1", got["user_id"])
	assert.Equal(t, "user-1@example.com", got["email"])
}

func TestAuthMiddleware_SchemeIsCaseInsensitive(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, "user-2", "", testIssuer, testExpMin)
	require.NoError(t, err)
	assert.Equal(t, "user-2", whoami(t, "bearer "+tok)["user_id"])
}

func TestAuthMiddleware_WithoutIdentity(t *testing.T) {
	otherSecret, err := pkgjwt.Generate("otro-secreto", "user-3", "", testIssuer, testExpMin)
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
	}{
		{"sin header", ""},
		{"sin esquema", "abc.def.ghi"},
		{"esquema basic", "Basic dXNlcjpwYXNz"},
		{"bearer vacío", "Bearer "},
		{"token corrupto", "Bearer token.invalido.x"},
		{"firma con otro secreto", "Bearer " + otherSecret},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := whoami(t, tc.header)
			assert.Empty(t, got["user_id"])
			assert.Empty(t, got["email"])
		})
	}
}

func TestAuthMiddleware_ExpiredToken_IsIgnored(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, "user-4", "", testIssuer, -1)
	require.NoError(t, err)
	assert.Empty(t, whoami(t, "Bearer "+tok)["user_id"])
}
