package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/store-admin-api/pkg/jwt"
)

// Locals keys de la identidad en Fiber.
const (
	LocalUserID = "user_id"
	LocalEmail  = "email"
)

// AuthMiddleware lee el Bearer Token JWT y carga la identidad en c.Locals.
// No corta la petición: sin token (o con uno inválido) la petición sigue sin identidad y
// cada operación decide. Las lecturas son públicas; las mutaciones responden 401.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return c.Next()
		}
		userID, email, err := jwt.Parse(jwtSecret, token)
		if err != nil {
			return c.Next()
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalEmail, email)
		return c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetUserID devuelve la identidad de la petición ("" si no hay).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetEmail devuelve el email del token ("" si no hay).
func GetEmail(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalEmail).(string)
	return s
}
