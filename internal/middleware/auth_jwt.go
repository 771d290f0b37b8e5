package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/navfer/DamGram-Servidor/internal/auth"
)

// UsernameKey is where RequireAuth stashes the validated principal.
const UsernameKey = "username"

// RequireAuth guards a route group with Bearer-token validation. Any
// failure mode is the same 401; the middleware never reveals which check
// rejected the token.
func RequireAuth(issuer auth.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"error": "missing bearer token"})
		}

		username, err := issuer.Validate(strings.TrimSpace(header[7:]))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"error": "token is not valid or has expired"})
		}

		c.Locals(UsernameKey, username)
		return c.Next()
	}
}
