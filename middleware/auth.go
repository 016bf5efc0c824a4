// middleware/auth.go - session guard
package middleware

import (
	"strings"

	"hackreg/auth"
	"hackreg/models"

	"github.com/gofiber/fiber/v2"
)

// Guard validates bearer tokens on protected routes. The secret is
// injected once at startup.
type Guard struct {
	secret []byte
}

func NewGuard(secret []byte) *Guard {
	return &Guard{secret: secret}
}

// RequireRoles returns a handler that rejects requests without a valid
// token (401) or with a role outside the allowed list (403), and attaches
// the decoded identity to the request context for downstream handlers.
func (g *Guard) RequireRoles(roles ...models.Role) fiber.Handler {
	allowed := make(map[models.Role]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Authentication required"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization header format"})
		}

		claims, err := auth.Parse(parts[1], g.secret)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		if len(allowed) > 0 && !allowed[claims.Role] {
			return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
		}

		c.Locals("email", claims.Email)
		c.Locals("name", claims.Name)
		c.Locals("role", claims.Role)
		c.Locals("teamId", claims.TeamID)
		c.Locals("teamName", claims.TeamName)

		return c.Next()
	}
}

// ClaimsFromCtx rebuilds the decoded identity a guard stored on the
// request context.
func ClaimsFromCtx(c *fiber.Ctx) auth.Claims {
	claims := auth.Claims{}
	if v, ok := c.Locals("email").(string); ok {
		claims.Email = v
	}
	if v, ok := c.Locals("name").(string); ok {
		claims.Name = v
	}
	if v, ok := c.Locals("role").(models.Role); ok {
		claims.Role = v
	}
	if v, ok := c.Locals("teamId").(uint); ok {
		claims.TeamID = v
	}
	if v, ok := c.Locals("teamName").(string); ok {
		claims.TeamName = v
	}
	return claims
}
