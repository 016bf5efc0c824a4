// handlers/admin/auth.go - organizer login
package admin

import (
	"time"

	"hackreg/services"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	auth  *services.AuthService
	teams *services.TeamService
}

func NewHandler(auth *services.AuthService, teams *services.TeamService) *Handler {
	return &Handler{auth: auth, teams: teams}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	Username  string `json:"username"`
	ExpiresAt int64  `json:"expires_at"`
}

// Login authenticates an organizer and issues an admin token.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Username and password are required"})
	}

	token, admin, err := h.auth.LoginAdmin(req.Username, req.Password)
	if err != nil {
		if services.CodeOf(err) == services.ErrorCodeUnauthorized {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
	}

	return c.JSON(LoginResponse{
		Token:     token,
		Username:  admin.Username,
		ExpiresAt: time.Now().Add(h.auth.TTL()).Unix(),
	})
}
