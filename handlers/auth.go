// handlers/auth.go - team member login and session introspection
package handlers

import (
	"hackreg/middleware"
	"hackreg/services"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserInfo struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	TeamID   uint   `json:"team_id,omitempty"`
	TeamName string `json:"team_name,omitempty"`
}

// LoginTeam handles POST /api/login/team.
func (h *AuthHandler) LoginTeam(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Email and password are required"})
	}

	token, participant, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}

	user := UserInfo{
		Email: participant.Email,
		Name:  participant.Name,
		Role:  string(participant.Role),
	}
	if participant.Team != nil {
		user.TeamID = participant.Team.ID
		user.TeamName = participant.Team.Name
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Me handles GET /api/me: the identity decoded from the presented token.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromCtx(c)

	return c.JSON(fiber.Map{
		"user": UserInfo{
			Email:    claims.Email,
			Name:     claims.Name,
			Role:     string(claims.Role),
			TeamID:   claims.TeamID,
			TeamName: claims.TeamName,
		},
	})
}
