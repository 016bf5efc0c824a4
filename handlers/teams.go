// handlers/teams.go - team registration and team views
package handlers

import (
	"hackreg/middleware"
	"hackreg/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type TeamHandler struct {
	teams    *services.TeamService
	validate *validator.Validate
}

func NewTeamHandler(teams *services.TeamService) *TeamHandler {
	return &TeamHandler{
		teams:    teams,
		validate: validator.New(),
	}
}

type TeamPayload struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
	ProblemID   string `json:"problemId"`
}

type LeaderPayload struct {
	Name   string `json:"name" validate:"required,max=100"`
	Email  string `json:"email" validate:"required,email"`
	Phone  string `json:"phone" validate:"required,max=20"`
	Gender string `json:"gender" validate:"required,oneof=male female other"`
}

type MemberPayload struct {
	Name   string `json:"name" validate:"required,max=100"`
	Email  string `json:"email" validate:"required,email"`
	Gender string `json:"gender" validate:"required,oneof=male female other"`
}

type RegisterTeamRequest struct {
	Team    *TeamPayload    `json:"team" validate:"required"`
	Leader  *LeaderPayload  `json:"leader" validate:"required"`
	Members []MemberPayload `json:"members" validate:"required,min=1,dive"`
}

// RegisterTeam handles POST /api/register-team.
func (h *TeamHandler) RegisterTeam(c *fiber.Ctx) error {
	var req RegisterTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request data"})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request data"})
	}

	input := services.RegistrationInput{
		Team: services.TeamInput{
			Name:        req.Team.Name,
			Description: req.Team.Description,
			ProblemID:   req.Team.ProblemID,
		},
		Leader: services.LeaderInput{
			Name:   req.Leader.Name,
			Email:  req.Leader.Email,
			Phone:  req.Leader.Phone,
			Gender: req.Leader.Gender,
		},
		Members: make([]services.MemberInput, len(req.Members)),
	}
	for i, m := range req.Members {
		input.Members[i] = services.MemberInput{
			Name:   m.Name,
			Email:  m.Email,
			Gender: m.Gender,
		}
	}

	creds, err := h.teams.Register(input)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"message":     "Team registration successful. Credentials have been emailed to all members.",
		"credentials": creds,
	})
}

// GetMyTeam handles GET /api/team for leaders and members: their own team
// with the selected problem and roster.
func (h *TeamHandler) GetMyTeam(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromCtx(c)

	team, err := h.teams.GetTeamByID(claims.TeamID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"team": team})
}

// GetTeamMembers handles GET /api/team/members, restricted to the leader.
func (h *TeamHandler) GetTeamMembers(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromCtx(c)

	team, err := h.teams.GetTeamByID(claims.TeamID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"members": team.Members()})
}
