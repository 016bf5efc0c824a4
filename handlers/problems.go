// handlers/problems.go - problem statement endpoints
package handlers

import (
	"hackreg/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type ProblemHandler struct {
	problems *services.ProblemService
	validate *validator.Validate
}

func NewProblemHandler(problems *services.ProblemService) *ProblemHandler {
	return &ProblemHandler{
		problems: problems,
		validate: validator.New(),
	}
}

type CreateProblemRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Category    string `json:"category" validate:"required,max=100"`
	Slug        string `json:"slug" validate:"required,max=100"`
	Description string `json:"description" validate:"required"`
	IsActive    *bool  `json:"isActive"`
}

// CreateProblem handles POST /api/problems.
func (h *ProblemHandler) CreateProblem(c *fiber.Ctx) error {
	var req CreateProblemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Missing required fields"})
	}

	problem, err := h.problems.Create(services.ProblemInput{
		Title:       req.Title,
		Category:    req.Category,
		Slug:        req.Slug,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Problem statement created successfully",
		"problem": problem,
	})
}

// ListProblems handles GET /api/problems: every active problem, [] when
// there are none.
func (h *ProblemHandler) ListProblems(c *fiber.Ctx) error {
	problems, err := h.problems.ListActive()
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(problems)
}
