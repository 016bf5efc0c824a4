// handlers/admin/teams.go - organizer views over registrations
package admin

import (
	"strconv"

	"hackreg/services"

	"github.com/gofiber/fiber/v2"
)

// ListTeams returns every registered team with roster and problem.
func (h *Handler) ListTeams(c *fiber.Ctx) error {
	teams, err := h.teams.ListTeams()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
	}

	return c.JSON(fiber.Map{
		"teams": teams,
		"count": len(teams),
	})
}

// GetTeam returns a single registration by id.
func (h *Handler) GetTeam(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid team id"})
	}

	team, err := h.teams.GetTeamByID(uint(id))
	if err != nil {
		if services.CodeOf(err) == services.ErrorCodeNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Team not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
	}

	return c.JSON(fiber.Map{"team": team})
}
