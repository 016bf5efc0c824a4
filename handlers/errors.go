package handlers

import (
	"errors"
	"log"

	"hackreg/services"

	"github.com/gofiber/fiber/v2"
)

// statusForCode maps service error codes to HTTP statuses. Unresolvable
// problem references arrive as VALIDATION, so they land on 400; NOT_FOUND
// covers direct lookups like the admin team view.
func statusForCode(code services.ErrorCode) int {
	switch code {
	case services.ErrorCodeValidation, services.ErrorCodeConflict:
		return 400
	case services.ErrorCodeUnauthorized:
		return 401
	case services.ErrorCodeNotFound:
		return 404
	default:
		return 500
	}
}

// fail converts a service error into the JSON error response. Anything
// that is not a service error is logged and reported as a generic 500.
func fail(c *fiber.Ctx, err error) error {
	var serviceErr *services.Error
	if errors.As(err, &serviceErr) {
		return c.Status(statusForCode(serviceErr.Code)).JSON(fiber.Map{
			"error": serviceErr.Message,
		})
	}

	log.Printf("unexpected error: %v", err)
	return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
}
