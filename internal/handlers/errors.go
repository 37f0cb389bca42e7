package handlers

import (
	"errors"

	"storehouse/internal/models"

	"github.com/gofiber/fiber/v2"
)

// statusFromError maps service errors to HTTP status codes. Anything not in
// the taxonomy is an internal error; the caller sees an opaque message while
// the details are logged by the handler.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, models.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, models.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, models.ErrConflict):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// errorResponse writes the error as JSON, hiding internal details behind a
// generic message.
func errorResponse(c *fiber.Ctx, err error, message string) error {
	status := statusFromError(err)
	if status == fiber.StatusInternalServerError {
		return c.Status(status).JSON(fiber.Map{
			"message": message,
		})
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}
