package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kairoszero/satlog/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// validationError reports per-field messages without writing anything.
func validationError(c *fiber.Ctx, fieldErrors services.FieldErrors) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fieldErrors})
}

// recordNotFound masks foreign-owned records behind the same body a missing
// record produces.
func recordNotFound(c *fiber.Ctx) error {
	return apiError(c, fiber.StatusNotFound, "record not found")
}
