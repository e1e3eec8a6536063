package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// parseRecordID reads the :id path segment. A malformed id behaves like a
// missing record so the URL space never reveals anything.
func parseRecordID(c *fiber.Ctx) (uint, bool) {
	raw := c.Params("id")
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		return 0, false
	}
	return uint(parsed), true
}

func (handler *Handler) GetRecord(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	recordID, ok := parseRecordID(c)
	if !ok {
		return recordNotFound(c)
	}

	record, err := handler.repositories.Records.FindByIDForUser(recordID, user.ID)
	if err != nil {
		return recordNotFound(c)
	}

	return c.JSON(handler.recordPayload(record, user.Email))
}
