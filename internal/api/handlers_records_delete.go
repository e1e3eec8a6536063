package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) DeleteRecord(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	recordID, ok := parseRecordID(c)
	if !ok {
		return recordNotFound(c)
	}

	deleted, err := handler.repositories.Records.DeleteByIDForUser(recordID, user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete record")
	}
	if !deleted {
		return recordNotFound(c)
	}

	return c.JSON(fiber.Map{"message": "record deleted"})
}
