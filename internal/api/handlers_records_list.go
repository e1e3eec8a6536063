package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ListRecords(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	fromStart, toEnd, fieldErrors := handler.parseDateRangeQuery(c)
	if fieldErrors.HasErrors() {
		return validationError(c, fieldErrors)
	}

	page, pageSize := parsePagination(c)
	offset := (page - 1) * pageSize

	records, total, err := handler.repositories.Records.ListByUserRange(user.ID, fromStart, toEnd, offset, pageSize)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load records")
	}
	if page > 1 && len(records) == 0 {
		return apiError(c, fiber.StatusNotFound, "invalid page")
	}

	results := handler.recordListPayload(records, user.Email)
	return c.JSON(paginatedPayload(c, total, page, pageSize, results))
}
