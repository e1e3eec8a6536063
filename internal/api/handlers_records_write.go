package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kairoszero/satlog/internal/services"
)

// UpsertRecord writes the caller's record for the submitted date: a fresh
// date answers 201, resubmitting an already-recorded date updates the row in
// place and answers 200.
func (handler *Handler) UpsertRecord(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := recordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	day, normalized, fieldErrors := handler.normalizeRecordInput(input)
	if fieldErrors.HasErrors() {
		return validationError(c, fieldErrors)
	}

	dayStart, dayEnd := services.DayRange(day, handler.location)
	record, created, err := handler.repositories.Records.UpsertForDay(
		user.ID, dayStart, dayEnd, normalized.SatisfactionLevel, normalized.Memo)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save record")
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(handler.recordPayload(record, user.Email))
}

func (handler *Handler) UpdateRecord(c *fiber.Ctx) error {
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

	input := recordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	day, normalized, fieldErrors := handler.normalizeRecordInput(input)
	if fieldErrors.HasErrors() {
		return validationError(c, fieldErrors)
	}

	dayStart, dayEnd := services.DayRange(day, handler.location)
	if services.DayKey(record.Date, handler.location) != services.DayKey(dayStart, handler.location) {
		// Moving the record to another date must not collide with an
		// existing record there.
		other, found, err := handler.repositories.Records.FindByUserAndDayRange(user.ID, dayStart, dayEnd)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to save record")
		}
		if found && other.ID != record.ID {
			fieldErrors.Add("date", "a record for this date already exists")
			return validationError(c, fieldErrors)
		}
	}

	record.SatisfactionLevel = normalized.SatisfactionLevel
	record.Memo = normalized.Memo
	record.Date = dayStart
	if err := handler.repositories.Records.Save(&record); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save record")
	}

	return c.JSON(handler.recordPayload(record, user.Email))
}
