package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kairoszero/satlog/internal/services"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func parseRegisterInput(c *fiber.Ctx) (registerInput, error) {
	input := registerInput{}
	if err := c.BodyParser(&input); err != nil {
		return registerInput{}, err
	}
	input.Email = services.NormalizeEmail(input.Email)
	input.Username = strings.TrimSpace(input.Username)
	return input, nil
}

func parseLoginInput(c *fiber.Ctx) (loginInput, error) {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return loginInput{}, err
	}
	input.Email = services.NormalizeEmail(input.Email)
	return input, nil
}

// normalizeRecordInput turns the raw payload into a validated record write.
// A missing satisfaction_level is reported as its own field error so the
// client can tell "absent" apart from "out of range".
func (handler *Handler) normalizeRecordInput(input recordInput) (time.Time, services.RecordInput, services.FieldErrors) {
	normalized := services.RecordInput{
		Memo: input.Memo,
		Date: strings.TrimSpace(input.Date),
	}
	if input.SatisfactionLevel != nil {
		normalized.SatisfactionLevel = *input.SatisfactionLevel
	}

	day, fieldErrors := services.ValidateRecordInput(normalized, handler.location)
	if input.SatisfactionLevel == nil {
		fieldErrors["satisfaction_level"] = []string{"satisfaction level is required"}
	}
	return day, normalized, fieldErrors
}

func parsePagination(c *fiber.Ctx) (int, int) {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	pageSize := c.QueryInt("page_size", defaultPageSize)
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// parseDateRangeQuery reads the optional inclusive [start_date, end_date]
// filter and converts it into half-open storage bounds.
func (handler *Handler) parseDateRangeQuery(c *fiber.Ctx) (*time.Time, *time.Time, services.FieldErrors) {
	fieldErrors := services.FieldErrors{}

	var fromStart *time.Time
	if raw := strings.TrimSpace(c.Query("start_date")); raw != "" {
		day, err := services.ParseDay(raw, handler.location)
		if err != nil {
			fieldErrors.Add("start_date", "start_date must be a valid calendar date (YYYY-MM-DD)")
		} else {
			fromStart = &day
		}
	}

	var toEnd *time.Time
	if raw := strings.TrimSpace(c.Query("end_date")); raw != "" {
		day, err := services.ParseDay(raw, handler.location)
		if err != nil {
			fieldErrors.Add("end_date", "end_date must be a valid calendar date (YYYY-MM-DD)")
		} else {
			exclusiveEnd := day.AddDate(0, 0, 1)
			toEnd = &exclusiveEnd
		}
	}

	return fromStart, toEnd, fieldErrors
}
