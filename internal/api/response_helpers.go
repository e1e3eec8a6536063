package api

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/kairoszero/satlog/internal/models"
	"github.com/kairoszero/satlog/internal/services"
)

func userPayload(user *models.User) fiber.Map {
	return fiber.Map{
		"id":         user.ID,
		"email":      user.Email,
		"username":   user.Username,
		"created_at": user.CreatedAt,
	}
}

func (handler *Handler) recordPayload(record models.Record, userEmail string) fiber.Map {
	return fiber.Map{
		"id":                   record.ID,
		"satisfaction_level":   record.SatisfactionLevel,
		"satisfaction_display": models.SatisfactionLabel(record.SatisfactionLevel),
		"memo":                 record.Memo,
		"date":                 services.DayKey(record.Date, handler.location),
		"created_at":           record.CreatedAt,
		"updated_at":           record.UpdatedAt,
		"user_email":           userEmail,
	}
}

func (handler *Handler) recordListPayload(records []models.Record, userEmail string) []fiber.Map {
	results := make([]fiber.Map, 0, len(records))
	for _, record := range records {
		results = append(results, handler.recordPayload(record, userEmail))
	}
	return results
}

// paginatedPayload wraps a result page in the count/next/previous envelope.
func paginatedPayload(c *fiber.Ctx, total int64, page int, pageSize int, results []fiber.Map) fiber.Map {
	payload := fiber.Map{
		"count":    total,
		"next":     nil,
		"previous": nil,
		"results":  results,
	}
	if int64(page*pageSize) < total {
		payload["next"] = pageURL(c, page+1)
	}
	if page > 1 {
		payload["previous"] = pageURL(c, page-1)
	}
	return payload
}

func pageURL(c *fiber.Ctx, page int) string {
	values := url.Values{}
	for key, value := range c.Queries() {
		values.Set(key, value)
	}
	values.Set("page", strconv.Itoa(page))
	return c.BaseURL() + c.Path() + "?" + values.Encode()
}
