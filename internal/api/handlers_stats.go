package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kairoszero/satlog/internal/services"
)

func (handler *Handler) HomeStats(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	records, err := handler.repositories.Records.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load records")
	}

	stats := services.CalculateHomeStats(records, time.Now(), handler.location)
	return c.JSON(fiber.Map{
		"averageSatisfaction":   stats.AverageSatisfaction,
		"yesterdaySatisfaction": stats.YesterdaySatisfaction,
		"consecutiveDays":       stats.ConsecutiveDays,
	})
}
