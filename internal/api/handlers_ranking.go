package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kairoszero/satlog/internal/services"
)

// Ranking returns the cross-user leaderboard. Every signed-in user sees all
// participants, usernames and emails included; that visibility is how the
// product works, not an oversight.
func (handler *Handler) Ranking(c *fiber.Ctx) error {
	if _, ok := currentUser(c); !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	users, err := handler.repositories.Users.ListAll()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load ranking")
	}
	rawTotals, err := handler.repositories.Records.AggregateTotalsByUser()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load ranking")
	}

	totals := make(map[uint]services.UserTotals, len(rawTotals))
	for userID, row := range rawTotals {
		totals[userID] = services.UserTotals{
			TotalRecords:      row.TotalRecords,
			TotalSatisfaction: row.TotalSatisfaction,
		}
	}

	ranking := services.BuildRanking(users, totals)
	payload := make([]fiber.Map, 0, len(ranking))
	for _, entry := range ranking {
		payload = append(payload, fiber.Map{
			"rank":                entry.Rank,
			"id":                  entry.UserID,
			"username":            entry.Username,
			"email":               entry.Email,
			"totalSatisfaction":   entry.TotalSatisfaction,
			"averageSatisfaction": entry.AverageSatisfaction,
			"totalRecords":        entry.TotalRecords,
		})
	}
	return c.JSON(payload)
}
