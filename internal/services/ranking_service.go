package services

import (
	"sort"

	"github.com/kairoszero/satlog/internal/models"
)

// UserTotals is one user's accumulated record aggregate.
type UserTotals struct {
	TotalRecords      int64
	TotalSatisfaction int64
}

// RankingEntry is one row of the cross-user leaderboard.
type RankingEntry struct {
	Rank                int
	UserID              uint
	Username            string
	Email               string
	TotalSatisfaction   int64
	AverageSatisfaction float64
	TotalRecords        int64
}

// BuildRanking turns per-user totals into the ordered leaderboard. Users
// without records are skipped; ties keep the encounter order of the users
// slice; ranks are dense 1..N.
func BuildRanking(users []models.User, totals map[uint]UserTotals) []RankingEntry {
	entries := make([]RankingEntry, 0, len(users))
	for _, user := range users {
		userTotals, ok := totals[user.ID]
		if !ok || userTotals.TotalRecords == 0 {
			continue
		}
		entries = append(entries, RankingEntry{
			UserID:              user.ID,
			Username:            user.Username,
			Email:               user.Email,
			TotalSatisfaction:   userTotals.TotalSatisfaction,
			AverageSatisfaction: RoundToOneDecimal(float64(userTotals.TotalSatisfaction) / float64(userTotals.TotalRecords)),
			TotalRecords:        userTotals.TotalRecords,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalSatisfaction > entries[j].TotalSatisfaction
	})

	for index := range entries {
		entries[index].Rank = index + 1
	}
	return entries
}
