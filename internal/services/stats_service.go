package services

import (
	"math"
	"time"

	"github.com/kairoszero/satlog/internal/models"
)

// HomeStats is the aggregate block shown on the home screen.
type HomeStats struct {
	AverageSatisfaction   float64
	YesterdaySatisfaction *int
	ConsecutiveDays       int
}

// CalculateHomeStats derives the home-screen aggregates from the user's full
// record set. An empty set yields the zero block.
func CalculateHomeStats(records []models.Record, now time.Time, location *time.Location) HomeStats {
	if len(records) == 0 {
		return HomeStats{}
	}

	levelByDay := make(map[string]int, len(records))
	for _, record := range records {
		levelByDay[DayKey(record.Date, location)] = record.SatisfactionLevel
	}

	today := DateAtLocation(now, location)
	yesterday := today.AddDate(0, 0, -1)

	stats := HomeStats{
		AverageSatisfaction: AverageSatisfaction(records),
		ConsecutiveDays:     consecutiveDays(levelByDay, today, location),
	}
	if level, ok := levelByDay[DayKey(yesterday, location)]; ok {
		stats.YesterdaySatisfaction = &level
	}
	return stats
}

// AverageSatisfaction is the mean satisfaction level rounded to one decimal
// place, 0 when there are no records.
func AverageSatisfaction(records []models.Record) float64 {
	if len(records) == 0 {
		return 0
	}
	sum := 0
	for _, record := range records {
		sum += record.SatisfactionLevel
	}
	return RoundToOneDecimal(float64(sum) / float64(len(records)))
}

func RoundToOneDecimal(value float64) float64 {
	return math.Round(value*10) / 10
}

// consecutiveDays counts back day by day from today while a record exists.
// When today itself is unrecorded the count restarts from yesterday, so a
// streak that ended yesterday is not broken by an unlogged today.
func consecutiveDays(levelByDay map[string]int, today time.Time, location *time.Location) int {
	count := countBackFrom(levelByDay, today, location)
	if count == 0 {
		count = countBackFrom(levelByDay, today.AddDate(0, 0, -1), location)
	}
	return count
}

func countBackFrom(levelByDay map[string]int, start time.Time, location *time.Location) int {
	count := 0
	for cursor := start; ; cursor = cursor.AddDate(0, 0, -1) {
		if _, ok := levelByDay[DayKey(cursor, location)]; !ok {
			break
		}
		count++
	}
	return count
}
