package api

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kairoszero/satlog/internal/services"
)

func dayKeyOffset(offsetDays int) string {
	return services.DayKey(time.Now().UTC().AddDate(0, 0, offsetDays), time.UTC)
}

func seedRecordForOffset(t *testing.T, app *fiber.App, cookie string, offsetDays, level int) {
	t.Helper()
	resp := postJSON(t, app, "/records", map[string]any{
		"satisfaction_level": level,
		"date":               dayKeyOffset(offsetDays),
	}, cookie)
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("seed record at offset %d: expected status 201, got %d", offsetDays, resp.StatusCode)
	}
}

func fetchHomeStats(t *testing.T, app *fiber.App, cookie string) map[string]any {
	t.Helper()
	resp := doRequest(t, app, http.MethodGet, "/records/home-stats", cookie)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("home stats: expected status 200, got %d", resp.StatusCode)
	}
	return decodeJSONBody(t, resp)
}

func TestHomeStatsEmptyAccount(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "rin@example.com", "rin", "long-enough-password")
	cookie := loginAndExtractAuthCookie(t, app, "rin@example.com", "long-enough-password")

	stats := fetchHomeStats(t, app, cookie)
	if stats["averageSatisfaction"] != json.Number("0") {
		t.Errorf("expected average 0 with no records, got %v", stats["averageSatisfaction"])
	}
	if stats["yesterdaySatisfaction"] != nil {
		t.Errorf("expected null yesterday value with no records, got %v", stats["yesterdaySatisfaction"])
	}
	if stats["consecutiveDays"] != json.Number("0") {
		t.Errorf("expected streak 0 with no records, got %v", stats["consecutiveDays"])
	}
}

func TestHomeStatsStreakAndAverage(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "rin@example.com", "rin", "long-enough-password")
	cookie := loginAndExtractAuthCookie(t, app, "rin@example.com", "long-enough-password")

	// Today, yesterday and the day before: a three-day streak.
	seedRecordForOffset(t, app, cookie, 0, 4)
	seedRecordForOffset(t, app, cookie, -1, 3)
	seedRecordForOffset(t, app, cookie, -2, 0)

	stats := fetchHomeStats(t, app, cookie)
	if stats["consecutiveDays"] != json.Number("3") {
		t.Errorf("expected streak 3, got %v", stats["consecutiveDays"])
	}
	if stats["yesterdaySatisfaction"] != json.Number("3") {
		t.Errorf("expected yesterday value 3, got %v", stats["yesterdaySatisfaction"])
	}
	// (4+3+0)/3 rounds to 2.3.
	if stats["averageSatisfaction"] != json.Number("2.3") {
		t.Errorf("expected average 2.3, got %v", stats["averageSatisfaction"])
	}
}

func TestHomeStatsStreakWithoutTodayEntry(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "rin@example.com", "rin", "long-enough-password")
	cookie := loginAndExtractAuthCookie(t, app, "rin@example.com", "long-enough-password")

	// No entry today yet: the streak counts back from yesterday instead.
	seedRecordForOffset(t, app, cookie, -1, 2)
	seedRecordForOffset(t, app, cookie, -2, 2)

	stats := fetchHomeStats(t, app, cookie)
	if stats["consecutiveDays"] != json.Number("2") {
		t.Errorf("expected streak 2 without a record for today, got %v", stats["consecutiveDays"])
	}
}

func TestHomeStatsBrokenStreak(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "rin@example.com", "rin", "long-enough-password")
	cookie := loginAndExtractAuthCookie(t, app, "rin@example.com", "long-enough-password")

	// Only the day before yesterday: neither today nor yesterday anchors a streak.
	seedRecordForOffset(t, app, cookie, -2, 2)

	stats := fetchHomeStats(t, app, cookie)
	if stats["consecutiveDays"] != json.Number("0") {
		t.Errorf("expected streak 0 with a two-day gap, got %v", stats["consecutiveDays"])
	}
	if stats["yesterdaySatisfaction"] != nil {
		t.Errorf("expected null yesterday value, got %v", stats["yesterdaySatisfaction"])
	}
}
