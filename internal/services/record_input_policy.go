package services

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/kairoszero/satlog/internal/models"
)

// RecordInput is the client-supplied portion of a record write.
type RecordInput struct {
	SatisfactionLevel int
	Memo              string
	Date              string
}

// ValidateRecordInput checks a record write and returns the parsed calendar
// day alongside per-field errors. Nothing is written when errors are present.
func ValidateRecordInput(input RecordInput, location *time.Location) (time.Time, FieldErrors) {
	fieldErrors := FieldErrors{}

	if !models.IsValidSatisfactionLevel(input.SatisfactionLevel) {
		fieldErrors.Add("satisfaction_level", "satisfaction level must be between 0 and 4")
	}

	if utf8.RuneCountInString(input.Memo) > models.MemoMaxLength {
		fieldErrors.Add("memo", "memo must be at most 500 characters")
	}

	var day time.Time
	rawDate := strings.TrimSpace(input.Date)
	if rawDate == "" {
		fieldErrors.Add("date", "date is required")
	} else {
		parsed, err := ParseDay(rawDate, location)
		if err != nil {
			fieldErrors.Add("date", "date must be a valid calendar date (YYYY-MM-DD)")
		} else {
			day = parsed
		}
	}

	return day, fieldErrors
}
