package models

import "time"

const (
	SatisfactionMin = 0
	SatisfactionMax = 4

	MemoMaxLength = 500
)

// satisfactionLabels maps each satisfaction level to its display label.
var satisfactionLabels = [5]string{"worst", "bad", "okay", "good", "best"}

type Record struct {
	ID                uint      `gorm:"primaryKey"`
	UserID            uint      `gorm:"not null;uniqueIndex:uidx_record_user_date"`
	SatisfactionLevel int       `gorm:"not null"`
	Memo              string    `gorm:"size:500"`
	Date              time.Time `gorm:"type:date;not null;uniqueIndex:uidx_record_user_date"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func IsValidSatisfactionLevel(level int) bool {
	return level >= SatisfactionMin && level <= SatisfactionMax
}

// SatisfactionLabel returns the display label for a level, or "" when the
// level is outside the 0-4 domain.
func SatisfactionLabel(level int) string {
	if !IsValidSatisfactionLevel(level) {
		return ""
	}
	return satisfactionLabels[level]
}
