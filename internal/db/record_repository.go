package db

import (
	"time"

	"github.com/kairoszero/satlog/internal/models"
	"gorm.io/gorm"
)

type RecordRepository struct {
	database *gorm.DB
}

func NewRecordRepository(database *gorm.DB) *RecordRepository {
	return &RecordRepository{database: database}
}

func (repo *RecordRepository) ListByUser(userID uint) ([]models.Record, error) {
	records := make([]models.Record, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC, id DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ListByUserRange returns the user's records inside the half-open window
// [fromStart, toEnd), newest date first. Nil bounds leave that side open.
func (repo *RecordRepository) ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time, offset int, limit int) ([]models.Record, int64, error) {
	query := repo.database.Model(&models.Record{}).Where("user_id = ?", userID)
	if fromStart != nil {
		query = query.Where("date >= ?", *fromStart)
	}
	if toEnd != nil {
		query = query.Where("date < ?", *toEnd)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	records := make([]models.Record, 0)
	if err := query.
		Order("date DESC, created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func (repo *RecordRepository) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.Record, bool, error) {
	entry := models.Record{}
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.Record{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Record{}, false, nil
	}
	return entry, true, nil
}

// FindByIDForUser scopes the lookup to the owning user so that a foreign
// record is indistinguishable from a missing one.
func (repo *RecordRepository) FindByIDForUser(recordID uint, userID uint) (models.Record, error) {
	var entry models.Record
	if err := repo.database.
		Where("id = ? AND user_id = ?", recordID, userID).
		First(&entry).Error; err != nil {
		return models.Record{}, err
	}
	return entry, nil
}

func (repo *RecordRepository) Create(entry *models.Record) error {
	return repo.database.Create(entry).Error
}

func (repo *RecordRepository) Save(entry *models.Record) error {
	return repo.database.Save(entry).Error
}

// DeleteByIDForUser removes the record only when it belongs to the user and
// reports whether a row was actually deleted.
func (repo *RecordRepository) DeleteByIDForUser(recordID uint, userID uint) (bool, error) {
	result := repo.database.
		Where("id = ? AND user_id = ?", recordID, userID).
		Delete(&models.Record{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// UpsertForDay writes exactly one record for (user, day). The check and the
// write run inside one transaction; an insert that still loses the race to the
// (user_id, date) unique index is retried as an in-place update.
func (repo *RecordRepository) UpsertForDay(userID uint, dayStart time.Time, dayEnd time.Time, level int, memo string) (models.Record, bool, error) {
	var entry models.Record
	created := false

	err := repo.database.Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
			Order("date DESC, id DESC").
			Limit(1).
			Find(&entry)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			entry = models.Record{
				UserID:            userID,
				SatisfactionLevel: level,
				Memo:              memo,
				Date:              dayStart,
			}
			if createErr := tx.Create(&entry).Error; createErr != nil {
				// A concurrent submission for the same day may have won the
				// insert; fall back to updating the row it created.
				var existing models.Record
				reread := tx.
					Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
					Limit(1).
					Find(&existing)
				if reread.Error != nil || reread.RowsAffected == 0 {
					return createErr
				}
				existing.SatisfactionLevel = level
				existing.Memo = memo
				if saveErr := tx.Save(&existing).Error; saveErr != nil {
					return saveErr
				}
				entry = existing
				return nil
			}
			created = true
			return nil
		}

		entry.SatisfactionLevel = level
		entry.Memo = memo
		return tx.Save(&entry).Error
	})
	if err != nil {
		return models.Record{}, false, err
	}
	return entry, created, nil
}

// RecordTotals is one row of the per-user aggregate used by the ranking.
type RecordTotals struct {
	UserID            uint  `gorm:"column:user_id"`
	TotalRecords      int64 `gorm:"column:total_records"`
	TotalSatisfaction int64 `gorm:"column:total_satisfaction"`
}

func (repo *RecordRepository) AggregateTotalsByUser() (map[uint]RecordTotals, error) {
	rows := make([]RecordTotals, 0)
	if err := repo.database.Model(&models.Record{}).
		Select("user_id, COUNT(*) AS total_records, SUM(satisfaction_level) AS total_satisfaction").
		Group("user_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	totals := make(map[uint]RecordTotals, len(rows))
	for _, row := range rows {
		totals[row.UserID] = row
	}
	return totals, nil
}
