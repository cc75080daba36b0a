package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"irriga/entities"
	"irriga/pkg/schedule/repository"
)

type schedRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ScheduleRepository { return &schedRepo{db} }

// ReplacePending deletes every pending entry for the field and inserts the
// new batch inside one transaction, so a recalculation can never leave a
// partial delete or duplicate dates behind.
func (r *schedRepo) ReplacePending(fieldID uint, entries []entities.IrrigationEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("field_id = ? AND status = ?", fieldID, entities.IrrigationPending).
			Delete(&entities.IrrigationEntry{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.Create(&entries).Error
	})
}

func (r *schedRepo) List(fieldID uint, from, to string) ([]entities.IrrigationEntry, error) {
	var out []entities.IrrigationEntry
	q := r.db.Where("field_id = ?", fieldID)
	if s, err := time.Parse("2006-01-02", from); from != "" && err == nil {
		q = q.Where("date >= ?", s)
	}
	if e, err := time.Parse("2006-01-02", to); to != "" && err == nil {
		q = q.Where("date <= ?", e)
	}
	if err := q.Order("date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *schedRepo) FindByID(entryID uint) (*entities.IrrigationEntry, error) {
	var e entities.IrrigationEntry
	if err := r.db.First(&e, entryID).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *schedRepo) MarkCompleted(entryID uint) error {
	return r.db.Model(&entities.IrrigationEntry{}).
		Where("entry_id = ?", entryID).
		Update("status", entities.IrrigationCompleted).Error
}
