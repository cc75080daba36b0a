package repositoryImp

import (
	"gorm.io/gorm"

	"irriga/entities"
	"irriga/pkg/savings/repository"
)

type savingsRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SavingsRepository { return &savingsRepo{db} }

func (r *savingsRepo) Create(rec *entities.SavingsRecord) error { return r.db.Create(rec).Error }

func (r *savingsRepo) ListByField(fieldID uint) ([]entities.SavingsRecord, error) {
	var out []entities.SavingsRecord
	err := r.db.Where("field_id = ?", fieldID).Order("date ASC, record_id ASC").Find(&out).Error
	return out, err
}
