package repository

import "irriga/entities"

type SavingsRepository interface {
	Create(rec *entities.SavingsRecord) error
	ListByField(fieldID uint) ([]entities.SavingsRecord, error)
}
