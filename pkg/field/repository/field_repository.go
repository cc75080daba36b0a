package repository

import "irriga/entities"

type FieldRepository interface {
	Create(f *entities.Field) error
	FindByID(id uint, userID string) (*entities.Field, error)
	// ByID skips the owner check; internal callers only.
	ByID(id uint) (*entities.Field, error)
	Update(f *entities.Field) error
}
