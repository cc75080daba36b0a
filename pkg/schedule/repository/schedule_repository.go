package repository

import "irriga/entities"

type ScheduleRepository interface {
	// ReplacePending swaps a field's pending entries for a freshly computed
	// batch in one transaction. Completed entries are never touched.
	ReplacePending(fieldID uint, entries []entities.IrrigationEntry) error
	List(fieldID uint, from, to string) ([]entities.IrrigationEntry, error)
	FindByID(entryID uint) (*entities.IrrigationEntry, error)
	MarkCompleted(entryID uint) error
}
