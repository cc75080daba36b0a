package service

import "irriga/entities"

type ScheduleService interface {
	List(fieldID uint, from, to string) ([]entities.IrrigationEntry, error)
	// Complete is the only status transition the engine owns: pending ->
	// completed. Completed entries survive every later recalculation.
	Complete(entryID uint) (*entities.IrrigationEntry, error)
}
