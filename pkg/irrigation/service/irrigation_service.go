package service

import "irriga/entities"

// Engine computes a field's irrigation schedule. Rebuild replaces the
// field's pending entries with a fresh batch: the 14-day primary pipeline
// when the forecast is available, the 7-day fallback when it is not. An
// error means neither path could produce a schedule — a distinct outcome
// from a valid schedule that happens to need no water.
type Engine interface {
	Rebuild(field *entities.Field) ([]entities.IrrigationEntry, error)
}
