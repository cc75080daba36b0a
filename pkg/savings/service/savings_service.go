package service

import "irriga/entities"

type Summary struct {
	FieldID           uint                     `json:"field_id"`
	SmartLiters       float64                  `json:"smart_liters"`
	TraditionalLiters float64                  `json:"traditional_liters"`
	SavedLiters       float64                  `json:"saved_liters"`
	Records           []entities.SavingsRecord `json:"records"`
}

type SavingsService interface {
	// RecordCompletion writes one ledger row for a completed irrigation entry.
	RecordCompletion(field *entities.Field, entry *entities.IrrigationEntry) error
	Summarize(fieldID uint) (*Summary, error)
}
