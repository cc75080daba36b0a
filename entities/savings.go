package entities

import "time"

// SavingsRecord compares a completed smart-irrigation event against the
// static traditional per-crop usage table. The traditional table is
// independent from the crop profile table and uses its own crop coverage.
type SavingsRecord struct {
	RecordID          uint      `gorm:"primaryKey" json:"record_id"`
	FieldID           uint      `gorm:"index" json:"field_id"`
	EntryID           uint      `gorm:"index" json:"entry_id"`
	Date              time.Time `json:"date"`
	SmartLiters       float64   `json:"smart_liters"`
	TraditionalLiters float64   `json:"traditional_liters"`
	SavedLiters       float64   `json:"saved_liters"`
	CreatedAt         time.Time
}
