package entities

import "time"

const (
	IrrigationPending   = "pending"
	IrrigationCompleted = "completed"
)

type IrrigationEntry struct {
	EntryID          uint      `gorm:"primaryKey" json:"entry_id"`
	FieldID          uint      `gorm:"index" json:"field_id"`
	BatchID          string    `gorm:"index" json:"batch_id"` // one uuid per recalculation
	Date             time.Time `json:"date"`
	RecommendedTime  string    `json:"recommended_time"` // e.g. "05:00-07:00"
	WaterAmount      float64   `json:"water_amount"`     // liters/m2, one decimal, never negative
	WeatherTemp      float64   `json:"weather_temp"`
	WeatherHumidity  float64   `json:"weather_humidity"`
	WeatherCondition string    `json:"weather_condition"`
	Note             *string   `json:"note"`
	Status           string    `gorm:"index" json:"status"` // pending|completed

	CreatedAt time.Time
	UpdatedAt time.Time
}
