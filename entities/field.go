package entities

import "time"

type Field struct {
	FieldID   uint    `gorm:"primaryKey" json:"field_id"`
	UserID    string  `json:"user_id" gorm:"index"`
	Name      string  `json:"name"`
	CropType  string  `json:"crop_type"` // free text, resolved through agro.NormalizeKey
	SoilType  string  `json:"soil_type"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	AreaM2    float64 `json:"area_m2"` // used by callers to convert liters/m2 to liters

	CreatedAt time.Time
	UpdatedAt time.Time
}
