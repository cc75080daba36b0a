package service

import "irriga/entities"

type FieldPatch struct {
	Name      *string  `json:"name"`
	CropType  *string  `json:"crop_type"`
	SoilType  *string  `json:"soil_type"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	AreaM2    *float64 `json:"area_m2"`
}

type FieldService interface {
	// Create persists the field and computes its first schedule. A schedule
	// failure does not undo the creation; it is returned alongside so the
	// surface can report "schedule could not be computed" explicitly.
	Create(f *entities.Field) ([]entities.IrrigationEntry, error)
	Get(id uint, userID string) (*entities.Field, error)
	// Update applies the patch; changes to crop, soil or coordinates
	// trigger a recalculation, other edits do not.
	Update(id uint, userID string, p FieldPatch) (*entities.Field, []entities.IrrigationEntry, bool, error)
	Rebuild(id uint, userID string) ([]entities.IrrigationEntry, error)
}
