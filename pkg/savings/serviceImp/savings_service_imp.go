package serviceImp

import (
	"irriga/entities"
	"irriga/pkg/agro"
	"irriga/pkg/savings/repository"
	"irriga/pkg/savings/service"
)

type savingsSvc struct{ repo repository.SavingsRepository }

func New(repo repository.SavingsRepository) service.SavingsService { return &savingsSvc{repo} }

// RecordCompletion converts the entry's liters/m2 into absolute liters via
// the field area and compares against the traditional-usage table. The two
// crop tables are independent on purpose; see the agro package.
func (s *savingsSvc) RecordCompletion(field *entities.Field, entry *entities.IrrigationEntry) error {
	smart := entry.WaterAmount * field.AreaM2
	trad := agro.TraditionalUsageFor(field.CropType) * field.AreaM2
	saved := trad - smart
	if saved < 0 {
		saved = 0
	}
	return s.repo.Create(&entities.SavingsRecord{
		FieldID:           field.FieldID,
		EntryID:           entry.EntryID,
		Date:              entry.Date,
		SmartLiters:       smart,
		TraditionalLiters: trad,
		SavedLiters:       saved,
	})
}

func (s *savingsSvc) Summarize(fieldID uint) (*service.Summary, error) {
	recs, err := s.repo.ListByField(fieldID)
	if err != nil {
		return nil, err
	}
	sum := &service.Summary{FieldID: fieldID, Records: recs}
	for _, r := range recs {
		sum.SmartLiters += r.SmartLiters
		sum.TraditionalLiters += r.TraditionalLiters
		sum.SavedLiters += r.SavedLiters
	}
	return sum, nil
}
