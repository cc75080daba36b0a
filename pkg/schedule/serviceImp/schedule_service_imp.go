package serviceImp

import (
	"log"

	"irriga/entities"
	fieldrepo "irriga/pkg/field/repository"
	"irriga/pkg/schedule/repository"
	"irriga/pkg/schedule/service"
	savings "irriga/pkg/savings/service"
)

type schedSvc struct {
	repo    repository.ScheduleRepository
	fields  fieldrepo.FieldRepository
	savings savings.SavingsService
}

func New(repo repository.ScheduleRepository, fields fieldrepo.FieldRepository, sav savings.SavingsService) service.ScheduleService {
	return &schedSvc{repo: repo, fields: fields, savings: sav}
}

func (s *schedSvc) List(fieldID uint, from, to string) ([]entities.IrrigationEntry, error) {
	return s.repo.List(fieldID, from, to)
}

func (s *schedSvc) Complete(entryID uint) (*entities.IrrigationEntry, error) {
	entry, err := s.repo.FindByID(entryID)
	if err != nil {
		return nil, err
	}
	if entry.Status == entities.IrrigationCompleted {
		return entry, nil
	}
	if err := s.repo.MarkCompleted(entryID); err != nil {
		return nil, err
	}
	entry.Status = entities.IrrigationCompleted

	// The ledger is derived data; a failed write must not undo the
	// completion itself.
	if field, err := s.fields.ByID(entry.FieldID); err == nil {
		if err := s.savings.RecordCompletion(field, entry); err != nil {
			log.Printf("[schedule] savings record for entry %d: %v", entryID, err)
		}
	} else {
		log.Printf("[schedule] field %d lookup for savings: %v", entry.FieldID, err)
	}
	return entry, nil
}
