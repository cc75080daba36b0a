package serviceImp

import (
	"irriga/entities"
	"irriga/pkg/field/repository"
	"irriga/pkg/field/service"
	irrigation "irriga/pkg/irrigation/service"
)

type fieldSvc struct {
	repo   repository.FieldRepository
	engine irrigation.Engine
}

func New(repo repository.FieldRepository, engine irrigation.Engine) service.FieldService {
	return &fieldSvc{repo: repo, engine: engine}
}

func (s *fieldSvc) Create(f *entities.Field) ([]entities.IrrigationEntry, error) {
	if err := s.repo.Create(f); err != nil {
		return nil, err
	}
	return s.engine.Rebuild(f)
}

func (s *fieldSvc) Get(id uint, userID string) (*entities.Field, error) {
	return s.repo.FindByID(id, userID)
}

func (s *fieldSvc) Update(id uint, userID string, p service.FieldPatch) (*entities.Field, []entities.IrrigationEntry, bool, error) {
	f, err := s.repo.FindByID(id, userID)
	if err != nil {
		return nil, nil, false, err
	}

	relevant := false
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.CropType != nil && *p.CropType != f.CropType {
		f.CropType = *p.CropType
		relevant = true
	}
	if p.SoilType != nil && *p.SoilType != f.SoilType {
		f.SoilType = *p.SoilType
		relevant = true
	}
	if p.Latitude != nil && *p.Latitude != f.Latitude {
		f.Latitude = *p.Latitude
		relevant = true
	}
	if p.Longitude != nil && *p.Longitude != f.Longitude {
		f.Longitude = *p.Longitude
		relevant = true
	}
	if p.AreaM2 != nil {
		f.AreaM2 = *p.AreaM2
	}
	if err := s.repo.Update(f); err != nil {
		return nil, nil, false, err
	}

	if !relevant {
		return f, nil, false, nil
	}
	entries, err := s.engine.Rebuild(f)
	return f, entries, true, err
}

func (s *fieldSvc) Rebuild(id uint, userID string) ([]entities.IrrigationEntry, error) {
	f, err := s.repo.FindByID(id, userID)
	if err != nil {
		return nil, err
	}
	return s.engine.Rebuild(f)
}
