package services

import (
	"fmt"
	"net/http"

	"github.com/research-metadata/catalog-api/internal/dto"
	"github.com/research-metadata/catalog-api/internal/models"
	"github.com/research-metadata/catalog-api/internal/repository"
)

type mappingStore interface {
	FindAll(repository.ListQuery) ([]models.Mapping, error)
	FindByID(uint) (*models.Mapping, error)
	FindByValueSetCodeID(uint) (*models.Mapping, error)
	FindByOriginalValue(string) (*models.Mapping, error)
	Create(*models.Mapping) error
	Update(uint, map[string]any) (*models.Mapping, error)
	Delete(uint) error
}

type valueSetCodeLookup interface {
	FindByID(uint) (*models.ValueSetCode, error)
}

type MappingService struct {
	repo  mappingStore
	codes valueSetCodeLookup
}

func NewMappingService(repo mappingStore, codes valueSetCodeLookup) *MappingService {
	return &MappingService{repo: repo, codes: codes}
}

// FindAll reports an empty result as success with an empty list.
func (s *MappingService) FindAll(q repository.ListQuery) dto.ServiceResponse[[]models.Mapping] {
	rows, err := s.repo.FindAll(q)
	if err != nil {
		return dto.Internal[[]models.Mapping](fmt.Sprintf("An error occurred while retrieving mappings: %v", err))
	}
	return dto.Success("Mappings found", rows, http.StatusOK)
}

func (s *MappingService) FindByID(id uint) dto.ServiceResponse[*models.Mapping] {
	row, err := s.repo.FindByID(id)
	if err != nil {
		return dto.Internal[*models.Mapping](fmt.Sprintf("An error occurred while retrieving the mapping: %v", err))
	}
	if row == nil {
		return dto.NotFound[*models.Mapping]("Mapping not found")
	}
	return dto.Success("Mapping found", row, http.StatusOK)
}

func (s *MappingService) Create(req *dto.CreateMappingRequest) dto.ServiceResponse[*models.Mapping] {
	valueSetCodeID := req.ValueSetCodeID
	if f := checkReferences(reference{"ValueSetCode", &valueSetCodeID, exists(s.codes.FindByID)}); f != nil {
		return asFailure[*models.Mapping](f)
	}
	if f := checkUnique("Mapping", 0,
		s.valueSetCodeIDUnique(req.ValueSetCodeID),
		s.originalValueUnique(req.OriginalValue),
	); f != nil {
		return asFailure[*models.Mapping](f)
	}

	row := &models.Mapping{
		ValueSetCodeID: req.ValueSetCodeID,
		OriginalValue:  req.OriginalValue,
		Comment:        req.Comment,
	}
	if err := s.repo.Create(row); err != nil {
		return persistFailure[*models.Mapping]("Mapping", "creating", err)
	}
	return dto.Success("Mapping created successfully", row, http.StatusCreated)
}

func (s *MappingService) Update(id uint, req *dto.UpdateMappingRequest) dto.ServiceResponse[*models.Mapping] {
	if f := checkReferences(reference{"ValueSetCode", req.ValueSetCodeID, exists(s.codes.FindByID)}); f != nil {
		return asFailure[*models.Mapping](f)
	}

	fields := map[string]any{}
	var checks []uniqueField
	if req.ValueSetCodeID != nil {
		fields["value_set_code_id"] = *req.ValueSetCodeID
		checks = append(checks, s.valueSetCodeIDUnique(*req.ValueSetCodeID))
	}
	if req.OriginalValue != nil {
		fields["original_value"] = *req.OriginalValue
		checks = append(checks, s.originalValueUnique(*req.OriginalValue))
	}
	if req.Comment != nil {
		fields["comment"] = *req.Comment
	}

	if f := checkUnique("Mapping", id, checks...); f != nil {
		return asFailure[*models.Mapping](f)
	}

	row, err := s.repo.Update(id, fields)
	if err != nil {
		return persistFailure[*models.Mapping]("Mapping", "updating", err)
	}
	if row == nil {
		return dto.NotFound[*models.Mapping]("Mapping not found")
	}
	return dto.Success("Mapping updated successfully", row, http.StatusOK)
}

func (s *MappingService) Delete(id uint) dto.ServiceResponse[*models.Mapping] {
	if err := s.repo.Delete(id); err != nil {
		return dto.Internal[*models.Mapping](fmt.Sprintf("An error occurred while deleting the mapping: %v", err))
	}
	return dto.Success[*models.Mapping]("Mapping deleted successfully", nil, http.StatusOK)
}

func (s *MappingService) valueSetCodeIDUnique(valueSetCodeID uint) uniqueField {
	return uniqueField{
		name:     "value_set_code_id",
		value:    valueSetCodeID,
		provided: true,
		find: func() (*uint, error) {
			row, err := s.repo.FindByValueSetCodeID(valueSetCodeID)
			if err != nil || row == nil {
				return nil, err
			}
			return &row.ID, nil
		},
	}
}

func (s *MappingService) originalValueUnique(originalValue string) uniqueField {
	return uniqueField{
		name:     "original_value",
		value:    originalValue,
		provided: true,
		find: func() (*uint, error) {
			row, err := s.repo.FindByOriginalValue(originalValue)
			if err != nil || row == nil {
				return nil, err
			}
			return &row.ID, nil
		},
	}
}
