package services

import (
	"fmt"
	"net/http"

	"github.com/research-metadata/catalog-api/internal/dto"
	"github.com/research-metadata/catalog-api/internal/models"
	"github.com/research-metadata/catalog-api/internal/repository"
)

type valueSetCodeStore interface {
	FindAll(repository.ListQuery) ([]models.ValueSetCode, error)
	FindByID(uint) (*models.ValueSetCode, error)
	FindByValueSetID(uint) (*models.ValueSetCode, error)
	FindByCode(string) (*models.ValueSetCode, error)
	Create(*models.ValueSetCode) error
	Update(uint, map[string]any) (*models.ValueSetCode, error)
	Delete(uint) error
}

type ValueSetCodeService struct {
	repo      valueSetCodeStore
	valueSets valueSetLookup
}

func NewValueSetCodeService(repo valueSetCodeStore, valueSets valueSetLookup) *ValueSetCodeService {
	return &ValueSetCodeService{repo: repo, valueSets: valueSets}
}

func (s *ValueSetCodeService) FindAll(q repository.ListQuery) dto.ServiceResponse[[]models.ValueSetCode] {
	rows, err := s.repo.FindAll(q)
	if err != nil {
		return dto.Internal[[]models.ValueSetCode](fmt.Sprintf("An error occurred while retrieving value set codes: %v", err))
	}
	if len(rows) == 0 {
		return dto.NotFound[[]models.ValueSetCode]("No value set codes found")
	}
	return dto.Success("Value set codes found", rows, http.StatusOK)
}

func (s *ValueSetCodeService) FindByID(id uint) dto.ServiceResponse[*models.ValueSetCode] {
	row, err := s.repo.FindByID(id)
	if err != nil {
		return dto.Internal[*models.ValueSetCode](fmt.Sprintf("An error occurred while retrieving the value set code: %v", err))
	}
	if row == nil {
		return dto.NotFound[*models.ValueSetCode]("ValueSetCode not found")
	}
	return dto.Success("ValueSetCode found", row, http.StatusOK)
}

func (s *ValueSetCodeService) Create(req *dto.CreateValueSetCodeRequest) dto.ServiceResponse[*models.ValueSetCode] {
	valueSetID := req.ValueSetID
	if f := checkReferences(reference{"ValueSet", &valueSetID, exists(s.valueSets.FindByID)}); f != nil {
		return asFailure[*models.ValueSetCode](f)
	}
	if f := checkUnique("ValueSetCode", 0,
		s.valueSetIDUnique(req.ValueSetID),
		s.codeUnique(req.Code),
	); f != nil {
		return asFailure[*models.ValueSetCode](f)
	}

	row := &models.ValueSetCode{
		ValueSetID: req.ValueSetID,
		Code:       req.Code,
		LabelCs:    req.LabelCs,
		LabelEn:    req.LabelEn,
	}
	if err := s.repo.Create(row); err != nil {
		return persistFailure[*models.ValueSetCode]("ValueSetCode", "creating", err)
	}
	return dto.Success("ValueSetCode created successfully", row, http.StatusCreated)
}

func (s *ValueSetCodeService) Update(id uint, req *dto.UpdateValueSetCodeRequest) dto.ServiceResponse[*models.ValueSetCode] {
	if f := checkReferences(reference{"ValueSet", req.ValueSetID, exists(s.valueSets.FindByID)}); f != nil {
		return asFailure[*models.ValueSetCode](f)
	}

	fields := map[string]any{}
	var checks []uniqueField
	if req.ValueSetID != nil {
		fields["value_set_id"] = *req.ValueSetID
		checks = append(checks, s.valueSetIDUnique(*req.ValueSetID))
	}
	if req.Code != nil {
		fields["code"] = *req.Code
		checks = append(checks, s.codeUnique(*req.Code))
	}
	if req.LabelCs != nil {
		fields["label_cs"] = *req.LabelCs
	}
	if req.LabelEn != nil {
		fields["label_en"] = *req.LabelEn
	}

	if f := checkUnique("ValueSetCode", id, checks...); f != nil {
		return asFailure[*models.ValueSetCode](f)
	}

	row, err := s.repo.Update(id, fields)
	if err != nil {
		return persistFailure[*models.ValueSetCode]("ValueSetCode", "updating", err)
	}
	if row == nil {
		return dto.NotFound[*models.ValueSetCode]("ValueSetCode not found")
	}
	return dto.Success("ValueSetCode updated successfully", row, http.StatusOK)
}

func (s *ValueSetCodeService) Delete(id uint) dto.ServiceResponse[*models.ValueSetCode] {
	if err := s.repo.Delete(id); err != nil {
		return dto.Internal[*models.ValueSetCode](fmt.Sprintf("An error occurred while deleting the value set code: %v", err))
	}
	return dto.Success[*models.ValueSetCode]("ValueSetCode deleted successfully", nil, http.StatusOK)
}

func (s *ValueSetCodeService) valueSetIDUnique(valueSetID uint) uniqueField {
	return uniqueField{
		name:     "value_set_id",
		value:    valueSetID,
		provided: true,
		find: func() (*uint, error) {
			row, err := s.repo.FindByValueSetID(valueSetID)
			if err != nil || row == nil {
				return nil, err
			}
			return &row.ID, nil
		},
	}
}

func (s *ValueSetCodeService) codeUnique(code string) uniqueField {
	return uniqueField{
		name:     "code",
		value:    code,
		provided: true,
		find: func() (*uint, error) {
			row, err := s.repo.FindByCode(code)
			if err != nil || row == nil {
				return nil, err
			}
			return &row.ID, nil
		},
	}
}
