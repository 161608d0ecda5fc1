package services

import (
	"fmt"
	"net/http"

	"github.com/research-metadata/catalog-api/internal/dto"
	"github.com/research-metadata/catalog-api/internal/models"
	"github.com/research-metadata/catalog-api/internal/repository"
)

type dictTableStore interface {
	FindAll(repository.ListQuery) ([]models.DictTable, error)
	FindByID(uint) (*models.DictTable, error)
	FindByDictionaryID(uint) (*models.DictTable, error)
	FindByName(string) (*models.DictTable, error)
	Create(*models.DictTable) error
	Update(uint, map[string]any) (*models.DictTable, error)
	Delete(uint) error
}

type dictionaryLookup interface {
	FindByID(uint) (*models.Dictionary, error)
}

type DictTableService struct {
	repo         dictTableStore
	dictionaries dictionaryLookup
}

func NewDictTableService(repo dictTableStore, dictionaries dictionaryLookup) *DictTableService {
	return &DictTableService{repo: repo, dictionaries: dictionaries}
}

// FindAll reports an empty result as success with an empty list.
func (s *DictTableService) FindAll(q repository.ListQuery) dto.ServiceResponse[[]models.DictTable] {
	rows, err := s.repo.FindAll(q)
	if err != nil {
		return dto.Internal[[]models.DictTable](fmt.Sprintf("An error occurred while retrieving dict tables: %v", err))
	}
	return dto.Success("Dict tables found", rows, http.StatusOK)
}

func (s *DictTableService) FindByID(id uint) dto.ServiceResponse[*models.DictTable] {
	row, err := s.repo.FindByID(id)
	if err != nil {
		return dto.Internal[*models.DictTable](fmt.Sprintf("An error occurred while retrieving the dict table: %v", err))
	}
	if row == nil {
		return dto.NotFound[*models.DictTable]("DictTable not found")
	}
	return dto.Success("DictTable found", row, http.StatusOK)
}

func (s *DictTableService) Create(req *dto.CreateDictTableRequest) dto.ServiceResponse[*models.DictTable] {
	dictionaryID := req.DictionaryID
	if f := checkReferences(reference{"Dictionary", &dictionaryID, exists(s.dictionaries.FindByID)}); f != nil {
		return asFailure[*models.DictTable](f)
	}
	// dictionary_id is checked before name; the first conflict is reported.
	if f := checkUnique("DictTable", 0,
		s.dictionaryIDUnique(req.DictionaryID),
		s.nameUnique(req.Name),
	); f != nil {
		return asFailure[*models.DictTable](f)
	}

	row := &models.DictTable{
		DictionaryID: req.DictionaryID,
		Name:         req.Name,
		EntityType:   req.EntityType,
		Domain:       req.Domain,
		LabelCs:      req.LabelCs,
		LabelEn:      req.LabelEn,
	}
	if err := s.repo.Create(row); err != nil {
		return persistFailure[*models.DictTable]("DictTable", "creating", err)
	}
	return dto.Success("DictTable created successfully", row, http.StatusCreated)
}

func (s *DictTableService) Update(id uint, req *dto.UpdateDictTableRequest) dto.ServiceResponse[*models.DictTable] {
	if f := checkReferences(reference{"Dictionary", req.DictionaryID, exists(s.dictionaries.FindByID)}); f != nil {
		return asFailure[*models.DictTable](f)
	}

	fields := map[string]any{}
	var checks []uniqueField
	if req.DictionaryID != nil {
		fields["dictionary_id"] = *req.DictionaryID
		checks = append(checks, s.dictionaryIDUnique(*req.DictionaryID))
	}
	if req.Name != nil {
		fields["name"] = *req.Name
		checks = append(checks, s.nameUnique(*req.Name))
	}
	if req.EntityType != nil {
		fields["entity_type"] = *req.EntityType
	}
	if req.Domain != nil {
		fields["domain"] = *req.Domain
	}
	if req.LabelCs != nil {
		fields["label_cs"] = *req.LabelCs
	}
	if req.LabelEn != nil {
		fields["label_en"] = *req.LabelEn
	}

	if f := checkUnique("DictTable", id, checks...); f != nil {
		return asFailure[*models.DictTable](f)
	}

	row, err := s.repo.Update(id, fields)
	if err != nil {
		return persistFailure[*models.DictTable]("DictTable", "updating", err)
	}
	if row == nil {
		return dto.NotFound[*models.DictTable]("DictTable not found")
	}
	return dto.Success("DictTable updated successfully", row, http.StatusOK)
}

func (s *DictTableService) Delete(id uint) dto.ServiceResponse[*models.DictTable] {
	if err := s.repo.Delete(id); err != nil {
		return dto.Internal[*models.DictTable](fmt.Sprintf("An error occurred while deleting the dict table: %v", err))
	}
	return dto.Success[*models.DictTable]("DictTable deleted successfully", nil, http.StatusOK)
}

func (s *DictTableService) dictionaryIDUnique(dictionaryID uint) uniqueField {
	return uniqueField{
		name:     "dictionary_id",
		value:    dictionaryID,
		provided: true,
		find: func() (*uint, error) {
			row, err := s.repo.FindByDictionaryID(dictionaryID)
			if err != nil || row == nil {
				return nil, err
			}
			return &row.ID, nil
		},
	}
}

func (s *DictTableService) nameUnique(name string) uniqueField {
	return uniqueField{
		name:     "name",
		value:    name,
		provided: true,
		find: func() (*uint, error) {
			row, err := s.repo.FindByName(name)
			if err != nil || row == nil {
				return nil, err
			}
			return &row.ID, nil
		},
	}
}
