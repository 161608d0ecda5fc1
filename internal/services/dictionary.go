package services

import (
	"fmt"
	"net/http"

	"github.com/research-metadata/catalog-api/internal/dto"
	"github.com/research-metadata/catalog-api/internal/models"
	"github.com/research-metadata/catalog-api/internal/repository"
)

type dictionaryStore interface {
	FindAll(repository.ListQuery) ([]models.Dictionary, error)
	FindByID(uint) (*models.Dictionary, error)
	FindByResourceID(uint) (*models.Dictionary, error)
	Create(*models.Dictionary) error
	Update(uint, map[string]any) (*models.Dictionary, error)
	Delete(uint) error
}

type resourceLookup interface {
	FindByID(uint) (*models.Resource, error)
}

type DictionaryService struct {
	repo      dictionaryStore
	resources resourceLookup
}

func NewDictionaryService(repo dictionaryStore, resources resourceLookup) *DictionaryService {
	return &DictionaryService{repo: repo, resources: resources}
}

func (s *DictionaryService) FindAll(q repository.ListQuery) dto.ServiceResponse[[]models.Dictionary] {
	rows, err := s.repo.FindAll(q)
	if err != nil {
		return dto.Internal[[]models.Dictionary](fmt.Sprintf("An error occurred while retrieving dictionaries: %v", err))
	}
	if len(rows) == 0 {
		return dto.NotFound[[]models.Dictionary]("No dictionaries found")
	}
	return dto.Success("Dictionaries found", rows, http.StatusOK)
}

func (s *DictionaryService) FindByID(id uint) dto.ServiceResponse[*models.Dictionary] {
	row, err := s.repo.FindByID(id)
	if err != nil {
		return dto.Internal[*models.Dictionary](fmt.Sprintf("An error occurred while retrieving the dictionary: %v", err))
	}
	if row == nil {
		return dto.NotFound[*models.Dictionary]("Dictionary not found")
	}
	return dto.Success("Dictionary found", row, http.StatusOK)
}

func (s *DictionaryService) Create(req *dto.CreateDictionaryRequest) dto.ServiceResponse[*models.Dictionary] {
	resourceID := req.ResourceID
	if f := checkReferences(reference{"Resource", &resourceID, exists(s.resources.FindByID)}); f != nil {
		return asFailure[*models.Dictionary](f)
	}
	if f := checkUnique("Dictionary", 0, s.resourceIDUnique(req.ResourceID)); f != nil {
		return asFailure[*models.Dictionary](f)
	}

	row := &models.Dictionary{
		ResourceID:     req.ResourceID,
		CurrentVersion: req.CurrentVersion,
		ToBePublished:  req.ToBePublished,
	}
	if err := s.repo.Create(row); err != nil {
		return persistFailure[*models.Dictionary]("Dictionary", "creating", err)
	}
	return dto.Success("Dictionary created successfully", row, http.StatusCreated)
}

func (s *DictionaryService) Update(id uint, req *dto.UpdateDictionaryRequest) dto.ServiceResponse[*models.Dictionary] {
	if f := checkReferences(reference{"Resource", req.ResourceID, exists(s.resources.FindByID)}); f != nil {
		return asFailure[*models.Dictionary](f)
	}

	fields := map[string]any{}
	var checks []uniqueField
	if req.ResourceID != nil {
		fields["resource_id"] = *req.ResourceID
		checks = append(checks, s.resourceIDUnique(*req.ResourceID))
	}
	if req.CurrentVersion != nil {
		fields["current_version"] = *req.CurrentVersion
	}
	if req.ToBePublished != nil {
		fields["to_be_published"] = *req.ToBePublished
	}

	if f := checkUnique("Dictionary", id, checks...); f != nil {
		return asFailure[*models.Dictionary](f)
	}

	row, err := s.repo.Update(id, fields)
	if err != nil {
		return persistFailure[*models.Dictionary]("Dictionary", "updating", err)
	}
	if row == nil {
		return dto.NotFound[*models.Dictionary]("Dictionary not found")
	}
	return dto.Success("Dictionary updated successfully", row, http.StatusOK)
}

func (s *DictionaryService) Delete(id uint) dto.ServiceResponse[*models.Dictionary] {
	if err := s.repo.Delete(id); err != nil {
		return dto.Internal[*models.Dictionary](fmt.Sprintf("An error occurred while deleting the dictionary: %v", err))
	}
	return dto.Success[*models.Dictionary]("Dictionary deleted successfully", nil, http.StatusOK)
}

func (s *DictionaryService) resourceIDUnique(resourceID uint) uniqueField {
	return uniqueField{
		name:     "resource_id",
		value:    resourceID,
		provided: true,
		find: func() (*uint, error) {
			row, err := s.repo.FindByResourceID(resourceID)
			if err != nil || row == nil {
				return nil, err
			}
			return &row.ID, nil
		},
	}
}
