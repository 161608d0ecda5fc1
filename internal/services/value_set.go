package services

import (
	"fmt"
	"net/http"

	"github.com/research-metadata/catalog-api/internal/dto"
	"github.com/research-metadata/catalog-api/internal/models"
	"github.com/research-metadata/catalog-api/internal/repository"
)

type valueSetStore interface {
	FindAll(repository.ListQuery) ([]models.ValueSet, error)
	FindByID(uint) (*models.ValueSet, error)
	FindByName(string) (*models.ValueSet, error)
	Create(*models.ValueSet) error
	Update(uint, map[string]any) (*models.ValueSet, error)
	Delete(uint) error
}

type ValueSetService struct {
	repo valueSetStore
}

func NewValueSetService(repo valueSetStore) *ValueSetService {
	return &ValueSetService{repo: repo}
}

// FindAll reports an empty result as success with an empty list.
func (s *ValueSetService) FindAll(q repository.ListQuery) dto.ServiceResponse[[]models.ValueSet] {
	rows, err := s.repo.FindAll(q)
	if err != nil {
		return dto.Internal[[]models.ValueSet](fmt.Sprintf("An error occurred while retrieving value sets: %v", err))
	}
	return dto.Success("Value sets found", rows, http.StatusOK)
}

func (s *ValueSetService) FindByID(id uint) dto.ServiceResponse[*models.ValueSet] {
	row, err := s.repo.FindByID(id)
	if err != nil {
		return dto.Internal[*models.ValueSet](fmt.Sprintf("An error occurred while retrieving the value set: %v", err))
	}
	if row == nil {
		return dto.NotFound[*models.ValueSet]("ValueSet not found")
	}
	return dto.Success("ValueSet found", row, http.StatusOK)
}

func (s *ValueSetService) Create(req *dto.CreateValueSetRequest) dto.ServiceResponse[*models.ValueSet] {
	if f := checkUnique("ValueSet", 0, s.nameUnique(req.Name)); f != nil {
		return asFailure[*models.ValueSet](f)
	}

	row := &models.ValueSet{
		Name:        req.Name,
		Description: req.Description,
		URL:         req.URL,
	}
	if err := s.repo.Create(row); err != nil {
		return persistFailure[*models.ValueSet]("ValueSet", "creating", err)
	}
	return dto.Success("ValueSet created successfully", row, http.StatusCreated)
}

func (s *ValueSetService) Update(id uint, req *dto.UpdateValueSetRequest) dto.ServiceResponse[*models.ValueSet] {
	fields := map[string]any{}
	var checks []uniqueField
	if req.Name != nil {
		fields["name"] = *req.Name
		checks = append(checks, s.nameUnique(*req.Name))
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.URL != nil {
		fields["url"] = *req.URL
	}

	if f := checkUnique("ValueSet", id, checks...); f != nil {
		return asFailure[*models.ValueSet](f)
	}

	row, err := s.repo.Update(id, fields)
	if err != nil {
		return persistFailure[*models.ValueSet]("ValueSet", "updating", err)
	}
	if row == nil {
		return dto.NotFound[*models.ValueSet]("ValueSet not found")
	}
	return dto.Success("ValueSet updated successfully", row, http.StatusOK)
}

func (s *ValueSetService) Delete(id uint) dto.ServiceResponse[*models.ValueSet] {
	if err := s.repo.Delete(id); err != nil {
		return dto.Internal[*models.ValueSet](fmt.Sprintf("An error occurred while deleting the value set: %v", err))
	}
	return dto.Success[*models.ValueSet]("ValueSet deleted successfully", nil, http.StatusOK)
}

func (s *ValueSetService) nameUnique(name string) uniqueField {
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
