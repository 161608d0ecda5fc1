package services

import (
	"fmt"
	"net/http"

	"github.com/research-metadata/catalog-api/internal/dto"
	"github.com/research-metadata/catalog-api/internal/models"
	"github.com/research-metadata/catalog-api/internal/repository"
)

type analystStore interface {
	FindAll(repository.ListQuery) ([]models.Analyst, error)
	FindByID(uint) (*models.Analyst, error)
	FindByName(string) (*models.Analyst, error)
	Create(*models.Analyst) error
	Update(uint, map[string]any) (*models.Analyst, error)
	Delete(uint) error
}

type AnalystService struct {
	repo analystStore
}

func NewAnalystService(repo analystStore) *AnalystService {
	return &AnalystService{repo: repo}
}

func (s *AnalystService) FindAll(q repository.ListQuery) dto.ServiceResponse[[]models.Analyst] {
	rows, err := s.repo.FindAll(q)
	if err != nil {
		return dto.Internal[[]models.Analyst](fmt.Sprintf("An error occurred while retrieving analysts: %v", err))
	}
	if len(rows) == 0 {
		return dto.NotFound[[]models.Analyst]("No analysts found")
	}
	return dto.Success("Analysts found", rows, http.StatusOK)
}

func (s *AnalystService) FindByID(id uint) dto.ServiceResponse[*models.Analyst] {
	row, err := s.repo.FindByID(id)
	if err != nil {
		return dto.Internal[*models.Analyst](fmt.Sprintf("An error occurred while retrieving the analyst: %v", err))
	}
	if row == nil {
		return dto.NotFound[*models.Analyst]("Analyst not found")
	}
	return dto.Success("Analyst found", row, http.StatusOK)
}

func (s *AnalystService) Create(req *dto.CreateAnalystRequest) dto.ServiceResponse[*models.Analyst] {
	if f := checkUnique("Analyst", 0, s.nameUnique(req.Name)); f != nil {
		return asFailure[*models.Analyst](f)
	}

	row := &models.Analyst{Name: req.Name}
	if err := s.repo.Create(row); err != nil {
		return persistFailure[*models.Analyst]("Analyst", "creating", err)
	}
	return dto.Success("Analyst created successfully", row, http.StatusCreated)
}

func (s *AnalystService) Update(id uint, req *dto.UpdateAnalystRequest) dto.ServiceResponse[*models.Analyst] {
	fields := map[string]any{}
	var checks []uniqueField
	if req.Name != nil {
		fields["name"] = *req.Name
		checks = append(checks, s.nameUnique(*req.Name))
	}

	if f := checkUnique("Analyst", id, checks...); f != nil {
		return asFailure[*models.Analyst](f)
	}

	row, err := s.repo.Update(id, fields)
	if err != nil {
		return persistFailure[*models.Analyst]("Analyst", "updating", err)
	}
	if row == nil {
		return dto.NotFound[*models.Analyst]("Analyst not found")
	}
	return dto.Success("Analyst updated successfully", row, http.StatusOK)
}

func (s *AnalystService) Delete(id uint) dto.ServiceResponse[*models.Analyst] {
	if err := s.repo.Delete(id); err != nil {
		return dto.Internal[*models.Analyst](fmt.Sprintf("An error occurred while deleting the analyst: %v", err))
	}
	return dto.Success[*models.Analyst]("Analyst deleted successfully", nil, http.StatusOK)
}

func (s *AnalystService) nameUnique(name string) uniqueField {
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
