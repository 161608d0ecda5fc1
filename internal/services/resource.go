package services

import (
	"fmt"
	"net/http"

	"github.com/research-metadata/catalog-api/internal/dto"
	"github.com/research-metadata/catalog-api/internal/models"
	"github.com/research-metadata/catalog-api/internal/repository"
)

type resourceStore interface {
	FindAll(repository.ListQuery) ([]models.Resource, error)
	FindByID(uint) (*models.Resource, error)
	FindByCode(string) (*models.Resource, error)
	Create(*models.Resource) error
	Update(uint, map[string]any) (*models.Resource, error)
	Delete(uint) error
}

type analystLookup interface {
	FindByID(uint) (*models.Analyst, error)
}

type ResourceService struct {
	repo     resourceStore
	analysts analystLookup
}

func NewResourceService(repo resourceStore, analysts analystLookup) *ResourceService {
	return &ResourceService{repo: repo, analysts: analysts}
}

func (s *ResourceService) FindAll(q repository.ListQuery) dto.ServiceResponse[[]models.Resource] {
	rows, err := s.repo.FindAll(q)
	if err != nil {
		return dto.Internal[[]models.Resource](fmt.Sprintf("An error occurred while retrieving resources: %v", err))
	}
	if len(rows) == 0 {
		return dto.NotFound[[]models.Resource]("No resources found")
	}
	return dto.Success("Resources found", rows, http.StatusOK)
}

func (s *ResourceService) FindByID(id uint) dto.ServiceResponse[*models.Resource] {
	row, err := s.repo.FindByID(id)
	if err != nil {
		return dto.Internal[*models.Resource](fmt.Sprintf("An error occurred while retrieving the resource: %v", err))
	}
	if row == nil {
		return dto.NotFound[*models.Resource]("Resource not found")
	}
	return dto.Success("Resource found", row, http.StatusOK)
}

func (s *ResourceService) Create(req *dto.CreateResourceRequest) dto.ServiceResponse[*models.Resource] {
	if f := checkReferences(reference{"Analyst", req.AnalystID, exists(s.analysts.FindByID)}); f != nil {
		return asFailure[*models.Resource](f)
	}
	if f := checkUnique("Resource", 0, s.codeUnique(req.Code)); f != nil {
		return asFailure[*models.Resource](f)
	}

	row := &models.Resource{
		Code:            req.Code,
		Name:            req.Name,
		Description:     req.Description,
		Institution:     req.Institution,
		ProjectPhase:    req.ProjectPhase,
		RetentionPeriod: req.RetentionPeriod,
		AnalystID:       req.AnalystID,
	}
	if err := s.repo.Create(row); err != nil {
		return persistFailure[*models.Resource]("Resource", "creating", err)
	}
	return dto.Success("Resource created successfully", row, http.StatusCreated)
}

func (s *ResourceService) Update(id uint, req *dto.UpdateResourceRequest) dto.ServiceResponse[*models.Resource] {
	if f := checkReferences(reference{"Analyst", req.AnalystID, exists(s.analysts.FindByID)}); f != nil {
		return asFailure[*models.Resource](f)
	}

	fields := map[string]any{}
	var checks []uniqueField
	if req.Code != nil {
		fields["code"] = *req.Code
		checks = append(checks, s.codeUnique(*req.Code))
	}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Institution != nil {
		fields["institution"] = *req.Institution
	}
	if req.ProjectPhase != nil {
		fields["project_phase"] = *req.ProjectPhase
	}
	if req.RetentionPeriod != nil {
		fields["retention_period"] = *req.RetentionPeriod
	}
	if req.AnalystID != nil {
		fields["analyst_id"] = *req.AnalystID
	}

	if f := checkUnique("Resource", id, checks...); f != nil {
		return asFailure[*models.Resource](f)
	}

	row, err := s.repo.Update(id, fields)
	if err != nil {
		return persistFailure[*models.Resource]("Resource", "updating", err)
	}
	if row == nil {
		return dto.NotFound[*models.Resource]("Resource not found")
	}
	return dto.Success("Resource updated successfully", row, http.StatusOK)
}

func (s *ResourceService) Delete(id uint) dto.ServiceResponse[*models.Resource] {
	if err := s.repo.Delete(id); err != nil {
		return dto.Internal[*models.Resource](fmt.Sprintf("An error occurred while deleting the resource: %v", err))
	}
	return dto.Success[*models.Resource]("Resource deleted successfully", nil, http.StatusOK)
}

func (s *ResourceService) codeUnique(code string) uniqueField {
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
