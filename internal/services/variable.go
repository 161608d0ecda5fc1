package services

import (
	"fmt"
	"net/http"

	"gorm.io/datatypes"

	"github.com/research-metadata/catalog-api/internal/dto"
	"github.com/research-metadata/catalog-api/internal/models"
	"github.com/research-metadata/catalog-api/internal/repository"
)

type variableStore interface {
	FindAll(repository.ListQuery) ([]models.Variable, error)
	FindByID(uint) (*models.Variable, error)
	FindByPath(string) (*models.Variable, error)
	Create(*models.Variable) error
	Update(uint, map[string]any) (*models.Variable, error)
	Delete(uint) error
}

type valueSetLookup interface {
	FindByID(uint) (*models.ValueSet, error)
}

type dictTableLookup interface {
	FindByID(uint) (*models.DictTable, error)
}

type VariableService struct {
	repo      variableStore
	valueSets valueSetLookup
	tables    dictTableLookup
}

func NewVariableService(repo variableStore, valueSets valueSetLookup, tables dictTableLookup) *VariableService {
	return &VariableService{repo: repo, valueSets: valueSets, tables: tables}
}

func (s *VariableService) FindAll(q repository.ListQuery) dto.ServiceResponse[[]models.Variable] {
	rows, err := s.repo.FindAll(q)
	if err != nil {
		return dto.Internal[[]models.Variable](fmt.Sprintf("An error occurred while retrieving variables: %v", err))
	}
	if len(rows) == 0 {
		return dto.NotFound[[]models.Variable]("No variables found")
	}
	return dto.Success("Variables found", rows, http.StatusOK)
}

func (s *VariableService) FindByID(id uint) dto.ServiceResponse[*models.Variable] {
	row, err := s.repo.FindByID(id)
	if err != nil {
		return dto.Internal[*models.Variable](fmt.Sprintf("An error occurred while retrieving the variable: %v", err))
	}
	if row == nil {
		return dto.NotFound[*models.Variable]("Variable not found")
	}
	return dto.Success("Variable found", row, http.StatusOK)
}

func (s *VariableService) Create(req *dto.CreateVariableRequest) dto.ServiceResponse[*models.Variable] {
	tableID := req.TableID
	// value_set_id is validated before table_id, in declared order.
	if f := checkReferences(
		reference{"ValueSet", req.ValueSetID, exists(s.valueSets.FindByID)},
		reference{"DictTable", &tableID, exists(s.tables.FindByID)},
	); f != nil {
		return asFailure[*models.Variable](f)
	}
	if f := checkUnique("Variable", 0, s.pathUnique(req.Path)); f != nil {
		return asFailure[*models.Variable](f)
	}

	row := &models.Variable{
		TableID:         req.TableID,
		Path:            req.Path,
		LabelCs:         req.LabelCs,
		LabelEn:         req.LabelEn,
		ValueType:       req.ValueType,
		VariableStatus:  req.VariableStatus,
		RollingVersion:  req.RollingVersion,
		ValueSetID:      req.ValueSetID,
		FromVariableIDs: datatypes.NewJSONSlice(req.FromVariableIDs),
	}
	if err := s.repo.Create(row); err != nil {
		return persistFailure[*models.Variable]("Variable", "creating", err)
	}
	return dto.Success("Variable created successfully", row, http.StatusCreated)
}

func (s *VariableService) Update(id uint, req *dto.UpdateVariableRequest) dto.ServiceResponse[*models.Variable] {
	if f := checkReferences(
		reference{"ValueSet", req.ValueSetID, exists(s.valueSets.FindByID)},
		reference{"DictTable", req.TableID, exists(s.tables.FindByID)},
	); f != nil {
		return asFailure[*models.Variable](f)
	}

	fields := map[string]any{}
	var checks []uniqueField
	if req.TableID != nil {
		fields["table_id"] = *req.TableID
	}
	if req.Path != nil {
		fields["path"] = *req.Path
		checks = append(checks, s.pathUnique(*req.Path))
	}
	if req.LabelCs != nil {
		fields["label_cs"] = *req.LabelCs
	}
	if req.LabelEn != nil {
		fields["label_en"] = *req.LabelEn
	}
	if req.ValueType != nil {
		fields["value_type"] = *req.ValueType
	}
	if req.VariableStatus != nil {
		fields["variable_status"] = *req.VariableStatus
	}
	if req.RollingVersion != nil {
		fields["rolling_version"] = *req.RollingVersion
	}
	if req.ValueSetID != nil {
		fields["value_set_id"] = *req.ValueSetID
	}
	if req.FromVariableIDs != nil {
		fields["from_variable_ids"] = datatypes.NewJSONSlice(*req.FromVariableIDs)
	}

	if f := checkUnique("Variable", id, checks...); f != nil {
		return asFailure[*models.Variable](f)
	}

	row, err := s.repo.Update(id, fields)
	if err != nil {
		return persistFailure[*models.Variable]("Variable", "updating", err)
	}
	if row == nil {
		return dto.NotFound[*models.Variable]("Variable not found")
	}
	return dto.Success("Variable updated successfully", row, http.StatusOK)
}

func (s *VariableService) Delete(id uint) dto.ServiceResponse[*models.Variable] {
	if err := s.repo.Delete(id); err != nil {
		return dto.Internal[*models.Variable](fmt.Sprintf("An error occurred while deleting the variable: %v", err))
	}
	return dto.Success[*models.Variable]("Variable deleted successfully", nil, http.StatusOK)
}

func (s *VariableService) pathUnique(path string) uniqueField {
	return uniqueField{
		name:     "path",
		value:    path,
		provided: true,
		find: func() (*uint, error) {
			row, err := s.repo.FindByPath(path)
			if err != nil || row == nil {
				return nil, err
			}
			return &row.ID, nil
		},
	}
}
