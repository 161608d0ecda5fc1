package services

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/research-metadata/catalog-api/internal/dto"
	"github.com/research-metadata/catalog-api/internal/models"
	"github.com/research-metadata/catalog-api/internal/repository"
)

type stubVariableRepo struct {
	rows   []models.Variable
	nextID uint
}

func newStubVariableRepo() *stubVariableRepo {
	return &stubVariableRepo{nextID: 1}
}

func (r *stubVariableRepo) FindAll(_ repository.ListQuery) ([]models.Variable, error) {
	return append([]models.Variable{}, r.rows...), nil
}

func (r *stubVariableRepo) FindByID(id uint) (*models.Variable, error) {
	for _, row := range r.rows {
		if row.ID == id {
			clone := row
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubVariableRepo) FindByPath(path string) (*models.Variable, error) {
	for _, row := range r.rows {
		if row.Path == path {
			clone := row
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubVariableRepo) Create(row *models.Variable) error {
	row.ID = r.nextID
	r.nextID++
	row.LastUpdate = time.Now()
	r.rows = append(r.rows, *row)
	return nil
}

func (r *stubVariableRepo) Update(id uint, fields map[string]any) (*models.Variable, error) {
	for i := range r.rows {
		if r.rows[i].ID == id {
			if v, ok := fields["path"].(string); ok {
				r.rows[i].Path = v
			}
			if v, ok := fields["variable_status"].(string); ok {
				r.rows[i].VariableStatus = v
			}
			r.rows[i].LastUpdate = time.Now()
			clone := r.rows[i]
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubVariableRepo) Delete(id uint) error {
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

type fixedDictTables map[uint]bool

func (f fixedDictTables) FindByID(id uint) (*models.DictTable, error) {
	if !f[id] {
		return nil, nil
	}
	return &models.DictTable{ID: id}, nil
}

func TestVariableFindAllEmptyIsNotFound(t *testing.T) {
	svc := NewVariableService(newStubVariableRepo(), fixedValueSets{}, fixedDictTables{})

	resp := svc.FindAll(repository.ListQuery{})
	assert.False(t, resp.Success)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "No variables found", resp.Message)
}

func TestVariableCreateValueSetCheckedBeforeTable(t *testing.T) {
	svc := NewVariableService(newStubVariableRepo(), fixedValueSets{}, fixedDictTables{})

	// both references dangle; the value set failure is reported first
	nine := uint(9)
	resp := svc.Create(&dto.CreateVariableRequest{TableID: 8, Path: "subject.sex", ValueSetID: &nine})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "ValueSet with ID 9 does not exist", resp.Message)

	// without a value set, the table failure surfaces
	resp = svc.Create(&dto.CreateVariableRequest{TableID: 8, Path: "subject.sex"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "DictTable with ID 8 does not exist", resp.Message)
}

func TestVariableCreateDuplicatePath(t *testing.T) {
	svc := NewVariableService(newStubVariableRepo(), fixedValueSets{}, fixedDictTables{1: true, 2: true})

	first := svc.Create(&dto.CreateVariableRequest{TableID: 1, Path: "subject.sex", FromVariableIDs: []uint{5, 6}})
	require.True(t, first.Success)
	assert.Equal(t, http.StatusCreated, first.StatusCode)
	assert.Equal(t, []uint{5, 6}, []uint(first.ResponseObject.FromVariableIDs))

	resp := svc.Create(&dto.CreateVariableRequest{TableID: 2, Path: "subject.sex"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "A Variable with path subject.sex already exists.", resp.Message)
}

func TestVariableUpdateSelfPathAndStatus(t *testing.T) {
	svc := NewVariableService(newStubVariableRepo(), fixedValueSets{}, fixedDictTables{1: true})

	created := svc.Create(&dto.CreateVariableRequest{TableID: 1, Path: "subject.sex", VariableStatus: "draft"})
	require.True(t, created.Success)

	own := "subject.sex"
	status := "active"
	resp := svc.Update(created.ResponseObject.ID, &dto.UpdateVariableRequest{Path: &own, VariableStatus: &status})
	require.True(t, resp.Success)
	assert.Equal(t, "active", resp.ResponseObject.VariableStatus)
}
