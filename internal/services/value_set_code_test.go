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

type stubValueSetCodeRepo struct {
	rows   []models.ValueSetCode
	nextID uint
}

func newStubValueSetCodeRepo() *stubValueSetCodeRepo {
	return &stubValueSetCodeRepo{nextID: 1}
}

func (r *stubValueSetCodeRepo) FindAll(_ repository.ListQuery) ([]models.ValueSetCode, error) {
	return append([]models.ValueSetCode{}, r.rows...), nil
}

func (r *stubValueSetCodeRepo) FindByID(id uint) (*models.ValueSetCode, error) {
	for _, row := range r.rows {
		if row.ID == id {
			clone := row
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubValueSetCodeRepo) FindByValueSetID(valueSetID uint) (*models.ValueSetCode, error) {
	for _, row := range r.rows {
		if row.ValueSetID == valueSetID {
			clone := row
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubValueSetCodeRepo) FindByCode(code string) (*models.ValueSetCode, error) {
	for _, row := range r.rows {
		if row.Code == code {
			clone := row
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubValueSetCodeRepo) Create(row *models.ValueSetCode) error {
	row.ID = r.nextID
	r.nextID++
	row.LastUpdate = time.Now()
	r.rows = append(r.rows, *row)
	return nil
}

func (r *stubValueSetCodeRepo) Update(id uint, fields map[string]any) (*models.ValueSetCode, error) {
	for i := range r.rows {
		if r.rows[i].ID == id {
			if v, ok := fields["value_set_id"].(uint); ok {
				r.rows[i].ValueSetID = v
			}
			if v, ok := fields["code"].(string); ok {
				r.rows[i].Code = v
			}
			r.rows[i].LastUpdate = time.Now()
			clone := r.rows[i]
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubValueSetCodeRepo) Delete(id uint) error {
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

type fixedValueSets map[uint]bool

func (f fixedValueSets) FindByID(id uint) (*models.ValueSet, error) {
	if !f[id] {
		return nil, nil
	}
	return &models.ValueSet{ID: id}, nil
}

func TestValueSetCodeFindAllEmptyIsNotFound(t *testing.T) {
	svc := NewValueSetCodeService(newStubValueSetCodeRepo(), fixedValueSets{})

	resp := svc.FindAll(repository.ListQuery{})
	assert.False(t, resp.Success)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "No value set codes found", resp.Message)
}

func TestValueSetCodeCreateMissingValueSet(t *testing.T) {
	svc := NewValueSetCodeService(newStubValueSetCodeRepo(), fixedValueSets{})

	resp := svc.Create(&dto.CreateValueSetCodeRequest{ValueSetID: 6, Code: "F"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "ValueSet with ID 6 does not exist", resp.Message)
}

func TestValueSetCodeValueSetConflictBeforeCode(t *testing.T) {
	svc := NewValueSetCodeService(newStubValueSetCodeRepo(), fixedValueSets{1: true, 2: true})

	first := svc.Create(&dto.CreateValueSetCodeRequest{ValueSetID: 1, Code: "F"})
	require.True(t, first.Success)
	assert.Equal(t, http.StatusCreated, first.StatusCode)

	// both fields collide with row 1; value_set_id is reported first
	resp := svc.Create(&dto.CreateValueSetCodeRequest{ValueSetID: 1, Code: "F"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "A ValueSetCode with value_set_id 1 already exists.", resp.Message)

	resp = svc.Create(&dto.CreateValueSetCodeRequest{ValueSetID: 2, Code: "F"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "A ValueSetCode with code F already exists.", resp.Message)
}

func TestValueSetCodeUpdateKeepsOwnValues(t *testing.T) {
	svc := NewValueSetCodeService(newStubValueSetCodeRepo(), fixedValueSets{1: true})

	created := svc.Create(&dto.CreateValueSetCodeRequest{ValueSetID: 1, Code: "F"})
	require.True(t, created.Success)

	one := uint(1)
	own := "F"
	label := "žena"
	resp := svc.Update(created.ResponseObject.ID, &dto.UpdateValueSetCodeRequest{ValueSetID: &one, Code: &own, LabelCs: &label})
	require.True(t, resp.Success)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
