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

type stubMappingRepo struct {
	rows   []models.Mapping
	nextID uint
}

func newStubMappingRepo() *stubMappingRepo {
	return &stubMappingRepo{nextID: 1}
}

func (r *stubMappingRepo) FindAll(_ repository.ListQuery) ([]models.Mapping, error) {
	return append([]models.Mapping{}, r.rows...), nil
}

func (r *stubMappingRepo) FindByID(id uint) (*models.Mapping, error) {
	for _, row := range r.rows {
		if row.ID == id {
			clone := row
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubMappingRepo) FindByValueSetCodeID(id uint) (*models.Mapping, error) {
	for _, row := range r.rows {
		if row.ValueSetCodeID == id {
			clone := row
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubMappingRepo) FindByOriginalValue(value string) (*models.Mapping, error) {
	for _, row := range r.rows {
		if row.OriginalValue == value {
			clone := row
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubMappingRepo) Create(row *models.Mapping) error {
	row.ID = r.nextID
	r.nextID++
	row.LastUpdate = time.Now()
	r.rows = append(r.rows, *row)
	return nil
}

func (r *stubMappingRepo) Update(id uint, fields map[string]any) (*models.Mapping, error) {
	for i := range r.rows {
		if r.rows[i].ID == id {
			if v, ok := fields["value_set_code_id"].(uint); ok {
				r.rows[i].ValueSetCodeID = v
			}
			if v, ok := fields["original_value"].(string); ok {
				r.rows[i].OriginalValue = v
			}
			if v, ok := fields["comment"].(string); ok {
				r.rows[i].Comment = v
			}
			r.rows[i].LastUpdate = time.Now()
			clone := r.rows[i]
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubMappingRepo) Delete(id uint) error {
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

type fixedValueSetCodes map[uint]bool

func (f fixedValueSetCodes) FindByID(id uint) (*models.ValueSetCode, error) {
	if !f[id] {
		return nil, nil
	}
	return &models.ValueSetCode{ID: id}, nil
}

func TestMappingFindAllEmptyIsOK(t *testing.T) {
	svc := NewMappingService(newStubMappingRepo(), fixedValueSetCodes{})

	resp := svc.FindAll(repository.ListQuery{})
	assert.True(t, resp.Success)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.ResponseObject)
}

func TestMappingCreateMissingValueSetCode(t *testing.T) {
	svc := NewMappingService(newStubMappingRepo(), fixedValueSetCodes{})

	resp := svc.Create(&dto.CreateMappingRequest{ValueSetCodeID: 12, OriginalValue: "M"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "ValueSetCode with ID 12 does not exist", resp.Message)
}

func TestMappingCreateUniqueOrdering(t *testing.T) {
	svc := NewMappingService(newStubMappingRepo(), fixedValueSetCodes{1: true, 2: true})

	first := svc.Create(&dto.CreateMappingRequest{ValueSetCodeID: 1, OriginalValue: "M", Comment: "male"})
	require.True(t, first.Success)
	assert.Equal(t, http.StatusCreated, first.StatusCode)

	// value_set_code_id is checked ahead of original_value
	resp := svc.Create(&dto.CreateMappingRequest{ValueSetCodeID: 1, OriginalValue: "M"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "A Mapping with value_set_code_id 1 already exists.", resp.Message)

	resp = svc.Create(&dto.CreateMappingRequest{ValueSetCodeID: 2, OriginalValue: "M"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "A Mapping with original_value M already exists.", resp.Message)
}

func TestMappingUpdateCommentOnly(t *testing.T) {
	svc := NewMappingService(newStubMappingRepo(), fixedValueSetCodes{1: true})

	created := svc.Create(&dto.CreateMappingRequest{ValueSetCodeID: 1, OriginalValue: "M"})
	require.True(t, created.Success)

	// comment carries no uniqueness; no lookups should reject this
	comment := "male, legacy exports"
	resp := svc.Update(created.ResponseObject.ID, &dto.UpdateMappingRequest{Comment: &comment})
	require.True(t, resp.Success)
	assert.Equal(t, comment, resp.ResponseObject.Comment)
}
