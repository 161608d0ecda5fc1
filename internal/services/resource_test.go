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

type stubResourceRepo struct {
	rows   []models.Resource
	nextID uint
}

func newStubResourceRepo() *stubResourceRepo {
	return &stubResourceRepo{nextID: 1}
}

func (r *stubResourceRepo) FindAll(_ repository.ListQuery) ([]models.Resource, error) {
	return append([]models.Resource{}, r.rows...), nil
}

func (r *stubResourceRepo) FindByID(id uint) (*models.Resource, error) {
	for _, row := range r.rows {
		if row.ID == id {
			clone := row
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubResourceRepo) FindByCode(code string) (*models.Resource, error) {
	for _, row := range r.rows {
		if row.Code == code {
			clone := row
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubResourceRepo) Create(row *models.Resource) error {
	row.ID = r.nextID
	r.nextID++
	row.LastUpdate = time.Now()
	r.rows = append(r.rows, *row)
	return nil
}

func (r *stubResourceRepo) Update(id uint, fields map[string]any) (*models.Resource, error) {
	for i := range r.rows {
		if r.rows[i].ID == id {
			if code, ok := fields["code"].(string); ok {
				r.rows[i].Code = code
			}
			if aid, ok := fields["analyst_id"].(uint); ok {
				r.rows[i].AnalystID = &aid
			}
			r.rows[i].LastUpdate = time.Now()
			clone := r.rows[i]
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubResourceRepo) Delete(id uint) error {
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

// analystLookup backed by a fixed set of ids
type fixedAnalysts map[uint]string

func (f fixedAnalysts) FindByID(id uint) (*models.Analyst, error) {
	name, ok := f[id]
	if !ok {
		return nil, nil
	}
	return &models.Analyst{ID: id, Name: name}, nil
}

func TestResourceCreateMissingAnalyst(t *testing.T) {
	svc := NewResourceService(newStubResourceRepo(), fixedAnalysts{})

	missing := uint(999)
	resp := svc.Create(&dto.CreateResourceRequest{Code: "REG-1", Name: "Registry", AnalystID: &missing})
	assert.False(t, resp.Success)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Analyst with ID 999 does not exist", resp.Message)
}

func TestResourceCreateWithoutAnalyst(t *testing.T) {
	svc := NewResourceService(newStubResourceRepo(), fixedAnalysts{})

	// analyst_id is optional; absent means no reference check
	resp := svc.Create(&dto.CreateResourceRequest{Code: "REG-1", Name: "Registry"})
	require.True(t, resp.Success)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Nil(t, resp.ResponseObject.AnalystID)
}

func TestResourceCreateReferenceBeforeUniqueness(t *testing.T) {
	repo := newStubResourceRepo()
	svc := NewResourceService(repo, fixedAnalysts{1: "A"})

	one := uint(1)
	first := svc.Create(&dto.CreateResourceRequest{Code: "REG-1", Name: "Registry", AnalystID: &one})
	require.True(t, first.Success)

	// duplicate code AND a dangling analyst: the reference failure wins
	missing := uint(5)
	resp := svc.Create(&dto.CreateResourceRequest{Code: "REG-1", Name: "Other", AnalystID: &missing})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Analyst with ID 5 does not exist", resp.Message)

	resp = svc.Create(&dto.CreateResourceRequest{Code: "REG-1", Name: "Other", AnalystID: &one})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "A Resource with code REG-1 already exists.", resp.Message)
}

func TestResourceUpdateAnalystReference(t *testing.T) {
	repo := newStubResourceRepo()
	svc := NewResourceService(repo, fixedAnalysts{1: "A", 2: "B"})

	one := uint(1)
	created := svc.Create(&dto.CreateResourceRequest{Code: "REG-1", Name: "Registry", AnalystID: &one})
	require.True(t, created.Success)

	two := uint(2)
	resp := svc.Update(created.ResponseObject.ID, &dto.UpdateResourceRequest{AnalystID: &two})
	require.True(t, resp.Success)
	require.NotNil(t, resp.ResponseObject.AnalystID)
	assert.Equal(t, uint(2), *resp.ResponseObject.AnalystID)

	missing := uint(7)
	resp = svc.Update(created.ResponseObject.ID, &dto.UpdateResourceRequest{AnalystID: &missing})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Analyst with ID 7 does not exist", resp.Message)
}
