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

type stubDictTableRepo struct {
	rows   []models.DictTable
	nextID uint
}

func newStubDictTableRepo() *stubDictTableRepo {
	return &stubDictTableRepo{nextID: 1}
}

func (r *stubDictTableRepo) FindAll(_ repository.ListQuery) ([]models.DictTable, error) {
	return append([]models.DictTable{}, r.rows...), nil
}

func (r *stubDictTableRepo) FindByID(id uint) (*models.DictTable, error) {
	for _, row := range r.rows {
		if row.ID == id {
			clone := row
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubDictTableRepo) FindByDictionaryID(dictionaryID uint) (*models.DictTable, error) {
	for _, row := range r.rows {
		if row.DictionaryID == dictionaryID {
			clone := row
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubDictTableRepo) FindByName(name string) (*models.DictTable, error) {
	for _, row := range r.rows {
		if row.Name == name {
			clone := row
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubDictTableRepo) Create(row *models.DictTable) error {
	row.ID = r.nextID
	r.nextID++
	row.LastUpdate = time.Now()
	r.rows = append(r.rows, *row)
	return nil
}

func (r *stubDictTableRepo) Update(id uint, fields map[string]any) (*models.DictTable, error) {
	for i := range r.rows {
		if r.rows[i].ID == id {
			if d, ok := fields["dictionary_id"].(uint); ok {
				r.rows[i].DictionaryID = d
			}
			if name, ok := fields["name"].(string); ok {
				r.rows[i].Name = name
			}
			r.rows[i].LastUpdate = time.Now()
			clone := r.rows[i]
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubDictTableRepo) Delete(id uint) error {
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

type fixedDictionaries map[uint]bool

func (f fixedDictionaries) FindByID(id uint) (*models.Dictionary, error) {
	if !f[id] {
		return nil, nil
	}
	return &models.Dictionary{ID: id}, nil
}

func TestDictTableFindAllEmptyIsOK(t *testing.T) {
	svc := NewDictTableService(newStubDictTableRepo(), fixedDictionaries{})

	resp := svc.FindAll(repository.ListQuery{})
	assert.True(t, resp.Success)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.ResponseObject)
	assert.NotNil(t, resp.ResponseObject)
}

func TestDictTableCreateDictionaryConflictBeforeName(t *testing.T) {
	repo := newStubDictTableRepo()
	svc := NewDictTableService(repo, fixedDictionaries{1: true, 2: true})

	first := svc.Create(&dto.CreateDictTableRequest{DictionaryID: 1, Name: "patients"})
	require.True(t, first.Success)

	// both fields collide with row 1; dictionary_id is reported first
	resp := svc.Create(&dto.CreateDictTableRequest{DictionaryID: 1, Name: "patients"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "A DictTable with dictionary_id 1 already exists.", resp.Message)

	resp = svc.Create(&dto.CreateDictTableRequest{DictionaryID: 2, Name: "patients"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "A DictTable with name patients already exists.", resp.Message)
}

func TestDictTableCreateMissingDictionary(t *testing.T) {
	svc := NewDictTableService(newStubDictTableRepo(), fixedDictionaries{})

	resp := svc.Create(&dto.CreateDictTableRequest{DictionaryID: 3, Name: "patients"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Dictionary with ID 3 does not exist", resp.Message)
}

func TestDictTableUpdateCheckOrdering(t *testing.T) {
	repo := newStubDictTableRepo()
	svc := NewDictTableService(repo, fixedDictionaries{1: true, 2: true})

	svc.Create(&dto.CreateDictTableRequest{DictionaryID: 1, Name: "patients"})
	second := svc.Create(&dto.CreateDictTableRequest{DictionaryID: 2, Name: "events"})
	require.True(t, second.Success)

	// moving row 2 onto row 1's dictionary and name: dictionary_id wins
	one := uint(1)
	taken := "patients"
	resp := svc.Update(second.ResponseObject.ID, &dto.UpdateDictTableRequest{DictionaryID: &one, Name: &taken})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "A DictTable with dictionary_id 1 already exists.", resp.Message)

	// keeping its own values is fine
	two := uint(2)
	own := "events"
	resp = svc.Update(second.ResponseObject.ID, &dto.UpdateDictTableRequest{DictionaryID: &two, Name: &own})
	assert.True(t, resp.Success)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
