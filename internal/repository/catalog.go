package repository

import (
	"gorm.io/gorm"

	"github.com/research-metadata/catalog-api/internal/models"
)

type AnalystRepository struct {
	base[models.Analyst]
}

func NewAnalystRepository(db *gorm.DB) *AnalystRepository {
	return &AnalystRepository{newBase[models.Analyst](db, map[string]string{
		"name": "name",
	})}
}

func (r *AnalystRepository) FindByName(name string) (*models.Analyst, error) {
	return r.findBy("name", name)
}

type ResourceRepository struct {
	base[models.Resource]
}

func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{newBase[models.Resource](db, map[string]string{
		"code":          "code",
		"name":          "name",
		"institution":   "institution",
		"project_phase": "project_phase",
	})}
}

func (r *ResourceRepository) FindByCode(code string) (*models.Resource, error) {
	return r.findBy("code", code)
}

type DictionaryRepository struct {
	base[models.Dictionary]
}

func NewDictionaryRepository(db *gorm.DB) *DictionaryRepository {
	return &DictionaryRepository{newBase[models.Dictionary](db, map[string]string{
		"resource_id":     "resource_id",
		"current_version": "current_version",
	})}
}

func (r *DictionaryRepository) FindByResourceID(resourceID uint) (*models.Dictionary, error) {
	return r.findBy("resource_id", resourceID)
}

type DictTableRepository struct {
	base[models.DictTable]
}

func NewDictTableRepository(db *gorm.DB) *DictTableRepository {
	return &DictTableRepository{newBase[models.DictTable](db, map[string]string{
		"name":          "name",
		"dictionary_id": "dictionary_id",
		"entity_type":   "entity_type",
		"domain":        "domain",
	})}
}

func (r *DictTableRepository) FindByDictionaryID(dictionaryID uint) (*models.DictTable, error) {
	return r.findBy("dictionary_id", dictionaryID)
}

func (r *DictTableRepository) FindByName(name string) (*models.DictTable, error) {
	return r.findBy("name", name)
}

type VariableRepository struct {
	base[models.Variable]
}

func NewVariableRepository(db *gorm.DB) *VariableRepository {
	return &VariableRepository{newBase[models.Variable](db, map[string]string{
		"path":            "path",
		"table_id":        "table_id",
		"value_type":      "value_type",
		"variable_status": "variable_status",
	})}
}

func (r *VariableRepository) FindByPath(path string) (*models.Variable, error) {
	return r.findBy("path", path)
}

type ValueSetRepository struct {
	base[models.ValueSet]
}

func NewValueSetRepository(db *gorm.DB) *ValueSetRepository {
	return &ValueSetRepository{newBase[models.ValueSet](db, map[string]string{
		"name": "name",
	})}
}

func (r *ValueSetRepository) FindByName(name string) (*models.ValueSet, error) {
	return r.findBy("name", name)
}

type ValueSetCodeRepository struct {
	base[models.ValueSetCode]
}

func NewValueSetCodeRepository(db *gorm.DB) *ValueSetCodeRepository {
	return &ValueSetCodeRepository{newBase[models.ValueSetCode](db, map[string]string{
		"code":         "code",
		"value_set_id": "value_set_id",
	})}
}

func (r *ValueSetCodeRepository) FindByValueSetID(valueSetID uint) (*models.ValueSetCode, error) {
	return r.findBy("value_set_id", valueSetID)
}

func (r *ValueSetCodeRepository) FindByCode(code string) (*models.ValueSetCode, error) {
	return r.findBy("code", code)
}

type MappingRepository struct {
	base[models.Mapping]
}

func NewMappingRepository(db *gorm.DB) *MappingRepository {
	return &MappingRepository{newBase[models.Mapping](db, map[string]string{
		"original_value":    "original_value",
		"value_set_code_id": "value_set_code_id",
	})}
}

func (r *MappingRepository) FindByValueSetCodeID(valueSetCodeID uint) (*models.Mapping, error) {
	return r.findBy("value_set_code_id", valueSetCodeID)
}

func (r *MappingRepository) FindByOriginalValue(originalValue string) (*models.Mapping, error) {
	return r.findBy("original_value", originalValue)
}
