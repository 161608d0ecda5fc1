package models

import (
	"time"

	"gorm.io/datatypes"
)

// Variable is a single column/field described within a dict table. Predecessor
// variable ids record lineage across rolling versions.
type Variable struct {
	ID              uint                      `gorm:"primaryKey" json:"id"`
	TableID         uint                      `gorm:"not null;index" json:"table_id"`
	Path            string                    `gorm:"size:500;not null;uniqueIndex" json:"path"`
	LabelCs         string                    `gorm:"size:255" json:"label_cs"`
	LabelEn         string                    `gorm:"size:255" json:"label_en"`
	ValueType       string                    `gorm:"size:50" json:"value_type"`
	VariableStatus  string                    `gorm:"size:50" json:"variable_status"`
	RollingVersion  string                    `gorm:"size:20" json:"rolling_version"`
	ValueSetID      *uint                     `gorm:"index" json:"value_set_id"`
	FromVariableIDs datatypes.JSONSlice[uint] `gorm:"type:jsonb" json:"from_variable_ids"`
	LastUpdate      time.Time                 `gorm:"column:last_update;autoUpdateTime" json:"last_update"`
}
