package models

import "time"

// ValueSetCode is a canonical code belonging to a value set.
type ValueSetCode struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ValueSetID uint      `gorm:"not null;uniqueIndex" json:"value_set_id"`
	Code       string    `gorm:"size:100;not null;uniqueIndex" json:"code"`
	LabelCs    string    `gorm:"size:255" json:"label_cs"`
	LabelEn    string    `gorm:"size:255" json:"label_en"`
	LastUpdate time.Time `gorm:"column:last_update;autoUpdateTime" json:"last_update"`
}
