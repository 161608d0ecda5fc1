package models

import "time"

// Resource is a research data project or warehouse described by the catalog.
type Resource struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Code            string    `gorm:"size:50;not null;uniqueIndex" json:"code"`
	Name            string    `gorm:"size:255;not null" json:"name"`
	Description     string    `gorm:"type:text" json:"description"`
	Institution     string    `gorm:"size:255" json:"institution"`
	ProjectPhase    string    `gorm:"size:100" json:"project_phase"`
	RetentionPeriod string    `gorm:"size:100" json:"retention_period"`
	AnalystID       *uint     `gorm:"index" json:"analyst_id"`
	LastUpdate      time.Time `gorm:"column:last_update;autoUpdateTime" json:"last_update"`
}
