package models

import "time"

// Dictionary tracks the published data dictionary of a resource.
// One dictionary per resource.
type Dictionary struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ResourceID     uint      `gorm:"not null;uniqueIndex" json:"resource_id"`
	CurrentVersion string    `gorm:"size:50" json:"current_version"`
	ToBePublished  bool      `json:"to_be_published"`
	LastUpdate     time.Time `gorm:"column:last_update;autoUpdateTime" json:"last_update"`
}
