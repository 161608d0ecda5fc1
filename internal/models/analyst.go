package models

import "time"

// Analyst is a person responsible for one or more data resources.
type Analyst struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	LastUpdate time.Time `gorm:"column:last_update;autoUpdateTime" json:"last_update"`
}
