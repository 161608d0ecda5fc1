package models

import "time"

// ValueSet is a named code list shared by variables.
type ValueSet struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	URL         string    `gorm:"size:500" json:"url"`
	LastUpdate  time.Time `gorm:"column:last_update;autoUpdateTime" json:"last_update"`
}
