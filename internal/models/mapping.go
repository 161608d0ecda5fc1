package models

import "time"

// Mapping links an original source value to a canonical value set code.
type Mapping struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ValueSetCodeID uint      `gorm:"not null;uniqueIndex" json:"value_set_code_id"`
	OriginalValue  string    `gorm:"size:255;not null;uniqueIndex" json:"original_value"`
	Comment        string    `gorm:"type:text" json:"comment"`
	LastUpdate     time.Time `gorm:"column:last_update;autoUpdateTime" json:"last_update"`
}
