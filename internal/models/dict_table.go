package models

import "time"

// DictTable is a table described by a dictionary.
type DictTable struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	DictionaryID uint      `gorm:"not null;uniqueIndex" json:"dictionary_id"`
	Name         string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	EntityType   string    `gorm:"size:50" json:"entity_type"`
	Domain       string    `gorm:"size:50" json:"domain"`
	LabelCs      string    `gorm:"size:255" json:"label_cs"`
	LabelEn      string    `gorm:"size:255" json:"label_en"`
	LastUpdate   time.Time `gorm:"column:last_update;autoUpdateTime" json:"last_update"`
}
