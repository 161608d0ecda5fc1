// Package repository translates entity operations into single-table GORM
// queries. Every entity repository embeds the generic base; lookup methods
// return nil (not an error) when no row matches.
package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ListQuery carries the optional filter/sort parameters of a collection read.
type ListQuery struct {
	SearchField string
	SearchValue string
	SortBy      string
	SortOrder   string
}

// base implements the uniform repository contract for one model type.
// searchable/sortable whitelist query parameter names to column names; unknown
// names are ignored rather than interpolated into SQL.
type base[T any] struct {
	db       *gorm.DB
	columns  map[string]string
	sortable map[string]string
}

func newBase[T any](db *gorm.DB, columns map[string]string) base[T] {
	return base[T]{db: db, columns: columns, sortable: columns}
}

// FindAll returns all rows, optionally substring-filtered on one whitelisted
// column and sorted by another. An empty result is not an error.
func (b *base[T]) FindAll(q ListQuery) ([]T, error) {
	tx := b.db.Model(new(T))

	if q.SearchField != "" && q.SearchValue != "" {
		if col, ok := b.columns[q.SearchField]; ok {
			tx = tx.Where(fmt.Sprintf("%s::text LIKE ?", col), "%"+q.SearchValue+"%")
		}
	}

	if col, ok := b.sortable[q.SortBy]; ok {
		dir := "ASC"
		if strings.EqualFold(q.SortOrder, "desc") {
			dir = "DESC"
		}
		tx = tx.Order(col + " " + dir)
	}

	rows := make([]T, 0)
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID returns the row or nil when absent.
func (b *base[T]) FindByID(id uint) (*T, error) {
	return b.findBy("id", id)
}

func (b *base[T]) findBy(column string, value any) (*T, error) {
	var row T
	err := b.db.Where(fmt.Sprintf("%s = ?", column), value).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Create persists the row; last_update is assigned by GORM. Storage constraint
// violations propagate to the caller.
func (b *base[T]) Create(row *T) error {
	return b.db.Create(row).Error
}

// Update applies the supplied columns to the row with the given id and returns
// the updated row, or nil when no row matched.
func (b *base[T]) Update(id uint, fields map[string]any) (*T, error) {
	if len(fields) == 0 {
		return b.FindByID(id)
	}
	tx := b.db.Model(new(T)).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return b.FindByID(id)
}

// Delete removes the row if present. Deleting a missing id is not an error.
func (b *base[T]) Delete(id uint) error {
	return b.db.Where("id = ?", id).Delete(new(T)).Error
}
