// Package services orchestrates the reference/uniqueness protocol over the
// entity repositories and wraps every outcome in the response envelope.
//
// Every write runs the same sequence: reference checks in declared order, then
// uniqueness checks in declared order with the updated row excluded, then
// persistence. The first failing check short-circuits. The application-level
// checks are a pre-flight courtesy; the storage unique indexes remain the
// arbiter, and a storage-level duplicate surfaces as the same conflict.
package services

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"github.com/research-metadata/catalog-api/internal/dto"
)

// checkFailure is a classified protocol failure. status carries the HTTP code
// of the classification (400 invalid reference, 409 conflict, 500 unexpected).
type checkFailure struct {
	message string
	status  int
}

// reference is one foreign-key-shaped field to validate. A nil id passes
// trivially; requiredness is enforced at request-shape validation.
type reference struct {
	entity string
	id     *uint
	find   func(uint) (bool, error)
}

// uniqueField is one uniqueness-relevant field. provided reports whether the
// field was supplied in the payload; unsupplied fields skip the check. find
// returns the id of the row currently holding the value, or nil.
type uniqueField struct {
	name     string
	value    any
	provided bool
	find     func() (*uint, error)
}

func checkReferences(refs ...reference) *checkFailure {
	for _, ref := range refs {
		if ref.id == nil {
			continue
		}
		found, err := ref.find(*ref.id)
		if err != nil {
			return &checkFailure{
				message: fmt.Sprintf("An error occurred while validating the %s reference: %v", strings.ToLower(ref.entity), err),
				status:  http.StatusInternalServerError,
			}
		}
		if !found {
			return &checkFailure{
				message: fmt.Sprintf("%s with ID %d does not exist", ref.entity, *ref.id),
				status:  http.StatusBadRequest,
			}
		}
	}
	return nil
}

// checkUnique validates the fields in order, first conflict wins. excludeID is
// the id of the row being updated (0 on create): a row never conflicts with
// itself.
func checkUnique(entity string, excludeID uint, fields ...uniqueField) *checkFailure {
	for _, f := range fields {
		if !f.provided {
			continue
		}
		existing, err := f.find()
		if err != nil {
			return &checkFailure{
				message: fmt.Sprintf("An error occurred while checking %s uniqueness: %v", strings.ToLower(entity), err),
				status:  http.StatusInternalServerError,
			}
		}
		if existing != nil && *existing != excludeID {
			return &checkFailure{
				message: fmt.Sprintf("%s %s with %s %v already exists.", article(entity), entity, f.name, f.value),
				status:  http.StatusConflict,
			}
		}
	}
	return nil
}

// exists adapts a FindByID-style lookup into a reference probe.
func exists[T any](find func(uint) (*T, error)) func(uint) (bool, error) {
	return func(id uint) (bool, error) {
		row, err := find(id)
		if err != nil {
			return false, err
		}
		return row != nil, nil
	}
}

func asFailure[T any](f *checkFailure) dto.ServiceResponse[T] {
	return dto.Failure[T](f.message, f.status)
}

// persistFailure classifies a repository write error. A translated duplicate
// key means the pre-flight check raced a concurrent write; report it as the
// same conflict.
func persistFailure[T any](entity, verb string, err error) dto.ServiceResponse[T] {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return dto.Conflict[T](fmt.Sprintf("%s %s with the same unique value already exists.", article(entity), entity))
	}
	return dto.Internal[T](fmt.Sprintf("An error occurred while %s the %s: %v", verb, strings.ToLower(entity), err))
}

// article follows pronunciation, not spelling: "User" starts with a
// consonant sound, so U-initial entity names take "A".
func article(noun string) string {
	switch noun[0] {
	case 'A', 'E', 'I', 'O':
		return "An"
	default:
		return "A"
	}
}
