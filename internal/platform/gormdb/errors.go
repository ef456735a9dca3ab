package gormdb

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jmallory/item-api/internal/store"
)

// MapError maps a GORM error to the store error taxonomy.
// It wraps the original error to preserve context for debugging.
// This function should be used in all database operations to ensure
// consistent error handling.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: duplicate key: %v", store.ErrInvalidEntity, err)
	}

	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return fmt.Errorf("%w: check constraint violated: %v", store.ErrInvalidEntity, err)
	}

	// Return the original error for errors that don't have specific mappings.
	return err
}

// CheckRowsAffected examines the number of rows affected by a write.
// If no rows were affected, it returns store.ErrNotFound wrapped with the
// entity name. This is how UPDATE and DELETE detect a missing record.
func CheckRowsAffected(rowsAffected int64, entityName string) error {
	if rowsAffected == 0 {
		if entityName == "" {
			return store.ErrNotFound
		}
		return fmt.Errorf("%w: %s not found", store.ErrNotFound, entityName)
	}
	return nil
}
