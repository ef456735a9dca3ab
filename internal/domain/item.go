package domain

import (
	"fmt"
	"time"
)

// Validation errors for Item. Both wrap ErrValidation so callers can
// detect any validation failure with errors.Is(err, ErrValidation).
var (
	ErrEmptyItemName        = fmt.Errorf("%w: item name cannot be empty", ErrValidation)
	ErrEmptyItemDescription = fmt.Errorf("%w: item description cannot be empty", ErrValidation)
)

// Item represents a named, described record. The ID is assigned by the
// store on creation and is immutable afterwards; IDs are never reused
// after deletion.
type Item struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewItem creates a new Item with the given name and description.
// The ID is left zero until the store assigns one on Create.
// Returns an error if validation fails.
func NewItem(name, description string) (*Item, error) {
	now := time.Now().UTC()
	item := &Item{
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks if the Item has valid data.
// Returns an error if any field fails validation.
func (i *Item) Validate() error {
	if i.Name == "" {
		return ErrEmptyItemName
	}

	if i.Description == "" {
		return ErrEmptyItemDescription
	}

	return nil
}

// Touch updates the UpdatedAt timestamp. Called whenever the item is
// mutated in place.
func (i *Item) Touch() {
	i.UpdatedAt = time.Now().UTC()
}
