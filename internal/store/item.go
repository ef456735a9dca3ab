package store

import (
	"context"

	"github.com/jmallory/item-api/internal/domain"
)

// ItemStore defines the interface for item data persistence.
type ItemStore interface {
	// Create saves a new item to the store and assigns its ID.
	// It handles domain validation internally.
	// Returns validation errors from the domain Item if data is invalid.
	Create(ctx context.Context, item *domain.Item) error

	// List retrieves a page of items ordered by ID ascending.
	// Returns an empty slice if the page is beyond the end of the data.
	List(ctx context.Context, limit, offset int) ([]*domain.Item, error)

	// GetByID retrieves an item by its unique ID.
	// Returns ErrItemNotFound if the item does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Item, error)

	// Update saves changes to an existing item.
	// Returns ErrItemNotFound if the item does not exist.
	// Returns validation errors if the item data is invalid.
	Update(ctx context.Context, item *domain.Item) error

	// Delete removes an item by ID. Hard delete, no tombstones.
	// Returns ErrItemNotFound if the item does not exist.
	Delete(ctx context.Context, id int64) error
}
