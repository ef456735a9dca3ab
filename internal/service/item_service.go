package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmallory/item-api/internal/config"
	"github.com/jmallory/item-api/internal/domain"
	"github.com/jmallory/item-api/internal/store"
)

// Pagination bounds for ListItems.
const (
	// DefaultListLimit is applied when the caller does not supply a limit.
	DefaultListLimit = 10

	// MaxListLimit caps the page size regardless of what the caller asks for.
	MaxListLimit = 100
)

// ItemPatch carries the fields of a partial update. Nil pointers mean
// "leave the current value unchanged".
type ItemPatch struct {
	Name        *string
	Description *string
}

// ItemService provides item-related operations.
type ItemService interface {
	// CreateItem validates the fields and persists a new item.
	CreateItem(ctx context.Context, name, description string) (*domain.Item, error)

	// ListItems retrieves a page of items. A non-positive limit falls back
	// to DefaultListLimit; limits above MaxListLimit are clamped.
	ListItems(ctx context.Context, limit, offset int) ([]*domain.Item, error)

	// GetItem retrieves an item by ID.
	// Returns ErrItemNotFound if the item does not exist.
	GetItem(ctx context.Context, id int64) (*domain.Item, error)

	// UpdateItem applies a partial update: only fields present in the patch
	// change, absent fields retain their prior value.
	// Returns ErrItemNotFound if the item does not exist.
	UpdateItem(ctx context.Context, id int64, patch ItemPatch) (*domain.Item, error)

	// DeleteItem removes an item by ID.
	// Returns ErrItemNotFound if the item does not exist.
	DeleteItem(ctx context.Context, id int64) error
}

// itemService is the default ItemService implementation backed by an
// ItemStore and the configured field length bounds.
type itemService struct {
	itemStore store.ItemStore
	bounds    config.ValidationConfig
	logger    *slog.Logger
}

// NewItemService creates a new ItemService. If logger is nil, a default
// logger will be used.
func NewItemService(
	itemStore store.ItemStore,
	bounds config.ValidationConfig,
	logger *slog.Logger,
) ItemService {
	if itemStore == nil {
		panic("itemStore cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &itemService{
		itemStore: itemStore,
		bounds:    bounds,
		logger:    logger.With(slog.String("component", "item_service")),
	}
}

// CreateItem implements ItemService.CreateItem
func (s *itemService) CreateItem(ctx context.Context, name, description string) (*domain.Item, error) {
	if err := s.validateName(name); err != nil {
		return nil, err
	}
	if err := s.validateDescription(description); err != nil {
		return nil, err
	}

	item, err := domain.NewItem(name, description)
	if err != nil {
		return nil, err
	}

	if err := s.itemStore.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return item, nil
}

// ListItems implements ItemService.ListItems
func (s *itemService) ListItems(ctx context.Context, limit, offset int) ([]*domain.Item, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	items, err := s.itemStore.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	return items, nil
}

// GetItem implements ItemService.GetItem
func (s *itemService) GetItem(ctx context.Context, id int64) (*domain.Item, error) {
	item, err := s.itemStore.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item %d: %w", id, err)
	}

	return item, nil
}

// UpdateItem implements ItemService.UpdateItem
// The item's existence is checked before field validation, so a missing
// item reports not-found even when the patch is invalid.
func (s *itemService) UpdateItem(ctx context.Context, id int64, patch ItemPatch) (*domain.Item, error) {
	item, err := s.itemStore.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item %d: %w", id, err)
	}

	if patch.Name != nil {
		if err := s.validateName(*patch.Name); err != nil {
			return nil, err
		}
		item.Name = *patch.Name
	}

	if patch.Description != nil {
		if err := s.validateDescription(*patch.Description); err != nil {
			return nil, err
		}
		item.Description = *patch.Description
	}

	item.Touch()

	if err := s.itemStore.Update(ctx, item); err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to update item %d: %w", id, err)
	}

	return item, nil
}

// DeleteItem implements ItemService.DeleteItem
func (s *itemService) DeleteItem(ctx context.Context, id int64) error {
	if err := s.itemStore.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			return ErrItemNotFound
		}
		return fmt.Errorf("failed to delete item %d: %w", id, err)
	}

	return nil
}

// validateName enforces presence and the configured maximum length.
func (s *itemService) validateName(name string) error {
	if name == "" {
		return domain.ErrEmptyItemName
	}
	if max := s.bounds.MaxNameLength; max > 0 && len(name) > max {
		return fmt.Errorf("%w: name must not exceed %d characters", domain.ErrValidation, max)
	}
	return nil
}

// validateDescription enforces presence and the configured maximum length.
func (s *itemService) validateDescription(description string) error {
	if description == "" {
		return domain.ErrEmptyItemDescription
	}
	if max := s.bounds.MaxDescriptionLength; max > 0 && len(description) > max {
		return fmt.Errorf("%w: description must not exceed %d characters", domain.ErrValidation, max)
	}
	return nil
}

// Ensure itemService implements ItemService interface
var _ ItemService = (*itemService)(nil)
