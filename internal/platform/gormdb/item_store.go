package gormdb

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/jmallory/item-api/internal/domain"
	"github.com/jmallory/item-api/internal/store"
)

// GormItemStore implements the store.ItemStore interface using GORM
// as the persistence backend.
type GormItemStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormItemStore creates a new GORM implementation of the ItemStore
// interface. The connection should be initialized and migrated by the
// caller. If logger is nil, a default logger will be used.
func NewGormItemStore(db *gorm.DB, logger *slog.Logger) *GormItemStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &GormItemStore{
		db:     db,
		logger: logger.With(slog.String("component", "item_store")),
	}
}

// Ensure GormItemStore implements store.ItemStore interface
var _ store.ItemStore = (*GormItemStore)(nil)

// Create implements store.ItemStore.Create
// It saves a new item to the database and copies the assigned ID back
// onto the domain entity. Returns validation errors from the domain Item
// if data is invalid.
func (s *GormItemStore) Create(ctx context.Context, item *domain.Item) error {
	if err := item.Validate(); err != nil {
		s.logger.Warn("item validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	model := &ItemModel{}
	model.FromDomain(item)

	if err := s.db.WithContext(ctx).Create(model).Error; err != nil {
		s.logger.Error("failed to create item",
			slog.String("error", err.Error()))
		return MapError(err)
	}

	// The store assigns the ID; the entity carries it from here on.
	item.ID = model.ID

	s.logger.Info("item created",
		slog.Int64("item_id", item.ID))
	return nil
}

// List implements store.ItemStore.List
// It retrieves a page of items ordered by ID ascending, so successive
// pages are disjoint and contiguous.
func (s *GormItemStore) List(ctx context.Context, limit, offset int) ([]*domain.Item, error) {
	var models []*ItemModel

	query := s.db.WithContext(ctx).Model(&ItemModel{}).Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&models).Error; err != nil {
		s.logger.Error("failed to list items",
			slog.String("error", err.Error()),
			slog.Int("limit", limit),
			slog.Int("offset", offset))
		return nil, MapError(err)
	}

	items := make([]*domain.Item, len(models))
	for i, model := range models {
		items[i] = model.ToDomain()
	}

	return items, nil
}

// GetByID implements store.ItemStore.GetByID
// Returns store.ErrItemNotFound if the item does not exist.
func (s *GormItemStore) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	var model ItemModel

	err := s.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Debug("item not found", slog.Int64("item_id", id))
			return nil, store.ErrItemNotFound
		}
		s.logger.Error("failed to get item by ID",
			slog.String("error", err.Error()),
			slog.Int64("item_id", id))
		return nil, MapError(err)
	}

	return model.ToDomain(), nil
}

// Update implements store.ItemStore.Update
// It writes the item's mutable fields. Returns store.ErrItemNotFound if
// the item does not exist, and validation errors if the data is invalid.
func (s *GormItemStore) Update(ctx context.Context, item *domain.Item) error {
	if err := item.Validate(); err != nil {
		s.logger.Warn("item validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("item_id", item.ID))
		return err
	}

	item.UpdatedAt = time.Now().UTC()

	res := s.db.WithContext(ctx).Model(&ItemModel{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"name":        item.Name,
			"description": item.Description,
			"updated_at":  item.UpdatedAt,
		})
	if res.Error != nil {
		s.logger.Error("failed to update item",
			slog.String("error", res.Error.Error()),
			slog.Int64("item_id", item.ID))
		return MapError(res.Error)
	}

	if err := CheckRowsAffected(res.RowsAffected, "item"); err != nil {
		s.logger.Debug("item not found during update", slog.Int64("item_id", item.ID))
		return err
	}

	s.logger.Info("item updated", slog.Int64("item_id", item.ID))
	return nil
}

// Delete implements store.ItemStore.Delete
// Hard delete. Returns store.ErrItemNotFound if the item does not exist,
// so deleting the same ID twice fails the second time.
func (s *GormItemStore) Delete(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&ItemModel{})
	if res.Error != nil {
		s.logger.Error("failed to delete item",
			slog.String("error", res.Error.Error()),
			slog.Int64("item_id", id))
		return MapError(res.Error)
	}

	if err := CheckRowsAffected(res.RowsAffected, "item"); err != nil {
		s.logger.Debug("item not found during delete", slog.Int64("item_id", id))
		return err
	}

	s.logger.Info("item deleted", slog.Int64("item_id", id))
	return nil
}
