package gormdb

import (
	"time"

	"github.com/jmallory/item-api/internal/domain"
)

// ItemModel is the GORM persistence model for domain.Item.
// The AUTOINCREMENT primary key guarantees IDs are never reused
// after deletion, on sqlite and postgres alike.
type ItemModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"size:255;not null"`
	Description string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName sets the table name in the database to "items".
func (ItemModel) TableName() string {
	return "items"
}

// FromDomain populates the model from a domain entity.
func (m *ItemModel) FromDomain(item *domain.Item) {
	m.ID = item.ID
	m.Name = item.Name
	m.Description = item.Description
	m.CreatedAt = item.CreatedAt
	m.UpdatedAt = item.UpdatedAt
}

// ToDomain converts the model back to a domain entity.
func (m *ItemModel) ToDomain() *domain.Item {
	return &domain.Item{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
