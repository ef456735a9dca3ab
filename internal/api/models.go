package api

import (
	"time"

	"github.com/jmallory/item-api/internal/domain"
)

// CreateItemRequest defines the payload for the item creation endpoint.
// Length maxima are enforced by the service against the configured bounds.
type CreateItemRequest struct {
	Name        string `json:"name"        validate:"required,min=1"`
	Description string `json:"description" validate:"required,min=1"`
}

// UpdateItemRequest defines the payload for the partial update endpoint.
// Nil fields are left unchanged; a present-but-empty field is rejected.
type UpdateItemRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
}

// ItemResponse represents the response data for an item.
type ItemResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MessageResponse carries a human-readable confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// itemToResponse converts a domain.Item to an ItemResponse.
func itemToResponse(item *domain.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// itemsToResponse converts a slice of domain items, always yielding a
// non-nil slice so an empty page serializes as [] rather than null.
func itemsToResponse(items []*domain.Item) []ItemResponse {
	responses := make([]ItemResponse, len(items))
	for i, item := range items {
		responses[i] = itemToResponse(item)
	}
	return responses
}
