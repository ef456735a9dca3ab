package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jmallory/item-api/internal/domain"
	"github.com/jmallory/item-api/internal/service"
	"github.com/jmallory/item-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Validation errors (empty or oversized field)
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity

	// Malformed input
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, store.ErrNotFound):
		return "Item not found"

	case errors.Is(err, domain.ErrEmptyItemName):
		return "Name cannot be empty"

	case errors.Is(err, domain.ErrEmptyItemDescription):
		return "Description cannot be empty"

	case errors.Is(err, domain.ErrValidation):
		// Bound violations carry a safe, service-constructed message
		// ("validation failed: name must not exceed N characters").
		return validationDetail(err)

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid item ID"

	default:
		return "An unexpected error occurred"
	}
}

// validationDetail strips the generic "validation failed:" prefix from a
// wrapped validation error, leaving the specific detail for the client.
func validationDetail(err error) string {
	msg := err.Error()
	if detail, ok := strings.CutPrefix(msg, domain.ErrValidation.Error()+": "); ok {
		return detail
	}
	return "Validation error"
}

// SanitizeValidationError removes sensitive details from validator.v10
// struct validation errors and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format: "Key: 'CreateItemRequest.Name' Error:Field validation
	// for 'Name' failed on the 'required' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	default:
		return "validation failed"
	}
}
