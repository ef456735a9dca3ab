// Package service provides application-level services for managing items.
package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Service methods return sentinel errors for expected conditions; callers use
// errors.Is to check for them, and the API layer maps them to HTTP status codes.
var (
	// ErrItemNotFound indicates that the requested item does not exist.
	// API layer should map this to HTTP 404 Not Found.
	ErrItemNotFound = errors.New("item not found")
)
