// Package api implements the HTTP handlers, request/response models, and
// error mapping for the item API. Handlers translate service results and
// errors into HTTP responses; they never leak raw internal errors to
// clients.
package api
