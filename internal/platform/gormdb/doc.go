// Package gormdb implements the store interfaces on top of GORM.
// It supports sqlite (default, with an in-memory fallback) and postgres
// backends and owns the schema via auto-migration.
package gormdb
