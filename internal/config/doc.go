// Package config provides functionality for loading and managing
// application configuration.
//
// This package handles loading settings from environment variables and an
// optional config file, validating them, and making them accessible
// throughout the application.
package config
