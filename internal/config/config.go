package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"     validate:"required"`
	Database   DatabaseConfig   `mapstructure:"database"   validate:"required"`
	Validation ValidationConfig `mapstructure:"validation" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	// Driver selects the storage backend.
	Driver string `mapstructure:"driver" validate:"required,oneof=sqlite postgres"`

	// DSN is the driver-specific connection string. For sqlite an empty
	// DSN falls back to an in-memory database.
	DSN string `mapstructure:"dsn"`
}

// ValidationConfig contains the configurable field length bounds for items.
type ValidationConfig struct {
	MaxNameLength        int `mapstructure:"max_name_length"        validate:"required,gt=0"`
	MaxDescriptionLength int `mapstructure:"max_description_length" validate:"required,gt=0"`
}
