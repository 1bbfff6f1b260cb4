package config

import "time"

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"
	// DefaultDotEnvPath is loaded into the process environment when present.
	DefaultDotEnvPath = ".env"

	defaultPort            = 8000
	defaultEnv             = "production"
	devEnv                 = "development"
	defaultMaxOpenConns    = 10
	defaultMaxIdleConns    = 5
	defaultConnMaxLifetime = 30 * time.Minute
	defaultLogSubdir       = "logs"
)

// Environment variables that override the YAML file.
const (
	EnvDatabaseURL    = "DATABASE_URL"
	EnvPort           = "PORT"
	EnvAppEnv         = "APP_ENV"
	EnvAllowedOrigins = "CORS_ALLOWED_ORIGINS"
	EnvLogDir         = "LOG_DIR"
)

// Database drivers understood by the database package.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// defaultAllowedOrigins are the local development front-ends.
var defaultAllowedOrigins = []string{
	"http://localhost",
	"http://localhost:3000",
	"http://localhost:8080",
}
