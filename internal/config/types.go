package config

import "time"

// AppConfig holds runtime startup configuration loaded from YAML and the environment.
type AppConfig struct {
	Port           int                   `yaml:"port"`
	Env            string                `yaml:"env"` // "development" | "production"
	Database       DatabaseRuntimeConfig `yaml:"database"`
	AllowedOrigins []string              `yaml:"allowed_origins"`
	LogDirPath     string                `yaml:"log_dir"`
}

type DatabaseRuntimeConfig struct {
	URL             string        `yaml:"url"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	// StrictStartup aborts the process when schema initialization fails.
	StrictStartup bool `yaml:"strict_startup"`
}

type rawAppConfig struct {
	Port               int               `yaml:"port"`
	Env                string            `yaml:"env"`
	AppEnv             string            `yaml:"app_env"`
	Database           rawDatabaseConfig `yaml:"database"`
	DatabaseURL        string            `yaml:"database_url"`
	AllowedOrigins     []string          `yaml:"allowed_origins"`
	CORSAllowedOrigins []string          `yaml:"cors_allowed_origins"`
	LogDir             string            `yaml:"log_dir"`
}

type rawDatabaseConfig struct {
	URL             string         `yaml:"url"`
	DSN             string         `yaml:"dsn"`
	MaxOpenConns    *int           `yaml:"max_open_conns"`
	MaxIdleConns    *int           `yaml:"max_idle_conns"`
	ConnMaxLifetime *time.Duration `yaml:"conn_max_lifetime"`
	StrictStartup   *bool          `yaml:"strict_startup"`
}
