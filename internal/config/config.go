package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrMissingDatabaseURL is returned when neither the config file nor the
// environment names a database.
var ErrMissingDatabaseURL = errors.New("no database url configured, set " + EnvDatabaseURL + " or database.url")

// LoadDotEnv copies variables from a .env file into the process environment.
// Variables that are already set win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if strings.TrimSpace(path) == "" {
		path = DefaultDotEnvPath
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %q: %w", path, err)
	}
	return nil
}

// Load reads the YAML config, applies environment overrides and validates the
// result. An empty path means DefaultConfigPath, which may be absent.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	optional := path == ""
	if optional {
		path = DefaultConfigPath
	}

	raw := rawAppConfig{}
	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		decoder := yaml.NewDecoder(bytes.NewReader(content))
		decoder.KnownFields(true)
		if err := decoder.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse config file %q: %w", path, err)
		}
	case optional && errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	cfg := defaultAppConfig()
	applyRawAppConfig(&cfg, raw)
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	cfg.Env = normalizeEnv(cfg.Env)
	cfg.AllowedOrigins = normalizeOrigins(cfg.AllowedOrigins)
	cfg.Database = normalizeDatabaseConfig(cfg.Database)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	return &cfg, nil
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port:           defaultPort,
		Env:            defaultEnv,
		AllowedOrigins: append([]string(nil), defaultAllowedOrigins...),
		Database: DatabaseRuntimeConfig{
			MaxOpenConns:    defaultMaxOpenConns,
			MaxIdleConns:    defaultMaxIdleConns,
			ConnMaxLifetime: defaultConnMaxLifetime,
		},
	}
}

func applyRawAppConfig(cfg *AppConfig, raw rawAppConfig) {
	if raw.Port != 0 {
		cfg.Port = raw.Port
	}
	if v := strings.TrimSpace(raw.Env); v != "" {
		cfg.Env = v
	}
	if v := strings.TrimSpace(raw.AppEnv); v != "" {
		cfg.Env = v
	}
	if len(raw.AllowedOrigins) > 0 {
		cfg.AllowedOrigins = raw.AllowedOrigins
	}
	if len(raw.CORSAllowedOrigins) > 0 {
		cfg.AllowedOrigins = raw.CORSAllowedOrigins
	}
	if v := strings.TrimSpace(raw.LogDir); v != "" {
		cfg.LogDirPath = v
	}
	cfg.Database = applyRawDatabaseConfig(cfg.Database, raw)
}

func applyRawDatabaseConfig(current DatabaseRuntimeConfig, raw rawAppConfig) DatabaseRuntimeConfig {
	if v := strings.TrimSpace(raw.DatabaseURL); v != "" {
		current.URL = v
	}
	if v := strings.TrimSpace(raw.Database.DSN); v != "" {
		current.URL = v
	}
	if v := strings.TrimSpace(raw.Database.URL); v != "" {
		current.URL = v
	}
	if raw.Database.MaxOpenConns != nil {
		current.MaxOpenConns = *raw.Database.MaxOpenConns
	}
	if raw.Database.MaxIdleConns != nil {
		current.MaxIdleConns = *raw.Database.MaxIdleConns
	}
	if raw.Database.ConnMaxLifetime != nil {
		current.ConnMaxLifetime = *raw.Database.ConnMaxLifetime
	}
	if raw.Database.StrictStartup != nil {
		current.StrictStartup = *raw.Database.StrictStartup
	}
	return current
}

func applyEnv(cfg *AppConfig, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvDatabaseURL); ok && strings.TrimSpace(v) != "" {
		cfg.Database.URL = v
	}
	if v, ok := lookup(EnvPort); ok && strings.TrimSpace(v) != "" {
		port, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvPort, v, err)
		}
		cfg.Port = port
	}
	if v, ok := lookup(EnvAppEnv); ok && strings.TrimSpace(v) != "" {
		cfg.Env = v
	}
	if v, ok := lookup(EnvAllowedOrigins); ok && strings.TrimSpace(v) != "" {
		cfg.AllowedOrigins = strings.Split(v, ",")
	}
	if v, ok := lookup(EnvLogDir); ok && strings.TrimSpace(v) != "" {
		cfg.LogDirPath = v
	}
	return nil
}

func (c *AppConfig) validate() error {
	if c.Database.URL == "" {
		return ErrMissingDatabaseURL
	}
	if c.Driver() == "" {
		return fmt.Errorf("unsupported database url %q, expected postgres, mysql or sqlite", redactURL(c.Database.URL))
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d, expected 1-65535", c.Port)
	}
	if c.Database.MaxOpenConns < 0 {
		return fmt.Errorf("invalid database.max_open_conns %d, expected >= 0", c.Database.MaxOpenConns)
	}
	if c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("invalid database.max_idle_conns %d, expected >= 0", c.Database.MaxIdleConns)
	}
	if c.Database.ConnMaxLifetime < 0 {
		return fmt.Errorf("invalid database.conn_max_lifetime %s, expected >= 0", c.Database.ConnMaxLifetime)
	}
	return nil
}

func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(c.Env, devEnv)
}

// Addr returns the listen address.
func (c *AppConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// LogDir returns the absolute log directory. Relative paths are taken from the
// working directory.
func (c *AppConfig) LogDir() string {
	dir := defaultLogSubdir
	if c != nil && strings.TrimSpace(c.LogDirPath) != "" {
		dir = strings.TrimSpace(c.LogDirPath)
	}
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	if wd, err := os.Getwd(); err == nil {
		return filepath.Join(wd, dir)
	}
	return filepath.Clean(dir)
}
