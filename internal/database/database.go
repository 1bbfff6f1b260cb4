package database

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/mx-space/portfolio/internal/config"
	"github.com/mx-space/portfolio/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// Open creates the connection pool for the configured database. It does not
// dial the server, so an unreachable store only fails the requests that use it.
func Open(cfg *config.AppConfig) (*gorm.DB, error) {
	driver := cfg.Driver()
	dialector, err := dialectorFor(driver, cfg.Database.URL)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:               newLogger(cfg),
		TranslateError:       true,
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, fmt.Errorf("database open failed: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("resolve sql db: %w", err)
	}
	if driver == config.DriverSQLite {
		// One connection keeps in-memory databases alive and avoids SQLITE_BUSY.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
	} else {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	}
	return db, nil
}

// EnsureSchema creates the portfolio tables and indexes when they are missing.
// It is idempotent and is meant to run once before serving traffic.
func EnsureSchema(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// Ping reports whether the store is reachable.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dialectorFor(driver, url string) (gorm.Dialector, error) {
	dsn := config.DriverDSN(url)
	switch driver {
	case config.DriverPostgres:
		return postgres.Open(dsn), nil
	case config.DriverMySQL:
		return mysql.New(mysql.Config{
			DSN:                       dsn,
			DefaultStringSize:         191,
			SkipInitializeWithVersion: true,
		}), nil
	case config.DriverSQLite:
		if strings.TrimSpace(dsn) == "" {
			dsn = ":memory:"
		}
		return sqlite.Open(dsn), nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", driver)
}

// newLogger writes through the standard logger, which main redirects into zap.
func newLogger(cfg *config.AppConfig) logger.Interface {
	return logger.New(log.Default(), logger.Config{
		SlowThreshold:             slowQueryThreshold,
		LogLevel:                  resolveLogLevel(cfg),
		IgnoreRecordNotFoundError: true,
	})
}

func resolveLogLevel(cfg *config.AppConfig) logger.LogLevel {
	if cfg.IsDev() {
		return logger.Info
	}
	return logger.Warn
}
