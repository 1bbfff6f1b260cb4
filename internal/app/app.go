package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mx-space/portfolio/internal/config"
	"github.com/mx-space/portfolio/internal/database"
	"github.com/mx-space/portfolio/internal/middleware"
	"github.com/mx-space/portfolio/internal/pkg/validation"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds all application dependencies.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	db     *gorm.DB
	logger *zap.Logger
}

// New opens the database pool and builds the router. It does not touch the
// schema; call Init before serving traffic.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	return NewWithDB(logger, cfg, db), nil
}

// NewWithDB builds the application around an already opened pool.
func NewWithDB(logger *zap.Logger, cfg *config.AppConfig, db *gorm.DB) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	validation.Setup()

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	app := &App{cfg: cfg, router: router, db: db, logger: logger}
	app.registerRoutes()
	return app
}

// Init creates missing tables. It is idempotent. The caller decides whether a
// failure aborts startup.
func (a *App) Init(ctx context.Context) error {
	a.logger.Info("creating database tables...")
	if err := database.EnsureSchema(ctx, a.db); err != nil {
		a.logger.Error("database table creation failed, check "+config.EnvDatabaseURL+" and that the database server is running",
			zap.String("driver", a.cfg.Driver()),
			zap.Error(err),
		)
		return err
	}
	a.logger.Info("database tables ready (created if missing)")
	return nil
}

// Addr returns the listen address.
func (a *App) Addr() string { return a.cfg.Addr() }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

// Shutdown releases the database pool.
func (a *App) Shutdown() {
	if err := database.Close(a.db); err != nil {
		a.logger.Warn("database close failed", zap.Error(err))
	}
}
