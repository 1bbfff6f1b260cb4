package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mx-space/portfolio/internal/app"
	"github.com/mx-space/portfolio/internal/config"
	"github.com/mx-space/portfolio/internal/pkg/nativelog"
	"go.uber.org/zap"
)

const (
	initTimeout     = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (default "+config.DefaultConfigPath+", optional)")
	envPath := flag.String("env-file", config.DefaultDotEnvPath, "Path to .env file (optional)")
	flag.Parse()

	bootLogger, _ := zap.NewProduction()
	if err := config.LoadDotEnv(*envPath); err != nil {
		bootLogger.Fatal("failed to load env file", zap.Error(err))
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		bootLogger.Fatal("failed to load config", zap.Error(err))
	}

	logger, err := nativelog.NewZapLogger(cfg.LogDir(), cfg.IsDev())
	if err != nil {
		logger = bootLogger
		logger.Warn("native log pipeline unavailable, fallback to zap production logger", zap.Error(err))
	}
	defer logger.Sync()

	application, err := app.New(logger, cfg)
	if err != nil {
		logger.Fatal("failed to initialize app", zap.Error(err))
	}

	initCtx, cancelInit := context.WithTimeout(context.Background(), initTimeout)
	if err := application.Init(initCtx); err != nil && cfg.Database.StrictStartup {
		cancelInit()
		logger.Fatal("schema initialization failed and database.strict_startup is set", zap.Error(err))
	}
	cancelInit()

	srv := &http.Server{
		Addr:              application.Addr(),
		Handler:           application.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr), zap.String("driver", cfg.Driver()), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
	application.Shutdown()
	logger.Info("server exited")
}
