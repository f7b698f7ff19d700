package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jaekwang-park/todo-assign-api/internal/config"
	todohttp "github.com/jaekwang-park/todo-assign-api/internal/http"
	"github.com/jaekwang-park/todo-assign-api/internal/logging"
	"github.com/jaekwang-park/todo-assign-api/internal/repository"
	"github.com/jaekwang-park/todo-assign-api/internal/service"
)

func main() {
	// Initial logger at info level; reconfigured after config load
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(context.Background()); err != nil {
		logger.Error("application failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(os.Stdout, cfg.ParseLogLevel(), cfg.LogFormat)
	slog.SetDefault(logger)

	logger.Info("config loaded",
		"env", cfg.AppEnv,
		"port", cfg.ServerPort,
		"log_level", cfg.LogLevel,
		"api_prefix", cfg.APIPrefix,
		"db_driver", cfg.DB.Driver,
	)

	// Database connection
	db, err := repository.Open(ctx, cfg.DB.Driver, cfg.DB.DSN(), repository.PoolConfig{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxOpenConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		return err
	}
	defer db.Close()
	logger.Info("database connected")

	if cfg.DB.ApplySchema {
		if err := repository.ApplySchema(ctx, db); err != nil {
			return err
		}
		logger.Info("database schema applied")
	}

	store := repository.NewSQLStore(db)
	todoSvc := service.NewTodoService(store)

	// HTTP Server
	router := todohttp.NewRouter(cfg.APIPrefix, todoSvc, store)
	srv := todohttp.NewServer(cfg.ServerPort, logger, router)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	logger.Info("server starting", "port", cfg.ServerPort)

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("server stopped gracefully")
	return nil
}
