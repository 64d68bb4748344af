// Package initializer builds the process-wide dependencies from configuration.
package initializer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/amirasaad/minibank/infra"
	"github.com/amirasaad/minibank/infra/cache"
	"github.com/amirasaad/minibank/infra/migrations"
	infra_repository "github.com/amirasaad/minibank/infra/repository"
	"github.com/amirasaad/minibank/pkg/app"
	"github.com/amirasaad/minibank/pkg/config"
	"github.com/amirasaad/minibank/pkg/service/auth"
)

const redisPingTimeout = 5 * time.Second

// InitializeDependencies initializes all the application dependencies. The
// returned cleanup releases database and Redis connections.
func InitializeDependencies(cfg *config.App) (
	deps *app.Deps,
	cleanup func(),
	err error,
) {
	deps = &app.Deps{}
	logger := SetupLogger(cfg.Log, os.Stdout)
	deps.Logger = logger

	// Initialize database
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, nil, err
	}
	closers := []io.Closer{}
	if sqlDB, err := db.DB(); err == nil {
		closers = append(closers, sqlDB)
	}
	cleanup = func() {
		for _, c := range closers {
			if err := c.Close(); err != nil {
				logger.Warn("Failed to close resource", "error", err)
			}
		}
	}

	if err = migrations.Up(db); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize unit of work
	deps.Uow = infra_repository.NewUoW(db)

	store, closer, err := newRevocationStore(cfg.Redis, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	if closer != nil {
		closers = append(closers, closer)
	}
	deps.RevocationStore = store

	return deps, cleanup, nil
}

// newRevocationStore uses Redis when REDIS_URL is set and an in-process map
// otherwise.
func newRevocationStore(
	cfg *config.Redis,
	logger *slog.Logger,
) (auth.RevocationStore, io.Closer, error) {
	if cfg == nil || cfg.URL == "" {
		logger.Info("Using in-memory session revocation store")
		return cache.NewMemoryRevocationStore(), nil, nil
	}
	store, err := cache.NewRedisRevocationStore(cfg.URL, cfg.KeyPrefix, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create Redis revocation store: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	logger.Info("Using Redis session revocation store", "prefix", cfg.KeyPrefix)
	return store, store, nil
}
