package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amirasaad/minibank/infra/initializer"
	"github.com/amirasaad/minibank/pkg/app"
	"github.com/amirasaad/minibank/pkg/config"
	"github.com/amirasaad/minibank/webapi"
	log "github.com/charmbracelet/log"

	_ "github.com/amirasaad/minibank/cmd/server/swagger"
)

const shutdownTimeout = 10 * time.Second

// @title MiniBank API
// @version 1.0.0
// @description MiniBank API documentation
// @contact.name API Support
// @host localhost:3000
// @BasePath /
//
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name access_token
// @description Session token set by /auth/login
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	// Initialize all dependencies
	deps, cleanup, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer cleanup()
	logger := deps.Logger

	// Setup Fiber app with all routes and middleware
	fiberApp := webapi.SetupApp(app.New(deps, cfg))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
	)

	errCh := make(chan error, 1)
	go func() { errCh <- fiberApp.Listen(addr) }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	logger.Info("Shutting down server")
	if err := fiberApp.ShutdownWithTimeout(shutdownTimeout); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		return err
	}
	return nil
}
