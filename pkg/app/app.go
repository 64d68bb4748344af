// Package app wires the services together from their dependencies.
package app

import (
	"log/slog"

	"github.com/amirasaad/minibank/pkg/config"
	"github.com/amirasaad/minibank/pkg/repository"
	"github.com/amirasaad/minibank/pkg/service/account"
	"github.com/amirasaad/minibank/pkg/service/auth"
	"github.com/amirasaad/minibank/pkg/service/user"
)

// Deps contains the infrastructure the services are built from.
type Deps struct {
	Uow             repository.UnitOfWork
	RevocationStore auth.RevocationStore
	Logger          *slog.Logger
}

type App struct {
	Deps           *Deps
	Config         *config.App
	AuthService    *auth.Service
	UserService    *user.Service
	AccountService *account.Service
}

func New(deps *Deps, cfg *config.App) *App {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	app.AuthService = auth.New(deps.Uow, cfg.Auth.Jwt, deps.RevocationStore, logger)
	app.UserService = user.New(deps.Uow, cfg.Auth.BcryptCost, logger)
	app.AccountService = account.NewService(deps.Uow, app.AuthService, logger)
	return app
}
