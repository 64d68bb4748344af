// Package webapi provides HTTP handlers and API endpoints for the bank.
// It is organized into sub-packages for different domains:
// - account: Deposit, withdraw, transfer and statement endpoints
// - auth: Registration, login and logout
// - user: Current user profile
package webapi

import (
	"errors"

	"github.com/amirasaad/minibank/pkg/app"
	accountweb "github.com/amirasaad/minibank/webapi/account"
	authweb "github.com/amirasaad/minibank/webapi/auth"
	"github.com/amirasaad/minibank/webapi/common"
	userweb "github.com/amirasaad/minibank/webapi/user"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gofiber/swagger"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(app *app.App) *fiber.App {
	cfg := app.Config

	fiberCfg := fiber.Config{
		ErrorHandler:            common.ErrorHandler,
		EnableTrustedProxyCheck: true,
	}
	if cfg.Server != nil && len(cfg.Server.TrustedProxies) > 0 {
		fiberCfg.ProxyHeader = cfg.Server.ProxyHeader
		fiberCfg.TrustedProxies = cfg.Server.TrustedProxies
		fiberCfg.EnableIPValidation = true
	}
	fiberApp := fiber.New(fiberCfg)
	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled: true,
		WithCredentials: true,
	}))

	// c.IP() honours the proxy header only for requests from a trusted proxy.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: cfg.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				fiber.StatusTooManyRequests,
			)
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	// Health check endpoint
	fiberApp.Get(
		"/",
		func(c *fiber.Ctx) error {
			return c.SendString("MiniBank API is running! 🚀")
		},
	)

	authweb.Routes(fiberApp, app.AuthService, app.UserService, cfg.Auth)
	userweb.Routes(fiberApp, app.UserService, app.AuthService, cfg.Auth)
	accountweb.Routes(fiberApp, app.AccountService, app.AuthService, cfg.Auth)
	return fiberApp
}
