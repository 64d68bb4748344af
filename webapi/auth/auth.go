package auth

import (
	"time"

	"github.com/amirasaad/minibank/pkg/config"
	authsvc "github.com/amirasaad/minibank/pkg/service/auth"
	usersvc "github.com/amirasaad/minibank/pkg/service/user"
	"github.com/amirasaad/minibank/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

func Routes(app *fiber.App, authSvc *authsvc.Service, userSvc *usersvc.Service, cfg *config.Auth) {
	app.Post("/auth/register", Register(userSvc))
	app.Post("/auth/login", Login(authSvc, userSvc, cfg.Cookie))
	app.Post("/auth/logout", Logout(authSvc, cfg.Cookie))
}

// Register creates a customer and their account.
// @Summary Register a customer
// @Description Creates a user identified by an 11-digit national ID together with a zero-balance account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterInput true "Registration data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /auth/register [post]
func Register(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[RegisterInput](c)
		if input == nil {
			return err // error response already written
		}
		reg, err := userSvc.Register(c.UserContext(), input.Name, input.NationalID, input.Password)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't register user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "User registered", RegisterResponse{
			UserID:    reg.UserID,
			AccountID: reg.AccountID,
		})
	}
}

// Login authenticates a customer and starts a cookie session.
// @Summary User login
// @Description Authenticate with national ID and password. The session token is set as an http-only cookie valid for 30 minutes.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginInput true "Login credentials"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /auth/login [post]
func Login(authSvc *authsvc.Service, userSvc *usersvc.Service, cookie *config.Cookie) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginInput](c)
		if input == nil {
			return err // error response already written
		}
		ctx := c.UserContext()
		user, err := authSvc.Authenticate(ctx, input.NationalID, input.Password)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid national ID or password", err)
		}
		profile, err := userSvc.Current(ctx, user.ID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		}
		session, err := authSvc.IssueSession(ctx, user)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err, fiber.StatusInternalServerError)
		}
		c.Cookie(&fiber.Cookie{
			Name:     cookie.Name,
			Value:    session.Token,
			Path:     "/",
			MaxAge:   int(authsvc.SessionTTL / time.Second),
			Expires:  session.ExpiresAt,
			Secure:   cookie.Secure,
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Success login", LoginResponse{
			Name:      user.Name,
			AccountID: profile.AccountID,
			ExpiresAt: session.ExpiresAt,
		})
	}
}

// Logout ends the current session.
// @Summary User logout
// @Description Clears the session cookie and revokes its token. Succeeds even without a session.
// @Tags auth
// @Produce json
// @Success 200 {object} common.Response
// @Failure 429 {object} common.ProblemDetails
// @Router /auth/logout [post]
func Logout(authSvc *authsvc.Service, cookie *config.Cookie) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := c.Cookies(cookie.Name); token != "" {
			if err := authSvc.RevokeSession(c.UserContext(), token); err != nil {
				log.Errorf("Failed to revoke session: %v", err)
			}
		}
		c.Cookie(&fiber.Cookie{
			Name:     cookie.Name,
			Value:    "",
			Path:     "/",
			Expires:  time.Unix(0, 0),
			Secure:   cookie.Secure,
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Logged out", nil)
	}
}
