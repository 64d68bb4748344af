package user

import (
	"github.com/amirasaad/minibank/pkg/config"
	"github.com/amirasaad/minibank/pkg/middleware"
	authsvc "github.com/amirasaad/minibank/pkg/service/auth"
	usersvc "github.com/amirasaad/minibank/pkg/service/user"
	"github.com/amirasaad/minibank/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(app *fiber.App, userSvc *usersvc.Service, authSvc *authsvc.Service, cfg *config.Auth) {
	app.Get("/user/me", middleware.JwtProtected(authSvc, cfg), Me(userSvc))
}

// Me returns the profile of the logged-in user.
// @Summary Current user
// @Description Returns the name, masked national ID and account ID of the session's user
// @Tags users
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Router /user/me [get]
// @Security CookieAuth
func Me(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, ok := middleware.CurrentUser(c)
		if !ok {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, "missing user context", fiber.StatusUnauthorized)
		}
		profile, err := userSvc.Current(c.UserContext(), u.ID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't load profile", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User found", toProfileResponse(profile))
	}
}
