// Package middleware holds Fiber middleware shared by the HTTP routes.
package middleware

import (
	"context"

	"github.com/amirasaad/minibank/pkg/config"
	"github.com/amirasaad/minibank/pkg/dto"
	"github.com/amirasaad/minibank/webapi/common"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenKey       = "token"
	currentUserKey = "currentUser"
)

// SessionResolver maps a verified token to the user it was issued for.
type SessionResolver interface {
	ResolveToken(ctx context.Context, token *jwt.Token) *dto.UserRead
}

// JwtProtected reads the session token from the configured cookie, verifies
// it and stores the resolved user for CurrentUser. Any failure is a 401.
func JwtProtected(resolver SessionResolver, cfg *config.Auth) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{
			JWTAlg: jwtware.HS256,
			Key:    []byte(cfg.Jwt.Secret),
		},
		TokenLookup:  "cookie:" + cfg.Cookie.Name,
		ContextKey:   tokenKey,
		Claims:       &jwt.RegisteredClaims{},
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			token, _ := c.Locals(tokenKey).(*jwt.Token)
			u := resolver.ResolveToken(c.UserContext(), token)
			if u == nil {
				return jwtError(c, jwtware.ErrJWTMissingOrMalformed)
			}
			c.Locals(currentUserKey, u)
			return c.Next()
		},
	})
}

// CurrentUser returns the user resolved by JwtProtected.
func CurrentUser(c *fiber.Ctx) (*dto.UserRead, bool) {
	u, ok := c.Locals(currentUserKey).(*dto.UserRead)
	return u, ok && u != nil
}

func jwtError(c *fiber.Ctx, err error) error {
	log.Debugf("session rejected: %v", err)
	return common.ProblemDetailsJSON(c, "Unauthorized", err,
		"Missing, invalid or expired session", fiber.StatusUnauthorized)
}
