package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/minibank/pkg/config"
	"github.com/amirasaad/minibank/pkg/dto"
	"github.com/amirasaad/minibank/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

type stubResolver struct {
	user  *dto.UserRead
	calls int
}

func (r *stubResolver) ResolveToken(_ context.Context, token *jwt.Token) *dto.UserRead {
	r.calls++
	if token == nil || !token.Valid {
		return nil
	}
	return r.user
}

func testAuthConfig() *config.Auth {
	return &config.Auth{
		Jwt:    &config.Jwt{Secret: testSecret},
		Cookie: &config.Cookie{Name: "access_token"},
	}
}

func signed(t *testing.T, method jwt.SigningMethod, key string, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, jwt.RegisteredClaims{
		Subject:   "11111111111",
		ID:        uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte(key))
	require.NoError(t, err)
	return token
}

func newProtectedApp(resolver SessionResolver) *fiber.App {
	app := fiber.New()
	app.Get("/", JwtProtected(resolver, testAuthConfig()), func(c *fiber.Ctx) error {
		u, ok := CurrentUser(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendString(u.Name)
	})
	return app
}

func request(t *testing.T, app *fiber.App, cookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "access_token", Value: cookie})
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestJwtProtected_ValidSession(t *testing.T) {
	resolver := &stubResolver{user: &dto.UserRead{ID: uuid.New(), Name: "Alice"}}
	app := newProtectedApp(resolver)

	resp := request(t, app, signed(t, jwt.SigningMethodHS256, testSecret, time.Now().Add(time.Minute)))
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, resolver.calls)
}

func TestJwtProtected_Rejects(t *testing.T) {
	future := time.Now().Add(time.Minute)
	tests := []struct {
		name         string
		cookie       func(t *testing.T) string
		wantResolver int
	}{
		{
			name:   "missing cookie",
			cookie: func(*testing.T) string { return "" },
		},
		{
			name:   "malformed token",
			cookie: func(*testing.T) string { return "not-a-jwt" },
		},
		{
			name: "wrong secret",
			cookie: func(t *testing.T) string {
				return signed(t, jwt.SigningMethodHS256, "other-secret", future)
			},
		},
		{
			name: "wrong algorithm",
			cookie: func(t *testing.T) string {
				return signed(t, jwt.SigningMethodHS512, testSecret, future)
			},
		},
		{
			name: "expired",
			cookie: func(t *testing.T) string {
				return signed(t, jwt.SigningMethodHS256, testSecret, time.Now().Add(-time.Minute))
			},
		},
		{
			name: "unknown or revoked session",
			cookie: func(t *testing.T) string {
				return signed(t, jwt.SigningMethodHS256, testSecret, future)
			},
			wantResolver: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := &stubResolver{}
			app := newProtectedApp(resolver)

			resp := request(t, app, tt.cookie(t))
			defer resp.Body.Close() //nolint:errcheck

			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, "application/problem+json", resp.Header.Get(fiber.HeaderContentType))
			assert.Equal(t, tt.wantResolver, resolver.calls)
		})
	}
}

func TestJwtError_AlwaysUnauthorized(t *testing.T) {
	for _, cause := range []error{
		errors.New("Missing or malformed JWT"),
		errors.New("any other error"),
	} {
		app := fiber.New()
		app.Use(func(c *fiber.Ctx) error {
			return jwtError(c, cause)
		})
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/account/statement", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

		var problem common.ProblemDetails
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&problem))
		resp.Body.Close() //nolint:errcheck
		assert.Equal(t, "Unauthorized", problem.Title)
		assert.Equal(t, fiber.StatusUnauthorized, problem.Status)
		assert.Equal(t, "Missing, invalid or expired session", problem.Detail)
		assert.Equal(t, "/account/statement", problem.Instance)
	}
}

func TestCurrentUser_Missing(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		_, ok := CurrentUser(c)
		assert.False(t, ok)
		return c.SendStatus(fiber.StatusNoContent)
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
