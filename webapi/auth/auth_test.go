package auth_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	authweb "github.com/amirasaad/minibank/webapi/auth"
	"github.com/amirasaad/minibank/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

const nationalID = "12345678901"

type AuthTestSuite struct {
	testutils.E2ETestSuite
}

func TestAuthTestSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}

func (s *AuthTestSuite) TestRegister() {
	body := fmt.Sprintf(`{"name":"Alice","national_id":%q,"password":"secret1"}`, nationalID)
	resp := s.MakeRequest(fiber.MethodPost, "/auth/register", body, "")
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	var reg authweb.RegisterResponse
	s.Decode(resp, &reg)
	s.NotEqual(reg.UserID, reg.AccountID)

	s.Run("duplicate national id", func() {
		resp := s.MakeRequest(fiber.MethodPost, "/auth/register", body, "")
		resp.Body.Close() //nolint:errcheck
		s.Equal(fiber.StatusConflict, resp.StatusCode)
	})
}

func (s *AuthTestSuite) TestRegister_Invalid() {
	testCases := []struct {
		desc string
		body string
	}{
		{"short national id", `{"name":"Alice","national_id":"1234567890","password":"secret1"}`},
		{"long national id", `{"name":"Alice","national_id":"123456789012","password":"secret1"}`},
		{"letters in national id", `{"name":"Alice","national_id":"1234567890a","password":"secret1"}`},
		{"signed national id", `{"name":"Alice","national_id":"+1234567890","password":"secret1"}`},
		{"negative national id", `{"name":"Alice","national_id":"-1234567890","password":"secret1"}`},
		{"decimal national id", `{"name":"Alice","national_id":"1234567890.","password":"secret1"}`},
		{"password over 72 bytes", fmt.Sprintf(`{"name":"Alice","national_id":"12345678901","password":%q}`, strings.Repeat("é", 40))},
		{"short password", `{"name":"Alice","national_id":"12345678901","password":"12345"}`},
		{"short name", `{"name":"Al","national_id":"12345678901","password":"secret1"}`},
		{"missing fields", `{}`},
		{"malformed json", `{"name":`},
	}
	for _, tc := range testCases {
		s.Run(tc.desc, func() {
			resp := s.MakeRequest(fiber.MethodPost, "/auth/register", tc.body, "")
			resp.Body.Close() //nolint:errcheck
			s.Equal(fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func (s *AuthTestSuite) TestLogin_SetsSessionCookie() {
	s.Register("Alice", nationalID)

	body := fmt.Sprintf(`{"national_id":%q,"password":%q}`, nationalID, testutils.TestPassword)
	resp := s.MakeRequest(fiber.MethodPost, "/auth/login", body, "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "access_token" {
			cookie = c
		}
	}
	s.Require().NotNil(cookie)
	s.NotEmpty(cookie.Value)
	s.True(cookie.HttpOnly)
	s.Equal(http.SameSiteLaxMode, cookie.SameSite)
	s.Equal(1800, cookie.MaxAge)

	var login authweb.LoginResponse
	s.Decode(resp, &login)
	s.Equal("Alice", login.Name)
	s.NotEmpty(login.AccountID)
}

func (s *AuthTestSuite) TestLogin_Rejected() {
	s.Register("Alice", nationalID)

	testCases := []struct {
		desc   string
		body   string
		status int
	}{
		{"wrong password", fmt.Sprintf(`{"national_id":%q,"password":"wrong-password"}`, nationalID), fiber.StatusUnauthorized},
		{"unknown national id", `{"national_id":"99999999999","password":"password123"}`, fiber.StatusUnauthorized},
		{"malformed national id", `{"national_id":"abc","password":"password123"}`, fiber.StatusBadRequest},
		{"signed national id", `{"national_id":"+2345678901","password":"password123"}`, fiber.StatusBadRequest},
		{"bad body", `{"national_id":123}`, fiber.StatusBadRequest},
	}
	for _, tc := range testCases {
		s.Run(tc.desc, func() {
			resp := s.MakeRequest(fiber.MethodPost, "/auth/login", tc.body, "")
			resp.Body.Close() //nolint:errcheck
			s.Equal(tc.status, resp.StatusCode)
			s.Empty(resp.Cookies())
		})
	}
}

func (s *AuthTestSuite) TestLogout_RevokesSession() {
	session := s.RegisterAndLogin("Alice", nationalID)

	resp := s.MakeRequest(fiber.MethodGet, "/user/me", "", session)
	resp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	resp = s.MakeRequest(fiber.MethodPost, "/auth/logout", "", session)
	resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode)
	for _, c := range resp.Cookies() {
		if c.Name == "access_token" {
			s.Empty(c.Value)
		}
	}

	// Replaying the old cookie must not work.
	resp = s.MakeRequest(fiber.MethodGet, "/user/me", "", session)
	resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)

	// A new login gets a new, working session.
	fresh := s.Login(nationalID)
	s.NotEqual(session, fresh)
	resp = s.MakeRequest(fiber.MethodGet, "/user/me", "", fresh)
	resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode)
}

func (s *AuthTestSuite) TestLogout_WithoutSession() {
	resp := s.MakeRequest(fiber.MethodPost, "/auth/logout", "", "")
	resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode)

	resp = s.MakeRequest(fiber.MethodPost, "/auth/logout", "", "not-a-token")
	resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode)
}
