package user_test

import (
	"testing"

	userweb "github.com/amirasaad/minibank/webapi/user"
	"github.com/amirasaad/minibank/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

type UserTestSuite struct {
	testutils.E2ETestSuite
	session string
}

func (s *UserTestSuite) SetupTest() {
	s.E2ETestSuite.SetupTest()
	s.session = s.RegisterAndLogin("Maria Silva", "12345678901")
}

func TestUserTestSuite(t *testing.T) {
	suite.Run(t, new(UserTestSuite))
}

func (s *UserTestSuite) TestMe() {
	resp := s.MakeRequest(fiber.MethodGet, "/user/me", "", s.session)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	var profile userweb.ProfileResponse
	s.Decode(resp, &profile)
	s.Equal("Maria Silva", profile.Name)
	s.Equal("123.456.789-01", profile.NationalID)
	s.NotEmpty(profile.AccountID)
}

func (s *UserTestSuite) TestMe_Unauthorized() {
	resp := s.MakeRequest(fiber.MethodGet, "/user/me", "", "")
	resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)
}
