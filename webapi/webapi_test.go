package webapi_test

import (
	"io"
	"testing"

	"github.com/amirasaad/minibank/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

type WebAPITestSuite struct {
	testutils.E2ETestSuite
}

func TestWebAPITestSuite(t *testing.T) {
	suite.Run(t, new(WebAPITestSuite))
}

func (s *WebAPITestSuite) TestHealth() {
	resp := s.MakeRequest(fiber.MethodGet, "/", "", "")
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Contains(string(body), "MiniBank")
}

func (s *WebAPITestSuite) TestNotFoundRoute() {
	resp := s.MakeRequest(fiber.MethodGet, "/nope", "", "")
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
	s.Equal("application/problem+json", resp.Header.Get(fiber.HeaderContentType))
}
