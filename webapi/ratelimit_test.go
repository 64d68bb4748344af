package webapi_test

import (
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/minibank/pkg/config"
	"github.com/amirasaad/minibank/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

type RateLimitTestSuite struct {
	testutils.E2ETestSuite
}

func (s *RateLimitTestSuite) SetupTest() {
	s.setup()
}

func (s *RateLimitTestSuite) setup(trustedProxies ...string) {
	s.Config = func() *config.App {
		cfg := testutils.NewTestConfig()
		cfg.RateLimit = &config.RateLimit{MaxRequests: 5, Window: time.Second}
		cfg.Server.ProxyHeader = fiber.HeaderXForwardedFor
		cfg.Server.TrustedProxies = trustedProxies
		return cfg
	}
	s.E2ETestSuite.SetupTest()
}

func (s *RateLimitTestSuite) getAs(client string) int {
	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderXForwardedFor, client+", 10.0.0.1")
	resp, err := s.Fiber.Test(req, -1)
	s.Require().NoError(err)
	resp.Body.Close() //nolint:errcheck
	return resp.StatusCode
}

func TestRateLimitTestSuite(t *testing.T) {
	suite.Run(t, new(RateLimitTestSuite))
}

func (s *RateLimitTestSuite) TestRateLimit() {
	// Send requests until rate limit is hit
	for i := range 6 {
		resp := s.MakeRequest(fiber.MethodGet, "/", "", "")
		resp.Body.Close() //nolint:errcheck

		if i < 5 {
			s.Equal(fiber.StatusOK, resp.StatusCode, "Expected OK for request %d", i+1)
		} else {
			s.Equal(fiber.StatusTooManyRequests, resp.StatusCode, "Expected Too Many Requests for request %d", i+1)
		}
	}

	// Wait for the rate limit window to reset
	time.Sleep(1100 * time.Millisecond)

	resp := s.MakeRequest(fiber.MethodGet, "/", "", "")
	resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode, "Expected OK after rate limit reset")
}

func (s *RateLimitTestSuite) TestRateLimit_PerForwardedClient() {
	// app.Test connections come from 0.0.0.0.
	s.setup("0.0.0.0")

	for range 5 {
		s.Equal(fiber.StatusOK, s.getAs("203.0.113.1"))
	}
	s.Equal(fiber.StatusTooManyRequests, s.getAs("203.0.113.1"))
	s.Equal(fiber.StatusOK, s.getAs("203.0.113.2"))
}

func (s *RateLimitTestSuite) TestRateLimit_IgnoresUntrustedForwardedFor() {
	for i := range 5 {
		s.Equal(fiber.StatusOK, s.getAs(fmt.Sprintf("198.51.100.%d", i)))
	}
	s.Equal(fiber.StatusTooManyRequests, s.getAs("198.51.100.99"))
}
