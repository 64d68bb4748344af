// Package testutils provides an end-to-end suite that drives the full HTTP
// stack against a private in-memory SQLite database.
package testutils

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/amirasaad/minibank/infra/cache"
	infrarepo "github.com/amirasaad/minibank/infra/repository"
	"github.com/amirasaad/minibank/pkg/app"
	"github.com/amirasaad/minibank/pkg/config"
	"github.com/amirasaad/minibank/pkg/testutils"
	"github.com/amirasaad/minibank/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the password used by Register when none is given.
const TestPassword = "password123"

// NewTestConfig returns a configuration suitable for tests: fast bcrypt,
// a fixed secret and a rate limit that ordinary tests never reach.
func NewTestConfig() *config.App {
	return &config.App{
		Env:    "test",
		Server: &config.Server{Scheme: "http", Host: "localhost", Port: 3000},
		Log:    &config.Log{},
		DB:     &config.DB{Driver: "sqlite"},
		Auth: &config.Auth{
			Jwt:        &config.Jwt{Secret: "e2e-test-secret"},
			Cookie:     &config.Cookie{Name: testutils.SessionCookie},
			BcryptCost: bcrypt.MinCost,
		},
		Redis:     &config.Redis{},
		RateLimit: &config.RateLimit{MaxRequests: 10000, Window: time.Minute},
	}
}

// E2ETestSuite provides a fresh database and Fiber app for every test.
type E2ETestSuite struct {
	suite.Suite
	db     *gorm.DB
	cfg    *config.App
	App    *app.App
	Fiber  *fiber.App
	Store  *cache.MemoryRevocationStore
	Config func() *config.App
}

// SetupTest builds a new database and app so tests never share state.
func (s *E2ETestSuite) SetupTest() {
	s.cfg = NewTestConfig()
	if s.Config != nil {
		s.cfg = s.Config()
	}
	s.db = testutils.NewSQLiteDB(s.T())
	s.Store = cache.NewMemoryRevocationStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.App = app.New(&app.Deps{
		Uow:             infrarepo.NewUoW(s.db),
		RevocationStore: s.Store,
		Logger:          logger,
	}, s.cfg)
	s.Fiber = webapi.SetupApp(s.App)
}

// MakeRequest is a helper for making HTTP requests in tests
func (s *E2ETestSuite) MakeRequest(method, path, body, session string) *http.Response {
	return testutils.MakeRequest(s.T(), s.Fiber, method, path, body, session)
}

// Decode reads a success envelope and unmarshals its data into out.
func (s *E2ETestSuite) Decode(resp *http.Response, out any) {
	defer resp.Body.Close() //nolint:errcheck
	var envelope struct {
		Status  int             `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&envelope))
	if out != nil {
		s.Require().NoError(json.Unmarshal(envelope.Data, out))
	}
}

// Register creates a user through the API and fails the test otherwise.
func (s *E2ETestSuite) Register(name, nationalID string) {
	body := fmt.Sprintf(`{"name":%q,"national_id":%q,"password":%q}`, name, nationalID, TestPassword)
	resp := s.MakeRequest(fiber.MethodPost, "/auth/register", body, "")
	defer resp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
}

// Login logs a user in through the API and returns the session cookie value.
func (s *E2ETestSuite) Login(nationalID string) string {
	body := fmt.Sprintf(`{"national_id":%q,"password":%q}`, nationalID, TestPassword)
	resp := s.MakeRequest(fiber.MethodPost, "/auth/login", body, "")
	defer resp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	session := testutils.SessionFrom(resp)
	s.Require().NotEmpty(session, "login did not set a session cookie")
	return session
}

// RegisterAndLogin is Register followed by Login.
func (s *E2ETestSuite) RegisterAndLogin(name, nationalID string) string {
	s.Register(name, nationalID)
	return s.Login(nationalID)
}
