// Package testutils holds database and HTTP helpers shared by tests.
package testutils

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/minibank/infra"
	"github.com/amirasaad/minibank/infra/migrations"
	"github.com/amirasaad/minibank/pkg/config"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// SessionCookie is the cookie name used by the test configuration.
const SessionCookie = "access_token"

// NewSQLiteDB returns a migrated, private in-memory SQLite database that is
// closed when the test ends.
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString())
	db, err := infra.NewDBConnection(&config.DB{Driver: infra.DriverSQLite, Url: dsn}, "test")
	require.NoError(t, err)
	require.NoError(t, migrations.Up(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// NewPostgresDB starts a Postgres container, applies the migrations and
// returns a connection. The test is skipped when no container provider is
// available.
func NewPostgresDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()

	pg, err := tcpostgres.Run(
		ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("minibank"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(context.Background()) })

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := infra.NewDBConnection(&config.DB{Driver: infra.DriverPostgres, Url: dsn}, "test")
	require.NoError(t, err)
	require.NoError(t, migrations.Up(db))
	return db
}

// MakeRequest sends a request to app, attaching the session cookie when
// session is not empty.
func MakeRequest(t testing.TB, app *fiber.App, method, path, body, session string) *http.Response {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if session != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: session})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// SessionFrom returns the session cookie set by resp, or "" if none.
func SessionFrom(resp *http.Response) string {
	for _, c := range resp.Cookies() {
		if c.Name == SessionCookie {
			return c.Value
		}
	}
	return ""
}
