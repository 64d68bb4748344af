package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "super-secret-value")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "access_token", cfg.Auth.Cookie.Name)
	assert.False(t, cfg.Auth.Cookie.Secure)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, "", cfg.Redis.URL)
	assert.Equal(t, 100, cfg.RateLimit.MaxRequests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, "X-Forwarded-For", cfg.Server.ProxyHeader)
	assert.Empty(t, cfg.Server.TrustedProxies)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "super-secret-value")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "file::memory:")
	t.Setenv("AUTH_COOKIE_SECURE", "true")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("SERVER_TRUSTED_PROXIES", "10.0.0.1,192.168.0.0/16")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "file::memory:", cfg.DB.Url)
	assert.True(t, cfg.Auth.Cookie.Secure)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
	assert.Equal(t, []string{"10.0.0.1", "192.168.0.0/16"}, cfg.Server.TrustedProxies)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")
	os.Unsetenv("AUTH_JWT_SECRET") //nolint:errcheck

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_FromEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env.test")
	require.NoError(t, os.WriteFile(envFile, []byte("AUTH_JWT_SECRET=from-file-secret\nSERVER_PORT=4000\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Cleanup(func() {
		os.Unsetenv("AUTH_JWT_SECRET") //nolint:errcheck
		os.Unsetenv("SERVER_PORT")     //nolint:errcheck
	})

	cfg, err := Load(".env.test")
	require.NoError(t, err)
	assert.Equal(t, "from-file-secret", cfg.Auth.Jwt.Secret)
	assert.Equal(t, 4000, cfg.Server.Port)
}

func TestFindEnvFile_NotFound(t *testing.T) {
	_, err := FindEnvFile("definitely-not-here.env")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMaskValue(t *testing.T) {
	assert.Equal(t, "****", maskValue("short"))
	assert.Equal(t, "po****able", maskValue("postgres://disable"))
}
