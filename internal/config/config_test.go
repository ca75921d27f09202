package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("COOKIE_SECURE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10000, cfg.ServerPort)
	assert.Equal(t, 24, cfg.JWTExpirationHours)
	assert.Equal(t, 1000, cfg.DefaultRateLimit)
	assert.Equal(t, "session_token", cfg.SessionCookieName)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL())
	assert.False(t, cfg.CookieSecure)
}

func TestLoad_CookieSecureInProduction(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("APP_ENV", "production")
	t.Setenv("COOKIE_SECURE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.CookieSecure)
}

func TestRedirectURLs(t *testing.T) {
	cfg := &Config{AppBaseURL: "https://app.example.com", DashboardPath: "/dashboard", SignInPath: "/sign-in"}

	assert.Equal(t, "https://app.example.com/dashboard", cfg.DashboardURL())
	assert.Equal(t, "https://app.example.com/sign-in", cfg.SignInURL(""))
	assert.Equal(t, "https://app.example.com/sign-in?error=missing_code", cfg.SignInURL("missing_code"))
}

func TestOpenSearchIndexName(t *testing.T) {
	cfg := &OpenSearchConfig{IndexPrefix: "bookings"}
	assert.Equal(t, "bookings_tenant-1", cfg.GetIndexName("tenant-1"))
}

func TestCalendarEnabled(t *testing.T) {
	assert.False(t, (&CalendarConfig{}).Enabled())
	assert.True(t, (&CalendarConfig{BaseURL: "https://calendar.example.com"}).Enabled())
}

func TestGetEnvDurationWithDefault(t *testing.T) {
	t.Setenv("TEST_DURATION", "90s")
	assert.Equal(t, 90*time.Second, getEnvDurationWithDefault("TEST_DURATION", time.Second))

	t.Setenv("TEST_DURATION", "not-a-duration")
	assert.Equal(t, time.Second, getEnvDurationWithDefault("TEST_DURATION", time.Second))
}

func TestDefaultWorkerConfig(t *testing.T) {
	t.Setenv("WORKER_CONCURRENCY", "4")
	t.Setenv("WORKER_POLL_INTERVAL", "")
	t.Setenv("WORKER_MAX_MESSAGES", "")
	t.Setenv("WORKER_WAIT_TIME_SECONDS", "")

	cfg := DefaultWorkerConfig()
	assert.Equal(t, 4, cfg.Concurrency)
	assert.Equal(t, 5*time.Second, cfg.PollInterval)
	assert.Equal(t, int32(10), cfg.MaxMessages)
	assert.Equal(t, int32(20), cfg.WaitTime)
}
