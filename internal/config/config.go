package config

import (
	"fmt"
	"time"
)

type Config struct {
	ServerPort         int    `json:"server_port"`
	JWTSecretKey       string `json:"jwt_secret_key"`
	JWTExpirationHours int    `json:"jwt_expiration_hours"`
	DefaultRateLimit   int    `json:"default_rate_limit"`
	GlobalRateLimit    int    `json:"global_rate_limit"`

	// Browser-facing URLs used by the auth callback redirects
	AppBaseURL    string `json:"app_base_url"`
	DashboardPath string `json:"dashboard_path"`
	SignInPath    string `json:"sign_in_path"`

	SessionTTLHours   int    `json:"session_ttl_hours"`
	SessionCookieName string `json:"session_cookie_name"`
	CookieSecure      bool   `json:"cookie_secure"`

	MaxUploadBytes int64 `json:"max_upload_bytes"`
}

func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:         getEnvIntWithDefault("SERVER_PORT", 10000),
		JWTSecretKey:       getEnvWithDefault("JWT_SECRET_KEY", ""),
		JWTExpirationHours: getEnvIntWithDefault("JWT_EXPIRATION_HOURS", 24),
		DefaultRateLimit:   getEnvIntWithDefault("DEFAULT_RATE_LIMIT", 1000),  // 1000 requests per minute per tenant
		GlobalRateLimit:    getEnvIntWithDefault("GLOBAL_RATE_LIMIT", 10000), // 10000 requests per minute globally per IP
		AppBaseURL:         getEnvWithDefault("APP_BASE_URL", "http://localhost:3000"),
		DashboardPath:      getEnvWithDefault("APP_DASHBOARD_PATH", "/dashboard"),
		SignInPath:         getEnvWithDefault("APP_SIGN_IN_PATH", "/sign-in"),
		SessionTTLHours:    getEnvIntWithDefault("SESSION_TTL_HOURS", 24*7),
		SessionCookieName:  getEnvWithDefault("SESSION_COOKIE_NAME", "session_token"),
		CookieSecure:       getEnvBoolWithDefault("COOKIE_SECURE", getEnvWithDefault("APP_ENV", "development") == "production"),
		MaxUploadBytes:     int64(getEnvIntWithDefault("MAX_UPLOAD_BYTES", 25*1024*1024)),
	}

	if cfg.JWTSecretKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY is required")
	}

	return cfg, nil
}

// SessionTTL returns the lifetime of a login session.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLHours) * time.Hour
}

// DashboardURL is where a successful sign-in lands.
func (c *Config) DashboardURL() string {
	return c.AppBaseURL + c.DashboardPath
}

// SignInURL is where a failed sign-in lands, with the error code attached.
func (c *Config) SignInURL(errorCode string) string {
	if errorCode == "" {
		return c.AppBaseURL + c.SignInPath
	}
	return fmt.Sprintf("%s%s?error=%s", c.AppBaseURL, c.SignInPath, errorCode)
}
