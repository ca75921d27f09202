package config

import "time"

// LLMConfig points at an OpenAI-compatible chat completion API.
type LLMConfig struct {
	Provider       string
	BaseURL        string
	APIKey         string
	Model          string
	EmbeddingModel string
	Timeout        time.Duration
}

func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		Provider:       getEnvOrDefault("LLM_PROVIDER", "openai"),
		BaseURL:        getEnvOrDefault("LLM_BASE_URL", "https://api.openai.com/v1"),
		APIKey:         getEnvOrDefault("LLM_API_KEY", ""),
		Model:          getEnvOrDefault("LLM_MODEL", "gpt-4o-mini"),
		EmbeddingModel: getEnvOrDefault("LLM_EMBEDDING_MODEL", "text-embedding-3-small"),
		Timeout:        getEnvDurationWithDefault("LLM_TIMEOUT", 60*time.Second),
	}
}

// IdentityConfig is the OAuth application registered with the identity provider.
type IdentityConfig struct {
	TokenURL     string
	UserInfoURL  string
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Timeout      time.Duration
}

func DefaultIdentityConfig() *IdentityConfig {
	return &IdentityConfig{
		TokenURL:     getEnvOrDefault("CLERK_TOKEN_URL", "https://clerk.example.com/oauth/token"),
		UserInfoURL:  getEnvOrDefault("CLERK_USERINFO_URL", "https://clerk.example.com/oauth/userinfo"),
		ClientID:     getEnvOrDefault("CLERK_CLIENT_ID", ""),
		ClientSecret: getEnvOrDefault("CLERK_CLIENT_SECRET", ""),
		RedirectURL:  getEnvOrDefault("CLERK_REDIRECT_URL", "http://localhost:10000/api/auth/clerk-callback"),
		Timeout:      getEnvDurationWithDefault("CLERK_TIMEOUT", 10*time.Second),
	}
}

// CalendarConfig is the external calendar API bookings are pushed to.
// An empty BaseURL disables outbound sync.
type CalendarConfig struct {
	BaseURL    string
	APIKey     string
	CalendarID string
	Timeout    time.Duration
}

func DefaultCalendarConfig() *CalendarConfig {
	return &CalendarConfig{
		BaseURL:    getEnvOrDefault("CALENDAR_API_URL", ""),
		APIKey:     getEnvOrDefault("CALENDAR_API_KEY", ""),
		CalendarID: getEnvOrDefault("CALENDAR_ID", "primary"),
		Timeout:    getEnvDurationWithDefault("CALENDAR_TIMEOUT", 10*time.Second),
	}
}

// Enabled reports whether outbound calendar sync is configured.
func (c *CalendarConfig) Enabled() bool {
	return c.BaseURL != ""
}
