package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	ServerPort  string
	FrontendURL string

	RedditBaseURL    string
	RedditUserAgent  string
	RedditFetchLimit int
	RedditTimeout    time.Duration
	RedditRatePerSec int

	RedisURL string
	CacheTTL time.Duration

	AnalysisTimezone string
	RateLimit        string

	EnableHSTS      bool
	ServerDebugMode bool
	OTELEnabled     bool
	OTELEndpoint    string
}

// DefaultRedditUserAgent identifies the service to Reddit; Reddit rejects
// generic library user agents.
const DefaultRedditUserAgent = "redsight/1.0 (engagement analytics)"

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		FrontendURL:      getEnv("FRONTEND_URL", "http://localhost:3000"),
		RedditBaseURL:    getEnv("REDDIT_BASE_URL", "https://www.reddit.com"),
		RedditUserAgent:  getEnv("REDDIT_USER_AGENT", DefaultRedditUserAgent),
		RedditFetchLimit: getEnvInt("REDDIT_FETCH_LIMIT", 100),
		RedditTimeout:    time.Duration(getEnvInt("REDDIT_TIMEOUT_SECONDS", 15)) * time.Second,
		RedditRatePerSec: getEnvInt("REDDIT_RATE_PER_SECOND", 1),
		RedisURL:         getEnv("REDIS_URL", ""),
		CacheTTL:         time.Duration(getEnvInt("CACHE_TTL_MINUTES", 10)) * time.Minute,
		AnalysisTimezone: getEnv("ANALYSIS_TIMEZONE", "UTC"),
		RateLimit:        getEnv("RATE_LIMIT", "5-S"),
		EnableHSTS:       getEnvBool("ENABLE_HSTS", false),
		ServerDebugMode:  getEnvBool("SERVER_DEBUG_MODE", false),
		OTELEnabled:      getEnvBool("OTEL_ENABLED", false),
		OTELEndpoint:     getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}

	parsed, err := url.Parse(cfg.RedditBaseURL)
	if err != nil || !parsed.IsAbs() || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, fmt.Errorf("REDDIT_BASE_URL must be an absolute http(s) URL, got %q", cfg.RedditBaseURL)
	}

	if cfg.RedditFetchLimit < 1 || cfg.RedditFetchLimit > 100 {
		return nil, fmt.Errorf("REDDIT_FETCH_LIMIT must be between 1 and 100, got %d", cfg.RedditFetchLimit)
	}

	if _, err := time.LoadLocation(cfg.AnalysisTimezone); err != nil {
		return nil, fmt.Errorf("ANALYSIS_TIMEZONE %q is not a valid IANA zone: %w", cfg.AnalysisTimezone, err)
	}

	return cfg, nil
}

// Location returns the IANA location named by AnalysisTimezone.
// Load has already validated the name.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.AnalysisTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
