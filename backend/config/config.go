// ABOUTME: Configuration loader for backend service
// ABOUTME: Loads settings from environment variables, optionally seeded from a .env file

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultPixelsPerPort mirrors the metrics calculator's per-port pixel budget
const DefaultPixelsPerPort = 655360

type Config struct {
	// Server
	Port               string
	CacheTTL           int      // seconds, for computed plans (default 300)
	CORSAllowedOrigins []string // allowed CORS origins (empty = any origin)

	// Catalog
	CatalogFile    string // optional YAML catalog replacing the builtin tables
	DefaultCabinet string // optional default cabinet id override
	PixelsPerPort  int    // per-port pixel budget for port estimates

	// Rate Limiting
	RateLimitEnabled bool // Enable rate limiting (default: true)
	RateLimitAdvice  int  // Requests per minute for the advice endpoint (default: 10)
	RateLimitDefault int  // Requests per minute for all other endpoints (default: 300)

	// Metrics
	MetricsEnabled bool // Expose /metrics (default: true)

	// Advisor (optional)
	AnthropicAPIKey  string
	AdvisorModel     string
	AdvisorMaxTokens int
	AdvisorTimeout   int // seconds (default 30)
	AdvisorBaseURL   string
	AdviceCacheTTL   int // seconds (default 900)
}

// AdvisorConfigured returns true if an advisor API key is set
func (c *Config) AdvisorConfigured() bool {
	return c.AnthropicAPIKey != ""
}

// CacheDuration returns CacheTTL as a duration
func (c *Config) CacheDuration() time.Duration {
	return time.Duration(c.CacheTTL) * time.Second
}

// AdviceCacheDuration returns AdviceCacheTTL as a duration
func (c *Config) AdviceCacheDuration() time.Duration {
	return time.Duration(c.AdviceCacheTTL) * time.Second
}

// AdvisorTimeoutDuration returns AdvisorTimeout as a duration
func (c *Config) AdvisorTimeoutDuration() time.Duration {
	return time.Duration(c.AdvisorTimeout) * time.Second
}

// Load reads the configuration. Variables in ENV_FILE (default ".env") are
// applied first without overriding variables already set in the environment.
func Load() (*Config, error) {
	if err := loadDotEnv(getEnv("ENV_FILE", ".env")); err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		CacheTTL:           getEnvInt("CACHE_TTL", 300),
		CORSAllowedOrigins: getEnvStringList("CORS_ALLOWED_ORIGINS"),

		CatalogFile:    os.Getenv("CATALOG_FILE"),
		DefaultCabinet: os.Getenv("DEFAULT_CABINET"),
		PixelsPerPort:  getEnvInt("PIXELS_PER_PORT", DefaultPixelsPerPort),

		RateLimitEnabled: getEnvBool("RATE_LIMIT_ENABLED", true),
		RateLimitAdvice:  getEnvInt("RATE_LIMIT_ADVICE", 10),
		RateLimitDefault: getEnvInt("RATE_LIMIT_DEFAULT", 300),

		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),

		AnthropicAPIKey:  os.Getenv("ANTHROPIC_API_KEY"),
		AdvisorModel:     os.Getenv("ADVISOR_MODEL"),
		AdvisorMaxTokens: getEnvInt("ADVISOR_MAX_TOKENS", 1024),
		AdvisorTimeout:   getEnvInt("ADVISOR_TIMEOUT", 30),
		AdvisorBaseURL:   os.Getenv("ADVISOR_BASE_URL"),
		AdviceCacheTTL:   getEnvInt("ADVICE_CACHE_TTL", 900),
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("PORT must be numeric, got %q", cfg.Port)
	}
	if cfg.PixelsPerPort <= 0 {
		return nil, fmt.Errorf("PIXELS_PER_PORT must be positive, got %d", cfg.PixelsPerPort)
	}

	// Validate rate limit values
	for _, rl := range []struct {
		name  string
		value int
	}{
		{"RATE_LIMIT_ADVICE", cfg.RateLimitAdvice},
		{"RATE_LIMIT_DEFAULT", cfg.RateLimitDefault},
	} {
		if rl.value < 1 || rl.value > 10000 {
			return nil, fmt.Errorf("%s must be between 1 and 10000, got %d", rl.name, rl.value)
		}
	}

	for _, d := range []struct {
		name  string
		value int
	}{
		{"CACHE_TTL", cfg.CacheTTL},
		{"ADVICE_CACHE_TTL", cfg.AdviceCacheTTL},
		{"ADVISOR_TIMEOUT", cfg.AdvisorTimeout},
		{"ADVISOR_MAX_TOKENS", cfg.AdvisorMaxTokens},
	} {
		if d.value < 1 {
			return nil, fmt.Errorf("%s must be positive, got %d", d.name, d.value)
		}
	}

	return cfg, nil
}

// loadDotEnv applies a .env file when present. A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvStringList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
