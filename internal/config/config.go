package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// Config aggregates application-wide configuration values.
type Config struct {
	SearchEndpoint    string
	SearchAPIKey      string
	SearchHost        string
	SearchCountry     string
	CompletionBaseURL string
	CompletionAPIKey  string
	CompletionModel   string
	RequestTimeout    time.Duration
	Port              string
	RateLimitSearch   RateLimitConfig
	ServerCommand     []string
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		SearchEndpoint:    getEnv("SEARCH_API_ENDPOINT", "https://real-time-amazon-data.p.rapidapi.com/search"),
		SearchAPIKey:      os.Getenv("SEARCH_API_KEY"),
		SearchHost:        getEnv("SEARCH_API_HOST", "real-time-amazon-data.p.rapidapi.com"),
		SearchCountry:     getEnv("SEARCH_COUNTRY", "IN"),
		CompletionBaseURL: getEnv("COMPLETION_BASE_URL", "https://api.groq.com/openai/v1"),
		CompletionAPIKey:  os.Getenv("COMPLETION_API_KEY"),
		CompletionModel:   getEnv("COMPLETION_MODEL", "meta-llama/llama-4-scout-17b-16e-instruct"),
		RequestTimeout:    parseDuration(getEnv("REQUEST_TIMEOUT", "30s")),
		Port:              getEnv("PORT", "8080"),
		ServerCommand:     parseCommand(os.Getenv("ADVISOR_SERVER_CMD")),
	}

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_SEARCH", "5/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_SEARCH value: %w", err)
	}
	cfg.RateLimitSearch = rl

	return cfg, nil
}

// RequireSearchCredentials ensures the outbound search API can be called.
func (c *Config) RequireSearchCredentials() error {
	if strings.TrimSpace(c.SearchAPIKey) == "" {
		return errors.New("SEARCH_API_KEY is required")
	}
	return nil
}

// RequireCompletionCredentials ensures the completion API can be called.
func (c *Config) RequireCompletionCredentials() error {
	if strings.TrimSpace(c.CompletionAPIKey) == "" {
		return errors.New("COMPLETION_API_KEY is required")
	}
	return nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

// parseCommand splits an override like "python server.py" into argv form.
// An empty value means the front-ends spawn their own binary with "serve".
func parseCommand(value string) []string {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseDuration(input string) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil {
		return 30 * time.Second
	}
	return d
}
