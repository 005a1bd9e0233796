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

// Sentiment provider names
const (
	SentimentProviderLocal     = "local"
	SentimentProviderAPINinjas = "apininjas"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string
	StaticDir     string
	MaxBodyBytes  int64

	// Lambda configuration
	IsLambda           bool
	LambdaFunctionName string

	// External APIs
	TranslateAPIURL   string
	SentimentAPIURL   string
	SentimentAPIKey   string
	SentimentProvider string
	APITimeoutMS      int

	// Artificial latency of the local sentiment scorer
	SentimentLatencyMS int

	// Domain overrides
	LexiconFile string

	// Logging
	LogLevel string
	LogFile  string

	// Feature flags
	EnableMetrics bool
	EnableCORS    bool

	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables. A .env file in
// the working directory is applied first when present; variables already set
// in the environment win.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	apiKey := getEnv("SENTIMENT_API_KEY", "")
	defaultProvider := SentimentProviderLocal
	if apiKey != "" {
		defaultProvider = SentimentProviderAPINinjas
	}

	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":"+getEnv("PORT", "3000")),
		Environment:   getEnv("ENVIRONMENT", "development"),
		StaticDir:     getEnv("STATIC_DIR", "public"),
		MaxBodyBytes:  int64(getEnvInt("MAX_BODY_BYTES", 1<<20)),

		// Lambda configuration
		LambdaFunctionName: getEnv("AWS_LAMBDA_FUNCTION_NAME", ""),

		// External APIs
		TranslateAPIURL:    getEnv("TRANSLATE_API_URL", "https://api.mymemory.translated.net/get"),
		SentimentAPIURL:    getEnv("SENTIMENT_API_URL", "https://api.api-ninjas.com/v1/sentiment"),
		SentimentAPIKey:    apiKey,
		SentimentProvider:  strings.ToLower(getEnv("SENTIMENT_PROVIDER", defaultProvider)),
		APITimeoutMS:       getEnvInt("API_TIMEOUT", 5000),
		SentimentLatencyMS: getEnvInt("SENTIMENT_LATENCY_MS", 50),

		LexiconFile: getEnv("LEXICON_FILE", ""),

		// Logging and features
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFile:            getEnv("LOG_FILE", ""),
		EnableMetrics:      getEnvBool("ENABLE_METRICS", false),
		EnableCORS:         getEnvBool("ENABLE_CORS", true),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}
	cfg.IsLambda = cfg.LambdaFunctionName != "" || getEnvBool("IS_LAMBDA", false)

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	switch c.SentimentProvider {
	case SentimentProviderLocal:
	case SentimentProviderAPINinjas:
		if c.SentimentAPIKey == "" {
			return fmt.Errorf("SENTIMENT_API_KEY is required when SENTIMENT_PROVIDER is %q", SentimentProviderAPINinjas)
		}
	default:
		return fmt.Errorf("unknown SENTIMENT_PROVIDER %q", c.SentimentProvider)
	}

	if c.APITimeoutMS <= 0 {
		return fmt.Errorf("API_TIMEOUT must be positive, got %d", c.APITimeoutMS)
	}
	if c.SentimentLatencyMS < 0 {
		return fmt.Errorf("SENTIMENT_LATENCY_MS must not be negative, got %d", c.SentimentLatencyMS)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", c.MaxBodyBytes)
	}

	return nil
}

// APITimeout is the bound on each outbound API call
func (c *Config) APITimeout() time.Duration {
	return time.Duration(c.APITimeoutMS) * time.Millisecond
}

// SentimentLatency is the artificial delay of the local sentiment scorer
func (c *Config) SentimentLatency() time.Duration {
	return time.Duration(c.SentimentLatencyMS) * time.Millisecond
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvList splits a comma separated environment variable
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
