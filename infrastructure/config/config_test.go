package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_ADDRESS", "PORT", "ENVIRONMENT", "STATIC_DIR", "MAX_BODY_BYTES",
		"AWS_LAMBDA_FUNCTION_NAME", "IS_LAMBDA",
		"TRANSLATE_API_URL", "SENTIMENT_API_URL", "SENTIMENT_API_KEY",
		"SENTIMENT_PROVIDER", "API_TIMEOUT", "SENTIMENT_LATENCY_MS",
		"LEXICON_FILE", "LOG_LEVEL", "LOG_FILE",
		"ENABLE_METRICS", "ENABLE_CORS", "CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "https://api.mymemory.translated.net/get", cfg.TranslateAPIURL)
	assert.Equal(t, "https://api.api-ninjas.com/v1/sentiment", cfg.SentimentAPIURL)
	assert.Equal(t, SentimentProviderLocal, cfg.SentimentProvider)
	assert.Equal(t, 5*time.Second, cfg.APITimeout())
	assert.Equal(t, 50*time.Millisecond, cfg.SentimentLatency())
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	assert.Equal(t, "public", cfg.StaticDir)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.EnableCORS)
	assert.False(t, cfg.EnableMetrics)
	assert.False(t, cfg.IsLambda)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("API_TIMEOUT", "1500")
	t.Setenv("ENABLE_METRICS", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "text-api")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, 1500*time.Millisecond, cfg.APITimeout())
	assert.True(t, cfg.EnableMetrics)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.IsLambda)
}

func TestLoadConfig_ServerAddressWins(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:9000")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.ServerAddress)
}

func TestLoadConfig_KeySelectsAPIProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("SENTIMENT_API_KEY", "secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, SentimentProviderAPINinjas, cfg.SentimentProvider)

	t.Setenv("SENTIMENT_PROVIDER", "local")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, SentimentProviderLocal, cfg.SentimentProvider)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			SentimentProvider: SentimentProviderLocal,
			APITimeoutMS:      5000,
			MaxBodyBytes:      1 << 20,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{
			name:    "apininjas without key",
			mutate:  func(c *Config) { c.SentimentProvider = SentimentProviderAPINinjas },
			wantErr: "SENTIMENT_API_KEY is required",
		},
		{
			name:    "unknown provider",
			mutate:  func(c *Config) { c.SentimentProvider = "vader" },
			wantErr: "unknown SENTIMENT_PROVIDER",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.APITimeoutMS = 0 },
			wantErr: "API_TIMEOUT must be positive",
		},
		{
			name:    "negative latency",
			mutate:  func(c *Config) { c.SentimentLatencyMS = -1 },
			wantErr: "SENTIMENT_LATENCY_MS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
