package config

import (
	"os"
	"time"
)

// Config holds all runtime settings for the dashboard process. It is loaded
// once at startup and never mutated afterwards.
type Config struct {
	Environment string
	LogLevel    string
	ListenAddr  string
	StaticDir   string

	Binance struct {
		APIKey    string
		SecretKey string
		BaseURL   string
	}

	Rates struct {
		URL string
	}

	HTTPTimeout time.Duration
}

// Load reads the configuration from environment variables, applying defaults
// for everything except the API credentials.
func Load() *Config {
	cfg := &Config{
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		ListenAddr:  getEnv("LISTEN_ADDR", ":8080"),
		StaticDir:   getEnv("STATIC_DIR", "web/static"),
		HTTPTimeout: getEnvDuration("HTTP_TIMEOUT", 15*time.Second),
	}

	cfg.Binance.APIKey = getEnv("BNB_API_KEY", "")
	cfg.Binance.SecretKey = getEnv("BNB_SECRET_KEY", "")
	cfg.Binance.BaseURL = getEnv("BNB_API_BASE_URL", "https://api.binance.com")

	cfg.Rates.URL = getEnv("RATE_API_URL", "")

	return cfg
}

// HasCredentials reports whether both API credentials are set. Public market
// endpoints still work without them.
func (c *Config) HasCredentials() bool {
	return c.Binance.APIKey != "" && c.Binance.SecretKey != ""
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
