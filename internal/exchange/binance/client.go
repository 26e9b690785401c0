package binance

import (
	"net/http"
	"time"
)

// MainnetBaseURL is the default Binance spot REST endpoint.
const MainnetBaseURL = "https://api.binance.com"

// Client issues public and signed calls against the Binance spot REST API.
// It holds no mutable state beyond the HTTP client and is safe for
// concurrent use.
type Client struct {
	apiKey     string
	secretKey  string
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
}

// Config holds the configuration for the Binance client
type Config struct {
	APIKey    string
	SecretKey string
	BaseURL   string
	Timeout   time.Duration
}

// NewClient creates a new Binance client
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = MainnetBaseURL
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		apiKey:    cfg.APIKey,
		secretKey: cfg.SecretKey,
		baseURL:   baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		now: time.Now,
	}
}
