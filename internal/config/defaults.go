package config

import (
	"os"
	"time"

	"github.com/rickgao/ledgerx-client/internal/auth"
	"github.com/rickgao/ledgerx-client/internal/currency"
)

// Default values for optional configuration fields.
const (
	DefaultBaseURL    = "https://api.ledgerx.com"
	DefaultAPITimeout = 30 * time.Second
	DefaultPageSize   = 100
	DefaultQuote      = currency.USD
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
)

// Default returns a config with every default applied and the API key taken
// from LEDGERX_API_KEY, for use without a config file.
func Default() *ClientConfig {
	cfg := &ClientConfig{
		API: APIConfig{APIKey: os.Getenv(auth.EnvAPIKey)},
	}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills unset optional fields.
func (c *ClientConfig) ApplyDefaults() {
	// API defaults
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}
	if c.API.PageSize == 0 {
		c.API.PageSize = DefaultPageSize
	}

	// Currency defaults
	if c.Currencies.Quote == "" {
		c.Currencies.Quote = DefaultQuote
	}

	// Log defaults
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
}
