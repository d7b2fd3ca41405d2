package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/rickgao/ledgerx-client/internal/currency"
)

// Validate checks that all required fields are set and values are valid.
func (c *ClientConfig) Validate() error {
	if c.API.APIKey == "" && c.API.KeyFile == "" {
		return errors.New("api.api_key or api.key_file is required")
	}

	u, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return fmt.Errorf("api.base_url: %w", err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return fmt.Errorf("api.base_url must be an http(s) URL, got %q", c.API.BaseURL)
	}

	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must be >= 0, got %v", c.API.Timeout)
	}
	if c.API.PageSize < 1 {
		return errors.New("api.page_size must be >= 1")
	}

	for code, digits := range c.Currencies.Precision {
		if code == "" {
			return errors.New("currencies.precision has an empty currency code")
		}
		if digits > currency.MaxPrecision {
			return fmt.Errorf("currencies.precision.%s must be <= %d, got %d", code, currency.MaxPrecision, digits)
		}
	}
	if _, err := c.CurrencyTable().PrecisionOf(c.Currencies.Quote); err != nil {
		return fmt.Errorf("currencies.quote: %w", err)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}

	return nil
}
