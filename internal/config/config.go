package config

import (
	"time"

	"github.com/rickgao/ledgerx-client/internal/currency"
)

// ClientConfig is the root configuration for the LedgerX client.
type ClientConfig struct {
	API        APIConfig        `yaml:"api"`
	Currencies CurrenciesConfig `yaml:"currencies"`
	Log        LogConfig        `yaml:"log"`
}

// APIConfig holds LedgerX API settings.
type APIConfig struct {
	BaseURL  string        `yaml:"base_url"`
	APIKey   string        `yaml:"api_key"`  // JWT sent as "Authorization: JWT <key>"
	KeyFile  string        `yaml:"key_file"` // Alternative to api_key
	Timeout  time.Duration `yaml:"timeout"`
	PageSize int           `yaml:"page_size"` // List endpoint "limit"; further pages are not fetched
}

// CurrenciesConfig holds the asset precision table.
type CurrenciesConfig struct {
	Quote     currency.Code            `yaml:"quote"`     // Currency of prices, fees and strikes
	Precision map[currency.Code]uint32 `yaml:"precision"` // Merged over the built-in defaults
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// CurrencyTable returns the effective precision table: the built-in defaults
// with any configured overrides applied.
func (c *ClientConfig) CurrencyTable() *currency.Table {
	return currency.DefaultTable().With(c.Currencies.Precision)
}
