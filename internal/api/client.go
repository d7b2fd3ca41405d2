package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/rickgao/ledgerx-client/internal/auth"
	"github.com/rickgao/ledgerx-client/internal/currency"
)

// DefaultPageSize is the "limit" sent to list endpoints.
const DefaultPageSize = 100

// Client provides access to the LedgerX REST API.
type Client struct {
	baseURL    string
	creds      *auth.Credentials
	httpClient *http.Client
	logger     *slog.Logger

	pageSize  int
	precision Precision
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a new REST API client. An empty apiKey sends no
// Authorization header.
func NewClient(baseURL, apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger:    slog.Default(),
		pageSize:  DefaultPageSize,
		precision: DefaultPrecision(),
	}
	if apiKey != "" {
		c.creds = &auth.Credentials{APIKey: apiKey}
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithPageSize sets the "limit" sent to list endpoints.
func WithPageSize(n int) ClientOption {
	return func(c *Client) {
		c.pageSize = n
	}
}

// WithCurrencies sets the precision table and the quote currency used to
// normalize monetary fields.
func WithCurrencies(table *currency.Table, quote currency.Code) ClientOption {
	return func(c *Client) {
		c.precision = Precision{Table: table, Quote: quote}
	}
}

// Currencies returns the precision table the client normalizes with.
func (c *Client) Currencies() *currency.Table {
	return c.precision.Table
}
