// Package auth provides LedgerX API authentication using pre-issued JWT API keys.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// EnvAPIKey is the environment variable holding the API key.
const EnvAPIKey = "LEDGERX_API_KEY"

// ErrMissingAPIKey is returned when no API key is configured.
var ErrMissingAPIKey = errors.New("API key is required")

// Credentials holds the API key used to authorize requests.
type Credentials struct {
	APIKey string // JWT issued from the LedgerX dashboard
}

// NewCredentials validates and wraps an API key.
func NewCredentials(apiKey string) (*Credentials, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &Credentials{APIKey: apiKey}, nil
}

// FromEnv loads credentials from LEDGERX_API_KEY.
func FromEnv() (*Credentials, error) {
	creds, err := NewCredentials(os.Getenv(EnvAPIKey))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", EnvAPIKey, err)
	}
	return creds, nil
}

// LoadKeyFile loads credentials from a file containing only the API key.
func LoadKeyFile(path string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read key file: %w", err)
	}
	creds, err := NewCredentials(string(data))
	if err != nil {
		return nil, fmt.Errorf("key file %s: %w", path, err)
	}
	return creds, nil
}

// AuthorizationHeader returns the value of the Authorization header.
func (c *Credentials) AuthorizationHeader() string {
	return "JWT " + c.APIKey
}

// Apply sets the Authorization header on req.
func (c *Credentials) Apply(req *http.Request) {
	req.Header.Set("Authorization", c.AuthorizationHeader())
}
