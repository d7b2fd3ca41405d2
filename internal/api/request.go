package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/rickgao/ledgerx-client/internal/version"
)

// APIError represents a non-2xx response from the LedgerX API.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ledgerx api error %d: %s", e.StatusCode, e.Message)
}

// TransportError reports a request that could not be sent or whose response
// could not be read.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError reports a response body that does not match the expected shape.
// Body holds the raw response for diagnosis.
type DecodeError struct {
	Path string
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s response: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// doRequest performs an HTTP request with the given method and path.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values) ([]byte, error) {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set("X-Request-ID", requestID)
	if c.creds != nil {
		c.creds.Apply(req)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: "do request", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: "read response", Err: err}
	}

	c.logger.Debug("api request",
		"method", method,
		"path", path,
		"request_id", requestID,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode >= 400 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			Body:       body,
		}
	}

	return body, nil
}

// get performs a GET request and decodes the JSON body into result.
func (c *Client) get(ctx context.Context, path string, query url.Values, result any) error {
	body, err := c.doRequest(ctx, http.MethodGet, path, query)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, result); err != nil {
		c.logger.Warn("undecodable response",
			"path", path,
			"error", err,
			"body", string(body),
		)
		return &DecodeError{Path: path, Body: body, Err: err}
	}

	return nil
}

// getList fetches the first page of a list endpoint and returns its data.
// Further pages are never requested.
func getList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(c.pageSize))

	var resp ListResponse[T]
	if err := c.get(ctx, path, query, &resp); err != nil {
		return nil, err
	}

	if resp.Meta.Next != nil && *resp.Meta.Next != "" {
		c.logger.Warn("list truncated to first page",
			"path", path,
			"total_count", resp.Meta.TotalCount,
			"returned", len(resp.Data),
		)
	}

	return resp.Data, nil
}
