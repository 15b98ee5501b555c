// Package api implements the HTTP transport for the GitHub-style REST
// API: credential resolution with two-host fallback, request
// construction with fixed timeouts, typed JSON decoding, and
// translation of HTTP failures into structured errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/repoflow/github-client-go/credentials"
	"github.com/repoflow/github-client-go/internal/logger"
)

// Default host URLs. The web URL doubles as the fallback credential
// host: one credential entry under either domain serves both.
const (
	DefaultAPIBaseURL = "https://api.github.com"
	DefaultWebBaseURL = "https://github.com"
)

// Fixed safety bounds for every request. The transport offers no
// per-call override; a server that never signals completion must not
// hang a caller forever.
const (
	connectTimeout = 60 * time.Second
	requestTimeout = 60 * time.Second
)

// requestBodyPlaceholder substitutes the rendered request payload when
// rendering itself fails. Rendering failure must never mask the HTTP
// failure being reported.
const requestBodyPlaceholder = "unknown request"

// Config configures a transport Client.
type Config struct {
	// BaseURL is the API host. Defaults to DefaultAPIBaseURL.
	BaseURL string
	// WebURL is the companion web host used as the credential
	// fallback. Defaults to DefaultWebBaseURL.
	WebURL string
	// Store is the credential store consulted per request. Required.
	Store credentials.Store
	// HTTPClient overrides the default pooled client. Optional.
	HTTPClient *http.Client
}

// Client executes authenticated GET/POST operations against the API.
// Credentials are re-resolved on every call and all request state is
// call-scoped, so a Client is safe for concurrent use; the only shared
// resource is the underlying connection pool.
type Client struct {
	baseURL    string
	webURL     string
	resolver   *credentials.Resolver
	httpClient *http.Client
}

// NewClient creates a transport client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("credential store is required")
	}

	c := &Client{
		baseURL:    cfg.BaseURL,
		webURL:     cfg.WebURL,
		resolver:   credentials.NewResolver(cfg.Store),
		httpClient: cfg.HTTPClient,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultAPIBaseURL
	}
	if c.webURL == "" {
		c.webURL = DefaultWebBaseURL
	}
	if c.httpClient == nil {
		c.httpClient = newHTTPClient()
	}

	return c, nil
}

// newHTTPClient builds the shared pooled client with the fixed
// connect and overall timeouts.
func newHTTPClient() *http.Client {
	return &http.Client{
		Timeout: requestTimeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout: connectTimeout,
			}).DialContext,
			TLSHandshakeTimeout: 10 * time.Second,
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// Get issues an unauthenticated-capable GET for path and decodes the
// 2xx response body into T. Credential resolution failure is never
// fatal for reads: the request proceeds anonymously.
func Get[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out T
	cred := c.resolver.ResolveOptional(ctx, c.baseURL, c.webURL)
	if err := c.do(ctx, http.MethodGet, path, cred, nil, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Post serializes body as JSON, issues an authenticated POST for path,
// and decodes the 2xx response body into T. Writes require identity:
// when no credential resolves for either host, Post fails with a
// *credentials.ResolveError before any network call.
func Post[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	var out T
	cred, err := c.resolver.Resolve(ctx, c.baseURL, c.webURL)
	if err != nil {
		var zero T
		return zero, err
	}
	if err := c.do(ctx, http.MethodPost, path, &cred, body, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// do builds a request from the call-scoped configuration, executes it,
// and decodes or translates the outcome. The path is appended to the
// base URL with an explicit separator.
func (c *Client) do(ctx context.Context, method, path string, cred *credentials.Credential, body, out any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+path, bodyReader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.New().String()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cred != nil {
		req.SetBasicAuth(cred.Username, cred.Secret)
	}

	logger.Get().Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Bool("authenticated", cred != nil).
		Msg("API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Path: path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Path: path, Err: err}
	}

	logger.Get().Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Msg("API response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{
			StatusCode:  resp.StatusCode,
			Method:      method,
			Path:        path,
			RawBody:     raw,
			ClientError: parseClientError(raw),
		}
		if body != nil {
			apiErr.RequestBody = renderRequestBody(body)
		}
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode %s %s response: %w", method, path, err)
		}
	}
	return nil
}

// renderRequestBody pretty-prints the request payload for diagnostic
// inclusion in an APIError, substituting a placeholder on failure.
func renderRequestBody(body any) string {
	rendered, err := json.MarshalIndent(body, "", "  ")
	if err != nil {
		logger.Get().Error().Err(err).Msg("error serializing request for error")
		return requestBodyPlaceholder
	}
	return string(rendered)
}
