package githubapi

import "net/http"

// Default host URLs for the API and the companion web host. The web
// host participates in credential resolution as the fallback entry.
const (
	DefaultAPIBaseURL = "https://api.github.com"
	DefaultWebBaseURL = "https://github.com"
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	webURL     string
	httpClient *http.Client
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL. Intended for tests and
// self-hosted deployments; the default targets the public API.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithWebBaseURL sets the companion web host URL used as the
// credential fallback.
func WithWebBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.webURL = url
	}
}

// WithHTTPClient sets a custom HTTP client. The provided client's
// timeouts replace the built-in 60 second bounds.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}
