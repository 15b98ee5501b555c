package githubapi

import (
	"context"

	"github.com/repoflow/github-client-go/internal/api"
	"github.com/repoflow/github-client-go/credentials"
)

// Client is the main entry point for talking to the API. It is safe
// for concurrent use: credentials are resolved fresh per call and no
// request state is shared across invocations.
type Client struct {
	transport *api.Client
}

// New creates a client backed by the given credential store.
//
// The store is consulted on every call: the API host first, then the
// web host (the two commonly share a single credential entry). Read
// operations proceed anonymously when neither host resolves; write
// operations fail with a *CredentialError.
func New(store credentials.Store, opts ...Option) (*Client, error) {
	if store == nil {
		return nil, ErrMissingStore
	}

	cfg := &clientConfig{
		baseURL: DefaultAPIBaseURL,
		webURL:  DefaultWebBaseURL,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	transport, err := api.NewClient(api.Config{
		BaseURL:    cfg.baseURL,
		WebURL:     cfg.webURL,
		Store:      store,
		HTTPClient: cfg.httpClient,
	})
	if err != nil {
		return nil, err
	}

	return &Client{transport: transport}, nil
}

// Get issues a GET for path relative to the API base URL and decodes
// the response into T. The caller names the result type explicitly;
// there is no reflection beyond standard JSON decoding.
func Get[T any](ctx context.Context, c *Client, path string) (T, error) {
	out, err := api.Get[T](ctx, c.transport, path)
	if err != nil {
		var zero T
		return zero, wrapError(err)
	}
	return out, nil
}

// Post serializes body as JSON, issues a POST for path relative to
// the API base URL, and decodes the response into T.
func Post[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	out, err := api.Post[T](ctx, c.transport, path, body)
	if err != nil {
		var zero T
		return zero, wrapError(err)
	}
	return out, nil
}

// AuthenticatedUser returns the user the resolved credential belongs to.
func (c *Client) AuthenticatedUser(ctx context.Context) (*User, error) {
	user, err := Get[User](ctx, c, "user")
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUser returns the public profile for login.
func (c *Client) GetUser(ctx context.Context, login string) (*User, error) {
	user, err := Get[User](ctx, c, "users/"+login)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
