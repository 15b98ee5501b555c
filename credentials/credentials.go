// Package credentials resolves the username/token pair used to
// authenticate API requests. Credentials are looked up fresh for every
// request; the backing store is authoritative and may change between
// calls, so nothing here caches.
package credentials

import (
	"context"
	"errors"
	"os"
)

// ErrNoCredential is returned by a Store when no entry matches the host.
var ErrNoCredential = errors.New("no credential for host")

// Credential is a username/secret pair for HTTP Basic authentication.
// It is obtained per request and never persisted by this package.
type Credential struct {
	Username string
	Secret   string
}

// Store looks up credentials by host URL. The backing format
// (credential helper, flat file, keychain) is the implementation's
// concern; this package only depends on the lookup contract.
type Store interface {
	// Lookup returns the credential stored for hostURL, or
	// ErrNoCredential when no entry matches.
	Lookup(ctx context.Context, hostURL string) (Credential, error)
}

// StaticStore is an in-memory Store keyed by host URL.
type StaticStore map[string]Credential

// Lookup implements Store.
func (s StaticStore) Lookup(_ context.Context, hostURL string) (Credential, error) {
	cred, ok := s[hostURL]
	if !ok {
		return Credential{}, ErrNoCredential
	}
	return cred, nil
}

// EnvStore reads a single credential from environment variables,
// serving it for every host. UserVar may name an unset variable; a
// token-only credential is valid for Basic auth against the API.
type EnvStore struct {
	UserVar  string
	TokenVar string
}

// Lookup implements Store.
func (s EnvStore) Lookup(_ context.Context, _ string) (Credential, error) {
	token := os.Getenv(s.TokenVar)
	if token == "" {
		return Credential{}, ErrNoCredential
	}
	return Credential{
		Username: os.Getenv(s.UserVar),
		Secret:   token,
	}, nil
}
