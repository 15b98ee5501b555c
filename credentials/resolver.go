package credentials

import (
	"context"
	"fmt"
	"net/url"

	"github.com/repoflow/github-client-go/internal/logger"
)

// Resolver resolves credentials with a two-host fallback: the API host
// is tried first in case the user keeps a dedicated token for it,
// otherwise the companion web host's entry is used. API and web hosts
// commonly share one credential entry under either domain, and users
// should not need to duplicate it.
type Resolver struct {
	store Store
}

// NewResolver returns a Resolver backed by store.
func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve looks up a credential for primary, then for fallback. When
// neither host yields one, it returns a *ResolveError naming both
// attempted URLs.
func (r *Resolver) Resolve(ctx context.Context, primary, fallback string) (Credential, error) {
	cred, err := r.store.Lookup(ctx, primary)
	if err == nil {
		return cred, nil
	}

	cred, err = r.store.Lookup(ctx, fallback)
	if err == nil {
		return cred, nil
	}

	return Credential{}, &ResolveError{
		Primary:  primary,
		Fallback: fallback,
		Err:      err,
	}
}

// ResolveOptional performs the same resolution as Resolve but converts
// any failure into "no credential". Read operations may proceed
// anonymously, so even a malformed store never blocks them.
func (r *Resolver) ResolveOptional(ctx context.Context, primary, fallback string) *Credential {
	cred, err := r.Resolve(ctx, primary, fallback)
	if err != nil {
		logger.Get().Debug().
			Str("primary", primary).
			Str("fallback", fallback).
			Err(err).
			Msg("no credential resolved, proceeding anonymously")
		return nil
	}
	return &cred
}

// ResolveError reports that neither the primary nor the fallback host
// yielded a credential. The message is deliberately verbose: it names
// both URLs and the credential-file line format accepted for either.
type ResolveError struct {
	Primary  string
	Fallback string
	Err      error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("cannot get credentials for host %s or %s from the credential store. "+
		"Make sure the store has a username and password/token for one of the two hosts, "+
		"or that your credential file contains one of the two lines:\n"+
		"Either:\n"+
		"https://USERNAME:TOKEN@%s\n"+
		"or:\n"+
		"https://USERNAME:TOKEN@%s\n"+
		"\n"+
		"Note that spaces or other special characters need to be escaped. For example"+
		" ' ' should be %%20 and '@' should be %%40 (For example when using the email"+
		" as username)",
		e.Primary, e.Fallback, hostOf(e.Primary), hostOf(e.Fallback))
}

// Unwrap returns the underlying lookup error.
func (e *ResolveError) Unwrap() error {
	return e.Err
}

// hostOf strips the scheme for the credential-file line examples.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
