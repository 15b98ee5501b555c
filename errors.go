package githubapi

import (
	"errors"
	"fmt"

	"github.com/repoflow/github-client-go/internal/api"
	"github.com/repoflow/github-client-go/credentials"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrMissingStore is returned when no credential store is provided.
	ErrMissingStore = errors.New("credential store is required")

	// ErrUnauthorized is returned when the API rejects the credentials.
	ErrUnauthorized = api.ErrUnauthorized

	// ErrForbidden is returned when the credentials lack access.
	ErrForbidden = api.ErrForbidden

	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = api.ErrNotFound

	// ErrUnprocessable is returned when the request fails validation.
	ErrUnprocessable = api.ErrUnprocessable

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = api.ErrRateLimited

	// ErrNoCredential is returned by credential stores when no entry
	// matches a host.
	ErrNoCredential = credentials.ErrNoCredential
)

// ClientError is the structured error payload embedded in non-2xx
// response bodies. The zero value represents a body that could not be
// parsed.
type ClientError = api.ClientError

// FieldError is one field-level entry of a ClientError.
type FieldError = api.FieldError

// APIError represents a non-2xx response from the API, preserving the
// request and response context that produced it.
type APIError struct {
	StatusCode  int
	Method      string
	Path        string
	RequestBody string
	RawBody     []byte
	ClientError ClientError
}

func (e *APIError) Error() string {
	return (&api.APIError{
		StatusCode:  e.StatusCode,
		Method:      e.Method,
		Path:        e.Path,
		RequestBody: e.RequestBody,
		RawBody:     e.RawBody,
		ClientError: e.ClientError,
	}).Error()
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	return (&api.APIError{
		StatusCode:  e.StatusCode,
		ClientError: e.ClientError,
	}).Is(target)
}

// NetworkError represents a failure below the HTTP layer.
type NetworkError struct {
	Path string
	Err  error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("error running API operation %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// CredentialError reports that no usable credential was found for
// either the API host or the web host.
type CredentialError struct {
	Primary  string
	Fallback string
	Err      error
}

func (e *CredentialError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying resolution error.
func (e *CredentialError) Unwrap() error {
	return e.Err
}

// wrapError converts internal transport errors to public errors so
// that errors.As() checks work against the exported types.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode:  apiErr.StatusCode,
			Method:      apiErr.Method,
			Path:        apiErr.Path,
			RequestBody: apiErr.RequestBody,
			RawBody:     apiErr.RawBody,
			ClientError: apiErr.ClientError,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Path: netErr.Path,
			Err:  netErr.Err,
		}
	}

	var resolveErr *credentials.ResolveError
	if errors.As(err, &resolveErr) {
		return &CredentialError{
			Primary:  resolveErr.Primary,
			Fallback: resolveErr.Fallback,
			Err:      resolveErr,
		}
	}

	return err
}
