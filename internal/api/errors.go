package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/repoflow/github-client-go/internal/logger"
)

// Common API errors that can be checked with errors.Is.
var (
	// ErrUnauthorized indicates the credentials were rejected by the API.
	ErrUnauthorized = errors.New("bad credentials")
	// ErrForbidden indicates the credentials lack access to the resource.
	ErrForbidden = errors.New("access forbidden")
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrUnprocessable indicates the request was rejected by validation.
	ErrUnprocessable = errors.New("request validation failed")
	// ErrRateLimited indicates the rate limit has been exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// FieldError is one entry of the "errors" list in an API error body.
type FieldError struct {
	Resource string `json:"resource,omitempty"`
	Field    string `json:"field,omitempty"`
	Code     string `json:"code,omitempty"`
	Message  string `json:"message,omitempty"`
}

// ClientError is the structured error payload the API embeds in
// non-2xx response bodies. The zero value is valid: an error body that
// cannot be parsed degrades to an empty ClientError rather than
// masking the HTTP failure that produced it.
type ClientError struct {
	Message          string       `json:"message,omitempty"`
	DocumentationURL string       `json:"documentation_url,omitempty"`
	Errors           []FieldError `json:"errors,omitempty"`
}

// parseClientError best-effort parses raw as a ClientError. A
// malformed body (HTML error pages, truncated JSON) yields the zero
// ClientError; the caller still gets the status code, method, path and
// raw bytes on the resulting APIError.
func parseClientError(raw []byte) ClientError {
	var ce ClientError
	if err := json.Unmarshal(raw, &ce); err != nil {
		logger.Get().Warn().
			Err(err).
			Int("body_size", len(raw)).
			Msg("invalid error response body")
		return ClientError{}
	}
	return ce
}

// APIError represents a non-2xx response from the API. It preserves
// the full request/response context: the parsed (possibly empty)
// error payload, the method and path that triggered it, the rendered
// request body for POSTs, and the raw response bytes.
type APIError struct {
	StatusCode  int
	Method      string
	Path        string
	RequestBody string // rendered request payload, empty for GET
	RawBody     []byte
	ClientError ClientError
}

func (e *APIError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "API error %d running %s %s", e.StatusCode, e.Method, e.Path)
	if e.ClientError.Message != "" {
		fmt.Fprintf(&sb, ": %s", e.ClientError.Message)
	}
	for _, fe := range e.ClientError.Errors {
		fmt.Fprintf(&sb, "\n  %s", fe.describe())
	}
	if e.RequestBody != "" {
		fmt.Fprintf(&sb, "\nRequest: %s", e.RequestBody)
	}
	return sb.String()
}

func (fe FieldError) describe() string {
	parts := make([]string, 0, 4)
	if fe.Resource != "" {
		parts = append(parts, fe.Resource)
	}
	if fe.Field != "" {
		parts = append(parts, fe.Field)
	}
	if fe.Code != "" {
		parts = append(parts, fe.Code)
	}
	if fe.Message != "" {
		parts = append(parts, fe.Message)
	}
	return strings.Join(parts, ": ")
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401:
		return target == ErrUnauthorized
	case 403:
		// The API reports rate limiting as 403 with a telltale message.
		if target == ErrRateLimited {
			return strings.Contains(strings.ToLower(e.ClientError.Message), "rate limit")
		}
		return target == ErrForbidden
	case 404:
		return target == ErrNotFound
	case 422:
		return target == ErrUnprocessable
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// NetworkError represents a failure below the HTTP layer: timeout,
// DNS, connection reset. The exchange never produced a status code.
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
