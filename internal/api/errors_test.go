package api

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *APIError
		expected string
	}{
		{
			name:     "status only",
			err:      &APIError{StatusCode: 500, Method: "GET", Path: "user"},
			expected: "API error 500 running GET user",
		},
		{
			name: "with message",
			err: &APIError{
				StatusCode:  404,
				Method:      "GET",
				Path:        "repos/octocat/missing",
				ClientError: ClientError{Message: "Not Found"},
			},
			expected: "API error 404 running GET repos/octocat/missing: Not Found",
		},
		{
			name: "with field errors",
			err: &APIError{
				StatusCode: 422,
				Method:     "POST",
				Path:       "repos/octocat/hello-world/issues",
				ClientError: ClientError{
					Message: "Validation Failed",
					Errors: []FieldError{
						{Resource: "Issue", Field: "title", Code: "missing_field"},
					},
				},
			},
			expected: "API error 422 running POST repos/octocat/hello-world/issues: Validation Failed" +
				"\n  Issue: title: missing_field",
		},
		{
			name: "with rendered request",
			err: &APIError{
				StatusCode:  400,
				Method:      "POST",
				Path:        "repos/octocat/hello-world/pulls",
				RequestBody: `{"title": "x"}`,
			},
			expected: "API error 400 running POST repos/octocat/hello-world/pulls" +
				"\nRequest: {\"title\": \"x\"}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAPIError_Is(t *testing.T) {
	tests := []struct {
		name     string
		err      *APIError
		target   error
		expected bool
	}{
		{"401 matches ErrUnauthorized", &APIError{StatusCode: 401}, ErrUnauthorized, true},
		{"403 matches ErrForbidden", &APIError{StatusCode: 403}, ErrForbidden, true},
		{"404 matches ErrNotFound", &APIError{StatusCode: 404}, ErrNotFound, true},
		{"422 matches ErrUnprocessable", &APIError{StatusCode: 422}, ErrUnprocessable, true},
		{"429 matches ErrRateLimited", &APIError{StatusCode: 429}, ErrRateLimited, true},
		{
			"403 with rate limit message matches ErrRateLimited",
			&APIError{StatusCode: 403, ClientError: ClientError{Message: "API rate limit exceeded for 1.2.3.4"}},
			ErrRateLimited,
			true,
		},
		{"plain 403 does not match ErrRateLimited", &APIError{StatusCode: 403}, ErrRateLimited, false},
		{"500 does not match ErrNotFound", &APIError{StatusCode: 500}, ErrNotFound, false},
		{"401 does not match ErrNotFound", &APIError{StatusCode: 401}, ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.Is(tt.err, tt.target))
		})
	}
}

func TestParseClientError(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected ClientError
	}{
		{
			name:     "structured body",
			raw:      `{"message":"Bad credentials","documentation_url":"https://docs.example.com"}`,
			expected: ClientError{Message: "Bad credentials", DocumentationURL: "https://docs.example.com"},
		},
		{
			name: "field errors",
			raw:  `{"message":"Validation Failed","errors":[{"field":"base","code":"invalid"}]}`,
			expected: ClientError{
				Message: "Validation Failed",
				Errors:  []FieldError{{Field: "base", Code: "invalid"}},
			},
		},
		{
			name:     "html body degrades to empty",
			raw:      "<html>nope</html>",
			expected: ClientError{},
		},
		{
			name:     "empty body degrades to empty",
			raw:      "",
			expected: ClientError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseClientError([]byte(tt.raw)))
		})
	}
}

func TestNetworkError(t *testing.T) {
	cause := errors.New("connection reset by peer")
	err := &NetworkError{Path: "repos/octocat/hello-world/pulls", Err: cause}

	assert.Equal(t, "error running API operation repos/octocat/hello-world/pulls: connection reset by peer", err.Error())
	assert.ErrorIs(t, err, cause)
}
