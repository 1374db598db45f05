// Package apperrors tests verify the catalog error types (NetworkError,
// UpstreamError, MalformedResponseError), their Error() messages, Is()
// matching semantics and compatibility with errors.Is()/errors.As()
// through fmt.Errorf wrapping.
package apperrors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// ---------------------------------------------------------------------------
// NetworkError
// ---------------------------------------------------------------------------

func TestNetworkError_Error(t *testing.T) {
	t.Parallel()
	err := NewNetworkError("search shows", "http://catalog/search/shows?q=x", errors.New("connection refused"))
	want := "search shows http://catalog/search/shows?q=x: network error: connection refused"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestNetworkError_UnwrapsCause(t *testing.T) {
	t.Parallel()
	err := NewNetworkError("list episodes", "http://catalog/shows/1/episodes", context.DeadlineExceeded)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("Expected errors.Is to reach the wrapped context error")
	}
	if !errors.Is(fmt.Errorf("outer: %w", err), &NetworkError{}) {
		t.Error("Expected errors.Is to match NetworkError through wrapping")
	}
}

// ---------------------------------------------------------------------------
// UpstreamError
// ---------------------------------------------------------------------------

func TestUpstreamError_Error(t *testing.T) {
	t.Parallel()
	err := NewUpstreamError(500, "http://catalog/shows/1/episodes")
	want := "catalog returned status 500 for http://catalog/shows/1/episodes"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestUpstreamError_As(t *testing.T) {
	t.Parallel()
	wrapped := fmt.Errorf("search: %w", NewUpstreamError(503, "u"))

	var upstream *UpstreamError
	if !errors.As(wrapped, &upstream) {
		t.Fatal("Expected errors.As to find UpstreamError")
	}
	if upstream.StatusCode != 503 {
		t.Errorf("StatusCode = %d, want 503", upstream.StatusCode)
	}
	if errors.Is(wrapped, &NetworkError{}) {
		t.Error("UpstreamError must not match NetworkError")
	}
}

// ---------------------------------------------------------------------------
// MalformedResponseError
// ---------------------------------------------------------------------------

func TestMalformedResponseError_Error(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      *MalformedResponseError
		expected string
	}{
		{
			name:     "missing field",
			err:      NewMissingFieldError("show", 2, "name"),
			expected: `malformed show at index 2: missing "name"`,
		},
		{
			name:     "decode failure",
			err:      NewDecodeError("episode", errors.New("unexpected EOF")),
			expected: "malformed episode response: unexpected EOF",
		},
		{
			name:     "invalid field",
			err:      NewInvalidFieldError("show", 1, "summary", errors.New("cannot unmarshal number into Go value of type string")),
			expected: `malformed show at index 1: invalid "summary": cannot unmarshal number into Go value of type string`,
		},
		{
			name:     "bare",
			err:      &MalformedResponseError{Resource: "show", Index: -1},
			expected: "malformed show response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestMalformedResponseError_Is(t *testing.T) {
	t.Parallel()
	decodeErr := errors.New("invalid character")
	err := fmt.Errorf("parse: %w", NewDecodeError("show", decodeErr))

	if !errors.Is(err, &MalformedResponseError{}) {
		t.Error("Expected errors.Is to match MalformedResponseError")
	}
	if !errors.Is(err, decodeErr) {
		t.Error("Expected errors.Is to reach the decode error")
	}
	if errors.Is(err, &UpstreamError{}) {
		t.Error("MalformedResponseError must not match UpstreamError")
	}
}
