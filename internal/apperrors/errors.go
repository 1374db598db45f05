package apperrors

import "fmt"

// NetworkError represents a transport-level failure talking to the catalog
// (DNS, connection refused, timeout, cancelled request).
type NetworkError struct {
	Op  string
	URL string
	Err error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: network error: %v", e.Op, e.URL, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *NetworkError) Is(target error) bool {
	_, ok := target.(*NetworkError)
	return ok
}

// NewNetworkError creates a new NetworkError.
func NewNetworkError(op, url string, err error) *NetworkError {
	return &NetworkError{Op: op, URL: url, Err: err}
}

// UpstreamError is returned when the catalog answers with a non-success status code.
type UpstreamError struct {
	StatusCode int
	URL        string
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("catalog returned status %d for %s", e.StatusCode, e.URL)
}

// Is allows for error checking with errors.Is().
func (e *UpstreamError) Is(target error) bool {
	_, ok := target.(*UpstreamError)
	return ok
}

// NewUpstreamError creates a new UpstreamError.
func NewUpstreamError(statusCode int, url string) *UpstreamError {
	return &UpstreamError{StatusCode: statusCode, URL: url}
}

// MalformedResponseError is returned when a successful catalog response does not
// have the expected shape. Index is the position of the offending item, or -1
// when the body as a whole could not be decoded.
type MalformedResponseError struct {
	Resource string
	Index    int
	Field    string
	Err      error
}

// Error implements the error interface.
func (e *MalformedResponseError) Error() string {
	switch {
	case e.Index < 0 && e.Err != nil:
		return fmt.Sprintf("malformed %s response: %v", e.Resource, e.Err)
	case e.Index < 0:
		return fmt.Sprintf("malformed %s response", e.Resource)
	case e.Err != nil:
		return fmt.Sprintf("malformed %s at index %d: invalid %q: %v", e.Resource, e.Index, e.Field, e.Err)
	default:
		return fmt.Sprintf("malformed %s at index %d: missing %q", e.Resource, e.Index, e.Field)
	}
}

// Unwrap returns the decode error, if any.
func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *MalformedResponseError) Is(target error) bool {
	_, ok := target.(*MalformedResponseError)
	return ok
}

// NewMissingFieldError creates a MalformedResponseError for a required field
// that is absent or null on the item at index.
func NewMissingFieldError(resource string, index int, field string) *MalformedResponseError {
	return &MalformedResponseError{Resource: resource, Index: index, Field: field}
}

// NewInvalidFieldError creates a MalformedResponseError for a field that is
// present on the item at index but could not be decoded.
func NewInvalidFieldError(resource string, index int, field string, err error) *MalformedResponseError {
	return &MalformedResponseError{Resource: resource, Index: index, Field: field, Err: err}
}

// NewDecodeError creates a MalformedResponseError for a body that could not be decoded.
func NewDecodeError(resource string, err error) *MalformedResponseError {
	return &MalformedResponseError{Resource: resource, Index: -1, Err: err}
}
