package parser

import "io"

// Parser defines a generic interface for normalizing a catalog JSON response body
// into display records. Implementations either return every record or an error,
// never a partial result.
type Parser[T any] interface {
	Parse(body io.Reader) ([]T, error)
}
