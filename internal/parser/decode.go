package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// decodeDocument decodes body into v and requires that nothing but whitespace follows.
func decodeDocument(body io.Reader, v any) error {
	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		return err
	}

	tok, err := dec.Token()
	switch {
	case errors.Is(err, io.EOF):
		return nil
	case err != nil:
		return fmt.Errorf("trailing data after JSON value: %w", err)
	default:
		return fmt.Errorf("trailing data after JSON value: unexpected %v", tok)
	}
}
