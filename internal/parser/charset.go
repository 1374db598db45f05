package parser

import (
	"io"
	"mime"
	"strings"

	"golang.org/x/net/html/charset"
)

// NewUTF8Reader wraps body so that it yields UTF-8, based on the charset parameter
// of the response Content-Type header.
//
// JSON is UTF-8 unless the catalog says otherwise, so a missing charset (or an
// explicit utf-8) returns body unchanged. Unknown labels are an error.
func NewUTF8Reader(body io.Reader, contentType string) (io.Reader, error) {
	if contentType == "" {
		return body, nil
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return body, nil
	}
	label := strings.ToLower(strings.TrimSpace(params["charset"]))
	if label == "" || label == "utf-8" || label == "utf8" {
		return body, nil
	}
	return charset.NewReaderLabel(label, body)
}
