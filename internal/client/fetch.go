package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/Belphemur/ShowFinder/internal/apperrors"
	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/metrics"
	"github.com/Belphemur/ShowFinder/internal/parser"
)

// maxDrainBytes bounds how much of an error response is read before closing it.
const maxDrainBytes = 4 << 10

// fetch performs one GET against the catalog and normalizes the body with p.
// endpoint is the metric/log label for the operation.
func fetch[T any](ctx context.Context, c *client, endpoint, rawURL string, p parser.Parser[T]) (records []T, err error) {
	logger := config.GetLogger()
	start := time.Now()

	defer func() {
		metrics.CatalogRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
		metrics.CatalogRequestsTotal.WithLabelValues(endpoint, outcome(err)).Inc()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, apperrors.NewNetworkError(http.MethodGet, rawURL, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	logger.Debug().Str("endpoint", endpoint).Str("url", rawURL).Msg("Querying catalog")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn().Err(err).Str("endpoint", endpoint).Str("url", rawURL).Msg("Catalog request failed")
		return nil, apperrors.NewNetworkError(http.MethodGet, rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))
		logger.Warn().Int("status", resp.StatusCode).Str("endpoint", endpoint).Str("url", rawURL).Msg("Catalog returned non-success status")
		return nil, apperrors.NewUpstreamError(resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Warn().Err(err).Str("endpoint", endpoint).Msg("Failed reading catalog response body")
		return nil, apperrors.NewNetworkError(http.MethodGet, rawURL, err)
	}

	reader, err := parser.NewUTF8Reader(bytes.NewReader(body), resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, apperrors.NewDecodeError(endpoint, err)
	}

	return p.Parse(reader)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, &apperrors.UpstreamError{}):
		return metrics.OutcomeUpstream
	case errors.Is(err, &apperrors.MalformedResponseError{}):
		return metrics.OutcomeMalformed
	default:
		return metrics.OutcomeNetwork
	}
}
