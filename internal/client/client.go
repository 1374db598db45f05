package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/failsafe-go/failsafe-go/failsafehttp"
	"github.com/failsafe-go/failsafe-go/timeout"

	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/models"
	"github.com/Belphemur/ShowFinder/internal/parser"
)

const defaultTimeout = 30 * time.Second

// Client defines the interface for querying the show catalog.
//
// Every call issues exactly one GET request and either returns all normalized
// records in catalog order or an error from internal/apperrors. Nothing is
// cached and nothing is retried.
type Client interface {
	// SearchShows returns the shows matching term. The term is sent as-is,
	// including the empty string.
	SearchShows(ctx context.Context, term string) ([]models.Show, error)

	// ListEpisodes returns every episode of the show identified by showID.
	// The identifier is forwarded without validation.
	ListEpisodes(ctx context.Context, showID string) ([]models.Episode, error)

	// Close releases idle connections held by the client.
	Close() error
}

// client implements the Client interface
type client struct {
	httpClient    *http.Client
	baseURL       string
	userAgent     string
	showParser    parser.Parser[models.Show]
	episodeParser parser.Parser[models.Episode]
}

// NewClient creates a new client instance with proxy configuration if provided
func NewClient(cfg *config.Config) Client {
	logger := config.GetLogger()

	requestTimeout := defaultTimeout
	if cfg.ClientTimeout != "" {
		if parsed, err := time.ParseDuration(cfg.ClientTimeout); err != nil || parsed <= 0 {
			logger.Warn().Err(err).Str("timeout", cfg.ClientTimeout).Msg("Invalid timeout duration, using default 30s")
		} else {
			requestTimeout = parsed
		}
	}

	// Clone DefaultTransport to keep its pooling, HTTP/2 and dial settings
	baseTransport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.ProxyConnectionString != "" {
		proxyURL, err := url.Parse(cfg.ProxyConnectionString)
		if err != nil {
			logger.Warn().Err(err).Str("proxy", cfg.ProxyConnectionString).Msg("Invalid proxy URL, continuing without proxy")
		} else {
			baseTransport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	// Timeout only: a failed catalog call is reported, never retried
	timeoutPolicy := timeout.New[*http.Response](requestTimeout)

	httpClient := &http.Client{
		Transport: failsafehttp.NewRoundTripper(newCompressionTransport(baseTransport), timeoutPolicy),
	}

	baseURL := strings.TrimRight(cfg.CatalogBaseURL, "/")
	if baseURL == "" {
		baseURL = config.DefaultCatalogBaseURL
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = config.DefaultUserAgent
	}

	return &client{
		httpClient:    httpClient,
		baseURL:       baseURL,
		userAgent:     userAgent,
		showParser:    parser.NewShowParser(cfg.FallbackImageURL),
		episodeParser: parser.NewEpisodeParser(),
	}
}

// Close releases idle connections held by the underlying transport.
func (c *client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
