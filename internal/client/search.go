package client

import (
	"context"
	"net/url"

	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/models"
)

const searchEndpoint = "search_shows"

// SearchShows queries /search/shows with term percent-encoded into the q parameter.
func (c *client) SearchShows(ctx context.Context, term string) ([]models.Show, error) {
	logger := config.GetLogger()

	shows, err := fetch(ctx, c, searchEndpoint, c.searchURL(term), c.showParser)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("term", term).Int("count", len(shows)).Msg("Show search completed")
	return shows, nil
}

func (c *client) searchURL(term string) string {
	query := url.Values{}
	query.Set("q", term)
	return c.baseURL + "/search/shows?" + query.Encode()
}
