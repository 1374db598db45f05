package client

import (
	"context"
	"net/url"

	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/models"
)

const episodesEndpoint = "list_episodes"

// ListEpisodes queries /shows/{showID}/episodes. showID is escaped as a single
// path segment and otherwise forwarded untouched.
func (c *client) ListEpisodes(ctx context.Context, showID string) ([]models.Episode, error) {
	logger := config.GetLogger()

	episodes, err := fetch(ctx, c, episodesEndpoint, c.episodesURL(showID), c.episodeParser)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("show_id", showID).Int("count", len(episodes)).Msg("Episode lookup completed")
	return episodes, nil
}

func (c *client) episodesURL(showID string) string {
	return c.baseURL + "/shows/" + url.PathEscape(showID) + "/episodes"
}
