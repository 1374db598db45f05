package parser

import (
	"errors"
	"io"

	"github.com/Belphemur/ShowFinder/internal/apperrors"
	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/models"
)

const episodeResource = "episode"

type rawEpisode struct {
	ID     *int64  `json:"id"`
	Name   *string `json:"name"`
	Season *int    `json:"season"`
	Number *int    `json:"number"`
}

// EpisodeParser normalizes a show's episode list into models.Episode records
type EpisodeParser struct{}

// NewEpisodeParser creates a new episode parser instance
func NewEpisodeParser() *EpisodeParser {
	return &EpisodeParser{}
}

// Parse decodes the episode list. Episodes are returned in the order the catalog
// sent them; no sorting by season or number happens here.
func (p *EpisodeParser) Parse(body io.Reader) ([]models.Episode, error) {
	logger := config.GetLogger()

	var items *[]*rawEpisode
	if err := decodeDocument(body, &items); err != nil {
		logger.Error().Err(err).Msg("Failed to decode episode list response")
		return nil, apperrors.NewDecodeError(episodeResource, err)
	}
	if items == nil {
		return nil, apperrors.NewDecodeError(episodeResource, errors.New("expected array, got null"))
	}

	episodes := make([]models.Episode, 0, len(*items))
	for i, raw := range *items {
		var missing string
		switch {
		case raw == nil:
			missing = "episode"
		case raw.ID == nil:
			missing = "id"
		case raw.Name == nil:
			missing = "name"
		case raw.Season == nil:
			missing = "season"
		case raw.Number == nil:
			missing = "number"
		}
		if missing != "" {
			err := apperrors.NewMissingFieldError(episodeResource, i, missing)
			logger.Warn().Err(err).Int("index", i).Msg("Rejecting episode list response")
			return nil, err
		}

		episodes = append(episodes, models.Episode{
			ID:     *raw.ID,
			Name:   *raw.Name,
			Season: *raw.Season,
			Number: *raw.Number,
		})
	}

	logger.Debug().Int("count", len(episodes)).Msg("Parsed episodes")
	return episodes, nil
}
