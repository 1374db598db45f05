package parser

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/Belphemur/ShowFinder/internal/apperrors"
	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/models"
)

const showResource = "show"

// searchResult is one wrapper of the /search/shows response. Match metadata
// such as the relevance score is not decoded.
type searchResult struct {
	Show *rawShow `json:"show"`
}

type rawShow struct {
	ID      *int64          `json:"id"`
	Name    *string         `json:"name"`
	Summary json.RawMessage `json:"summary"`
	Image   *struct {
		Medium *string `json:"medium"`
	} `json:"image"`
}

// ShowParser normalizes a show search response into models.Show records
type ShowParser struct {
	fallbackImageURL string
}

// NewShowParser creates a show parser that substitutes fallbackImageURL for shows without an image
func NewShowParser(fallbackImageURL string) *ShowParser {
	if fallbackImageURL == "" {
		fallbackImageURL = config.DefaultFallbackImageURL
	}
	return &ShowParser{
		fallbackImageURL: fallbackImageURL,
	}
}

// Parse decodes the search response and projects every wrapper's nested show,
// keeping the catalog's ordering.
func (p *ShowParser) Parse(body io.Reader) ([]models.Show, error) {
	logger := config.GetLogger()

	var results *[]searchResult
	if err := decodeDocument(body, &results); err != nil {
		logger.Error().Err(err).Msg("Failed to decode show search response")
		return nil, apperrors.NewDecodeError(showResource, err)
	}
	if results == nil {
		return nil, apperrors.NewDecodeError(showResource, errors.New("expected array, got null"))
	}

	shows := make([]models.Show, 0, len(*results))
	for i, result := range *results {
		show, err := p.normalize(i, result)
		if err != nil {
			logger.Warn().Err(err).Int("index", i).Msg("Rejecting show search response")
			return nil, err
		}
		shows = append(shows, show)
	}

	logger.Debug().Int("count", len(shows)).Msg("Parsed shows")
	return shows, nil
}

func (p *ShowParser) normalize(index int, result searchResult) (models.Show, error) {
	raw := result.Show
	switch {
	case raw == nil:
		return models.Show{}, apperrors.NewMissingFieldError(showResource, index, "show")
	case raw.ID == nil:
		return models.Show{}, apperrors.NewMissingFieldError(showResource, index, "id")
	case raw.Name == nil:
		return models.Show{}, apperrors.NewMissingFieldError(showResource, index, "name")
	case len(raw.Summary) == 0:
		return models.Show{}, apperrors.NewMissingFieldError(showResource, index, "summary")
	}

	// The catalog sends "summary": null for shows without a description
	var summary *string
	if err := json.Unmarshal(raw.Summary, &summary); err != nil {
		return models.Show{}, apperrors.NewInvalidFieldError(showResource, index, "summary", err)
	}

	show := models.Show{
		ID:    *raw.ID,
		Name:  *raw.Name,
		Image: p.fallbackImageURL,
	}
	if summary != nil {
		show.Summary = *summary
	}
	if raw.Image != nil && raw.Image.Medium != nil && *raw.Image.Medium != "" {
		show.Image = *raw.Image.Medium
	}

	return show, nil
}
