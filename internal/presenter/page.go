package presenter

import (
	"errors"
	"fmt"

	"github.com/Belphemur/ShowFinder/internal/apperrors"
	"github.com/Belphemur/ShowFinder/internal/models"
)

// Page is an in-memory Display holding what a search page shows: the show
// list, the episode list with its visibility, and the last error.
type Page struct {
	Shows           []models.Show
	Episodes        []models.Episode
	EpisodesVisible bool
	Err             error
}

// ShowShows replaces the show list and clears the page error.
func (p *Page) ShowShows(shows []models.Show) {
	p.Shows = shows
	p.Err = nil
}

// HideEpisodes hides the episode area without dropping its contents.
func (p *Page) HideEpisodes() {
	p.EpisodesVisible = false
}

// ShowEpisodes replaces the episode list, reveals the area and clears the page error.
func (p *Page) ShowEpisodes(episodes []models.Episode) {
	p.Episodes = episodes
	p.EpisodesVisible = true
	p.Err = nil
}

// ShowError records err. Shows and episodes already on the page stay as they were.
func (p *Page) ShowError(err error) {
	p.Err = err
}

// ErrorMessage returns a user-facing description of the page error, or "" when there is none.
func (p *Page) ErrorMessage() string {
	if p.Err == nil {
		return ""
	}
	return Describe(p.Err)
}

// Describe turns a catalog error into a short message fit for display.
func Describe(err error) string {
	var upstream *apperrors.UpstreamError
	switch {
	case errors.As(err, &upstream):
		return fmt.Sprintf("The show catalog returned an error (status %d). Please try again later.", upstream.StatusCode)
	case errors.Is(err, &apperrors.MalformedResponseError{}):
		return "The show catalog sent a response we could not read."
	case errors.Is(err, &apperrors.NetworkError{}):
		return "Could not reach the show catalog."
	default:
		return "Something went wrong while talking to the show catalog."
	}
}
