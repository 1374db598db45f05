// Package presenter connects user actions (submitting a search, asking for a
// show's episodes) to the catalog and pushes the results onto an injected Display.
package presenter

import (
	"context"
	"errors"
	"sync"

	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/metrics"
	"github.com/Belphemur/ShowFinder/internal/models"
)

// ErrSuperseded is returned when a result arrives after a newer request of the
// same kind was started. The result is dropped and the display is not touched.
var ErrSuperseded = errors.New("presenter: superseded by a newer request")

// Catalog is the subset of the catalog client the presenter drives.
type Catalog interface {
	SearchShows(ctx context.Context, term string) ([]models.Show, error)
	ListEpisodes(ctx context.Context, showID string) ([]models.Episode, error)
}

// Display is the render target. Methods are called with the presenter's lock
// held and must not call back into the presenter.
type Display interface {
	ShowShows(shows []models.Show)
	HideEpisodes()
	ShowEpisodes(episodes []models.Episode)
	ShowError(err error)
}

// slot tracks the latest request of one action kind.
type slot struct {
	action string
	seq    uint64
	cancel context.CancelFunc
}

// Presenter is safe for concurrent use. For each action kind only the most
// recently started request may update the display; starting a request cancels
// the one it replaces.
type Presenter struct {
	catalog Catalog
	display Display

	mu     sync.Mutex
	search slot
	lookup slot
}

// New creates a presenter rendering onto display.
func New(catalog Catalog, display Display) *Presenter {
	return &Presenter{
		catalog: catalog,
		display: display,
		search:  slot{action: "search"},
		lookup:  slot{action: "episodes"},
	}
}

// SubmitSearch searches for term and, on success, hides the episode area and
// shows the results. On failure the error is shown and the current show list is
// kept. Any episode lookup still in flight is abandoned. The episode area is
// left alone when a lookup was started after this search.
func (p *Presenter) SubmitSearch(ctx context.Context, term string) error {
	ctx, token := p.begin(&p.search, ctx)
	lookupToken := p.supersede(&p.lookup)
	defer p.release(&p.search, token)

	shows, err := p.catalog.SearchShows(ctx, term)

	return p.commit(&p.search, token, err, func() {
		if p.lookup.seq == lookupToken {
			p.display.HideEpisodes()
		}
		p.display.ShowShows(shows)
	})
}

// RequestEpisodes loads the episodes of showID and reveals the episode area.
func (p *Presenter) RequestEpisodes(ctx context.Context, showID string) error {
	ctx, token := p.begin(&p.lookup, ctx)
	defer p.release(&p.lookup, token)

	episodes, err := p.catalog.ListEpisodes(ctx, showID)

	return p.commit(&p.lookup, token, err, func() {
		p.display.ShowEpisodes(episodes)
	})
}

func (p *Presenter) begin(s *slot, parent context.Context) (context.Context, uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	s.seq++
	s.cancel = cancel
	return ctx, s.seq
}

// supersede invalidates whatever request currently owns s and returns the new token.
func (p *Presenter) supersede(s *slot) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.seq++
	return s.seq
}

// release cancels the request context once its slot no longer needs it.
func (p *Presenter) release(s *slot, token uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if s.seq == token && s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// commit applies the outcome of a request if it is still the latest one.
func (p *Presenter) commit(s *slot, token uint64, err error, render func()) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if s.seq != token {
		logger := config.GetLogger()
		logger.Debug().Str("action", s.action).Uint64("token", token).Uint64("latest", s.seq).Msg("Dropping superseded result")
		metrics.SupersededTotal.WithLabelValues(s.action).Inc()
		return ErrSuperseded
	}

	if err != nil {
		p.display.ShowError(err)
		return err
	}

	render()
	return nil
}
