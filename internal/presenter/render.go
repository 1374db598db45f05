package presenter

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/url"

	"github.com/Belphemur/ShowFinder/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// EpisodesHref builds the link target of a show card's Episodes control.
type EpisodesHref func(show models.Show) string

// DefaultEpisodesHref links to /shows/{id}/episodes.
func DefaultEpisodesHref(show models.Show) string {
	return "/shows/" + url.PathEscape(show.Ref()) + "/episodes"
}

type showCard struct {
	models.Show
	Href string
}

// Renderer turns records into HTML fragments. It is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded fragment templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("fragments").Funcs(template.FuncMap{
		"summary": SanitizeSummary,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse fragment templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Shows renders one card per show, in order. A nil href uses DefaultEpisodesHref.
func (r *Renderer) Shows(shows []models.Show, href EpisodesHref) (template.HTML, error) {
	if href == nil {
		href = DefaultEpisodesHref
	}
	cards := make([]showCard, len(shows))
	for i, s := range shows {
		cards[i] = showCard{Show: s, Href: href(s)}
	}
	return r.execute("shows", struct{ Shows []showCard }{cards})
}

// Episodes renders one list item per episode, in order.
func (r *Renderer) Episodes(episodes []models.Episode) (template.HTML, error) {
	return r.execute("episodes", struct{ Episodes []models.Episode }{episodes})
}

func (r *Renderer) execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil //nolint:gosec // produced by html/template
}
