// Package web serves the show search page. Every request drives a fresh
// presenter onto an in-memory page and renders it as HTML.
package web

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/Belphemur/ShowFinder/internal/apperrors"
	"github.com/Belphemur/ShowFinder/internal/models"
	"github.com/Belphemur/ShowFinder/internal/presenter"
	"github.com/Belphemur/ShowFinder/internal/reporting"
)

// DefaultPort is used when no port is configured.
const DefaultPort = 8081

//go:embed templates/page.html
var pageFS embed.FS

type pageView struct {
	Term            string
	Shows           template.HTML
	Episodes        template.HTML
	EpisodesVisible bool
	Error           string
}

// Server renders the search page on top of a catalog.
type Server struct {
	catalog  presenter.Catalog
	renderer *presenter.Renderer
	page     *template.Template
}

// NewServer parses the page templates and returns a server backed by catalog.
func NewServer(catalog presenter.Catalog) (*Server, error) {
	renderer, err := presenter.NewRenderer()
	if err != nil {
		return nil, err
	}
	page, err := template.ParseFS(pageFS, "templates/page.html")
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	return &Server{catalog: catalog, renderer: renderer, page: page}, nil
}

// Handler returns the routed handler with request id and access log middleware.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	// Show ids are matched on the escaped path so an encoded "/" stays inside {id}.
	router.UseEncodedPath()
	router.Use(withRequestID, accessLog)

	router.HandleFunc("/", s.index).Methods(http.MethodGet)
	router.HandleFunc("/search", s.search).Methods(http.MethodGet)
	router.HandleFunc("/shows/{id}/episodes", s.episodes).Methods(http.MethodGet)
	router.HandleFunc("/healthz", healthz).Methods(http.MethodGet)

	return router
}

// NewHTTPServer wraps handler in an http.Server listening on address:port.
func NewHTTPServer(address string, port int, handler http.Handler) *http.Server {
	if port == 0 {
		port = DefaultPort
	}
	return &http.Server{
		Addr:              net.JoinHostPort(address, strconv.Itoa(port)),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "", &presenter.Page{}, nil)
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	page := &presenter.Page{}

	err := presenter.New(s.catalog, page).SubmitSearch(r.Context(), term)
	s.render(w, r, term, page, err)
}

// episodes lists the episodes of a show. When q is present the matching shows
// are searched first so the list stays on the page.
func (s *Server) episodes(w http.ResponseWriter, r *http.Request) {
	id, err := url.PathUnescape(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid show id", http.StatusBadRequest)
		return
	}

	query := r.URL.Query()
	term := query.Get("q")
	page := &presenter.Page{}
	p := presenter.New(s.catalog, page)

	if query.Has("q") {
		if err := p.SubmitSearch(r.Context(), term); err != nil {
			s.render(w, r, term, page, err)
			return
		}
	}

	err = p.RequestEpisodes(r.Context(), id)
	s.render(w, r, term, page, err)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, term string, page *presenter.Page, actionErr error) {
	logger := zerolog.Ctx(r.Context())
	status := http.StatusOK

	if actionErr != nil {
		status = statusFor(actionErr)
		logger.Error().Err(actionErr).Str("path", r.URL.Path).Msg("Catalog request failed")
		reporting.CaptureError(actionErr, map[string]string{
			"path":       r.URL.Path,
			"request_id": RequestIDFromContext(r.Context()),
		})
	}

	view, err := s.view(term, page)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to render fragments")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := s.page.Execute(&buf, view); err != nil {
		logger.Error().Err(err).Msg("Failed to render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) view(term string, page *presenter.Page) (pageView, error) {
	href := func(show models.Show) string {
		return presenter.DefaultEpisodesHref(show) + "?" + url.Values{"q": {term}}.Encode()
	}

	shows, err := s.renderer.Shows(page.Shows, href)
	if err != nil {
		return pageView{}, err
	}
	episodes, err := s.renderer.Episodes(page.Episodes)
	if err != nil {
		return pageView{}, err
	}

	return pageView{
		Term:            term,
		Shows:           shows,
		Episodes:        episodes,
		EpisodesVisible: page.EpisodesVisible,
		Error:           page.ErrorMessage(),
	}, nil
}

// statusFor maps a catalog failure onto the status of the rendered page.
func statusFor(err error) int {
	switch {
	case errors.Is(err, &apperrors.MalformedResponseError{}):
		return http.StatusInternalServerError
	case reporting.IsCancellation(err):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}
