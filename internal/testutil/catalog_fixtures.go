package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// StringPtr is a helper for creating *string values in fixtures
func StringPtr(v string) *string {
	return &v
}

// ShowOptions describes one show wrapper of a /search/shows response.
// A nil Name or Summary omits the field; a nil Image sends "image": null.
type ShowOptions struct {
	ID       int64
	Name     *string
	Summary  *string
	Image    *string
	OmitShow bool
	Score    float64
}

// EpisodeOptions describes one item of a /shows/{id}/episodes response.
// A nil field is omitted from the JSON object.
type EpisodeOptions struct {
	ID     *int64
	Name   *string
	Season *int
	Number *int
}

// Episode builds complete EpisodeOptions.
func Episode(id int64, name string, season, number int) EpisodeOptions {
	return EpisodeOptions{ID: &id, Name: &name, Season: &season, Number: &number}
}

// Show builds complete ShowOptions with an image.
func Show(id int64, name, summary, image string) ShowOptions {
	return ShowOptions{ID: id, Name: &name, Summary: &summary, Image: &image, Score: 0.9}
}

// GenerateSearchJSON renders a /search/shows response body shaped like the real catalog,
// including fields the client is expected to ignore.
func GenerateSearchJSON(shows []ShowOptions) string {
	wrappers := make([]map[string]any, 0, len(shows))
	for _, s := range shows {
		wrapper := map[string]any{"score": s.Score}
		if !s.OmitShow {
			show := map[string]any{
				"id":       s.ID,
				"url":      "https://www.tvmaze.com/shows/" + jsonInt(s.ID),
				"language": "English",
				"genres":   []string{"Drama"},
				"status":   "Ended",
			}
			if s.Name != nil {
				show["name"] = *s.Name
			}
			if s.Summary != nil {
				show["summary"] = *s.Summary
			}
			if s.Image != nil {
				show["image"] = map[string]any{
					"medium":   *s.Image,
					"original": *s.Image + "?original",
				}
			} else {
				show["image"] = nil
			}
			wrapper["show"] = show
		}
		wrappers = append(wrappers, wrapper)
	}
	return mustJSON(wrappers)
}

// GenerateEpisodesJSON renders a /shows/{id}/episodes response body.
func GenerateEpisodesJSON(episodes []EpisodeOptions) string {
	items := make([]map[string]any, 0, len(episodes))
	for _, e := range episodes {
		item := map[string]any{
			"airdate": "2008-01-20",
			"runtime": 60,
			"type":    "regular",
		}
		if e.ID != nil {
			item["id"] = *e.ID
		}
		if e.Name != nil {
			item["name"] = *e.Name
		}
		if e.Season != nil {
			item["season"] = *e.Season
		}
		if e.Number != nil {
			item["number"] = *e.Number
		}
		items = append(items, item)
	}
	return mustJSON(items)
}

// RecordedRequest captures what the fake catalog received.
type RecordedRequest struct {
	Path     string
	RawPath  string
	RawQuery string
	Query    map[string][]string
	Header   http.Header
}

// CatalogServer is an httptest server standing in for the remote catalog.
type CatalogServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
}

// NewCatalogServer starts a fake catalog that answers every request with status and body.
func NewCatalogServer(t *testing.T, status int, body string) *CatalogServer {
	t.Helper()
	return NewCatalogServerFunc(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=UTF-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

// NewCatalogServerFunc starts a fake catalog backed by handler. The server is closed with the test.
func NewCatalogServerFunc(t *testing.T, handler http.HandlerFunc) *CatalogServer {
	t.Helper()
	cs := &CatalogServer{}
	cs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cs.mu.Lock()
		cs.requests = append(cs.requests, RecordedRequest{
			Path:     r.URL.Path,
			RawPath:  r.URL.EscapedPath(),
			RawQuery: r.URL.RawQuery,
			Query:    r.URL.Query(),
			Header:   r.Header.Clone(),
		})
		cs.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(cs.Close)
	return cs
}

// Requests returns a copy of the requests received so far.
func (cs *CatalogServer) Requests() []RecordedRequest {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return append([]RecordedRequest(nil), cs.requests...)
}

func jsonInt(v int64) string {
	return mustJSON(v)
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}
