package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/lei/deezer-web/internal/deezer"
	"golang.org/x/sync/errgroup"
)

// Fetcher is the upstream gateway as seen by handlers: one GET per relative
// endpoint, answering with a payload or Absent, never an error
type Fetcher interface {
	Fetch(ctx context.Context, endpoint string) deezer.Result
}

// Handlers contains the HTTP handler functions for every page
type Handlers struct {
	deezer      Fetcher
	renderer    *Renderer
	searchLimit int
}

// NewHandlers creates a new handlers instance
func NewHandlers(fetcher Fetcher, renderer *Renderer, searchLimit int) *Handlers {
	return &Handlers{
		deezer:      fetcher,
		renderer:    renderer,
		searchLimit: searchLimit,
	}
}

// indexPage is the render context for index.html
type indexPage struct {
	Chart     deezer.Result
	Editorial deezer.Result
}

// searchPage is the render context for search.html
type searchPage struct {
	Results    deezer.Result
	Query      string
	SearchType string
}

// detailPage is the render context for detail.html. Type selects the
// template branch; TopTracks is only set for artist pages and EditorialID
// only for editorial selections.
type detailPage struct {
	Title       string
	Type        string
	Data        deezer.Result
	TopTracks   deezer.Result
	EditorialID string
}

// Home handles GET / with the overall chart and the editorial picks. The
// two fetches are independent, so they run concurrently.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	var page indexPage

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		page.Chart = h.deezer.Fetch(ctx, "chart/0")
		return nil
	})
	g.Go(func() error {
		page.Editorial = h.deezer.Fetch(ctx, "editorial")
		return nil
	})
	g.Wait()

	h.renderer.HTML(w, http.StatusOK, "index.html", page)
}

// Search handles GET /search. An empty query renders the empty search page
// without touching the upstream at all; the type parameter defaults to
// "track" and the query is percent-encoded before being placed in the URL.
func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	searchType := r.URL.Query().Get("type")
	if searchType == "" {
		searchType = "track"
	}

	page := searchPage{
		Query:      query,
		SearchType: searchType,
	}

	if query != "" {
		if log := GetLogger(r.Context()); log != nil {
			log.Debug("searching catalog", "query", query, "type", searchType)
		}
		endpoint := fmt.Sprintf("search/%s?q=%s&limit=%d",
			url.PathEscape(searchType), url.QueryEscape(query), h.searchLimit)
		page.Results = h.deezer.Fetch(r.Context(), endpoint)
	}

	h.renderer.HTML(w, http.StatusOK, "search.html", page)
}

// UserDetail handles GET /user/{id}
func (h *Handlers) UserDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.detail(w, r, detailPage{
		Title: fmt.Sprintf("User %s", id),
		Type:  "user",
	}, "user/"+url.PathEscape(id))
}

// TrackDetail handles GET /track/{id}
func (h *Handlers) TrackDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.detail(w, r, detailPage{
		Title: "Track Details",
		Type:  "track",
	}, "track/"+url.PathEscape(id))
}

// EditorialList handles GET /editorial
func (h *Handlers) EditorialList(w http.ResponseWriter, r *http.Request) {
	h.detail(w, r, detailPage{
		Title: "Editorial Picks",
		Type:  "editorial",
	}, "editorial")
}

// EditorialDetail handles GET /editorial/{id}. There is no single-editorial
// endpoint upstream, so the selection listing stands in for it.
func (h *Handlers) EditorialDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.detail(w, r, detailPage{
		Title:       "Editorial Selection",
		Type:        "editorial_detail",
		EditorialID: id,
	}, "editorial/"+url.PathEscape(id)+"/selection")
}

// AlbumDetail handles GET /album/{id}
func (h *Handlers) AlbumDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.detail(w, r, detailPage{
		Title: "Album Details",
		Type:  "album",
	}, "album/"+url.PathEscape(id))
}

// ArtistDetail handles GET /artist/{id}. The artist record and its top
// tracks are fetched concurrently; either may come back absent without
// affecting the other.
func (h *Handlers) ArtistDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	page := detailPage{
		Title: "Artist Details",
		Type:  "artist",
	}

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		page.Data = h.deezer.Fetch(ctx, "artist/"+url.PathEscape(id))
		return nil
	})
	g.Go(func() error {
		page.TopTracks = h.deezer.Fetch(ctx,
			fmt.Sprintf("artist/%s/top?limit=%d", url.PathEscape(id), h.searchLimit))
		return nil
	})
	g.Wait()

	h.renderer.HTML(w, http.StatusOK, "detail.html", page)
}

// PlaylistDetail handles GET /playlist/{id}
func (h *Handlers) PlaylistDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.detail(w, r, detailPage{
		Title: "Playlist Details",
		Type:  "playlist",
	}, "playlist/"+url.PathEscape(id))
}

// GenreList handles GET /genre
func (h *Handlers) GenreList(w http.ResponseWriter, r *http.Request) {
	h.detail(w, r, detailPage{
		Title: "Music Genres",
		Type:  "genre",
	}, "genre")
}

// RadioList handles GET /radio
func (h *Handlers) RadioList(w http.ResponseWriter, r *http.Request) {
	h.detail(w, r, detailPage{
		Title: "Radio Stations",
		Type:  "radio",
	}, "radio")
}

// EpisodeDetail handles GET /episode/{id}
func (h *Handlers) EpisodeDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.detail(w, r, detailPage{
		Title: "Episode Details",
		Type:  "episode",
	}, "episode/"+url.PathEscape(id))
}

// detail fetches one endpoint and renders the shared detail template.
// Absence still renders with 200; the template shows its empty state.
func (h *Handlers) detail(w http.ResponseWriter, r *http.Request, page detailPage, endpoint string) {
	page.Data = h.deezer.Fetch(r.Context(), endpoint)

	if log := GetLogger(r.Context()); log != nil {
		log.Debug("detail fetched",
			"type", page.Type,
			"found", page.Data.Found(),
			"items", page.Data.Len())
	}

	h.renderer.HTML(w, http.StatusOK, "detail.html", page)
}

// NotFound renders the error page for unknown paths
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderer.Error(w, http.StatusNotFound, "The page you are looking for does not exist.")
}

// Health handles health check requests
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
