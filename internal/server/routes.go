package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/maktaba/portal-search/internal/searchindex"
)

// registerRoutes mounts the action-selector endpoint and its REST
// aliases.
func (s *Server) registerRoutes(r chi.Router) {
	// Legacy portal surface: one endpoint, dispatched on ?action=.
	r.Get("/", s.handleAction)
	r.Post("/", s.handleAction)

	r.Route("/api", func(r chi.Router) {
		r.Get("/search", s.handleSearch)
		r.Post("/search", s.handleSearch)
		r.Get("/suggest", s.handleSuggest)
		r.Post("/suggest", s.handleSuggest)
		r.Get("/index", s.handleIndex)
		r.Post("/index", s.handleIndex)
	})
}

// handleAction dispatches on the action parameter. Without one, the
// request body decides: a query means search, a bare limit means
// suggest, anything else gets the capability payload.
func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("action") {
	case "index":
		s.handleIndex(w, r)
	case "search":
		s.handleSearch(w, r)
	case "suggest":
		s.handleSuggest(w, r)
	case "":
		body, err := decodeBody(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		switch {
		case body.Query != "":
			s.search(w, body)
		case body.Limit > 0:
			s.suggest(w, body)
		default:
			s.handleInfo(w)
		}
	default:
		writeError(w, http.StatusBadRequest,
			fmt.Errorf("unknown action %q: expected index, search or suggest", r.URL.Query().Get("action")))
	}
}

// handleInfo answers the capability payload, with the current document
// count as an operator sanity check.
func (s *Server) handleInfo(w http.ResponseWriter) {
	count, err := s.engine.DocCount()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"service":   "portal-search",
		"actions":   []string{"index", "search", "suggest"},
		"documents": count,
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	result, err := s.pipeline.Run(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.search(w, body)
}

func (s *Server) search(w http.ResponseWriter, body *requestBody) {
	resp, err := s.engine.Search(searchindex.SearchOptions{
		Query:            body.Query,
		Languages:        body.Language,
		ContentTypes:     body.ContentType,
		Authors:          body.Author,
		Categories:       body.Category,
		Publishers:       body.Publisher,
		Genres:           body.Genre,
		PublicationYear:  body.PublicationYear,
		PublicationMonth: body.PublicationMonth,
		AccessLevel:      body.AccessLevel,
		Page:             body.Page,
		PerPage:          body.PerPage,
		SortBy:           body.SortBy,
		UserRole:         body.UserRole,
		ShowHidden:       body.ShowHidden,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.suggest(w, body)
}

func (s *Server) suggest(w http.ResponseWriter, body *requestBody) {
	suggestions, err := s.engine.Suggest(searchindex.SuggestOptions{
		Query:        body.Query,
		Languages:    body.Language,
		ContentTypes: body.ContentType,
		Limit:        body.Limit,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"suggestions": suggestions})
}

// requestBody is the shared request shape of the search and suggest
// operations. Multi-value fields accept a single string or an array.
type requestBody struct {
	Query            string     `json:"query"`
	Language         stringList `json:"language"`
	ContentType      stringList `json:"content_type"`
	Author           stringList `json:"author"`
	Category         stringList `json:"category"`
	Publisher        stringList `json:"publisher"`
	Genre            stringList `json:"genre"`
	PublicationYear  int        `json:"publication_year"`
	PublicationMonth int        `json:"publication_month"`
	AccessLevel      string     `json:"access_level"`
	Page             int        `json:"page"`
	PerPage          int        `json:"per_page"`
	SortBy           string     `json:"sort_by"`
	UserRole         string     `json:"user_role"`
	ShowHidden       bool       `json:"show_hidden"`
	Limit            int        `json:"limit"`
}

// decodeBody merges URL query parameters with an optional JSON body;
// body values win. GET requests with no parameters are valid and yield
// an empty request.
func decodeBody(r *http.Request) (*requestBody, error) {
	body := &requestBody{}

	q := r.URL.Query()
	body.Query = firstNonEmpty(q.Get("q"), q.Get("query"))
	body.Language = q["language"]
	body.ContentType = q["content_type"]
	body.Author = q["author"]
	body.Category = q["category"]
	body.Publisher = q["publisher"]
	body.Genre = q["genre"]
	body.AccessLevel = q.Get("access_level")
	body.SortBy = q.Get("sort_by")
	body.UserRole = q.Get("user_role")
	body.ShowHidden = q.Get("show_hidden") == "true" || q.Get("show_hidden") == "1"
	for param, dst := range map[string]*int{
		"publication_year":  &body.PublicationYear,
		"publication_month": &body.PublicationMonth,
		"page":              &body.Page,
		"per_page":          &body.PerPage,
		"limit":             &body.Limit,
	} {
		if v := q.Get(param); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("parameter %s: %w", param, err)
			}
			*dst = n
		}
	}

	if r.Body == nil {
		return body, nil
	}
	overlay := &requestBody{}
	if err := json.NewDecoder(r.Body).Decode(overlay); err != nil {
		if errors.Is(err, io.EOF) {
			return body, nil
		}
		return nil, fmt.Errorf("decoding request body: %w", err)
	}
	merge(body, overlay)
	return body, nil
}

// merge overlays non-zero fields of src onto dst.
func merge(dst, src *requestBody) {
	if src.Query != "" {
		dst.Query = src.Query
	}
	if len(src.Language) > 0 {
		dst.Language = src.Language
	}
	if len(src.ContentType) > 0 {
		dst.ContentType = src.ContentType
	}
	if len(src.Author) > 0 {
		dst.Author = src.Author
	}
	if len(src.Category) > 0 {
		dst.Category = src.Category
	}
	if len(src.Publisher) > 0 {
		dst.Publisher = src.Publisher
	}
	if len(src.Genre) > 0 {
		dst.Genre = src.Genre
	}
	if src.PublicationYear != 0 {
		dst.PublicationYear = src.PublicationYear
	}
	if src.PublicationMonth != 0 {
		dst.PublicationMonth = src.PublicationMonth
	}
	if src.AccessLevel != "" {
		dst.AccessLevel = src.AccessLevel
	}
	if src.Page != 0 {
		dst.Page = src.Page
	}
	if src.PerPage != 0 {
		dst.PerPage = src.PerPage
	}
	if src.SortBy != "" {
		dst.SortBy = src.SortBy
	}
	if src.UserRole != "" {
		dst.UserRole = src.UserRole
	}
	if src.ShowHidden {
		dst.ShowHidden = true
	}
	if src.Limit != 0 {
		dst.Limit = src.Limit
	}
}

// stringList unmarshals from either a JSON string or an array of
// strings, since the portal's older clients send single values bare.
type stringList []string

func (l *stringList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*l = nil
		} else {
			*l = []string{single}
		}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*l = many
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError answers a JSON error payload. Failures are always
// explicit; a broken engine never masquerades as zero results.
func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
