package searchindex

import "github.com/maktaba/portal-search/internal/document"

// Defaults and bounds for query paging.
const (
	DefaultPerPage = 10
	MaxPerPage     = 50

	DefaultSuggestionLimit = 8
	MinSuggestionQueryLen  = 2
)

// SearchOptions is the structured option bag accompanying a free-text
// query. Multi-valued filters are OR'd within a field and AND'd across
// fields. Zero values mean "no filter".
type SearchOptions struct {
	Query            string   `json:"query"`
	Languages        []string `json:"language,omitempty"`
	ContentTypes     []string `json:"content_type,omitempty"`
	Authors          []string `json:"author,omitempty"`
	Categories       []string `json:"category,omitempty"`
	Publishers       []string `json:"publisher,omitempty"`
	Genres           []string `json:"genre,omitempty"`
	PublicationYear  int      `json:"publication_year,omitempty"`
	PublicationMonth int      `json:"publication_month,omitempty"`
	AccessLevel      string   `json:"access_level,omitempty"`
	Page             int      `json:"page,omitempty"`
	PerPage          int      `json:"per_page,omitempty"`
	SortBy           string   `json:"sort_by,omitempty"`
	UserRole         string   `json:"user_role,omitempty"`
	ShowHidden       bool     `json:"show_hidden,omitempty"`
}

// Hit is one ranked search result with its highlighted fragments.
type Hit struct {
	Document   document.SearchDocument `json:"document"`
	Score      float64                 `json:"score"`
	Highlights map[string][]string     `json:"highlights,omitempty"`
}

// FacetCount is one value bucket of a facet field.
type FacetCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// FacetField carries the value buckets for one declared facet.
type FacetField struct {
	Field  string       `json:"field"`
	Counts []FacetCount `json:"counts"`
}

// SearchResponse is the full answer to one search request: ranked hits,
// facet counts for refine-by-value UI and timing.
type SearchResponse struct {
	Found        int          `json:"found"`
	Page         int          `json:"page"`
	PerPage      int          `json:"per_page"`
	SearchTimeMs int64        `json:"search_time_ms"`
	Hits         []Hit        `json:"hits"`
	FacetCounts  []FacetField `json:"facet_counts"`
}

// SuggestOptions restricts autocomplete lookups.
type SuggestOptions struct {
	Query        string   `json:"query"`
	Languages    []string `json:"language,omitempty"`
	ContentTypes []string `json:"content_type,omitempty"`
	Limit        int      `json:"limit,omitempty"`
}

// Suggestion is a lightweight autocomplete hit: no facets, no
// highlighting, no snippet.
type Suggestion struct {
	Text   string `json:"text"`
	TextAr string `json:"text_ar"`
	Type   string `json:"type"`
	Source string `json:"source"`
	URL    string `json:"url"`
}

// RebuildSummary reports what a full reindex wrote, per source, so
// operators can sanity-check completeness.
type RebuildSummary struct {
	Indexed   int            `json:"indexed"`
	Breakdown map[string]int `json:"breakdown"`
}
