package extract

import (
	"context"
	"database/sql"
	"strings"

	"github.com/maktaba/portal-search/internal/db"
	"github.com/maktaba/portal-search/internal/document"
)

// Institution is the author facet fallback for portal-authored content.
// Facet values must never be empty: an empty bucket degrades the
// refine-by-author UI.
const Institution = "Bibliothèque Nationale"

// Extractor reads one source category and emits normalized
// SearchDocuments. Extractors are read-only and independently fallible:
// a failure in one source never aborts the others.
type Extractor interface {
	// Source returns the source table name, used for id composition and
	// the per-source breakdown.
	Source() string

	// Extract fetches the rows eligible for public indexing and maps
	// them onto the common document shape.
	Extract(ctx context.Context, d *db.DB) ([]document.SearchDocument, error)
}

// All returns the extractors for every source category the portal
// indexes.
func All() []Extractor {
	return []Extractor{
		Contents{},
		News{},
		Events{},
		Pages{},
		Manuscripts{},
		DigitalLibrary{},
		Exhibitions{},
		Catalog{},
	}
}

// orFallback substitutes fallback for an empty facet value.
func orFallback(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// publicationYear resolves the facetable year: an explicit year wins,
// then the year component of the first valid date in the fallback chain
// (publish date before creation date).
func publicationYear(explicit int, dates ...sql.NullTime) int {
	if explicit > 0 {
		return explicit
	}
	for _, dt := range dates {
		if dt.Valid {
			return dt.Time.Year()
		}
	}
	return 0
}

// publishedUnix returns the Unix seconds of the first valid date, the
// document's default sort key. Zero when no date is known.
func publishedUnix(dates ...sql.NullTime) int64 {
	for _, dt := range dates {
		if dt.Valid {
			return dt.Time.Unix()
		}
	}
	return 0
}

// joinText concatenates non-empty text parts with a single space, so
// bilingual bodies land in one matchable content field.
func joinText(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, strings.TrimSpace(p))
		}
	}
	return strings.Join(kept, " ")
}

// splitTags turns the CMS's comma-separated tag column into a clean
// slice.
func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
