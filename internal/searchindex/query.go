package searchindex

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/maktaba/portal-search/internal/document"
)

// elevatedRoles are the caller roles allowed to see non-public
// documents and to pick their own access_level filter.
var elevatedRoles = map[string]bool{
	"admin":     true,
	"librarian": true,
	"staff":     true,
}

// Search answers a free-text query plus structured filters with one
// ranked, faceted, access-filtered result set. Infrastructure failures
// surface as errors, never as an empty result.
func (e *Engine) Search(opts SearchOptions) (*SearchResponse, error) {
	e.wg.Add(1)
	defer e.wg.Done()

	idx, err := e.index()
	if err != nil {
		return nil, err
	}

	page := opts.Page
	if page < 1 {
		page = 1
	}
	perPage := opts.PerPage
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	// Ceiling, not a validation error.
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	root := bleve.NewBooleanQuery()
	root.AddMust(textQuery(opts.Query, matchFields))

	addTermsFilter(root, "language", opts.Languages)
	addTermsFilter(root, "content_type", opts.ContentTypes)
	addTermsFilter(root, "author", opts.Authors)
	addTermsFilter(root, "category", opts.Categories)
	addTermsFilter(root, "publisher", opts.Publishers)
	addTermsFilter(root, "genre", opts.Genres)

	if opts.PublicationYear > 0 {
		addTermsFilter(root, "publication_year", []string{strconv.Itoa(opts.PublicationYear)})
		if opts.PublicationMonth >= 1 && opts.PublicationMonth <= 12 {
			root.AddMust(monthRangeQuery(opts.PublicationYear, opts.PublicationMonth))
		}
	}

	// Visibility is enforced server-side; clients cannot opt out of it
	// without the explicit show_hidden flag.
	if !opts.ShowHidden {
		addTermsFilter(root, "status", []string{document.StatusPublished, document.StatusAvailable})
	}

	// Access control is a non-overridable AND'ed filter for
	// unprivileged callers, whatever access_level they asked for.
	if !elevatedRoles[opts.UserRole] {
		addTermsFilter(root, "access_level", []string{document.AccessPublic})
	} else if opts.AccessLevel != "" {
		addTermsFilter(root, "access_level", []string{opts.AccessLevel})
	}

	req := bleve.NewSearchRequestOptions(root, perPage, (page-1)*perPage, false)
	req.Fields = []string{"*"}
	req.SortBy(sortOrder(opts.SortBy))

	for _, field := range facetFields {
		req.AddFacet(field, bleve.NewFacetRequest(field, 10))
	}

	req.Highlight = bleve.NewHighlightWithStyle("html")
	for _, field := range []string{"title", "title_ar", "content", "excerpt"} {
		req.Highlight.AddField(field)
	}

	res, err := idx.Search(req)
	if err != nil {
		return nil, fmt.Errorf("executing search: %w", err)
	}

	resp := &SearchResponse{
		Found:        int(res.Total),
		Page:         page,
		PerPage:      perPage,
		SearchTimeMs: res.Took.Milliseconds(),
		Hits:         make([]Hit, 0, len(res.Hits)),
		FacetCounts:  facetCounts(res),
	}
	for _, hit := range res.Hits {
		resp.Hits = append(resp.Hits, Hit{
			Document:   docFromStored(hit.ID, hit.Fields),
			Score:      hit.Score,
			Highlights: hit.Fragments,
		})
	}
	return resp, nil
}

// textQuery builds the typo-tolerant, prefix-capable text match across
// the given fields. Every term can hit any field; each field gets a
// fuzzy match (up to 2 edits per token) plus a prefix match on the last
// token for incremental typing.
func textQuery(q string, fields []string) query.Query {
	q = strings.TrimSpace(q)
	if q == "" || q == "*" {
		return bleve.NewMatchAllQuery()
	}

	tokens := strings.Fields(strings.ToLower(q))
	lastToken := tokens[len(tokens)-1]

	var alternatives []query.Query
	for _, field := range fields {
		match := bleve.NewMatchQuery(q)
		match.SetField(field)
		match.SetFuzziness(fuzziness(q))
		alternatives = append(alternatives, match)

		prefix := bleve.NewPrefixQuery(lastToken)
		prefix.SetField(field)
		alternatives = append(alternatives, prefix)
	}
	return bleve.NewDisjunctionQuery(alternatives...)
}

// fuzziness grants up to 2 edits per token, but keeps very short
// queries strict so they do not match the whole collection.
func fuzziness(q string) int {
	switch n := len([]rune(q)); {
	case n <= 4:
		return 0
	case n <= 7:
		return 1
	default:
		return 2
	}
}

// addTermsFilter ANDs a filter that ORs the given values on one field.
func addTermsFilter(root *query.BooleanQuery, field string, values []string) {
	if len(values) == 0 {
		return
	}
	terms := make([]query.Query, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		tq := bleve.NewTermQuery(v)
		tq.SetField(field)
		terms = append(terms, tq)
	}
	if len(terms) == 0 {
		return
	}
	root.AddMust(bleve.NewDisjunctionQuery(terms...))
}

// monthRangeQuery restricts published_at to one calendar month.
func monthRangeQuery(year, month int) query.Query {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	min := float64(start.Unix())
	max := float64(end.Unix())
	inclusive := true
	exclusive := false

	q := bleve.NewNumericRangeInclusiveQuery(&min, &max, &inclusive, &exclusive)
	q.SetField("published_at")
	return q
}

// sortOrder maps the caller's sort_by value onto index sort strings.
// Default is newest first.
func sortOrder(sortBy string) []string {
	switch sortBy {
	case "", "published_at:desc":
		return []string{"-published_at"}
	case "published_at:asc":
		return []string{"published_at"}
	case "view_count:desc":
		return []string{"-view_count"}
	case "title:asc":
		return []string{"title"}
	case "relevance", "_text_match:desc":
		return []string{"-_score", "-published_at"}
	default:
		return []string{"-published_at"}
	}
}

// facetCounts converts the engine's facet results in declared field
// order. Boolean facet terms come back as T/F and are rewritten for
// callers.
func facetCounts(res *bleve.SearchResult) []FacetField {
	out := make([]FacetField, 0, len(facetFields))
	for _, field := range facetFields {
		fr, ok := res.Facets[field]
		if !ok || fr.Terms == nil {
			continue
		}
		ff := FacetField{Field: field}
		for _, term := range fr.Terms.Terms() {
			value := term.Term
			switch value {
			case "T":
				value = "true"
			case "F":
				value = "false"
			}
			ff.Counts = append(ff.Counts, FacetCount{Value: value, Count: term.Count})
		}
		if len(ff.Counts) > 0 {
			out = append(out, ff)
		}
	}
	return out
}
