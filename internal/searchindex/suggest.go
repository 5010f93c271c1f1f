package searchindex

import (
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"

	"github.com/maktaba/portal-search/internal/document"
)

// Suggest serves autocomplete: a lighter-weight lookup restricted to
// titles and keywords. Queries shorter than MinSuggestionQueryLen
// short-circuit to an empty result before touching the index, so
// single-character prefix scans never reach the collection.
func (e *Engine) Suggest(opts SuggestOptions) ([]Suggestion, error) {
	if len([]rune(strings.TrimSpace(opts.Query))) < MinSuggestionQueryLen {
		return []Suggestion{}, nil
	}

	e.wg.Add(1)
	defer e.wg.Done()

	idx, err := e.index()
	if err != nil {
		return nil, err
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	root := bleve.NewBooleanQuery()
	root.AddMust(textQuery(opts.Query, suggestFields))
	addTermsFilter(root, "language", opts.Languages)
	addTermsFilter(root, "content_type", opts.ContentTypes)

	// Same default visibility as the query engine. Access level is not
	// filtered here.
	addTermsFilter(root, "status", []string{document.StatusPublished, document.StatusAvailable})

	req := bleve.NewSearchRequestOptions(root, limit, 0, false)
	req.Fields = []string{"title", "title_ar", "content_type", "source_table", "url"}

	res, err := idx.Search(req)
	if err != nil {
		return nil, fmt.Errorf("executing suggestion lookup: %w", err)
	}

	suggestions := make([]Suggestion, 0, len(res.Hits))
	for _, hit := range res.Hits {
		suggestions = append(suggestions, Suggestion{
			Text:   stringField(hit.Fields, "title"),
			TextAr: stringField(hit.Fields, "title_ar"),
			Type:   stringField(hit.Fields, "content_type"),
			Source: stringField(hit.Fields, "source_table"),
			URL:    stringField(hit.Fields, "url"),
		})
	}
	return suggestions, nil
}
