package searchindex

import (
	"strconv"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/maktaba/portal-search/internal/document"
)

// Textual fields matched by the query engine. A single query term can
// hit any of them.
var matchFields = []string{"title", "title_ar", "content", "excerpt", "keywords", "semantic_keywords"}

// Fields the suggestion engine is restricted to.
var suggestFields = []string{"title", "title_ar", "keywords", "semantic_keywords"}

// Declared facet fields, in response order.
var facetFields = []string{
	"content_type", "language", "keywords", "author", "publisher",
	"genre", "category", "publication_year", "is_featured", "source_table",
}

// buildIndexMapping declares the collection schema. Free-text fields get
// the standard analyzer; facet and filter fields use the keyword
// analyzer so their values stay whole terms. Extracted keywords are
// already lowercase single tokens, so the keyword analyzer serves both
// matching and faceting there.
func buildIndexMapping() mapping.IndexMapping {
	text := bleve.NewTextFieldMapping()

	kw := bleve.NewTextFieldMapping()
	kw.Analyzer = keyword.Name

	num := bleve.NewNumericFieldMapping()
	boolean := bleve.NewBooleanFieldMapping()

	doc := bleve.NewDocumentMapping()
	doc.AddFieldMappingsAt("title", text)
	doc.AddFieldMappingsAt("title_ar", text)
	doc.AddFieldMappingsAt("content", text)
	doc.AddFieldMappingsAt("excerpt", text)

	doc.AddFieldMappingsAt("keywords", kw)
	doc.AddFieldMappingsAt("semantic_keywords", kw)
	doc.AddFieldMappingsAt("content_type", kw)
	doc.AddFieldMappingsAt("language", kw)
	doc.AddFieldMappingsAt("author", kw)
	doc.AddFieldMappingsAt("publisher", kw)
	doc.AddFieldMappingsAt("genre", kw)
	doc.AddFieldMappingsAt("category", kw)
	doc.AddFieldMappingsAt("tags", kw)
	doc.AddFieldMappingsAt("status", kw)
	doc.AddFieldMappingsAt("access_level", kw)
	doc.AddFieldMappingsAt("source_table", kw)
	doc.AddFieldMappingsAt("url", kw)
	// Indexed as a keyword term (not a number) so it can be both a
	// term-faceted field and an exact-match filter.
	doc.AddFieldMappingsAt("publication_year", kw)

	doc.AddFieldMappingsAt("published_at", num)
	doc.AddFieldMappingsAt("view_count", num)
	doc.AddFieldMappingsAt("is_featured", boolean)

	im := bleve.NewIndexMapping()
	im.DefaultMapping = doc
	return im
}

// indexFields shapes a SearchDocument for indexing. publication_year is
// stringified to match its keyword mapping; everything else carries its
// JSON name and native type.
func indexFields(d document.SearchDocument) map[string]interface{} {
	return map[string]interface{}{
		"id":                d.ID,
		"title":             d.Title,
		"title_ar":          d.TitleAr,
		"content":           d.Content,
		"excerpt":           d.Excerpt,
		"content_type":      d.ContentType,
		"language":          d.Language,
		"keywords":          d.Keywords,
		"semantic_keywords": d.SemanticKeywords,
		"author":            d.Author,
		"publisher":         d.Publisher,
		"genre":             d.Genre,
		"category":          d.Category,
		"tags":              d.Tags,
		"publication_year":  strconv.Itoa(d.PublicationYear),
		"url":               d.URL,
		"published_at":      d.PublishedAt,
		"access_level":      d.AccessLevel,
		"is_featured":       d.IsFeatured,
		"view_count":        d.ViewCount,
		"status":            d.Status,
		"source_table":      d.SourceTable,
	}
}

// docFromStored rebuilds a SearchDocument from a hit's stored fields.
// Bleve flattens single-element arrays to scalars, so both shapes are
// accepted.
func docFromStored(id string, fields map[string]interface{}) document.SearchDocument {
	year, _ := strconv.Atoi(stringField(fields, "publication_year"))

	return document.SearchDocument{
		ID:               id,
		Title:            stringField(fields, "title"),
		TitleAr:          stringField(fields, "title_ar"),
		Content:          stringField(fields, "content"),
		Excerpt:          stringField(fields, "excerpt"),
		ContentType:      stringField(fields, "content_type"),
		Language:         stringField(fields, "language"),
		Keywords:         stringsField(fields, "keywords"),
		SemanticKeywords: stringsField(fields, "semantic_keywords"),
		Author:           stringField(fields, "author"),
		Publisher:        stringField(fields, "publisher"),
		Genre:            stringField(fields, "genre"),
		Category:         stringField(fields, "category"),
		Tags:             stringsField(fields, "tags"),
		PublicationYear:  year,
		URL:              stringField(fields, "url"),
		PublishedAt:      int64(numberField(fields, "published_at")),
		AccessLevel:      stringField(fields, "access_level"),
		IsFeatured:       boolField(fields, "is_featured"),
		ViewCount:        int(numberField(fields, "view_count")),
		Status:           stringField(fields, "status"),
		SourceTable:      stringField(fields, "source_table"),
	}
}

func stringField(fields map[string]interface{}, name string) string {
	if s, ok := fields[name].(string); ok {
		return s
	}
	return ""
}

func stringsField(fields map[string]interface{}, name string) []string {
	switch v := fields[name].(type) {
	case string:
		return []string{v}
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}

func numberField(fields map[string]interface{}, name string) float64 {
	if f, ok := fields[name].(float64); ok {
		return f
	}
	return 0
}

func boolField(fields map[string]interface{}, name string) bool {
	if b, ok := fields[name].(bool); ok {
		return b
	}
	return false
}
