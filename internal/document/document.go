package document

import "fmt"

// Content type tags used for the content_type facet.
const (
	TypeContent    = "content"
	TypeNews       = "news"
	TypeEvent      = "event"
	TypePage       = "page"
	TypeManuscript = "manuscript"
	TypeDocument   = "document"
	TypeExhibition = "exhibition"
	TypeBook       = "book"
)

// Access levels. Anything other than AccessPublic is hidden from
// unprivileged callers.
const (
	AccessPublic     = "public"
	AccessRestricted = "restricted"
	AccessPrivate    = "private"
)

// Lifecycle statuses. Only published and available documents are visible
// without show_hidden.
const (
	StatusPublished = "published"
	StatusAvailable = "available"
	StatusDraft     = "draft"
	StatusArchived  = "archived"
)

// Bounds on the enriched keyword sets.
const (
	MaxKeywords         = 30
	MaxSemanticKeywords = 50
)

// SearchDocument is the denormalized unit of indexing. Every field is
// always present (zero-value defaults, never null) so the index schema
// stays uniform across heterogeneous sources.
type SearchDocument struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	TitleAr          string   `json:"title_ar"`
	Content          string   `json:"content"`
	Excerpt          string   `json:"excerpt"`
	ContentType      string   `json:"content_type"`
	Language         string   `json:"language"`
	Keywords         []string `json:"keywords"`
	SemanticKeywords []string `json:"semantic_keywords"`
	Author           string   `json:"author"`
	Publisher        string   `json:"publisher"`
	Genre            string   `json:"genre"`
	Category         string   `json:"category"`
	Tags             []string `json:"tags"`
	PublicationYear  int      `json:"publication_year"`
	URL              string   `json:"url"`
	PublishedAt      int64    `json:"published_at"`
	AccessLevel      string   `json:"access_level"`
	IsFeatured       bool     `json:"is_featured"`
	ViewCount        int      `json:"view_count"`
	Status           string   `json:"status"`
	SourceTable      string   `json:"source_table"`
}

// ComposeID builds the globally unique document id from the source table
// and the record's native id. Re-indexing the same row always yields the
// same id, so a rebuild is an upsert rather than a duplicate.
func ComposeID(sourceTable string, nativeID int64) string {
	return fmt.Sprintf("%s_%d", sourceTable, nativeID)
}

// Enrich fills the derived fields: extracted keywords, their semantic
// expansion and the detected dominant language. Existing values are
// overwritten; extraction source is title + secondary title + content +
// excerpt.
func (d *SearchDocument) Enrich() {
	combined := d.Title + " " + d.TitleAr + " " + d.Content + " " + d.Excerpt
	d.Keywords = ExtractKeywords(combined)
	d.SemanticKeywords = ExpandKeywords(d.Keywords)
	d.Language = DetectLanguage(combined)

	if d.Keywords == nil {
		d.Keywords = []string{}
	}
	if d.SemanticKeywords == nil {
		d.SemanticKeywords = []string{}
	}
	if d.Tags == nil {
		d.Tags = []string{}
	}
}
