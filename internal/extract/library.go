package extract

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/maktaba/portal-search/internal/db"
	"github.com/maktaba/portal-search/internal/document"
)

// DigitalLibrary extracts the digitized documents of the online
// library.
type DigitalLibrary struct{}

func (DigitalLibrary) Source() string { return "digital_library" }

func (DigitalLibrary) Extract(ctx context.Context, d *db.DB) ([]document.SearchDocument, error) {
	rows, err := d.QueryContext(ctx,
		`SELECT id, title, title_ar, description, author, publisher, collection,
		        year, file_url, access_level, view_count, published_at, created_at
		 FROM digital_library_documents
		 WHERE status = 'published' AND deleted_at IS NULL`)
	if err != nil {
		return nil, fmt.Errorf("querying digital library documents: %w", err)
	}
	defer rows.Close()

	var docs []document.SearchDocument
	for rows.Next() {
		var (
			id                     int64
			title, titleAr         string
			desc, author           string
			publisher, collection  string
			year                   int
			fileURL, access        string
			viewCount              int
			publishedAt, createdAt sql.NullTime
		)
		if err := rows.Scan(&id, &title, &titleAr, &desc, &author, &publisher,
			&collection, &year, &fileURL, &access, &viewCount, &publishedAt, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning digital library document: %w", err)
		}

		url := fileURL
		if url == "" {
			url = fmt.Sprintf("/bibliotheque-numerique/%d", id)
		}

		docs = append(docs, document.SearchDocument{
			ID:              document.ComposeID("digital_library", id),
			Title:           title,
			TitleAr:         titleAr,
			Content:         desc,
			Excerpt:         desc,
			ContentType:     document.TypeDocument,
			Author:          orFallback(author, "Inconnu"),
			Publisher:       publisher,
			Category:        collection,
			Tags:            []string{},
			PublicationYear: publicationYear(year, publishedAt, createdAt),
			URL:             url,
			PublishedAt:     publishedUnix(publishedAt, createdAt),
			AccessLevel:     orFallback(access, document.AccessPublic),
			ViewCount:       viewCount,
			Status:          document.StatusPublished,
			SourceTable:     "digital_library",
		})
	}
	return docs, rows.Err()
}
