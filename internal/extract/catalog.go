package extract

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/maktaba/portal-search/internal/db"
	"github.com/maktaba/portal-search/internal/document"
)

// Catalog extracts the bibliographic records (cbn_documents). Unlike
// CMS content these use an "available" lifecycle status.
type Catalog struct{}

func (Catalog) Source() string { return "cbn_documents" }

func (Catalog) Extract(ctx context.Context, d *db.DB) ([]document.SearchDocument, error) {
	rows, err := d.QueryContext(ctx,
		`SELECT id, title, title_ar, summary, author, publisher, genre, isbn,
		        cote, year, access_level, view_count, created_at
		 FROM cbn_documents
		 WHERE status = 'available' AND deleted_at IS NULL`)
	if err != nil {
		return nil, fmt.Errorf("querying cbn documents: %w", err)
	}
	defer rows.Close()

	var docs []document.SearchDocument
	for rows.Next() {
		var (
			id                 int64
			title, titleAr     string
			summary, author    string
			publisher, genre   string
			isbn, cote, access string
			year, viewCount    int
			createdAt          sql.NullTime
		)
		if err := rows.Scan(&id, &title, &titleAr, &summary, &author, &publisher,
			&genre, &isbn, &cote, &year, &access, &viewCount, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning cbn document: %w", err)
		}

		docs = append(docs, document.SearchDocument{
			ID:      document.ComposeID("cbn_documents", id),
			Title:   title,
			TitleAr: titleAr,
			// ISBN and cote make the record findable by exact reference.
			Content:         joinText(summary, isbn, cote),
			Excerpt:         summary,
			ContentType:     document.TypeBook,
			Author:          orFallback(author, "Inconnu"),
			Publisher:       publisher,
			Genre:           genre,
			Tags:            []string{},
			PublicationYear: publicationYear(year, createdAt),
			URL:             fmt.Sprintf("/catalogue/%d", id),
			PublishedAt:     publishedUnix(createdAt),
			AccessLevel:     orFallback(access, document.AccessPublic),
			ViewCount:       viewCount,
			Status:          document.StatusAvailable,
			SourceTable:     "cbn_documents",
		})
	}
	return docs, rows.Err()
}
