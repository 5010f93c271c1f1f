package extract

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/maktaba/portal-search/internal/db"
	"github.com/maktaba/portal-search/internal/document"
)

// Events extracts the evenements (cultural agenda) entries.
type Events struct{}

func (Events) Source() string { return "evenements" }

func (Events) Extract(ctx context.Context, d *db.DB) ([]document.SearchDocument, error) {
	rows, err := d.QueryContext(ctx,
		`SELECT id, title, title_ar, description, description_ar, location, category,
		        slug, starts_at, published_at, created_at
		 FROM evenements
		 WHERE status = 'published' AND deleted_at IS NULL`)
	if err != nil {
		return nil, fmt.Errorf("querying evenements: %w", err)
	}
	defer rows.Close()

	var docs []document.SearchDocument
	for rows.Next() {
		var (
			id                 int64
			title, titleAr     string
			desc, descAr       string
			location, category string
			slug               string
			startsAt           sql.NullTime
			publishedAt        sql.NullTime
			createdAt          sql.NullTime
		)
		if err := rows.Scan(&id, &title, &titleAr, &desc, &descAr, &location, &category,
			&slug, &startsAt, &publishedAt, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning evenement: %w", err)
		}

		docs = append(docs, document.SearchDocument{
			ID:      document.ComposeID("evenements", id),
			Title:   title,
			TitleAr: titleAr,
			// The venue is part of what visitors search for.
			Content:         joinText(desc, descAr, location),
			Excerpt:         desc,
			ContentType:     document.TypeEvent,
			Author:          Institution,
			Category:        category,
			Tags:            []string{},
			PublicationYear: publicationYear(0, startsAt, publishedAt, createdAt),
			URL:             "/agenda/" + slug,
			PublishedAt:     publishedUnix(publishedAt, startsAt, createdAt),
			AccessLevel:     document.AccessPublic,
			Status:          document.StatusPublished,
			SourceTable:     "evenements",
		})
	}
	return docs, rows.Err()
}
