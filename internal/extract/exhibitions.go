package extract

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/maktaba/portal-search/internal/db"
	"github.com/maktaba/portal-search/internal/document"
)

// Exhibitions extracts the virtual exhibitions.
type Exhibitions struct{}

func (Exhibitions) Source() string { return "exhibitions" }

func (Exhibitions) Extract(ctx context.Context, d *db.DB) ([]document.SearchDocument, error) {
	rows, err := d.QueryContext(ctx,
		`SELECT id, title, title_ar, description, description_ar, curator, theme,
		        slug, starts_at, published_at, view_count, created_at
		 FROM virtual_exhibitions
		 WHERE status = 'published' AND deleted_at IS NULL`)
	if err != nil {
		return nil, fmt.Errorf("querying virtual exhibitions: %w", err)
	}
	defer rows.Close()

	var docs []document.SearchDocument
	for rows.Next() {
		var (
			id             int64
			title, titleAr string
			desc, descAr   string
			curator, theme string
			slug           string
			startsAt       sql.NullTime
			publishedAt    sql.NullTime
			viewCount      int
			createdAt      sql.NullTime
		)
		if err := rows.Scan(&id, &title, &titleAr, &desc, &descAr, &curator, &theme,
			&slug, &startsAt, &publishedAt, &viewCount, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning virtual exhibition: %w", err)
		}

		docs = append(docs, document.SearchDocument{
			ID:              document.ComposeID("exhibitions", id),
			Title:           title,
			TitleAr:         titleAr,
			Content:         joinText(desc, descAr),
			Excerpt:         desc,
			ContentType:     document.TypeExhibition,
			Author:          orFallback(curator, Institution),
			Category:        theme,
			Tags:            []string{},
			PublicationYear: publicationYear(0, publishedAt, startsAt, createdAt),
			URL:             "/expositions/" + slug,
			PublishedAt:     publishedUnix(publishedAt, startsAt, createdAt),
			AccessLevel:     document.AccessPublic,
			ViewCount:       viewCount,
			Status:          document.StatusPublished,
			SourceTable:     "exhibitions",
		})
	}
	return docs, rows.Err()
}
