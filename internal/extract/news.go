package extract

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/maktaba/portal-search/internal/db"
	"github.com/maktaba/portal-search/internal/document"
)

// News extracts the actualites (news) articles.
type News struct{}

func (News) Source() string { return "actualites" }

func (News) Extract(ctx context.Context, d *db.DB) ([]document.SearchDocument, error) {
	rows, err := d.QueryContext(ctx,
		`SELECT id, title, title_ar, body, body_ar, excerpt, category, slug,
		        is_featured, view_count, published_at, created_at
		 FROM actualites
		 WHERE status = 'published' AND deleted_at IS NULL`)
	if err != nil {
		return nil, fmt.Errorf("querying actualites: %w", err)
	}
	defer rows.Close()

	var docs []document.SearchDocument
	for rows.Next() {
		var (
			id                     int64
			title, titleAr         string
			body, bodyAr           string
			excerpt, category      string
			slug                   string
			isFeatured, viewCount  int
			publishedAt, createdAt sql.NullTime
		)
		if err := rows.Scan(&id, &title, &titleAr, &body, &bodyAr, &excerpt, &category,
			&slug, &isFeatured, &viewCount, &publishedAt, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning actualite: %w", err)
		}

		docs = append(docs, document.SearchDocument{
			ID:              document.ComposeID("actualites", id),
			Title:           title,
			TitleAr:         titleAr,
			Content:         joinText(body, bodyAr),
			Excerpt:         excerpt,
			ContentType:     document.TypeNews,
			Author:          Institution,
			Category:        category,
			Tags:            []string{},
			PublicationYear: publicationYear(0, publishedAt, createdAt),
			URL:             "/actualites/" + slug,
			PublishedAt:     publishedUnix(publishedAt, createdAt),
			AccessLevel:     document.AccessPublic,
			IsFeatured:      isFeatured != 0,
			ViewCount:       viewCount,
			Status:          document.StatusPublished,
			SourceTable:     "actualites",
		})
	}
	return docs, rows.Err()
}
