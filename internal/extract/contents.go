package extract

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/maktaba/portal-search/internal/db"
	"github.com/maktaba/portal-search/internal/document"
)

// Contents extracts the generic CMS content blocks.
type Contents struct{}

func (Contents) Source() string { return "contents" }

func (Contents) Extract(ctx context.Context, d *db.DB) ([]document.SearchDocument, error) {
	rows, err := d.QueryContext(ctx,
		`SELECT id, title, title_ar, body, body_ar, excerpt, category, tags, slug,
		        access_level, is_featured, view_count, published_at, created_at
		 FROM contents
		 WHERE status = 'published' AND deleted_at IS NULL`)
	if err != nil {
		return nil, fmt.Errorf("querying contents: %w", err)
	}
	defer rows.Close()

	var docs []document.SearchDocument
	for rows.Next() {
		var (
			id                    int64
			title, titleAr        string
			body, bodyAr          string
			excerpt, category     string
			tags, slug, access    string
			isFeatured, viewCount int
			publishedAt, createdAt sql.NullTime
		)
		if err := rows.Scan(&id, &title, &titleAr, &body, &bodyAr, &excerpt, &category,
			&tags, &slug, &access, &isFeatured, &viewCount, &publishedAt, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning content: %w", err)
		}

		docs = append(docs, document.SearchDocument{
			ID:              document.ComposeID("contents", id),
			Title:           title,
			TitleAr:         titleAr,
			Content:         joinText(body, bodyAr),
			Excerpt:         excerpt,
			ContentType:     document.TypeContent,
			Author:          Institution,
			Category:        category,
			Tags:            splitTags(tags),
			PublicationYear: publicationYear(0, publishedAt, createdAt),
			URL:             "/contenus/" + slug,
			PublishedAt:     publishedUnix(publishedAt, createdAt),
			AccessLevel:     orFallback(access, document.AccessPublic),
			IsFeatured:      isFeatured != 0,
			ViewCount:       viewCount,
			Status:          document.StatusPublished,
			SourceTable:     "contents",
		})
	}
	return docs, rows.Err()
}
