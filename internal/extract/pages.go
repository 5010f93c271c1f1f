package extract

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/maktaba/portal-search/internal/db"
	"github.com/maktaba/portal-search/internal/document"
)

// Pages extracts the static CMS pages. Page bodies are stored as
// Markdown and flattened to plain text before indexing.
type Pages struct{}

func (Pages) Source() string { return "pages" }

func (Pages) Extract(ctx context.Context, d *db.DB) ([]document.SearchDocument, error) {
	rows, err := d.QueryContext(ctx,
		`SELECT id, title, title_ar, body_markdown, body_markdown_ar, slug,
		        created_at, updated_at
		 FROM pages
		 WHERE is_published = 1 AND deleted_at IS NULL`)
	if err != nil {
		return nil, fmt.Errorf("querying pages: %w", err)
	}
	defer rows.Close()

	var docs []document.SearchDocument
	for rows.Next() {
		var (
			id                   int64
			title, titleAr       string
			body, bodyAr, slug   string
			createdAt, updatedAt sql.NullTime
		)
		if err := rows.Scan(&id, &title, &titleAr, &body, &bodyAr, &slug,
			&createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning page: %w", err)
		}

		plain := joinText(markdownToText(body), markdownToText(bodyAr))

		docs = append(docs, document.SearchDocument{
			ID:              document.ComposeID("pages", id),
			Title:           title,
			TitleAr:         titleAr,
			Content:         plain,
			Excerpt:         truncate(plain, 200),
			ContentType:     document.TypePage,
			Author:          Institution,
			Tags:            []string{},
			PublicationYear: publicationYear(0, updatedAt, createdAt),
			URL:             "/pages/" + slug,
			PublishedAt:     publishedUnix(updatedAt, createdAt),
			AccessLevel:     document.AccessPublic,
			Status:          document.StatusPublished,
			SourceTable:     "pages",
		})
	}
	return docs, rows.Err()
}

// truncate shortens s to at most n runes without splitting one.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
