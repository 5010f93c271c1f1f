package extract

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/maktaba/portal-search/internal/db"
	"github.com/maktaba/portal-search/internal/document"
)

// Manuscripts extracts the catalogued manuscripts. Most carry a
// restricted access level; the query engine enforces that at search
// time, so they are still indexed in full.
type Manuscripts struct{}

func (Manuscripts) Source() string { return "manuscripts" }

func (Manuscripts) Extract(ctx context.Context, d *db.DB) ([]document.SearchDocument, error) {
	rows, err := d.QueryContext(ctx,
		`SELECT id, title, title_ar, description, author, cote, genre, period,
		        year, access_level, view_count, created_at
		 FROM manuscripts
		 WHERE status = 'published' AND deleted_at IS NULL`)
	if err != nil {
		return nil, fmt.Errorf("querying manuscripts: %w", err)
	}
	defer rows.Close()

	var docs []document.SearchDocument
	for rows.Next() {
		var (
			id             int64
			title, titleAr string
			desc, author   string
			cote, genre    string
			period, access string
			year           int
			viewCount      int
			createdAt      sql.NullTime
		)
		if err := rows.Scan(&id, &title, &titleAr, &desc, &author, &cote, &genre,
			&period, &year, &access, &viewCount, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning manuscript: %w", err)
		}

		docs = append(docs, document.SearchDocument{
			ID:      document.ComposeID("manuscripts", id),
			Title:   title,
			TitleAr: titleAr,
			// Cote and period are how researchers cite manuscripts.
			Content:         joinText(desc, period, cote),
			Excerpt:         desc,
			ContentType:     document.TypeManuscript,
			Author:          orFallback(author, "Anonyme"),
			Genre:           genre,
			Tags:            []string{},
			PublicationYear: publicationYear(year, createdAt),
			URL:             fmt.Sprintf("/manuscrits/%d", id),
			PublishedAt:     publishedUnix(createdAt),
			AccessLevel:     orFallback(access, document.AccessRestricted),
			ViewCount:       viewCount,
			Status:          document.StatusPublished,
			SourceTable:     "manuscripts",
		})
	}
	return docs, rows.Err()
}
