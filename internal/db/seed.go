package db

import (
	"context"
	"fmt"
)

// Seed loads a small set of demo rows across every source table so a
// fresh checkout can exercise the whole pipeline. It is safe to call on
// an already-seeded database: rows are keyed by slug/cote and skipped if
// present.
func (d *DB) Seed(ctx context.Context) error {
	for _, stmt := range seedStatements {
		if _, err := d.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("seeding: %w", err)
		}
	}
	return nil
}

var seedStatements = []string{
	`INSERT INTO contents (title, title_ar, body, excerpt, category, tags, slug, status, published_at)
	 SELECT 'Le dépôt légal au Maroc', 'الإيداع القانوني بالمغرب',
	        'Le dépôt légal garantit la conservation du patrimoine documentaire national.',
	        'Présentation du dépôt légal.', 'services', 'dépôt légal,patrimoine', 'depot-legal',
	        'published', datetime('now', '-30 days')
	 WHERE NOT EXISTS (SELECT 1 FROM contents WHERE slug = 'depot-legal')`,

	`INSERT INTO actualites (title, title_ar, body, excerpt, category, slug, status, is_featured, published_at)
	 SELECT 'Exposition du patrimoine marocain', 'معرض التراث المغربي',
	        'Une exposition consacrée aux manuscrits anciens du royaume.',
	        'Manuscrits anciens exposés.', 'expositions', 'exposition-patrimoine',
	        'published', 1, datetime('now', '-7 days')
	 WHERE NOT EXISTS (SELECT 1 FROM actualites WHERE slug = 'exposition-patrimoine')`,

	`INSERT INTO actualites (title, body, slug, status)
	 SELECT 'Brouillon interne', 'Texte non publié.', 'brouillon-interne', 'draft'
	 WHERE NOT EXISTS (SELECT 1 FROM actualites WHERE slug = 'brouillon-interne')`,

	`INSERT INTO evenements (title, title_ar, description, location, category, slug, status, starts_at, published_at)
	 SELECT 'Conférence sur la calligraphie arabe', 'محاضرة حول الخط العربي',
	        'Conférence autour de l''art de la calligraphie et de l''enluminure.',
	        'Auditorium', 'conferences', 'conference-calligraphie',
	        'published', datetime('now', '+14 days'), datetime('now', '-3 days')
	 WHERE NOT EXISTS (SELECT 1 FROM evenements WHERE slug = 'conference-calligraphie')`,

	`INSERT INTO pages (title, title_ar, body_markdown, slug, is_published)
	 SELECT 'Informations pratiques', 'معلومات عملية',
	        '# Horaires' || char(10) || char(10) || 'La bibliothèque est ouverte du **lundi au samedi**.',
	        'informations-pratiques', 1
	 WHERE NOT EXISTS (SELECT 1 FROM pages WHERE slug = 'informations-pratiques')`,

	`INSERT INTO manuscripts (title, title_ar, description, author, cote, genre, period, year, access_level, status, digitized)
	 SELECT 'Muqaddima d''Ibn Khaldoun', 'مقدمة ابن خلدون',
	        'Copie manuscrite de la Muqaddima, chef-d''œuvre de la pensée historique.',
	        'Ibn Khaldoun', 'MS-1377', 'histoire', 'XIVe siècle', 1377,
	        'restricted', 'published', 1
	 WHERE NOT EXISTS (SELECT 1 FROM manuscripts WHERE cote = 'MS-1377')`,

	`INSERT INTO digital_library_documents (title, title_ar, description, author, publisher, collection, year, file_url, status, published_at)
	 SELECT 'Revue d''histoire du Maghreb', 'مجلة تاريخ المغرب الكبير',
	        'Numérisation complète de la revue, fascicules 1 à 12.',
	        'Collectif', 'Presses Nationales', 'periodiques', 1985,
	        '/bibliotheque-numerique/revue-maghreb.pdf', 'published', datetime('now', '-90 days')
	 WHERE NOT EXISTS (SELECT 1 FROM digital_library_documents WHERE title = 'Revue d''histoire du Maghreb')`,

	`INSERT INTO virtual_exhibitions (title, title_ar, description, curator, theme, slug, status, published_at)
	 SELECT 'Trésors de la reliure marocaine', 'كنوز التجليد المغربي',
	        'Parcours virtuel autour des reliures et enluminures des fonds anciens.',
	        'Service des manuscrits', 'arts-du-livre', 'tresors-reliure',
	        'published', datetime('now', '-15 days')
	 WHERE NOT EXISTS (SELECT 1 FROM virtual_exhibitions WHERE slug = 'tresors-reliure')`,

	`INSERT INTO cbn_documents (title, title_ar, summary, author, publisher, genre, isbn, cote, year, status)
	 SELECT 'Histoire de la littérature marocaine', 'تاريخ الأدب المغربي',
	        'Panorama de la littérature marocaine moderne et contemporaine.',
	        'Abdellah Laroui', 'Éditions Atlas', 'essai', '978-9981-00-000-0',
	        'CBN-2001-114', 2001, 'available'
	 WHERE NOT EXISTS (SELECT 1 FROM cbn_documents WHERE cote = 'CBN-2001-114')`,
}
