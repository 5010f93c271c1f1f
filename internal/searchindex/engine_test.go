package searchindex

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/maktaba/portal-search/internal/document"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := Open(filepath.Join(t.TempDir(), "index"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { e.Close() })
	return e
}

// testDoc builds an enriched published document.
func testDoc(source string, id int64, title, content string) document.SearchDocument {
	doc := document.SearchDocument{
		ID:          document.ComposeID(source, id),
		Title:       title,
		Content:     content,
		ContentType: document.TypeNews,
		Author:      "Bibliothèque Nationale",
		URL:         fmt.Sprintf("/%s/%d", source, id),
		PublishedAt: time.Now().Unix(),
		AccessLevel: document.AccessPublic,
		Status:      document.StatusPublished,
		SourceTable: source,
	}
	doc.Enrich()
	return doc
}

func TestOpenCreatesCollection(t *testing.T) {
	e := newTestEngine(t)

	count, err := e.DocCount()
	if err != nil {
		t.Fatalf("DocCount: %v", err)
	}
	if count != 0 {
		t.Errorf("expected empty collection, got %d docs", count)
	}
}

func TestRebuildSummary(t *testing.T) {
	e := newTestEngine(t)

	docs := []document.SearchDocument{
		testDoc("actualites", 1, "Exposition du patrimoine", "Manuscrits anciens."),
		testDoc("actualites", 2, "Nouvelle salle de lecture", "Ouverture prochaine."),
		testDoc("evenements", 1, "Conférence calligraphie", "Art du livre."),
	}

	summary, err := e.Rebuild(docs)
	if err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	if summary.Indexed != 3 {
		t.Errorf("expected 3 indexed, got %d", summary.Indexed)
	}
	if summary.Breakdown["actualites"] != 2 || summary.Breakdown["evenements"] != 1 {
		t.Errorf("unexpected breakdown: %v", summary.Breakdown)
	}

	count, err := e.DocCount()
	if err != nil {
		t.Fatalf("DocCount: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 docs in collection, got %d", count)
	}
}

func TestRebuildReplacesPriorContents(t *testing.T) {
	e := newTestEngine(t)

	if _, err := e.Rebuild([]document.SearchDocument{
		testDoc("actualites", 1, "Ancien article", "Sera remplacé."),
		testDoc("actualites", 2, "Autre article", "Sera retiré."),
	}); err != nil {
		t.Fatalf("first Rebuild: %v", err)
	}

	summary, err := e.Rebuild([]document.SearchDocument{
		testDoc("actualites", 1, "Article mis à jour", "Contenu frais."),
	})
	if err != nil {
		t.Fatalf("second Rebuild: %v", err)
	}
	if summary.Indexed != 1 {
		t.Errorf("expected 1 indexed, got %d", summary.Indexed)
	}

	count, _ := e.DocCount()
	if count != 1 {
		t.Errorf("expected full replace to leave 1 doc, got %d", count)
	}
}

func TestRebuildIdempotent(t *testing.T) {
	e := newTestEngine(t)

	docs := []document.SearchDocument{
		testDoc("actualites", 1, "Exposition", "Patrimoine."),
		testDoc("pages", 1, "Horaires", "Ouvert du lundi au samedi."),
	}

	first, err := e.Rebuild(docs)
	if err != nil {
		t.Fatalf("first Rebuild: %v", err)
	}
	second, err := e.Rebuild(docs)
	if err != nil {
		t.Fatalf("second Rebuild: %v", err)
	}

	if first.Indexed != second.Indexed {
		t.Errorf("totals differ across identical rebuilds: %d vs %d", first.Indexed, second.Indexed)
	}
	for source, n := range first.Breakdown {
		if second.Breakdown[source] != n {
			t.Errorf("breakdown for %s differs: %d vs %d", source, n, second.Breakdown[source])
		}
	}
}

func TestRebuildManyBatches(t *testing.T) {
	e := newTestEngine(t)

	var docs []document.SearchDocument
	for i := int64(1); i <= 250; i++ {
		docs = append(docs, testDoc("cbn_documents", i,
			fmt.Sprintf("Ouvrage %d", i), "Notice bibliographique."))
	}

	summary, err := e.Rebuild(docs)
	if err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	if summary.Indexed != 250 {
		t.Errorf("expected 250 indexed across batches, got %d", summary.Indexed)
	}
}

func TestSearchAfterClose(t *testing.T) {
	e := newTestEngine(t)
	if err := e.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Failure must be explicit, never an empty result.
	if _, err := e.Search(SearchOptions{Query: "patrimoine"}); err == nil {
		t.Error("expected an error from a closed engine")
	}
}
