package document

import "testing"

func TestComposeID(t *testing.T) {
	if got := ComposeID("actualites", 42); got != "actualites_42" {
		t.Errorf("expected 'actualites_42', got %q", got)
	}
	// Same native id in different sources must never collide.
	if ComposeID("contents", 7) == ComposeID("pages", 7) {
		t.Error("ids from different sources must differ")
	}
}

func TestEnrich(t *testing.T) {
	doc := SearchDocument{
		Title:   "Exposition du patrimoine marocain",
		Content: "Une exposition consacrée aux manuscrits anciens.",
	}
	doc.Enrich()

	if len(doc.Keywords) == 0 {
		t.Fatal("expected extracted keywords")
	}
	if len(doc.Keywords) > MaxKeywords {
		t.Errorf("keywords exceed cap: %d", len(doc.Keywords))
	}
	if len(doc.SemanticKeywords) > MaxSemanticKeywords {
		t.Errorf("semantic keywords exceed cap: %d", len(doc.SemanticKeywords))
	}
	if !contains(doc.SemanticKeywords, "héritage") {
		t.Errorf("expected semantic expansion to include 'héritage', got %v", doc.SemanticKeywords)
	}
	if doc.Language != LangFrench {
		t.Errorf("expected language fr, got %q", doc.Language)
	}
	if doc.Tags == nil {
		t.Error("expected Tags to be non-nil after Enrich")
	}
}

func TestEnrichEmptyDocument(t *testing.T) {
	var doc SearchDocument
	doc.Enrich()

	if doc.Keywords == nil || doc.SemanticKeywords == nil {
		t.Error("expected empty, non-nil keyword slices")
	}
	if len(doc.Keywords) != 0 {
		t.Errorf("expected no keywords for empty document, got %v", doc.Keywords)
	}
	if doc.Language != LangFrench {
		t.Errorf("expected default language fr, got %q", doc.Language)
	}
}
