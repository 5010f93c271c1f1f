package searchindex

import (
	"fmt"
	"testing"

	"github.com/maktaba/portal-search/internal/document"
)

func TestSuggestShortQuery(t *testing.T) {
	e := corpusEngine(t)

	for _, q := range []string{"", " ", "a", " p "} {
		suggestions, err := e.Suggest(SuggestOptions{Query: q})
		if err != nil {
			t.Fatalf("Suggest(%q): %v", q, err)
		}
		if suggestions == nil {
			t.Errorf("Suggest(%q): expected empty slice, got nil", q)
		}
		if len(suggestions) != 0 {
			t.Errorf("Suggest(%q): expected no suggestions, got %d", q, len(suggestions))
		}
	}
}

func TestSuggestReturnsTitles(t *testing.T) {
	e := corpusEngine(t)

	suggestions, err := e.Suggest(SuggestOptions{Query: "patrimoine"})
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if len(suggestions) == 0 {
		t.Fatal("expected suggestions")
	}
	s := suggestions[0]
	if s.Text == "" {
		t.Error("expected a display title")
	}
	if s.Type == "" || s.Source == "" || s.URL == "" {
		t.Errorf("expected type, source and url populated: %+v", s)
	}
}

func TestSuggestExcludesDrafts(t *testing.T) {
	e := corpusEngine(t)

	suggestions, err := e.Suggest(SuggestOptions{Query: "brouillon"})
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	for _, s := range suggestions {
		if s.Text == "Brouillon interne" {
			t.Error("draft document surfaced as a suggestion")
		}
	}
}

func TestSuggestLimit(t *testing.T) {
	e := newTestEngine(t)

	var docs []document.SearchDocument
	for i := int64(1); i <= 20; i++ {
		docs = append(docs, testDoc("cbn_documents", i, fmt.Sprintf("Ouvrage %d", i), "Notice."))
	}
	if _, err := e.Rebuild(docs); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	suggestions, err := e.Suggest(SuggestOptions{Query: "ouvrage"})
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if len(suggestions) != DefaultSuggestionLimit {
		t.Errorf("expected default limit of %d, got %d", DefaultSuggestionLimit, len(suggestions))
	}

	suggestions, err = e.Suggest(SuggestOptions{Query: "ouvrage", Limit: 3})
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if len(suggestions) != 3 {
		t.Errorf("expected 3 suggestions, got %d", len(suggestions))
	}
}

func TestSuggestContentTypeFilter(t *testing.T) {
	e := corpusEngine(t)

	suggestions, err := e.Suggest(SuggestOptions{
		Query:        "marocain",
		ContentTypes: []string{document.TypeBook},
	})
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	for _, s := range suggestions {
		if s.Type != document.TypeBook {
			t.Errorf("filter ignored, got type %q", s.Type)
		}
	}
}
