package document

import (
	"fmt"
	"testing"
)

func TestExpandKeywordsSynonyms(t *testing.T) {
	got := ExpandKeywords([]string{"patrimoine"})
	if !contains(got, "héritage") {
		t.Errorf("expected 'patrimoine' to expand to 'héritage', got %v", got)
	}
}

func TestExpandKeywordsInflectedForm(t *testing.T) {
	// "manuscrits" is not a table key but contains "manuscrit".
	got := ExpandKeywords([]string{"manuscrits"})
	if !contains(got, "codex") {
		t.Errorf("expected inflected 'manuscrits' to match key 'manuscrit', got %v", got)
	}
}

func TestExpandKeywordsNoMatch(t *testing.T) {
	if got := ExpandKeywords([]string{"zzzzzz"}); len(got) != 0 {
		t.Errorf("expected no expansion, got %v", got)
	}
}

func TestExpandKeywordsEmptyInput(t *testing.T) {
	if got := ExpandKeywords(nil); len(got) != 0 {
		t.Errorf("expected empty expansion for nil input, got %v", got)
	}
}

func TestExpandKeywordsCap(t *testing.T) {
	keywords := []string{
		"patrimoine", "manuscrit", "bibliothèque", "livre", "exposition",
		"histoire", "archive", "culture", "maroc", "recherche",
		"conservation", "calligraphie", "poésie", "musique", "héritage",
	}
	got := ExpandKeywords(keywords)
	if len(got) > MaxSemanticKeywords {
		t.Errorf("expected at most %d terms, got %d", MaxSemanticKeywords, len(got))
	}
}

func TestExpandKeywordsDeterministic(t *testing.T) {
	first := ExpandKeywords([]string{"patrimoine", "manuscrit"})
	second := ExpandKeywords([]string{"patrimoine", "manuscrit"})
	if fmt.Sprint(first) != fmt.Sprint(second) {
		t.Errorf("expansion not deterministic: %v vs %v", first, second)
	}
}

func contains(list []string, term string) bool {
	for _, item := range list {
		if item == term {
			return true
		}
	}
	return false
}
