package document

import (
	"fmt"
	"strings"
	"testing"
)

func TestExtractKeywords(t *testing.T) {
	got := ExtractKeywords("Exposition du patrimoine marocain: manuscrits anciens")

	want := []string{"exposition", "patrimoine", "marocain", "manuscrits", "anciens"}
	if len(got) != len(want) {
		t.Fatalf("expected %d keywords, got %d: %v", len(want), len(got), got)
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("keyword %d: expected %q, got %q", i, w, got[i])
		}
	}
}

func TestExtractKeywordsStopwordsOnly(t *testing.T) {
	got := ExtractKeywords("le la de des et ou")
	if len(got) != 0 {
		t.Errorf("expected no keywords from stop words, got %v", got)
	}
}

func TestExtractKeywordsEmptyInput(t *testing.T) {
	if got := ExtractKeywords(""); len(got) != 0 {
		t.Errorf("expected empty list for empty input, got %v", got)
	}
}

func TestExtractKeywordsDiscardsShortTokens(t *testing.T) {
	got := ExtractKeywords("ab cd manuscrit xy")
	if len(got) != 1 || got[0] != "manuscrit" {
		t.Errorf("expected only 'manuscrit', got %v", got)
	}
}

func TestExtractKeywordsLowercaseAndDedup(t *testing.T) {
	got := ExtractKeywords("Manuscrit MANUSCRIT manuscrit calligraphie")
	if len(got) != 2 {
		t.Fatalf("expected 2 keywords, got %v", got)
	}
	if got[0] != "manuscrit" || got[1] != "calligraphie" {
		t.Errorf("expected first-seen order lowercase, got %v", got)
	}
}

func TestExtractKeywordsCap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 100; i++ {
		fmt.Fprintf(&b, "motcle%03d ", i)
	}
	got := ExtractKeywords(b.String())
	if len(got) != MaxKeywords {
		t.Errorf("expected cap of %d keywords, got %d", MaxKeywords, len(got))
	}
	if got[0] != "motcle000" {
		t.Errorf("expected truncation to keep first tokens, got %q first", got[0])
	}
}

func TestExtractKeywordsMixedScripts(t *testing.T) {
	got := ExtractKeywords("manuscrit مخطوطة ⵜⴰⴷⴻⵍⵙⴰ")
	if len(got) != 3 {
		t.Fatalf("expected 3 keywords across scripts, got %v", got)
	}
}
