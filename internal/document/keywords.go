package document

import (
	"regexp"
	"strings"
)

// tokenPattern accepts runs of at least 3 characters drawn from the
// scripts the portal serves: Arabic, Hebrew, Tifinagh (Berber) and
// Latin alphanumerics. Shorter runs are discarded as noise.
var tokenPattern = regexp.MustCompile(`[\p{Arabic}\p{Hebrew}\p{Tifinagh}\p{Latin}0-9]{3,}`)

// ExtractKeywords derives a bounded, noise-reduced keyword set from free
// text. The text is lowercased, tokenized once over the whole string
// (mixed-script input gets no per-language splitting pass), stripped of
// stop words, de-duplicated preserving first-seen order and truncated to
// MaxKeywords entries. Empty input yields an empty list.
func ExtractKeywords(text string) []string {
	tokens := tokenPattern.FindAllString(strings.ToLower(text), -1)

	keywords := make([]string, 0, MaxKeywords)
	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		if _, stop := stopwords[tok]; stop {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		keywords = append(keywords, tok)
		if len(keywords) == MaxKeywords {
			break
		}
	}
	return keywords
}
