package document

import (
	"sort"
	"strings"
)

// semanticTable maps a concept term to related terms that should also
// match documents carrying it. Entries are grouped per language; the
// lookup is a bidirectional substring containment test, so inflected or
// compounded forms ("patrimoines", "bibliothèques") still hit their key
// without a stemmer.
var semanticTable = map[string][]string{
	// French
	"patrimoine":  {"héritage", "heritage", "culture", "tradition", "mémoire", "legs"},
	"héritage":    {"patrimoine", "legs", "tradition", "transmission"},
	"manuscrit":   {"codex", "parchemin", "calligraphie", "enluminure", "document ancien"},
	"bibliothèque": {"médiathèque", "fonds", "collection", "lecture", "documentation"},
	"bibliotheque": {"médiathèque", "fonds", "collection", "lecture", "documentation"},
	"livre":       {"ouvrage", "volume", "publication", "monographie", "imprimé"},
	"exposition":  {"galerie", "vitrine", "collection", "présentation", "musée"},
	"histoire":    {"historique", "passé", "chronique", "mémoire", "archives"},
	"archive":     {"fonds", "registre", "document", "conservation"},
	"culture":     {"culturel", "patrimoine", "art", "tradition", "civilisation"},
	"maroc":       {"marocain", "marocaine", "royaume", "maghreb"},
	"numérique":   {"digital", "numérisation", "électronique", "en ligne"},
	"numerique":   {"digital", "numérisation", "électronique", "en ligne"},
	"recherche":   {"étude", "investigation", "science", "savoir"},
	"conservation": {"restauration", "préservation", "sauvegarde"},
	"calligraphie": {"écriture", "graphie", "manuscrit", "enluminure"},
	"poésie":      {"poème", "vers", "littérature", "diwan"},
	"musique":     {"chant", "mélodie", "andalou", "concert"},

	// English
	"library":    {"collection", "archive", "reading", "documentation"},
	"heritage":   {"patrimony", "legacy", "tradition", "culture"},
	"manuscript": {"codex", "parchment", "calligraphy", "illumination"},
	"exhibition": {"gallery", "display", "showcase", "museum"},
	"history":    {"historical", "past", "chronicle", "archives"},

	// Arabic
	"تراث":   {"ثقافة", "تقاليد", "حضارة", "إرث", "ذاكرة"},
	"مخطوط":  {"مخطوطة", "رق", "خط", "زخرفة", "وثيقة"},
	"مكتبة":  {"خزانة", "كتب", "قراءة", "رصيد", "توثيق"},
	"كتاب":   {"مؤلف", "مجلد", "إصدار", "مطبوع"},
	"معرض":   {"رواق", "عرض", "متحف", "مجموعة"},
	"تاريخ":  {"تاريخي", "ماضي", "حوليات", "أرشيف"},
	"ثقافة":  {"ثقافي", "تراث", "فن", "حضارة"},
	"المغرب": {"مغربي", "مغربية", "المملكة"},

	// Berber
	"ⴰⵢⴷⴰ":    {"ⵜⴰⴷⴻⵍⵙⴰ", "ⴰⵎⴻⵣⵔⵓⵢ"},
	"ⵜⴰⴷⴻⵍⵙⴰ": {"ⴰⵢⴷⴰ", "ⵜⴰⵙⴻⴽⵍⴰ"},
}

// semanticKeys holds the table keys in sorted order so expansion and its
// cap-based truncation stay deterministic across runs.
var semanticKeys = func() []string {
	keys := make([]string, 0, len(semanticTable))
	for k := range semanticTable {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}()

// ExpandKeywords widens the matchable vocabulary of a keyword set with
// the semantic table. A keyword matches a table entry when either one
// contains the other; all of the entry's expansion terms are unioned
// into the result, lowercase, de-duplicated in first-seen order and
// capped at MaxSemanticKeywords. The containment test is intentionally
// approximate: it tolerates inflection cheaply at the cost of the odd
// false positive from short substrings.
func ExpandKeywords(keywords []string) []string {
	expanded := make([]string, 0, MaxSemanticKeywords)
	seen := make(map[string]struct{})

	add := func(term string) bool {
		term = strings.ToLower(term)
		if _, dup := seen[term]; dup {
			return true
		}
		if len(expanded) == MaxSemanticKeywords {
			return false
		}
		seen[term] = struct{}{}
		expanded = append(expanded, term)
		return true
	}

	for _, kw := range keywords {
		for _, key := range semanticKeys {
			if !strings.Contains(kw, key) && !strings.Contains(key, kw) {
				continue
			}
			for _, term := range semanticTable[key] {
				if !add(term) {
					return expanded
				}
			}
		}
	}
	return expanded
}
