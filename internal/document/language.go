package document

import "regexp"

// Language codes the detector can return.
const (
	LangArabic  = "ar"
	LangBerber  = "ber"
	LangEnglish = "en"
	LangFrench  = "fr"
)

var (
	arabicScript   = regexp.MustCompile(`\p{Arabic}`)
	tifinaghScript = regexp.MustCompile(`\p{Tifinagh}`)
	englishMarkers = regexp.MustCompile(`(?i)\b(the|and|with|from|this|that|for|are|was)\b`)
	frenchAccents  = regexp.MustCompile(`[àâäéèêëîïôöùûüç]`)
)

// DetectLanguage tags text with its dominant language from surface
// heuristics alone. Script presence is checked before word heuristics
// because scripts are unambiguous signals: Arabic > Tifinagh (Berber) >
// English stop-word patterns > French accents. Untagged text defaults to
// French, the portal's primary language. Always returns one of ar, ber,
// en, fr.
func DetectLanguage(text string) string {
	switch {
	case arabicScript.MatchString(text):
		return LangArabic
	case tifinaghScript.MatchString(text):
		return LangBerber
	case englishMarkers.MatchString(text):
		return LangEnglish
	case frenchAccents.MatchString(text):
		return LangFrench
	default:
		return LangFrench
	}
}
