package document

// stopwords is the curated multilingual stop-word set applied during
// keyword extraction. It mixes French, English, Arabic and Berber
// function words, pronouns and very common verbs; anything listed here
// carries no search value on its own.
var stopwords = map[string]struct{}{}

func init() {
	lists := [][]string{stopwordsFr, stopwordsEn, stopwordsAr, stopwordsBer}
	for _, list := range lists {
		for _, w := range list {
			stopwords[w] = struct{}{}
		}
	}
}

var stopwordsFr = []string{
	"les", "des", "une", "dans", "sur", "avec", "pour", "par", "pas",
	"que", "qui", "quoi", "dont", "mais", "donc", "car", "aux", "ces",
	"cet", "cette", "son", "ses", "leur", "leurs", "nos", "vos", "notre",
	"votre", "est", "sont", "ete", "être", "etre", "avoir", "fait",
	"faire", "plus", "moins", "tout", "tous", "toute", "toutes", "autre",
	"autres", "comme", "aussi", "bien", "peut", "ont", "nous", "vous",
	"ils", "elles", "elle", "lui", "entre", "vers", "chez", "sans",
	"sous", "apres", "après", "avant", "depuis", "pendant", "ainsi",
	"alors", "encore", "deja", "déjà", "ici", "la", "le", "de", "du",
	"et", "ou", "où", "un", "au", "se", "sa", "ce", "en", "il", "je",
	"tu", "on", "ne", "ni", "si", "y",
}

var stopwordsEn = []string{
	"the", "and", "for", "are", "was", "were", "been", "being", "have",
	"has", "had", "this", "that", "these", "those", "with", "from",
	"they", "them", "their", "there", "here", "where", "when", "what",
	"which", "who", "whom", "will", "would", "could", "should", "can",
	"may", "might", "must", "shall", "not", "but", "all", "any", "some",
	"more", "most", "other", "into", "over", "under", "about", "after",
	"before", "between", "through", "during", "also", "than", "then",
	"its", "his", "her", "our", "your", "out", "off", "too", "very",
	"just", "only", "such", "each", "both", "how", "why",
}

var stopwordsAr = []string{
	"في", "من", "على", "إلى", "الى", "عن", "مع", "هذا", "هذه", "ذلك",
	"تلك", "التي", "الذي", "الذين", "اللاتي", "كان", "كانت", "يكون",
	"تكون", "ليس", "ليست", "هو", "هي", "هم", "هن", "نحن", "أنا", "انا",
	"أنت", "انت", "كل", "بعض", "غير", "بين", "فوق", "تحت", "أمام",
	"امام", "خلف", "عند", "منذ", "حتى", "إذا", "اذا", "لكن", "ولكن",
	"ثم", "أو", "او", "لا", "ما", "لم", "لن", "قد", "كما", "أيضا",
	"ايضا", "هناك", "هنا",
}

var stopwordsBer = []string{
	"ⴷⴻⴳ", "ⵙⴻⴳ", "ⵖⴻⵔ", "ⴰⴽⴻⴷ", "ⵏⴻⵜⵜⴰ", "ⵏⴻⵜⵜⴰⵜ", "ⵏⵉⵜⵏⵉ",
	"ⴰⵢⴰ", "ⴰⵢⴻⵏ", "ⵡⴰⴷ", "ⵜⴰⴷ", "ⵎⴰⵛⴰ", "ⵏⴻⵖ", "ⵓⵔ", "ⴷ",
}
