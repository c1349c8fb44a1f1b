// Package lexicon holds the closed word sets used by the style rules.
// All sets are built once at init and never mutated; lookups expect the
// lowercased form of a word.
package lexicon

func newSet(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

var presentAuxiliaries = newSet("am", "is", "are", "has", "have", "does", "do")

var pastAuxiliaries = newSet("was", "were", "had", "did")

var presentBaseVerbs = newSet(
	"walk", "talk", "run", "go", "come", "make", "take", "write", "speak",
	"think", "know", "feel", "see", "eat", "give", "use", "find", "tell",
	"look", "work", "live", "love", "like", "need", "want", "call", "ask",
	"play", "move", "create", "study", "build", "learn",
)

var presentSVerbs = newSet(
	"walks", "talks", "runs", "goes", "comes", "makes", "takes", "writes",
	"speaks", "thinks", "knows", "feels", "sees", "eats", "gives", "uses",
	"finds", "tells", "looks", "works", "lives", "loves", "likes", "needs",
	"wants", "calls", "asks", "plays", "moves", "creates", "studies", "builds",
	"learns",
)

var irregularPastVerbs = newSet(
	"went", "saw", "ate", "ran", "spoke", "wrote", "took", "made", "bought",
	"brought", "felt", "thought", "knew", "kept", "left", "lost", "paid",
	"said", "told", "found", "gave", "came",
)

// edAdjectiveExceptions lists -ed forms that read as adjectives, not as
// finite past-tense verbs ("a tired dog", "an experienced writer").
var edAdjectiveExceptions = newSet(
	"tired", "excited", "interested", "pleased", "prepared", "advanced",
	"experienced", "related", "married", "beloved", "belated", "concerned",
	"opposed", "supposed", "mixed", "fixed", "learned", "used", "detailed",
	"gifted", "honored", "increased", "creed",
)

var pronouns = newSet("i", "you", "he", "she", "it", "we", "they")

var possessiveDeterminers = newSet("my", "your", "his", "her", "its", "our", "their")

var connectors = newSet("and", "or", "but", "so", "yet", "nor", "also", "still", "then")

var modals = newSet("can", "could", "may", "might", "must", "shall", "should", "will", "would")

// subordinateMarkers signal a dependent clause boundary; a tense mismatch
// across one of these is not flagged.
var subordinateMarkers = newSet(
	"that", "which", "who", "whom", "whose", "where", "wherever", "when",
	"whenever", "while", "because", "since", "although", "though", "whereas",
	"if", "before", "after", "once", "until", "unless", "as", "than", "whether",
)

var auxiliaryMarkers = newSet(
	"am", "is", "are", "was", "were", "be", "been", "being", "has", "have", "had",
)

var articles = newSet("the", "a", "an")

var articlesOrDemonstratives = newSet("the", "a", "an", "this", "that", "these", "those")

func has(set map[string]struct{}, w string) bool {
	_, ok := set[w]
	return ok
}

func IsPresentAuxiliary(w string) bool { return has(presentAuxiliaries, w) }

func IsPastAuxiliary(w string) bool { return has(pastAuxiliaries, w) }

func IsPresentBaseVerb(w string) bool { return has(presentBaseVerbs, w) }

func IsPresentSVerb(w string) bool { return has(presentSVerbs, w) }

func IsIrregularPastVerb(w string) bool { return has(irregularPastVerbs, w) }

func IsEdAdjectiveException(w string) bool { return has(edAdjectiveExceptions, w) }

func IsPronoun(w string) bool { return has(pronouns, w) }

func IsPossessiveDeterminer(w string) bool { return has(possessiveDeterminers, w) }

func IsConnector(w string) bool { return has(connectors, w) }

func IsModal(w string) bool { return has(modals, w) }

func IsSubordinateMarker(w string) bool { return has(subordinateMarkers, w) }

func IsAuxiliaryMarker(w string) bool { return has(auxiliaryMarkers, w) }

func IsArticle(w string) bool { return has(articles, w) }

func IsArticleOrDemonstrative(w string) bool { return has(articlesOrDemonstratives, w) }
