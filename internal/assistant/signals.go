// README: Lexical classifier; derives intent signals from a normalized query and the snapshot.
package assistant

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"menuboard/internal/catalog"
)

// Signals is the ephemeral result of classifying one query. Derived fresh per
// turn, never cached.
type Signals struct {
	// Query is the normalized (lower-cased, trimmed) input.
	Query string

	WantsFood   bool
	WantsDrink  bool
	WantsCold   bool
	WantsHot    bool
	WantsSingle bool

	// SeeksRecommendation is true when the query carries any
	// recommendation-triggering phrase; it takes precedence over the
	// greeting/farewell/help intents below, which are only set without it.
	SeeksRecommendation bool
	IsGreeting          bool
	IsFarewell          bool
	IsHelp              bool

	// MatchedCategories holds drink-category ids whose name contains a query
	// token longer than two characters.
	MatchedCategories map[string]bool
	// MatchedItems holds explicit item-name matches, scoped to drink items
	// when the query asks for drinks.
	MatchedItems []catalog.Item
	// MatchedKeywords holds dictionary terms found in the query, in
	// dictionary declaration order.
	MatchedKeywords []string
}

var (
	recommendRe = regexp.MustCompile(`recomiend|recomienda|recomiende|sugiere|sugerir|quiero|dame|dame una|una bebida|bebida|frappe|cafe|malteada|limonada|te|té|yogurt|frio|frío|fria|fría|caliente|helado|helada|dulce|refrescante|comer|comida|algo de comer|algo para comer`)
	greetingRe  = regexp.MustCompile(`^(hola|hi|hey|buenos días|buenas tardes|buenas noches)[\s!?]*$`)
	farewellRe  = regexp.MustCompile(`adios|chao|bye|hasta luego|gracias`)
	helpRe      = regexp.MustCompile(`ayuda|help|que puedes hacer|opciones`)
	singleRe    = regexp.MustCompile(`solo una|nada mas una|una sola|solo un|nada mas un|solo 1|una bebida`)
)

var (
	foodPhrases = []string{"comer", "comida", "algo de comer", "algo para comer", "reposteria", "repostería", "postre"}
	drinkWords  = []string{"bebida", "tomar", "beber"}
	drinkHints  = []string{"frappe", "cafe", "malteada", "limonada"}
	coldPhrases = []string{"frio", "frío", "fria", "fría", "helado", "helada"}
	hotPhrases  = []string{"caliente", "calor"}
)

// Classify inspects the query against the catalog snapshot. Pure: no side
// effects, no error conditions; an unrecognized query yields all-false
// signals with empty match sets.
func Classify(query string, snap *catalog.Snapshot) Signals {
	q := strings.ToLower(strings.TrimSpace(query))
	sig := Signals{Query: q}

	sig.WantsFood = queryContainsAny(q, foodPhrases) ||
		(strings.Contains(q, "dulce") && !strings.Contains(q, "bebida"))
	sig.WantsDrink = queryContainsAny(q, drinkWords) ||
		(!sig.WantsFood && queryContainsAny(q, drinkHints))
	sig.WantsCold = queryContainsAny(q, coldPhrases)
	sig.WantsHot = queryContainsAny(q, hotPhrases)
	sig.WantsSingle = singleRe.MatchString(q)

	sig.SeeksRecommendation = recommendRe.MatchString(q)
	if !sig.SeeksRecommendation {
		sig.IsGreeting = greetingRe.MatchString(q)
		sig.IsFarewell = farewellRe.MatchString(q)
		sig.IsHelp = helpRe.MatchString(q)
	}

	tokens := matchTokens(q)

	sig.MatchedCategories = map[string]bool{}
	for _, c := range snap.Categories {
		if c.Segment != catalog.SegmentDrink {
			continue
		}
		if nameMatchesTokens(c.Name, tokens) {
			sig.MatchedCategories[c.ID] = true
		}
	}

	scope := snap.AvailableItems()
	if sig.WantsDrink {
		scope = snap.SegmentItems(catalog.SegmentDrink)
	}
	for _, it := range scope {
		if nameMatchesTokens(it.Name, tokens) {
			sig.MatchedItems = append(sig.MatchedItems, it)
		}
	}

	for _, rule := range keywordRules {
		if strings.Contains(q, rule.term) {
			sig.MatchedKeywords = append(sig.MatchedKeywords, rule.term)
		}
	}

	return sig
}

func queryContainsAny(q string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(q, p) {
			return true
		}
	}
	return false
}

// matchTokens splits the query on whitespace and keeps tokens longer than two
// characters; shorter ones match too aggressively as substrings.
func matchTokens(q string) []string {
	var out []string
	for _, tok := range strings.Fields(q) {
		if utf8.RuneCountInString(tok) > 2 {
			out = append(out, tok)
		}
	}
	return out
}

func nameMatchesTokens(name string, tokens []string) bool {
	lower := strings.ToLower(name)
	for _, tok := range tokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}
