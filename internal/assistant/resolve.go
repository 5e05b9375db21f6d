// README: Candidate resolver; fixed matching-strategy precedence over the snapshot.
package assistant

import (
	"math/rand"
	"strings"
	"time"

	"menuboard/internal/catalog"
)

const (
	// maxCandidates is the hard cap on any resolved list.
	maxCandidates = 5
	// randomFallbackCount is how many items the shuffled fallbacks return.
	randomFallbackCount = 3
)

// keywordRule maps a query term to a slice of the catalog: drink categories
// of the given temperature whose name contains one of the markers. The slice
// order is the dictionary declaration order and is significant: the first
// matching term with a non-empty result wins.
type keywordRule struct {
	term    string
	scope   catalog.Temperature
	markers []string
}

var keywordRules = []keywordRule{
	{term: "frappe", scope: catalog.TemperatureCold, markers: []string{"frappe"}},
	{term: "malteada", scope: catalog.TemperatureCold, markers: []string{"malteada"}},
	{term: "cafe", scope: catalog.TemperatureHot, markers: []string{"cafe", "café"}},
	{term: "café", scope: catalog.TemperatureHot, markers: []string{"cafe", "café"}},
	{term: "te", scope: catalog.TemperatureHot, markers: []string{"te", "té"}},
	{term: "té", scope: catalog.TemperatureHot, markers: []string{"te", "té"}},
	{term: "limonada", scope: catalog.TemperatureCold, markers: []string{"limonada"}},
	{term: "yogurt", scope: catalog.TemperatureCold, markers: []string{"yogurt"}},
	{term: "dulce", scope: catalog.TemperatureCold, markers: []string{"frappe", "malteada", "yogurt"}},
	{term: "refrescante", scope: catalog.TemperatureCold, markers: []string{"limonada", "naranjada", "tizzana"}},
}

// Resolver turns intent signals into a bounded candidate list. The shuffle
// source is injectable so tests can pin the randomized fallbacks.
type Resolver struct {
	shuffle func([]catalog.Item)
}

func NewResolver() *Resolver {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Resolver{
		shuffle: func(items []catalog.Item) {
			rng.Shuffle(len(items), func(i, j int) {
				items[i], items[j] = items[j], items[i]
			})
		},
	}
}

// NewResolverWithShuffle builds a resolver with a caller-provided shuffle.
func NewResolverWithShuffle(shuffle func([]catalog.Item)) *Resolver {
	return &Resolver{shuffle: shuffle}
}

// Resolve applies the matching strategies in fixed precedence, each
// short-circuiting on a non-empty result. Only available items are ever
// returned, at most maxCandidates of them, and exactly one when the query
// asked for a single item.
func (r *Resolver) Resolve(sig Signals, snap *catalog.Snapshot) []catalog.Item {
	// Food override: a food request never falls through to drinks, even when
	// the catalog has no food at all.
	if sig.WantsFood {
		return bound(sig, snap.SegmentItems(catalog.SegmentFood), maxCandidates)
	}

	if sig.WantsCold {
		if cold := snap.TemperatureItems(catalog.TemperatureCold); len(cold) > 0 {
			return bound(sig, cold, maxCandidates)
		}
	}
	if sig.WantsHot {
		if hot := snap.TemperatureItems(catalog.TemperatureHot); len(hot) > 0 {
			return bound(sig, hot, maxCandidates)
		}
	}

	if len(sig.MatchedCategories) > 0 {
		if items := snap.CategoryItems(sig.MatchedCategories); len(items) > 0 {
			return bound(sig, items, maxCandidates)
		}
	}

	if len(sig.MatchedItems) > 0 {
		return bound(sig, sig.MatchedItems, maxCandidates)
	}

	for _, term := range sig.MatchedKeywords {
		if items := resolveKeyword(term, snap); len(items) > 0 {
			return bound(sig, items, maxCandidates)
		}
	}

	drinks := snap.SegmentItems(catalog.SegmentDrink)

	// A bare drink request without temperature qualifiers: first items in
	// catalog iteration order, a stable stand-in for popular picks.
	if sig.WantsDrink && !sig.WantsCold && !sig.WantsHot && len(drinks) > 0 {
		return bound(sig, drinks, maxCandidates)
	}

	if len(drinks) > 0 {
		shuffled := append([]catalog.Item(nil), drinks...)
		r.shuffle(shuffled)
		return bound(sig, shuffled, randomFallbackCount)
	}

	if all := snap.AvailableItems(); len(all) > 0 {
		shuffled := append([]catalog.Item(nil), all...)
		r.shuffle(shuffled)
		return bound(sig, shuffled, randomFallbackCount)
	}

	return nil
}

func resolveKeyword(term string, snap *catalog.Snapshot) []catalog.Item {
	var rule keywordRule
	for _, kr := range keywordRules {
		if kr.term == term {
			rule = kr
			break
		}
	}
	if rule.term == "" {
		return nil
	}

	ids := map[string]bool{}
	for _, c := range snap.Categories {
		if c.Segment != catalog.SegmentDrink || c.Temperature != rule.scope {
			continue
		}
		name := strings.ToLower(c.Name)
		for _, m := range rule.markers {
			if strings.Contains(name, m) {
				ids[c.ID] = true
				break
			}
		}
	}
	if len(ids) == 0 {
		return nil
	}
	return snap.CategoryItems(ids)
}

func bound(sig Signals, items []catalog.Item, limit int) []catalog.Item {
	if len(items) == 0 {
		return nil
	}
	if sig.WantsSingle {
		limit = 1
	}
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}
