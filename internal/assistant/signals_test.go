// README: Classifier tests over a fixed bilingual-free Spanish menu fixture.
package assistant

import (
	"testing"

	"menuboard/internal/catalog"
)

func fptr(v float64) *float64 { return &v }

// testSnapshot is the shared menu fixture: four drink categories covering both
// temperatures, one food category, one unavailable item and one priceless one.
func testSnapshot() *catalog.Snapshot {
	off := false
	return catalog.NewSnapshot(
		[]catalog.Section{
			{ID: "s1", Name: "Bebidas", Order: 1},
			{ID: "s2", Name: "Alimentos", Order: 2},
		},
		[]catalog.Category{
			{ID: "c1", Name: "Frappes", SectionID: "s1"},
			{ID: "c2", Name: "Cafés", SectionID: "s1"},
			{ID: "c3", Name: "Malteadas", SectionID: "s1"},
			{ID: "c4", Name: "Limonadas", SectionID: "s1"},
			{ID: "c5", Name: "Repostería", SectionID: "s2"},
		},
		[]catalog.Item{
			{ID: "p1", Name: "Frappe de Oreo", CategoryID: "c1", PriceSmall: fptr(55), PriceLarge: fptr(65)},
			{ID: "p2", Name: "Frappe de Mazapán", CategoryID: "c1", PriceSmall: fptr(55)},
			{ID: "p3", Name: "Americano", CategoryID: "c2", Price: fptr(35)},
			{ID: "p4", Name: "Capuchino", CategoryID: "c2", Price: fptr(45)},
			{ID: "p5", Name: "Malteada de Fresa", CategoryID: "c3", Price: fptr(60)},
			{ID: "p6", Name: "Limonada Mineral", CategoryID: "c4"},
			{ID: "p7", Name: "Pastel de Chocolate", CategoryID: "c5", Price: fptr(50)},
			{ID: "p8", Name: "Galletas de Avena", CategoryID: "c5", Price: fptr(25), Disponible: &off},
		},
		"verano",
	)
}

func TestClassifyIntents(t *testing.T) {
	snap := testSnapshot()

	tests := []struct {
		name  string
		query string
		check func(t *testing.T, sig Signals)
	}{
		{
			name:  "bare greeting",
			query: "hola",
			check: func(t *testing.T, sig Signals) {
				if !sig.IsGreeting {
					t.Error("expected greeting")
				}
				if sig.SeeksRecommendation {
					t.Error("bare greeting is not a recommendation request")
				}
			},
		},
		{
			name:  "greeting folded into request is not a canned greeting",
			query: "hola, recomiéndame algo",
			check: func(t *testing.T, sig Signals) {
				if sig.IsGreeting {
					t.Error("recommendation phrase must suppress the greeting intent")
				}
				if !sig.SeeksRecommendation {
					t.Error("expected recommendation request")
				}
			},
		},
		{
			name:  "farewell",
			query: "gracias, hasta luego",
			check: func(t *testing.T, sig Signals) {
				if !sig.IsFarewell {
					t.Error("expected farewell")
				}
			},
		},
		{
			name:  "help",
			query: "ayuda",
			check: func(t *testing.T, sig Signals) {
				if !sig.IsHelp {
					t.Error("expected help")
				}
			},
		},
		{
			name:  "food request",
			query: "quiero algo de comer",
			check: func(t *testing.T, sig Signals) {
				if !sig.WantsFood {
					t.Error("expected food signal")
				}
			},
		},
		{
			name:  "dulce alone counts as food",
			query: "algo dulce",
			check: func(t *testing.T, sig Signals) {
				if !sig.WantsFood {
					t.Error("dulce without bebida should read as food")
				}
			},
		},
		{
			name:  "dulce with bebida stays a drink",
			query: "una bebida dulce",
			check: func(t *testing.T, sig Signals) {
				if sig.WantsFood {
					t.Error("bebida dulce should not read as food")
				}
				if !sig.WantsDrink {
					t.Error("expected drink signal")
				}
			},
		},
		{
			name:  "cold qualifier",
			query: "quiero algo frío",
			check: func(t *testing.T, sig Signals) {
				if !sig.WantsCold {
					t.Error("expected cold signal")
				}
			},
		},
		{
			name:  "hot qualifier",
			query: "algo caliente por favor",
			check: func(t *testing.T, sig Signals) {
				if !sig.WantsHot {
					t.Error("expected hot signal")
				}
			},
		},
		{
			name:  "single request",
			query: "dame solo una bebida",
			check: func(t *testing.T, sig Signals) {
				if !sig.WantsSingle {
					t.Error("expected single signal")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Classify(tt.query, snap))
		})
	}
}

func TestClassifyCategoryMatches(t *testing.T) {
	snap := testSnapshot()

	sig := Classify("tienes frappes", snap)
	if !sig.MatchedCategories["c1"] {
		t.Error("expected Frappes category match")
	}
	if sig.MatchedCategories["c5"] {
		t.Error("food categories must not enter category matches")
	}
}

func TestClassifyItemMatches(t *testing.T) {
	snap := testSnapshot()

	sig := Classify("cuanto cuesta el capuchino", snap)
	if len(sig.MatchedItems) != 1 || sig.MatchedItems[0].ID != "p4" {
		t.Errorf("matched items = %v", sig.MatchedItems)
	}
}

func TestClassifyShortTokensIgnored(t *testing.T) {
	snap := testSnapshot()

	// "de" appears inside several item names but two-rune tokens never match.
	sig := Classify("de", snap)
	if len(sig.MatchedItems) != 0 {
		t.Errorf("short token matched items: %v", sig.MatchedItems)
	}
}

func TestClassifyKeywordOrder(t *testing.T) {
	snap := testSnapshot()

	sig := Classify("un cafe o un frappe", snap)
	if len(sig.MatchedKeywords) < 2 {
		t.Fatalf("keywords = %v", sig.MatchedKeywords)
	}
	// Dictionary declaration order, not query order.
	if sig.MatchedKeywords[0] != "frappe" {
		t.Errorf("first keyword = %q, want frappe", sig.MatchedKeywords[0])
	}
}
