// README: Catalog model tests (segment/temperature tagging, pricing, snapshot ordering).
package catalog

import "testing"

func fptr(v float64) *float64 { return &v }
func bptr(v bool) *bool       { return &v }

func TestClassifySegmentAndTemperature(t *testing.T) {
	tests := []struct {
		name     string
		category string
		wantSeg  Segment
		wantTemp Temperature
	}{
		{"food by postre", "Postres", SegmentFood, TemperatureNone},
		{"food by reposteria accented", "Repostería", SegmentFood, TemperatureNone},
		{"food by pan", "Pan Dulce", SegmentFood, TemperatureNone},
		{"cold frappe", "Frappes", SegmentDrink, TemperatureCold},
		{"cold wins over hot substring", "Malteadas", SegmentDrink, TemperatureCold},
		{"hot cafe", "Cafés", SegmentDrink, TemperatureHot},
		{"hot chocolate", "Chocolates", SegmentDrink, TemperatureHot},
		{"drink without temperature", "Especiales", SegmentDrink, TemperatureNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Category{ID: "c", Name: tt.category}
			classify(&c)
			if c.Segment != tt.wantSeg {
				t.Errorf("segment = %v, want %v", c.Segment, tt.wantSeg)
			}
			if c.Temperature != tt.wantTemp {
				t.Errorf("temperature = %v, want %v", c.Temperature, tt.wantTemp)
			}
		})
	}
}

func TestItemAvailable(t *testing.T) {
	if !(Item{}).Available() {
		t.Error("nil disponible should count as available")
	}
	if !(Item{Disponible: bptr(true)}).Available() {
		t.Error("explicit true should be available")
	}
	if (Item{Disponible: bptr(false)}).Available() {
		t.Error("explicit false should not be available")
	}
}

func TestItemDisplayPrice(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want string
	}{
		{"small wins over large and single", Item{PriceSmall: fptr(55), PriceLarge: fptr(65), Price: fptr(40)}, "$55"},
		{"large wins over single", Item{PriceLarge: fptr(65), Price: fptr(40)}, "$65"},
		{"single only", Item{Price: fptr(40)}, "$40"},
		{"no price", Item{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.FormatPrice(); got != tt.want {
				t.Errorf("FormatPrice() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewSnapshotOrdering(t *testing.T) {
	snap := NewSnapshot(
		[]Section{{ID: "s2", Name: "B", Order: 2}, {ID: "s1", Name: "A", Order: 1}, {ID: "s0", Name: "C", Order: 1}},
		[]Category{{ID: "c2", Name: "Frappes"}, {ID: "c1", Name: "Cafés"}},
		[]Item{
			{ID: "p3", Name: "Tres", CategoryID: "c1"},
			{ID: "p1", Name: "Uno", CategoryID: "c2"},
			{ID: "p2", Name: "Dos", CategoryID: "c1", Disponible: bptr(false)},
		},
		"verano",
	)

	if snap.Season != "verano" {
		t.Errorf("season = %q", snap.Season)
	}
	if snap.Sections[0].ID != "s0" || snap.Sections[1].ID != "s1" || snap.Sections[2].ID != "s2" {
		t.Errorf("sections out of order: %v", snap.Sections)
	}
	if snap.Categories[0].ID != "c1" || snap.Categories[1].ID != "c2" {
		t.Errorf("categories out of order: %v", snap.Categories)
	}

	avail := snap.AvailableItems()
	if len(avail) != 2 {
		t.Fatalf("expected 2 available items, got %d", len(avail))
	}
	if avail[0].ID != "p1" || avail[1].ID != "p3" {
		t.Errorf("available items out of order: %v", avail)
	}
}

func TestSnapshotDanglingCategoryCountsAsDrink(t *testing.T) {
	snap := NewSnapshot(nil,
		[]Category{{ID: "c1", Name: "Postres"}},
		[]Item{
			{ID: "p1", Name: "Pastel", CategoryID: "c1"},
			{ID: "p2", Name: "Misterio", CategoryID: "gone"},
		},
		"")

	food := snap.SegmentItems(SegmentFood)
	if len(food) != 1 || food[0].ID != "p1" {
		t.Errorf("food items = %v", food)
	}
	drinks := snap.SegmentItems(SegmentDrink)
	if len(drinks) != 1 || drinks[0].ID != "p2" {
		t.Errorf("drink items = %v", drinks)
	}

	if _, ok := snap.CategoryByID("gone"); ok {
		t.Error("dangling category should not resolve")
	}
}

func TestSnapshotTemperatureItemsDisjoint(t *testing.T) {
	snap := NewSnapshot(nil,
		[]Category{
			{ID: "c1", Name: "Frappes"},
			{ID: "c2", Name: "Malteadas"},
			{ID: "c3", Name: "Cafés"},
			{ID: "c4", Name: "Especiales"},
		},
		[]Item{
			{ID: "p1", Name: "Frappe Oreo", CategoryID: "c1"},
			{ID: "p2", Name: "Malteada Fresa", CategoryID: "c2"},
			{ID: "p3", Name: "Americano", CategoryID: "c3"},
			{ID: "p4", Name: "Especial", CategoryID: "c4"},
		},
		"")

	cold := snap.TemperatureItems(TemperatureCold)
	hot := snap.TemperatureItems(TemperatureHot)

	if len(cold) != 2 {
		t.Errorf("cold = %v", cold)
	}
	if len(hot) != 1 || hot[0].ID != "p3" {
		t.Errorf("hot = %v", hot)
	}

	seen := map[string]bool{}
	for _, it := range cold {
		seen[it.ID] = true
	}
	for _, it := range hot {
		if seen[it.ID] {
			t.Errorf("item %s in both temperature buckets", it.ID)
		}
	}
}
