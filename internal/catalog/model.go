// README: Catalog data model; snapshots tag every category once with segment and temperature.
package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Segment splits categories into food and drink. The default is drink: a
// category counts as food only when its name carries one of the food markers,
// everything else is treated as a drink category.
type Segment string

const (
	SegmentFood  Segment = "food"
	SegmentDrink Segment = "drink"
)

// Temperature classifies drink categories. Cold markers are checked before
// hot markers so names matching both sets ("Malteadas" contains "te") land in
// exactly one bucket.
type Temperature string

const (
	TemperatureCold Temperature = "cold"
	TemperatureHot  Temperature = "hot"
	TemperatureNone Temperature = ""
)

type Section struct {
	ID    string `json:"id"`
	Name  string `json:"nombre"`
	Order int    `json:"orden"`
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion,omitempty"`
	Image       string `json:"imagen,omitempty"`
	SectionID   string `json:"seccionId,omitempty"`

	// Derived at snapshot build, never stored.
	Segment     Segment     `json:"-"`
	Temperature Temperature `json:"-"`
}

type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"nombre"`
	Description string   `json:"descripcion,omitempty"`
	Image       string   `json:"imagen,omitempty"`
	CategoryID  string   `json:"categoriaId"`
	Price       *float64 `json:"precio,omitempty"`
	PriceSmall  *float64 `json:"precioChico,omitempty"`
	PriceLarge  *float64 `json:"precioGrande,omitempty"`
	// nil means available: rows written before the flag existed default to true.
	Disponible *bool `json:"disponible,omitempty"`
}

// Available reports whether the item may be recommended or displayed.
func (i Item) Available() bool {
	return i.Disponible == nil || *i.Disponible
}

// DisplayPrice returns the price shown on cards and in chat lines:
// the small price when a size pair exists, else the large, else the single.
func (i Item) DisplayPrice() (float64, bool) {
	switch {
	case i.PriceSmall != nil:
		return *i.PriceSmall, true
	case i.PriceLarge != nil:
		return *i.PriceLarge, true
	case i.Price != nil:
		return *i.Price, true
	}
	return 0, false
}

// FormatPrice renders the display price as shown on the board, or "" when the
// item has no price set.
func (i Item) FormatPrice() string {
	p, ok := i.DisplayPrice()
	if !ok {
		return ""
	}
	return fmt.Sprintf("$%.0f", p)
}

var foodMarkers = []string{"comida", "reposteria", "repostería", "postre", "pan", "pastel", "galleta"}

var coldMarkers = []string{"frappe", "malteada", "limonada", "naranjada", "tizzana", "yogurt", "smoothie", "batido"}

var hotMarkers = []string{"cafe", "café", "te", "té", "chocolate", "capuchino", "latte", "expresso"}

func containsAny(name string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}

// classify tags a category with its segment and, for drinks, its temperature.
func classify(c *Category) {
	name := strings.ToLower(c.Name)
	if containsAny(name, foodMarkers) {
		c.Segment = SegmentFood
		c.Temperature = TemperatureNone
		return
	}
	c.Segment = SegmentDrink
	switch {
	case containsAny(name, coldMarkers):
		c.Temperature = TemperatureCold
	case containsAny(name, hotMarkers):
		c.Temperature = TemperatureHot
	default:
		c.Temperature = TemperatureNone
	}
}

// Snapshot is an immutable view of the catalog for one turn. Consumers read a
// pointer from the provider once per turn and never mutate it.
type Snapshot struct {
	Sections   []Section
	Categories []Category
	Items      []Item
	Season     string

	byID      map[string]int // category id -> index into Categories
	available []Item
}

// NewSnapshot builds a snapshot with a stable iteration order (sections by
// display order, categories and items by id) and pre-resolved availability.
func NewSnapshot(sections []Section, categories []Category, items []Item, season string) *Snapshot {
	s := &Snapshot{
		Sections:   append([]Section(nil), sections...),
		Categories: append([]Category(nil), categories...),
		Items:      append([]Item(nil), items...),
		Season:     season,
	}

	sort.Slice(s.Sections, func(i, j int) bool {
		if s.Sections[i].Order != s.Sections[j].Order {
			return s.Sections[i].Order < s.Sections[j].Order
		}
		return s.Sections[i].ID < s.Sections[j].ID
	})
	sort.Slice(s.Categories, func(i, j int) bool { return s.Categories[i].ID < s.Categories[j].ID })
	sort.Slice(s.Items, func(i, j int) bool { return s.Items[i].ID < s.Items[j].ID })

	s.byID = make(map[string]int, len(s.Categories))
	for i := range s.Categories {
		classify(&s.Categories[i])
		s.byID[s.Categories[i].ID] = i
	}
	for _, it := range s.Items {
		if it.Available() {
			s.available = append(s.available, it)
		}
	}
	return s
}

// CategoryByID looks a category up; ok is false for dangling references.
func (s *Snapshot) CategoryByID(id string) (Category, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Category{}, false
	}
	return s.Categories[i], true
}

// AvailableItems returns all available items in catalog iteration order.
// Callers must not mutate the returned slice.
func (s *Snapshot) AvailableItems() []Item {
	return s.available
}

// SegmentItems returns available items whose category belongs to the segment.
// Items with a dangling category reference count as drinks, matching the
// negative-default polarity of the segment rule.
func (s *Snapshot) SegmentItems(seg Segment) []Item {
	var out []Item
	for _, it := range s.available {
		c, ok := s.CategoryByID(it.CategoryID)
		itemSeg := SegmentDrink
		if ok {
			itemSeg = c.Segment
		}
		if itemSeg == seg {
			out = append(out, it)
		}
	}
	return out
}

// TemperatureItems returns available drink items in categories of the given
// temperature.
func (s *Snapshot) TemperatureItems(t Temperature) []Item {
	var out []Item
	for _, it := range s.available {
		c, ok := s.CategoryByID(it.CategoryID)
		if !ok || c.Segment != SegmentDrink {
			continue
		}
		if c.Temperature == t {
			out = append(out, it)
		}
	}
	return out
}

// CategoryItems returns available items belonging to any of the given
// category ids, in catalog iteration order.
func (s *Snapshot) CategoryItems(ids map[string]bool) []Item {
	var out []Item
	for _, it := range s.available {
		if ids[it.CategoryID] {
			out = append(out, it)
		}
	}
	return out
}
