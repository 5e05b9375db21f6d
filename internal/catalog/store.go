// README: Catalog store backed by Firebase RTDB; one-shot reads plus admin CRUD.
package catalog

import (
	"context"
	"fmt"
	"time"

	"firebase.google.com/go/v4/db"
)

// RTDB node names kept from the production database.
const (
	categoriesNode = "categorias"
	itemsNode      = "productos"
	sectionsNode   = "secciones"
	seasonNode     = "config/temporada"
)

type Store struct {
	db *db.Client
}

func NewStore(client *db.Client) *Store {
	return &Store{db: client}
}

// Categories reads every category. A missing node yields an empty slice.
func (s *Store) Categories(ctx context.Context) ([]Category, error) {
	var raw map[string]Category
	if err := s.db.NewRef(categoriesNode).Get(ctx, &raw); err != nil {
		return nil, fmt.Errorf("reading %s: %w", categoriesNode, err)
	}
	out := make([]Category, 0, len(raw))
	for id, c := range raw {
		c.ID = id
		out = append(out, c)
	}
	return out, nil
}

// Items reads every item, available or not; availability filtering belongs to
// the snapshot, not the store.
func (s *Store) Items(ctx context.Context) ([]Item, error) {
	var raw map[string]Item
	if err := s.db.NewRef(itemsNode).Get(ctx, &raw); err != nil {
		return nil, fmt.Errorf("reading %s: %w", itemsNode, err)
	}
	out := make([]Item, 0, len(raw))
	for id, it := range raw {
		it.ID = id
		out = append(out, it)
	}
	return out, nil
}

// Sections reads every section.
func (s *Store) Sections(ctx context.Context) ([]Section, error) {
	var raw map[string]Section
	if err := s.db.NewRef(sectionsNode).Get(ctx, &raw); err != nil {
		return nil, fmt.Errorf("reading %s: %w", sectionsNode, err)
	}
	out := make([]Section, 0, len(raw))
	for id, sec := range raw {
		sec.ID = id
		out = append(out, sec)
	}
	return out, nil
}

// Season reads the current seasonal theme; "" means no season is active.
func (s *Store) Season(ctx context.Context) (string, error) {
	var season string
	if err := s.db.NewRef(seasonNode).Get(ctx, &season); err != nil {
		return "", fmt.Errorf("reading %s: %w", seasonNode, err)
	}
	return season, nil
}

// SetSeason replaces the seasonal theme; pass "" to clear it.
func (s *Store) SetSeason(ctx context.Context, season string) error {
	return s.db.NewRef(seasonNode).Set(ctx, season)
}

// AddCategory creates a category and returns the generated key.
func (s *Store) AddCategory(ctx context.Context, c Category) (string, error) {
	ref, err := s.db.NewRef(categoriesNode).Push(ctx, map[string]interface{}{
		"nombre":      c.Name,
		"descripcion": c.Description,
		"imagen":      c.Image,
		"seccionId":   c.SectionID,
		"createdAt":   rtdbNow(),
	})
	if err != nil {
		return "", fmt.Errorf("adding category: %w", err)
	}
	return ref.Key, nil
}

func (s *Store) UpdateCategory(ctx context.Context, id string, c Category) error {
	return s.db.NewRef(categoriesNode+"/"+id).Update(ctx, map[string]interface{}{
		"nombre":      c.Name,
		"descripcion": c.Description,
		"imagen":      c.Image,
		"seccionId":   c.SectionID,
		"updatedAt":   rtdbNow(),
	})
}

func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	return s.db.NewRef(categoriesNode + "/" + id).Delete(ctx)
}

// AddItem creates an item and returns the generated key. An item without an
// explicit availability flag is stored available.
func (s *Store) AddItem(ctx context.Context, it Item) (string, error) {
	ref, err := s.db.NewRef(itemsNode).Push(ctx, itemValues(it, "createdAt"))
	if err != nil {
		return "", fmt.Errorf("adding item: %w", err)
	}
	return ref.Key, nil
}

func (s *Store) UpdateItem(ctx context.Context, id string, it Item) error {
	return s.db.NewRef(itemsNode+"/"+id).Update(ctx, itemValues(it, "updatedAt"))
}

func (s *Store) DeleteItem(ctx context.Context, id string) error {
	return s.db.NewRef(itemsNode + "/" + id).Delete(ctx)
}

// AddSection creates a section and returns the generated key.
func (s *Store) AddSection(ctx context.Context, sec Section) (string, error) {
	ref, err := s.db.NewRef(sectionsNode).Push(ctx, map[string]interface{}{
		"nombre":    sec.Name,
		"orden":     sec.Order,
		"createdAt": rtdbNow(),
	})
	if err != nil {
		return "", fmt.Errorf("adding section: %w", err)
	}
	return ref.Key, nil
}

func (s *Store) UpdateSection(ctx context.Context, id string, sec Section) error {
	return s.db.NewRef(sectionsNode+"/"+id).Update(ctx, map[string]interface{}{
		"nombre":    sec.Name,
		"orden":     sec.Order,
		"updatedAt": rtdbNow(),
	})
}

func (s *Store) DeleteSection(ctx context.Context, id string) error {
	return s.db.NewRef(sectionsNode + "/" + id).Delete(ctx)
}

func itemValues(it Item, stampField string) map[string]interface{} {
	available := it.Disponible == nil || *it.Disponible
	v := map[string]interface{}{
		"nombre":      it.Name,
		"descripcion": it.Description,
		"imagen":      it.Image,
		"categoriaId": it.CategoryID,
		"disponible":  available,
		stampField:    rtdbNow(),
	}
	if it.Price != nil {
		v["precio"] = *it.Price
	}
	if it.PriceSmall != nil {
		v["precioChico"] = *it.PriceSmall
	}
	if it.PriceLarge != nil {
		v["precioGrande"] = *it.PriceLarge
	}
	return v
}

func rtdbNow() string {
	return time.Now().UTC().Format(time.RFC3339)
}
