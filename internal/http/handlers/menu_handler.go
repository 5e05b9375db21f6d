// README: Public menu handler; renders the snapshot as ordered sections, categories and items.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"menuboard/internal/catalog"
)

type MenuHandler struct {
	catalog *catalog.Service
}

func NewMenuHandler(svc *catalog.Service) *MenuHandler {
	return &MenuHandler{catalog: svc}
}

type menuCategory struct {
	catalog.Category
	Items []catalog.Item `json:"items"`
}

type menuSection struct {
	catalog.Section
	Categories []menuCategory `json:"categories"`
}

type menuView struct {
	Season   string        `json:"season,omitempty"`
	Sections []menuSection `json:"sections"`
}

// Menu handles GET /api/menu. Unsectioned categories are appended under a
// nameless trailing section, the way the board renders them last.
func (h *MenuHandler) Menu(c *gin.Context) {
	snap := h.catalog.Snapshot()

	itemsByCategory := map[string][]catalog.Item{}
	for _, it := range snap.AvailableItems() {
		itemsByCategory[it.CategoryID] = append(itemsByCategory[it.CategoryID], it)
	}

	categoriesBySection := map[string][]menuCategory{}
	for _, cat := range snap.Categories {
		categoriesBySection[cat.SectionID] = append(categoriesBySection[cat.SectionID], menuCategory{
			Category: cat,
			Items:    itemsByCategory[cat.ID],
		})
	}

	view := menuView{Season: snap.Season}
	for _, sec := range snap.Sections {
		view.Sections = append(view.Sections, menuSection{
			Section:    sec,
			Categories: categoriesBySection[sec.ID],
		})
	}
	if unsectioned := categoriesBySection[""]; len(unsectioned) > 0 {
		view.Sections = append(view.Sections, menuSection{Categories: unsectioned})
	}

	writeJSON(c, http.StatusOK, view)
}
