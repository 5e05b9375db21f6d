// README: Admin CRUD handlers for sections, categories, items and the seasonal theme.
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"menuboard/internal/catalog"
)

// Refresher lets admin writes show up on the boards without waiting for the
// next poll.
type Refresher interface {
	Refresh(ctx context.Context) error
}

type AdminHandler struct {
	store     *catalog.Store
	refresher Refresher
}

func NewAdminHandler(store *catalog.Store, refresher Refresher) *AdminHandler {
	return &AdminHandler{store: store, refresher: refresher}
}

type categoryReq struct {
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
	Image       string `json:"imagen"`
	SectionID   string `json:"seccionId"`
}

type itemReq struct {
	Name        string   `json:"nombre"`
	Description string   `json:"descripcion"`
	Image       string   `json:"imagen"`
	CategoryID  string   `json:"categoriaId"`
	Price       *float64 `json:"precio"`
	PriceSmall  *float64 `json:"precioChico"`
	PriceLarge  *float64 `json:"precioGrande"`
	Available   *bool    `json:"disponible"`
}

type sectionReq struct {
	Name  string `json:"nombre"`
	Order int    `json:"orden"`
}

type seasonReq struct {
	Season string `json:"temporada"`
}

func (h *AdminHandler) AddCategory(c *gin.Context) {
	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		writeError(c, http.StatusBadRequest, "invalid category")
		return
	}
	id, err := h.store.AddCategory(c.Request.Context(), catalog.Category{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		SectionID:   req.SectionID,
	})
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	h.refresh(c)
	writeJSON(c, http.StatusCreated, gin.H{"id": id})
}

func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		writeError(c, http.StatusBadRequest, "invalid category")
		return
	}
	err := h.store.UpdateCategory(c.Request.Context(), c.Param("id"), catalog.Category{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		SectionID:   req.SectionID,
	})
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	h.refresh(c)
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	if err := h.store.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	h.refresh(c)
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) AddItem(c *gin.Context) {
	var req itemReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" || req.CategoryID == "" {
		writeError(c, http.StatusBadRequest, "invalid item")
		return
	}
	id, err := h.store.AddItem(c.Request.Context(), itemFromReq(req))
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	h.refresh(c)
	writeJSON(c, http.StatusCreated, gin.H{"id": id})
}

func (h *AdminHandler) UpdateItem(c *gin.Context) {
	var req itemReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" || req.CategoryID == "" {
		writeError(c, http.StatusBadRequest, "invalid item")
		return
	}
	if err := h.store.UpdateItem(c.Request.Context(), c.Param("id"), itemFromReq(req)); err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	h.refresh(c)
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) DeleteItem(c *gin.Context) {
	if err := h.store.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	h.refresh(c)
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) AddSection(c *gin.Context) {
	var req sectionReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		writeError(c, http.StatusBadRequest, "invalid section")
		return
	}
	id, err := h.store.AddSection(c.Request.Context(), catalog.Section{Name: req.Name, Order: req.Order})
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	h.refresh(c)
	writeJSON(c, http.StatusCreated, gin.H{"id": id})
}

func (h *AdminHandler) UpdateSection(c *gin.Context) {
	var req sectionReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		writeError(c, http.StatusBadRequest, "invalid section")
		return
	}
	err := h.store.UpdateSection(c.Request.Context(), c.Param("id"), catalog.Section{Name: req.Name, Order: req.Order})
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	h.refresh(c)
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) DeleteSection(c *gin.Context) {
	if err := h.store.DeleteSection(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	h.refresh(c)
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) SetSeason(c *gin.Context) {
	var req seasonReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid season")
		return
	}
	if err := h.store.SetSeason(c.Request.Context(), req.Season); err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	h.refresh(c)
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) refresh(c *gin.Context) {
	_ = h.refresher.Refresh(c.Request.Context())
}

func itemFromReq(req itemReq) catalog.Item {
	return catalog.Item{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		CategoryID:  req.CategoryID,
		Price:       req.Price,
		PriceSmall:  req.PriceSmall,
		PriceLarge:  req.PriceLarge,
		Disponible:  req.Available,
	}
}
