package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/catalog"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/selection"
)

type SelectionHandler struct {
	registry *Registry
	catalog  catalog.Repository
}

func NewSelectionHandler(registry *Registry, catalogRepo catalog.Repository) *SelectionHandler {
	return &SelectionHandler{registry: registry, catalog: catalogRepo}
}

func (h *SelectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "missing userId")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	h.respond(w, h.registry.Selection(ctx, userID))
}

func (h *SelectionHandler) Select(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "missing userId")
		return
	}

	var body struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if body.Quantity < 0 {
		writeError(w, http.StatusBadRequest, "quantity must not be negative")
		return
	}
	if body.Quantity == 0 {
		body.Quantity = 1
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	product, err := h.catalog.Get(ctx, body.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load product")
		return
	}

	m := h.registry.Selection(ctx, userID)
	m.Select(ctx, product, body.Quantity)

	h.respond(w, m)
}

func (h *SelectionHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "missing userId")
		return
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	m := h.registry.Selection(ctx, userID)
	// out-of-range values are silently ignored; the response carries
	// whatever the slot holds afterwards
	m.SetQuantity(ctx, body.Quantity)

	h.respond(w, m)
}

func (h *SelectionHandler) Increment(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "missing userId")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	m := h.registry.Selection(ctx, userID)
	m.Increment(ctx)

	h.respond(w, m)
}

func (h *SelectionHandler) Decrement(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "missing userId")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	m := h.registry.Selection(ctx, userID)
	m.Decrement(ctx)

	h.respond(w, m)
}

func (h *SelectionHandler) Clear(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "missing userId")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	m := h.registry.Selection(ctx, userID)
	m.Clear(ctx)

	writeJSON(w, http.StatusOK, map[string]string{
		"status": "selection cleared",
	})
}

func (h *SelectionHandler) respond(w http.ResponseWriter, m *selection.Manager) {
	sel := m.Selected()
	if sel == nil {
		writeError(w, http.StatusNotFound, "no product selected")
		return
	}
	writeJSON(w, http.StatusOK, sel)
}
