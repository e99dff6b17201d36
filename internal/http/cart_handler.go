package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/catalog"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/events"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/middleware"
)

type CartHandler struct {
	registry  *Registry
	catalog   catalog.Repository
	publisher events.Publisher
}

func NewCartHandler(registry *Registry, catalogRepo catalog.Repository, publisher events.Publisher) *CartHandler {
	return &CartHandler{registry: registry, catalog: catalogRepo, publisher: publisher}
}

type cartView struct {
	Items      []cart.Item `json:"items"`
	TotalItems int         `json:"totalItems"`
	TotalPrice int         `json:"totalPrice"`
}

func viewOf(m *cart.Manager) cartView {
	return cartView{
		Items:      m.Items(),
		TotalItems: m.TotalItems(),
		TotalPrice: m.TotalPrice(),
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "missing userId")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	writeJSON(w, http.StatusOK, viewOf(h.registry.Cart(ctx, userID)))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
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
	if body.Quantity <= 0 {
		writeError(w, http.StatusBadRequest, "quantity must be positive")
		return
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

	m := h.registry.Cart(ctx, userID)
	m.Add(ctx, product, body.Quantity)

	writeJSON(w, http.StatusOK, viewOf(m))
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	productID := chi.URLParam(r, "productId")
	if userID == "" || productID == "" {
		writeError(w, http.StatusBadRequest, "missing userId or productId")
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

	m := h.registry.Cart(ctx, userID)
	m.UpdateQuantity(ctx, productID, body.Quantity)

	writeJSON(w, http.StatusOK, viewOf(m))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	productID := chi.URLParam(r, "productId")
	if userID == "" || productID == "" {
		writeError(w, http.StatusBadRequest, "missing userId or productId")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	m := h.registry.Cart(ctx, userID)
	m.Remove(ctx, productID)

	writeJSON(w, http.StatusOK, viewOf(m))
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "missing userId")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	m := h.registry.Cart(ctx, userID)
	m.Clear(ctx)

	writeJSON(w, http.StatusOK, viewOf(m))
}

func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "missing userId")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	m := h.registry.Cart(ctx, userID)
	items := m.Items()
	if len(items) == 0 {
		writeError(w, http.StatusNotFound, "cart is empty")
		return
	}

	ev := events.NewCartCheckedOut(userID, items, m.TotalPrice(), middleware.GetCorrelationID(r.Context()))
	if err := h.publisher.PublishCartCheckedOut(ctx, ev); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to publish cart checked out event")
		return
	}

	m.Clear(ctx)

	writeJSON(w, http.StatusOK, map[string]string{
		"status": "checkout completed",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{
		"error": msg,
	})
}
