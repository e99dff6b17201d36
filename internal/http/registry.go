package http

import (
	"context"
	"log"
	"sync"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/selection"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/storage"
)

// Registry hands out per-user cart and selection managers over the shared
// store. A browser client owns one fixed key per concern; the server
// serves many clients, so keys are the fixed ones suffixed with the user
// id. Managers are created lazily and cached so every request for a user
// sees the same in-memory state.
type Registry struct {
	store  storage.Store
	logger *log.Logger

	mu         sync.Mutex
	carts      map[string]*cart.Manager
	selections map[string]*selection.Manager
}

func NewRegistry(store storage.Store, logger *log.Logger) *Registry {
	return &Registry{
		store:      store,
		logger:     logger,
		carts:      make(map[string]*cart.Manager),
		selections: make(map[string]*selection.Manager),
	}
}

func (g *Registry) Cart(ctx context.Context, userID string) *cart.Manager {
	g.mu.Lock()
	defer g.mu.Unlock()

	m, ok := g.carts[userID]
	if !ok {
		m = cart.NewManager(ctx, g.store, cart.StorageKey+":"+userID, g.logger)
		g.carts[userID] = m
	}
	return m
}

func (g *Registry) Selection(ctx context.Context, userID string) *selection.Manager {
	g.mu.Lock()
	defer g.mu.Unlock()

	m, ok := g.selections[userID]
	if !ok {
		m = selection.NewManager(ctx, g.store, selection.StorageKey+":"+userID, g.logger)
		g.selections[userID] = m
	}
	return m
}
