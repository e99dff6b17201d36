package selection

import (
	"context"
	"log"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/catalog"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/storage"
)

// StorageKey is the selection key for a single-client manager. Multi-user
// callers suffix it with an owner id.
const StorageKey = "ec-selected-product"

// Selected is the product/quantity pair being decided before it is
// committed to the cart.
type Selected struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Manager owns the single transient selection slot. Unlike the cart,
// quantity updates outside [1, stock] are rejected outright instead of
// clamped; the quantity-selection UI relies on that for direct numeric
// input.
type Manager struct {
	cell *storage.Cell[*Selected]
}

func NewManager(ctx context.Context, store storage.Store, key string, logger *log.Logger) *Manager {
	return &Manager{
		cell: storage.NewCell(ctx, store, key, (*Selected)(nil), logger),
	}
}

// Selected returns a copy of the current slot, or nil when empty.
func (m *Manager) Selected() *Selected {
	s := m.cell.Get()
	if s == nil {
		return nil
	}
	cp := *s
	return &cp
}

// Select overwrites the slot unconditionally. The initial quantity is taken
// as-is; callers are expected to pass a valid one.
func (m *Manager) Select(ctx context.Context, product catalog.Product, quantity int) {
	m.cell.Set(ctx, &Selected{Product: product, Quantity: quantity})
}

// SetQuantity updates the slot's quantity when a selection exists and the
// value is within [1, stock]. Anything else leaves the slot unchanged.
func (m *Manager) SetQuantity(ctx context.Context, quantity int) {
	m.cell.Update(ctx, func(prev *Selected) *Selected {
		if prev == nil || quantity <= 0 || quantity > prev.Product.Stock {
			return prev
		}
		return &Selected{Product: prev.Product, Quantity: quantity}
	})
}

// Increment raises the quantity by one, stopping at the stock ceiling.
func (m *Manager) Increment(ctx context.Context) {
	m.cell.Update(ctx, func(prev *Selected) *Selected {
		if prev == nil || prev.Quantity >= prev.Product.Stock {
			return prev
		}
		return &Selected{Product: prev.Product, Quantity: prev.Quantity + 1}
	})
}

// Decrement lowers the quantity by one, stopping at 1.
func (m *Manager) Decrement(ctx context.Context) {
	m.cell.Update(ctx, func(prev *Selected) *Selected {
		if prev == nil || prev.Quantity <= 1 {
			return prev
		}
		return &Selected{Product: prev.Product, Quantity: prev.Quantity - 1}
	})
}

// Clear empties the slot; the storage key is deleted.
func (m *Manager) Clear(ctx context.Context) {
	m.cell.Set(ctx, nil)
}
