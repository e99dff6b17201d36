package cart

import (
	"context"
	"log"
	"time"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/catalog"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/storage"
)

// StorageKey is the cart key for a single-client manager. Multi-user
// callers suffix it with an owner id.
const StorageKey = "ec-cart-items"

// Manager owns the persisted cart line items under one storage key. At most
// one line exists per product id; lines keep their insertion position.
// Out-of-range quantities are clamped, never rejected: callers cannot get
// an error out of any mutation.
type Manager struct {
	cell *storage.Cell[[]Item]

	nowMillis func() int64
}

func NewManager(ctx context.Context, store storage.Store, key string, logger *log.Logger) *Manager {
	return &Manager{
		cell:      storage.NewCell(ctx, store, key, []Item{}, logger),
		nowMillis: func() int64 { return time.Now().UnixMilli() },
	}
}

// Add merges quantity into the existing line for product.ID, or appends a
// new line. A merged line keeps its original product snapshot and position;
// only quantity and AddedAt change. The resulting quantity never exceeds
// product.Stock.
func (m *Manager) Add(ctx context.Context, product catalog.Product, quantity int) {
	m.cell.Update(ctx, func(prev []Item) []Item {
		next := make([]Item, len(prev))
		copy(next, prev)

		for i := range next {
			if next[i].Product.ID == product.ID {
				next[i].Quantity = clamp(next[i].Quantity+quantity, product.Stock)
				next[i].AddedAt = m.nowMillis()
				return next
			}
		}

		return append(next, Item{
			Product:  product,
			Quantity: clamp(quantity, product.Stock),
			AddedAt:  m.nowMillis(),
		})
	})
}

// Remove deletes the line for productID. Absent ids are a no-op.
func (m *Manager) Remove(ctx context.Context, productID string) {
	m.cell.Update(ctx, func(prev []Item) []Item {
		next := make([]Item, 0, len(prev))
		for _, it := range prev {
			if it.Product.ID != productID {
				next = append(next, it)
			}
		}
		return next
	})
}

// UpdateQuantity sets the line's quantity, clamped to the snapshotted
// stock. A quantity of zero or less removes the line. Absent ids are a
// no-op.
func (m *Manager) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	if quantity <= 0 {
		m.Remove(ctx, productID)
		return
	}

	m.cell.Update(ctx, func(prev []Item) []Item {
		next := make([]Item, len(prev))
		copy(next, prev)
		for i := range next {
			if next[i].Product.ID == productID {
				next[i].Quantity = clamp(quantity, next[i].Product.Stock)
				next[i].AddedAt = m.nowMillis()
			}
		}
		return next
	})
}

// Clear empties the cart. The stored value becomes an empty list, not a
// deleted key.
func (m *Manager) Clear(ctx context.Context) {
	m.cell.Set(ctx, []Item{})
}

// Items returns a copy of the cart lines in insertion order.
func (m *Manager) Items() []Item {
	items := m.cell.Get()
	cp := make([]Item, len(items))
	copy(cp, items)
	return cp
}

// TotalItems is the sum of all line quantities.
func (m *Manager) TotalItems() int {
	total := 0
	for _, it := range m.cell.Get() {
		total += it.Quantity
	}
	return total
}

// TotalPrice is the sum of snapshotted price times quantity over all lines,
// in minor currency units.
func (m *Manager) TotalPrice() int {
	total := 0
	for _, it := range m.cell.Get() {
		total += it.Product.Price * it.Quantity
	}
	return total
}

func (m *Manager) Contains(productID string) bool {
	for _, it := range m.cell.Get() {
		if it.Product.ID == productID {
			return true
		}
	}
	return false
}

// Quantity returns the line's quantity, or 0 when the product is not in
// the cart.
func (m *Manager) Quantity(productID string) int {
	for _, it := range m.cell.Get() {
		if it.Product.ID == productID {
			return it.Quantity
		}
	}
	return 0
}

func clamp(quantity, stock int) int {
	if quantity > stock {
		return stock
	}
	if quantity < 0 {
		return 0
	}
	return quantity
}
