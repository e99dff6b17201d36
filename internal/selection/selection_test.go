package selection

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/catalog"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/storage"
)

func newTestManager(t *testing.T) (*Manager, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	logger := log.New(io.Discard, "", 0)
	return NewManager(context.Background(), store, StorageKey, logger), store
}

var testProduct = catalog.Product{ID: "1", Name: "Wireless Earbuds", Price: 8980, Stock: 5}

func TestSelect(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	if m.Selected() != nil {
		t.Fatal("slot should start empty")
	}

	m.Select(ctx, testProduct, 1)
	sel := m.Selected()
	if sel == nil || sel.Product.ID != "1" || sel.Quantity != 1 {
		t.Fatalf("unexpected selection: %+v", sel)
	}

	// selecting again overwrites in place, even with another product
	other := catalog.Product{ID: "2", Name: "Smartwatch", Price: 24800, Stock: 8}
	m.Select(ctx, other, 3)
	sel = m.Selected()
	if sel.Product.ID != "2" || sel.Quantity != 3 {
		t.Fatalf("unexpected selection after overwrite: %+v", sel)
	}
}

func TestSetQuantity(t *testing.T) {
	ctx := context.Background()

	tests := map[string]struct {
		quantity int
		want     int
	}{
		"within range":        {quantity: 3, want: 3},
		"at stock ceiling":    {quantity: 5, want: 5},
		"above stock ceiling": {quantity: 6, want: 2}, // rejected, not clamped
		"zero":                {quantity: 0, want: 2},
		"negative":            {quantity: -1, want: 2},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			m, _ := newTestManager(t)
			m.Select(ctx, testProduct, 2)

			m.SetQuantity(ctx, tc.quantity)
			if got := m.Selected().Quantity; got != tc.want {
				t.Fatalf("expected quantity %d, got %d", tc.want, got)
			}
		})
	}

	t.Run("empty slot stays empty", func(t *testing.T) {
		m, _ := newTestManager(t)
		m.SetQuantity(ctx, 3)
		if m.Selected() != nil {
			t.Fatal("slot should remain empty")
		}
	})
}

func TestIncrementCeiling(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)
	m.Select(ctx, testProduct, 1)

	for i := 0; i < testProduct.Stock; i++ {
		m.Increment(ctx)
	}
	if got := m.Selected().Quantity; got != testProduct.Stock {
		t.Fatalf("expected quantity %d, got %d", testProduct.Stock, got)
	}

	// one more increment must leave it unchanged
	m.Increment(ctx)
	if got := m.Selected().Quantity; got != testProduct.Stock {
		t.Fatalf("ceiling breached: %d", got)
	}
}

func TestDecrementFloor(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)
	m.Select(ctx, testProduct, 2)

	m.Decrement(ctx)
	if got := m.Selected().Quantity; got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}

	m.Decrement(ctx)
	if got := m.Selected().Quantity; got != 1 {
		t.Fatalf("floor breached: %d", got)
	}
}

func TestClearDeletesKey(t *testing.T) {
	ctx := context.Background()
	m, store := newTestManager(t)

	m.Select(ctx, testProduct, 1)
	if _, err := store.Get(ctx, StorageKey); err != nil {
		t.Fatalf("key should exist after select: %v", err)
	}

	m.Clear(ctx)
	if m.Selected() != nil {
		t.Fatal("slot should be empty after clear")
	}
	if _, err := store.Get(ctx, StorageKey); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected key removed, got %v", err)
	}
}

func TestSelectionSurvivesReload(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	logger := log.New(io.Discard, "", 0)

	m := NewManager(ctx, store, StorageKey, logger)
	m.Select(ctx, testProduct, 4)

	reloaded := NewManager(ctx, store, StorageKey, logger)
	sel := reloaded.Selected()
	if sel == nil || sel.Product.ID != "1" || sel.Quantity != 4 {
		t.Fatalf("reloaded selection mismatch: %+v", sel)
	}
}
