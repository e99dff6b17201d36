package catalog

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryRepository(t *testing.T) {
	repo := NewMemoryRepository(SampleProducts())
	ctx := context.Background()

	t.Run("list returns all products", func(t *testing.T) {
		products, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(products) != 6 {
			t.Fatalf("expected 6 products, got %d", len(products))
		}
	})

	t.Run("get by id", func(t *testing.T) {
		p, err := repo.Get(ctx, "2")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if p.Name != "Smartwatch" || p.Price != 24800 || p.Stock != 8 {
			t.Fatalf("unexpected product: %+v", p)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		if _, err := repo.Get(ctx, "999"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
