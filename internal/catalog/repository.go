package catalog

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no product exists for the given id.
var ErrNotFound = errors.New("catalog: product not found")

// Repository supplies read-only product snapshots to the state managers.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id string) (Product, error)
}

type memoryRepository struct {
	products []Product
}

// NewMemoryRepository serves a fixed product list. The storefront has no
// catalog service of its own yet, so the demo catalog ships in-process.
func NewMemoryRepository(products []Product) Repository {
	cp := make([]Product, len(products))
	copy(cp, products)
	return &memoryRepository{products: cp}
}

func (r *memoryRepository) List(ctx context.Context) ([]Product, error) {
	cp := make([]Product, len(r.products))
	copy(cp, r.products)
	return cp, nil
}

func (r *memoryRepository) Get(ctx context.Context, id string) (Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

// SampleProducts returns the demo catalog.
func SampleProducts() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Wireless Earbuds",
			Price:       8980,
			ImageURL:    "https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=400",
			Stock:       15,
			Description: "High-fidelity wireless earbuds",
		},
		{
			ID:          "2",
			Name:        "Smartwatch",
			Price:       24800,
			ImageURL:    "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400",
			Stock:       8,
			Description: "Multi-function smartwatch",
		},
		{
			ID:          "3",
			Name:        "Laptop",
			Price:       89800,
			ImageURL:    "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=400",
			Stock:       5,
			Description: "High-performance laptop",
		},
		{
			ID:          "4",
			Name:        "Wireless Mouse",
			Price:       3980,
			ImageURL:    "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=400",
			Stock:       20,
			Description: "Ergonomic wireless mouse",
		},
		{
			ID:          "5",
			Name:        "Mechanical Keyboard",
			Price:       12800,
			ImageURL:    "https://images.unsplash.com/photo-1587829741301-dc798b83add3?w=400",
			Stock:       12,
			Description: "Mechanical keyboard with RGB lighting",
		},
		{
			ID:          "6",
			Name:        "Webcam",
			Price:       6980,
			ImageURL:    "https://images.unsplash.com/photo-1588847275797-d2a1c3742b28?w=400",
			Stock:       10,
			Description: "Full HD webcam",
		},
	}
}
