package cart

import "github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/catalog"

// Item is one product's line in the cart. Product is a snapshot taken when
// the line was created; later catalog changes do not alter it.
type Item struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
	AddedAt  int64           `json:"addedAt"` // unix milliseconds
}
