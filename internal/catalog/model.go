package catalog

// Product is an immutable catalog entry. Price is in minor currency units
// (yen for the demo catalog), so totals stay integral.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	ImageURL    string `json:"imageUrl"`
	Stock       int    `json:"stock"`
	Description string `json:"description,omitempty"`
}
