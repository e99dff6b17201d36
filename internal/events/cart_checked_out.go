package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/cart"
)

const (
	CartCheckedOutEventName    = "CartCheckedOut"
	CartCheckedOutEventVersion = 1
)

type Envelope struct {
	EventName     string                `json:"eventName"`
	EventVersion  int                   `json:"eventVersion"`
	EventID       string                `json:"eventId"`
	CorrelationID string                `json:"correlationId,omitempty"`
	Producer      string                `json:"producer"`
	OccurredAt    time.Time             `json:"occurredAt"`
	Payload       CartCheckedOutPayload `json:"payload"`
}

type CartCheckedOutPayload struct {
	UserID      string         `json:"userId"`
	Items       []CartItemLine `json:"items"`
	TotalAmount int            `json:"totalAmount"`
}

type CartItemLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Price     int    `json:"price"`
}

// NewCartCheckedOut builds the enveloped event from a pre-clear snapshot of
// the cart lines.
func NewCartCheckedOut(userID string, items []cart.Item, totalAmount int, correlationID string) Envelope {
	lines := make([]CartItemLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, CartItemLine{
			ProductID: it.Product.ID,
			Quantity:  it.Quantity,
			Price:     it.Product.Price,
		})
	}

	return Envelope{
		EventName:     CartCheckedOutEventName,
		EventVersion:  CartCheckedOutEventVersion,
		EventID:       uuid.NewString(),
		CorrelationID: correlationID,
		Producer:      producerName,
		OccurredAt:    time.Now().UTC(),
		Payload: CartCheckedOutPayload{
			UserID:      userID,
			Items:       lines,
			TotalAmount: totalAmount,
		},
	}
}
