package events

import (
	"context"
)

const (
	TypeCartUpdate   = "cart_update"
	TypeOrderCreated = "order_created"
)

// CartUpdate is broadcast after every cart mutation so the UI can refresh
// without polling.
type CartUpdate struct {
	Type      string `json:"type"`
	CartID    string `json:"cart_id"`
	Action    string `json:"action"`
	ProductID string `json:"product_id,omitempty"`
	ItemCount int    `json:"item_count"`
	Total     int64  `json:"total"`
}

// NewCartUpdate fills in the event type.
func NewCartUpdate(cartID, action, productID string, itemCount int, total int64) CartUpdate {
	return CartUpdate{
		Type:      TypeCartUpdate,
		CartID:    cartID,
		Action:    action,
		ProductID: productID,
		ItemCount: itemCount,
		Total:     total,
	}
}

// OrderCreated is broadcast once when a checkout session completes.
type OrderCreated struct {
	Type      string `json:"type"`
	OrderID   string `json:"order_id"`
	Total     int64  `json:"total"`
	ItemCount int    `json:"item_count"`
	Status    string `json:"status"`
}

// NewOrderCreated fills in the event type.
func NewOrderCreated(orderID string, total int64, itemCount int, status string) OrderCreated {
	return OrderCreated{
		Type:      TypeOrderCreated,
		OrderID:   orderID,
		Total:     total,
		ItemCount: itemCount,
		Status:    status,
	}
}

// Publisher delivers events out-of-band. Publishing is fire-and-forget:
// implementations must never fail the request path.
type Publisher interface {
	Publish(ctx context.Context, event any)
}

// Noop drops every event. Used when no event transport is configured.
type Noop struct{}

func (Noop) Publish(context.Context, any) {}
