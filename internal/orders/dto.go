package orders

import (
	"time"

	"github.com/voicecartlabs/voicecart-backend/pkg/pagination"
	"github.com/voicecartlabs/voicecart-backend/pkg/types"
)

// Item is a single order line as returned to callers.
type Item struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Size        string `json:"size,omitempty"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
	LineTotal   int64  `json:"line_total"`
}

// Order is the ledger view returned to callers. Orders are immutable once
// written.
type Order struct {
	ID                string      `json:"id"`
	CheckoutSessionID string      `json:"checkout_session_id"`
	SessionID         string      `json:"session_id"`
	Status            string      `json:"status"`
	Currency          string      `json:"currency"`
	ItemCount         int         `json:"item_count"`
	Subtotal          int64       `json:"subtotal"`
	Tax               int64       `json:"tax"`
	Shipping          int64       `json:"shipping"`
	Total             int64       `json:"total"`
	FulfillmentOption string      `json:"fulfillment_option"`
	Carrier           string      `json:"carrier,omitempty"`
	EstimatedDelivery string      `json:"estimated_delivery,omitempty"`
	Buyer             types.Buyer `json:"buyer"`
	Items             []Item      `json:"items"`
	CreatedAt         time.Time   `json:"created_at"`
}

// ItemInput is one line of a new order.
type ItemInput struct {
	ProductID   string
	ProductName string
	Size        string
	Quantity    int
	UnitPrice   int64
}

// CreateInput carries everything needed to write a new ledger entry.
type CreateInput struct {
	CheckoutSessionID string
	SessionID         string
	Currency          string
	Subtotal          int64
	Tax               int64
	Shipping          int64
	Total             int64
	FulfillmentOption string
	Carrier           string
	EstimatedDelivery string
	Buyer             types.Buyer
	Items             []ItemInput
}

// ListFilter narrows an order listing. Zero values mean "no constraint".
type ListFilter struct {
	SessionID string
	Status    string
	Page      pagination.Params
}

// ProductStat is one row of the top-products analytics breakdown.
type ProductStat struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int64  `json:"quantity"`
}

// Summary aggregates the ledger for the analytics endpoint.
type Summary struct {
	TotalOrders       int64            `json:"total_orders"`
	TotalRevenue      int64            `json:"total_revenue"`
	AverageOrderValue float64          `json:"average_order_value"`
	OrdersByStatus    map[string]int64 `json:"orders_by_status"`
	TopProducts       []ProductStat    `json:"top_products"`
}
