package cart

import (
	"time"
)

// Item is one cart row in the snapshot returned to callers. Rows are keyed
// by (product_id, size); unit_price is frozen at add time.
type Item struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Size        string `json:"size,omitempty"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
	LineTotal   int64  `json:"line_total"`
}

// Cart is the full aggregate view returned by every cart operation.
type Cart struct {
	SessionID string    `json:"session_id"`
	Items     []Item    `json:"items"`
	ItemCount int       `json:"item_count"`
	Subtotal  int64     `json:"subtotal"`
	Tax       int64     `json:"tax"`
	Total     int64     `json:"total"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
