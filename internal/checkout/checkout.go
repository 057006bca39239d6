package checkout

import (
	"time"

	"github.com/voicecartlabs/voicecart-backend/pkg/types"
)

// Status is the checkout session lifecycle state.
type Status string

const (
	StatusNotReadyForPayment Status = "not_ready_for_payment"
	StatusReadyForPayment    Status = "ready_for_payment"
	StatusInProgress         Status = "in_progress"
	StatusCompleted          Status = "completed"
	StatusCanceled           Status = "canceled"
)

// Terminal reports whether no further transitions are allowed.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

// LineItem is an immutable snapshot of one cart row taken at session
// creation. Later cart edits never touch it.
type LineItem struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Size        string `json:"size,omitempty"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
	BaseAmount  int64  `json:"base_amount"`
	Subtotal    int64  `json:"subtotal"`
	Tax         int64  `json:"tax"`
	Total       int64  `json:"total"`
}

// FulfillmentOption is one selectable shipping method with its own pricing.
type FulfillmentOption struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Carrier  string `json:"carrier"`
	Subtotal int64  `json:"subtotal"`
	Tax      int64  `json:"tax"`
	Total    int64  `json:"total"`
}

// Totals is the session-level money breakdown. The identity
// total = subtotal + tax + shipping holds in every observable state.
type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Tax      int64 `json:"tax"`
	Shipping int64 `json:"shipping"`
	Total    int64 `json:"total"`
}

// Session is a checkout aggregate.
type Session struct {
	ID                  string              `json:"id"`
	SessionID           string              `json:"session_id"`
	Status              Status              `json:"status"`
	Currency            string              `json:"currency"`
	LineItems           []LineItem          `json:"line_items"`
	FulfillmentOptions  []FulfillmentOption `json:"fulfillment_options"`
	FulfillmentOptionID string              `json:"fulfillment_option_id,omitempty"`
	FulfillmentAddress  *types.Address      `json:"fulfillment_address,omitempty"`
	Buyer               *types.Buyer        `json:"buyer,omitempty"`
	Totals              Totals              `json:"totals"`
	OrderID             string              `json:"order_id,omitempty"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

func (s *Session) option(id string) *FulfillmentOption {
	for i := range s.FulfillmentOptions {
		if s.FulfillmentOptions[i].ID == id {
			return &s.FulfillmentOptions[i]
		}
	}
	return nil
}

func (s *Session) clone() *Session {
	dup := *s
	dup.LineItems = append([]LineItem(nil), s.LineItems...)
	dup.FulfillmentOptions = append([]FulfillmentOption(nil), s.FulfillmentOptions...)
	if s.FulfillmentAddress != nil {
		addr := *s.FulfillmentAddress
		dup.FulfillmentAddress = &addr
	}
	if s.Buyer != nil {
		buyer := *s.Buyer
		dup.Buyer = &buyer
	}
	return &dup
}
