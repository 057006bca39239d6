package models

import (
	"time"
)

// Order is the immutable ledger record written when a checkout session
// completes. Monetary fields are whole currency units, matching the catalog.
type Order struct {
	ID                string      `gorm:"column:id;primaryKey"`
	CheckoutSessionID string      `gorm:"column:checkout_session_id;not null;index"`
	SessionID         string      `gorm:"column:session_id;not null;index"`
	Status            string      `gorm:"column:status;not null;default:'confirmed'"`
	Currency          string      `gorm:"column:currency;not null;default:'INR'"`
	ItemCount         int         `gorm:"column:item_count;not null"`
	Subtotal          int64       `gorm:"column:subtotal;not null"`
	Tax               int64       `gorm:"column:tax;not null"`
	Shipping          int64       `gorm:"column:shipping;not null"`
	Total             int64       `gorm:"column:total;not null"`
	FulfillmentOption string      `gorm:"column:fulfillment_option;not null"`
	Carrier           string      `gorm:"column:carrier"`
	EstimatedDelivery string      `gorm:"column:estimated_delivery"`
	BuyerFirstName    string      `gorm:"column:buyer_first_name"`
	BuyerLastName     string      `gorm:"column:buyer_last_name"`
	BuyerEmail        string      `gorm:"column:buyer_email"`
	BuyerPhone        string      `gorm:"column:buyer_phone"`
	Items             []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time   `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time   `gorm:"column:updated_at;autoUpdateTime"`
}

func (Order) TableName() string { return "orders" }
