package models

import (
	"time"
)

// OrderItem snapshots a cart line at the moment the order was placed.
// Prices are copied from the catalog so later catalog edits never rewrite
// what the buyer actually paid.
type OrderItem struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID   string    `gorm:"column:order_id;not null;index"`
	ProductID string    `gorm:"column:product_id;not null"`
	Name      string    `gorm:"column:name;not null"`
	Size      string    `gorm:"column:size;not null"`
	UnitPrice int64     `gorm:"column:unit_price;not null"`
	Quantity  int       `gorm:"column:quantity;not null"`
	LineTotal int64     `gorm:"column:line_total;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (OrderItem) TableName() string { return "order_items" }
