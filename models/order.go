package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	OrderStatusCart      = "Cart"
	OrderStatusPending   = "Pending"
	OrderStatusShipped   = "Shipped"
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"
)

// An order doubles as the cart: each user has at most one row with
// status=Cart. CartKey holds the user id only while the order is a cart
// (NULL afterwards), so the unique index serializes concurrent cart creation.
type Order struct {
	gorm.Model
	UserID          uint        `gorm:"index;not null" json:"user_id"`
	CartKey         *uint       `gorm:"uniqueIndex" json:"-"`
	Status          string      `gorm:"not null;default:Cart" json:"status"`
	TotalAmount     float64     `gorm:"not null;default:0" json:"total_amount"`
	ShippingAddress string      `json:"shipping_address"`
	OrderDate       *time.Time  `json:"order_date"`
	Items           []OrderItem `json:"items,omitempty"`
}

type OrderItem struct {
	gorm.Model
	OrderID         uint    `gorm:"index;not null" json:"order_id"`
	ProductID       uint    `gorm:"not null" json:"product_id"`
	Quantity        int     `gorm:"not null" json:"quantity"`
	PriceAtPurchase float64 `gorm:"not null" json:"price_at_purchase"`
}
