package model

import (
	"time"

	"github.com/muhammadheryan/digital-store/constant"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID              string               `db:"id" json:"id"`
	UserID          *string              `db:"user_id" json:"user_id,omitempty"`
	Email           string               `db:"email" json:"email"`
	Total           decimal.Decimal      `db:"total" json:"total"`
	Status          constant.OrderStatus `db:"status" json:"status"`
	PaymentMethod   string               `db:"payment_method" json:"payment_method"`
	PaymentIntentID string               `db:"payment_intent_id" json:"payment_intent_id"`
	CreatedAt       time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time            `db:"updated_at" json:"updated_at"`
}

// OwnedBy reports whether the order belongs to userID.
func (o *Order) OwnedBy(userID string) bool {
	return o.UserID != nil && *o.UserID == userID
}

// OrderItem is one sold unit. Price is the unit price charged and never follows the catalog.
type OrderItem struct {
	ID           string          `db:"id" json:"id"`
	OrderID      string          `db:"order_id" json:"order_id"`
	ProductID    string          `db:"product_id" json:"product_id"`
	Position     int             `db:"position" json:"position"`
	Quantity     int             `db:"quantity" json:"quantity"`
	Price        decimal.Decimal `db:"price" json:"price"`
	DigitalKeyID *string         `db:"digital_key_id" json:"digital_key_id,omitempty"`
}

type OrderItemDetail struct {
	OrderItem
	ProductName string  `db:"product_name" json:"product_name"`
	KeyValue    *string `db:"key_value" json:"key_value,omitempty"`
}

// KeyPending reports whether the unit still waits for manual key delivery.
func (d OrderItemDetail) KeyPending() bool {
	return d.DigitalKeyID == nil
}

type OrderWithItems struct {
	Order
	Items []OrderItemDetail `json:"items"`
}

type UserStats struct {
	TotalOrders int64           `db:"total_orders" json:"total_orders"`
	TotalSpent  decimal.Decimal `db:"total_spent" json:"total_spent"`
	TotalKeys   int64           `db:"total_keys" json:"total_keys"`
}
