package model

import (
	"time"

	"github.com/muhammadheryan/digital-store/constant"
)

type InventoryAlert struct {
	ID         string             `db:"id" json:"id"`
	ProductID  string             `db:"product_id" json:"product_id"`
	AlertType  constant.AlertType `db:"alert_type" json:"alert_type"`
	Threshold  *int64             `db:"threshold" json:"threshold,omitempty"`
	IsResolved bool               `db:"is_resolved" json:"is_resolved"`
	CreatedAt  time.Time          `db:"created_at" json:"created_at"`
	ResolvedAt *time.Time         `db:"resolved_at" json:"resolved_at,omitempty"`
}

type InventoryAlertWithProduct struct {
	InventoryAlert
	ProductName string `db:"product_name" json:"product_name"`
}

// StockLevel is the supply snapshot the inventory watcher evaluates.
type StockLevel struct {
	ProductID     string `db:"product_id"`
	IsActive      bool   `db:"is_active"`
	Stock         int64  `db:"stock"`
	AvailableKeys int64  `db:"available_keys"`
}

type InventoryCheckResponse struct {
	Checked int `json:"checked"`
	Raised  int `json:"raised"`
}
