package model

import "time"

type DigitalKey struct {
	ID        string     `db:"id" json:"id"`
	ProductID string     `db:"product_id" json:"product_id"`
	KeyValue  string     `db:"key_value" json:"key_value"`
	IsUsed    bool       `db:"is_used" json:"is_used"`
	OrderID   *string    `db:"order_id" json:"order_id,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UsedAt    *time.Time `db:"used_at" json:"used_at,omitempty"`
}

type AddKeysRequest struct {
	Keys []string `json:"keys" validate:"required,min=1,dive,required,max=1024"`
}

type AddKeysResponse struct {
	ProductID string `json:"product_id"`
	Added     int64  `json:"added"`
	Available int64  `json:"available"`
}

type KeyCountResponse struct {
	ProductID string `json:"product_id"`
	Available int64  `json:"available"`
}
