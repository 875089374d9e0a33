package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID            string              `db:"id" json:"id"`
	Name          string              `db:"name" json:"name"`
	Description   string              `db:"description" json:"description,omitempty"`
	Price         decimal.Decimal     `db:"price" json:"price"`
	OriginalPrice decimal.NullDecimal `db:"original_price" json:"original_price"`
	CategoryID    string              `db:"category_id" json:"category_id"`
	ImageURL      string              `db:"image_url" json:"image_url,omitempty"`
	Platform      string              `db:"platform" json:"platform,omitempty"`
	Stock         int64               `db:"stock" json:"stock"`
	IsActive      bool                `db:"is_active" json:"is_active"`
	IsFeatured    bool                `db:"is_featured" json:"is_featured"`
	CreatedAt     time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time           `db:"updated_at" json:"updated_at"`
}

// ProductWithCategory is a product joined with its category name.
type ProductWithCategory struct {
	Product
	CategoryName string `db:"category_name" json:"category_name"`
}

type ProductFilter struct {
	CategoryID string
	Featured   bool
	Page       int
	PerPage    int
}

type ProductListResponse struct {
	Items      []ProductWithCategory `json:"items"`
	TotalCount int64                 `json:"total_count"`
	Page       int                   `json:"page"`
	PerPage    int                   `json:"per_page"`
}

type ProductRequest struct {
	Name          string           `json:"name" validate:"required,max=255"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price" validate:"gt=0"`
	OriginalPrice *decimal.Decimal `json:"original_price"`
	CategoryID    string           `json:"category_id" validate:"required"`
	ImageURL      string           `json:"image_url"`
	Platform      string           `json:"platform" validate:"max=100"`
	Stock         int64            `json:"stock" validate:"gte=0"`
	IsActive      *bool            `json:"is_active"`
	IsFeatured    bool             `json:"is_featured"`
}

type Category struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Slug        string    `db:"slug" json:"slug"`
	Description string    `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Slug        string `json:"slug" validate:"required,max=255"`
	Description string `json:"description"`
}
