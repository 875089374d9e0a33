package product

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/digital-store/model"
	"github.com/muhammadheryan/digital-store/repository/claim"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	List(ctx context.Context, filter *model.ProductFilter) ([]model.ProductWithCategory, int64, error)
	GetByID(ctx context.Context, id string) (*model.ProductWithCategory, error)
	GetByIDs(ctx context.Context, ids []string) ([]model.Product, error)
	Create(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, p *model.Product) error
	Deactivate(ctx context.Context, id string) (bool, error)
	DecrementStockTx(ctx context.Context, tx *sqlx.Tx, id string) (bool, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	productColumns = `p.id, p.name, p.description, p.price, p.original_price, p.category_id, p.image_url,
p.platform, p.stock, p.is_active, p.is_featured, p.created_at, p.updated_at`

	listProductsBase = `SELECT ` + productColumns + `, c.name AS category_name
FROM product p
JOIN category c ON c.id = p.category_id
WHERE p.is_active = 1`

	countProductsBase = `SELECT COUNT(*) FROM product p WHERE p.is_active = 1`

	getProductByID = `SELECT ` + productColumns + `, c.name AS category_name
FROM product p
JOIN category c ON c.id = p.category_id
WHERE p.id = ?`

	getProductsByIDs = `SELECT ` + productColumns + ` FROM product p WHERE p.id IN (?)`

	insertProduct = `INSERT INTO product (id, name, description, price, original_price, category_id, image_url, platform, stock, is_active, is_featured, created_at, updated_at)
VALUES (:id, :name, :description, :price, :original_price, :category_id, :image_url, :platform, :stock, :is_active, :is_featured, NOW(), NOW())`

	updateProduct = `UPDATE product SET name = :name, description = :description, price = :price, original_price = :original_price,
category_id = :category_id, image_url = :image_url, platform = :platform, stock = :stock, is_active = :is_active,
is_featured = :is_featured, updated_at = NOW() WHERE id = :id`

	deactivateProduct = `UPDATE product SET is_active = 0, updated_at = NOW() WHERE id = ? AND is_active = 1`

	// stock never goes below zero; a product sold past its stock just stays at 0
	decrementStock = `UPDATE product SET stock = stock - 1, updated_at = NOW() WHERE id = ? AND stock > 0`
)

// List returns one page of active products matching filter and the total match count.
func (s *SQL) List(ctx context.Context, filter *model.ProductFilter) ([]model.ProductWithCategory, int64, error) {
	where := ""
	args := make([]any, 0, 3)
	if filter.CategoryID != "" {
		where += " AND p.category_id = ?"
		args = append(args, filter.CategoryID)
	}
	if filter.Featured {
		where += " AND p.is_featured = 1"
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countProductsBase+where, args...); err != nil {
		return nil, 0, err
	}

	query := listProductsBase + where + " ORDER BY p.created_at DESC, p.id LIMIT ? OFFSET ?"
	args = append(args, filter.PerPage, (filter.Page-1)*filter.PerPage)

	items := make([]model.ProductWithCategory, 0)
	if err := s.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *SQL) GetByID(ctx context.Context, id string) (*model.ProductWithCategory, error) {
	var p model.ProductWithCategory
	if err := s.conn.QueryRowxContext(ctx, getProductByID, id).StructScan(&p); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// GetByIDs returns the products found among ids, in no particular order.
func (s *SQL) GetByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	items := make([]model.Product, 0, len(ids))
	if len(ids) == 0 {
		return items, nil
	}
	query, args, err := sqlx.In(getProductsByIDs, ids)
	if err != nil {
		return nil, err
	}
	if err := s.conn.SelectContext(ctx, &items, s.conn.Rebind(query), args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) Create(ctx context.Context, p *model.Product) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	_, err := s.conn.NamedExecContext(ctx, insertProduct, p)
	return err
}

func (s *SQL) Update(ctx context.Context, p *model.Product) error {
	_, err := s.conn.NamedExecContext(ctx, updateProduct, p)
	return err
}

func (s *SQL) Deactivate(ctx context.Context, id string) (bool, error) {
	return claim.Exec(ctx, s.conn, deactivateProduct, id)
}

func (s *SQL) DecrementStockTx(ctx context.Context, tx *sqlx.Tx, id string) (bool, error) {
	return claim.Exec(ctx, tx, decrementStock, id)
}
