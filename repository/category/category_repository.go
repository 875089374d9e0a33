package category

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/digital-store/model"
)

type SQL struct {
	conn *sqlx.DB
}

type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
	GetByID(ctx context.Context, id string) (*model.Category, error)
	Create(ctx context.Context, c *model.Category) error
}

func NewCategoryRepository(conn *sqlx.DB) CategoryRepository {
	return &SQL{conn: conn}
}

const (
	listCategories  = `SELECT id, name, slug, description, created_at FROM category ORDER BY name`
	getCategoryByID = `SELECT id, name, slug, description, created_at FROM category WHERE id = ?`
	insertCategory  = `INSERT INTO category (id, name, slug, description, created_at) VALUES (?, ?, ?, ?, NOW())`
)

func (s *SQL) List(ctx context.Context) ([]model.Category, error) {
	items := make([]model.Category, 0)
	if err := s.conn.SelectContext(ctx, &items, listCategories); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) GetByID(ctx context.Context, id string) (*model.Category, error) {
	var c model.Category
	if err := s.conn.GetContext(ctx, &c, getCategoryByID, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (s *SQL) Create(ctx context.Context, c *model.Category) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	_, err := s.conn.ExecContext(ctx, insertCategory, c.ID, c.Name, c.Slug, c.Description)
	return err
}
