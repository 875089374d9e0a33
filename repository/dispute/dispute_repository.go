package dispute

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/digital-store/constant"
	"github.com/muhammadheryan/digital-store/model"
	"github.com/muhammadheryan/digital-store/repository/claim"
)

type SQL struct {
	conn *sqlx.DB
}

type DisputeRepository interface {
	Create(ctx context.Context, d *model.Dispute) error
	GetByID(ctx context.Context, id string) (*model.Dispute, error)
	List(ctx context.Context, userID string) ([]model.Dispute, error)
	TransitionStatus(ctx context.Context, id string, from, to constant.DisputeStatus, resolution *string) (bool, error)
}

func NewDisputeRepository(conn *sqlx.DB) DisputeRepository {
	return &SQL{conn: conn}
}

const (
	disputeColumns = `id, order_id, user_id, type, description, amount, status, resolution, created_at, updated_at`

	insertDispute = `INSERT INTO dispute (id, order_id, user_id, type, description, amount, status, created_at, updated_at)
VALUES (:id, :order_id, :user_id, :type, :description, :amount, :status, NOW(), NOW())`

	getDisputeByID = `SELECT ` + disputeColumns + ` FROM dispute WHERE id = ?`

	listDisputes = `SELECT ` + disputeColumns + ` FROM dispute`

	transitionDispute = `UPDATE dispute SET status = ?, resolution = COALESCE(?, resolution), updated_at = NOW() WHERE id = ? AND status = ?`
)

func (s *SQL) Create(ctx context.Context, d *model.Dispute) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	_, err := s.conn.NamedExecContext(ctx, insertDispute, d)
	return err
}

func (s *SQL) GetByID(ctx context.Context, id string) (*model.Dispute, error) {
	var d model.Dispute
	if err := s.conn.GetContext(ctx, &d, getDisputeByID, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

// List returns the disputes of userID, or all disputes when userID is empty.
func (s *SQL) List(ctx context.Context, userID string) ([]model.Dispute, error) {
	query := listDisputes
	args := make([]any, 0, 1)
	if userID != "" {
		query += " WHERE user_id = ?"
		args = append(args, userID)
	}
	query += " ORDER BY created_at DESC, id"

	items := make([]model.Dispute, 0)
	if err := s.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) TransitionStatus(ctx context.Context, id string, from, to constant.DisputeStatus, resolution *string) (bool, error) {
	return claim.Exec(ctx, s.conn, transitionDispute, to, resolution, id, from)
}
