package refund

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/digital-store/constant"
	"github.com/muhammadheryan/digital-store/model"
	"github.com/muhammadheryan/digital-store/repository/claim"
	"github.com/muhammadheryan/digital-store/utils/errors"
)

type SQL struct {
	conn *sqlx.DB
}

type RefundRepository interface {
	Create(ctx context.Context, r *model.Refund) error
	GetByID(ctx context.Context, id string) (*model.Refund, error)
	List(ctx context.Context, userID string) ([]model.Refund, error)
	TransitionStatus(ctx context.Context, id string, from, to constant.RefundStatus, adminNotes *string) (bool, error)
	SetStripeRefundID(ctx context.Context, id, stripeRefundID string) error
}

func NewRefundRepository(conn *sqlx.DB) RefundRepository {
	return &SQL{conn: conn}
}

const (
	refundColumns = `id, order_id, user_id, reason, amount, status, admin_notes, stripe_refund_id, created_at, updated_at`

	insertRefund = `INSERT INTO refund (id, order_id, user_id, reason, amount, status, created_at, updated_at)
VALUES (:id, :order_id, :user_id, :reason, :amount, :status, NOW(), NOW())`

	getRefundByID = `SELECT ` + refundColumns + ` FROM refund WHERE id = ?`

	listRefunds = `SELECT ` + refundColumns + ` FROM refund`

	// admin notes are kept when the transition carries none
	transitionRefund = `UPDATE refund SET status = ?, admin_notes = COALESCE(?, admin_notes), updated_at = NOW() WHERE id = ? AND status = ?`

	setStripeRefundID = `UPDATE refund SET stripe_refund_id = ?, status = ?, updated_at = NOW() WHERE id = ?`
)

// Create stores a pending refund. A second open refund for the same order yields ErrRefundExists.
func (s *SQL) Create(ctx context.Context, r *model.Refund) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if _, err := s.conn.NamedExecContext(ctx, insertRefund, r); err != nil {
		if claim.IsDuplicateKey(err) {
			return errors.SetCustomError(constant.ErrRefundExists)
		}
		return err
	}
	return nil
}

func (s *SQL) GetByID(ctx context.Context, id string) (*model.Refund, error) {
	var r model.Refund
	if err := s.conn.GetContext(ctx, &r, getRefundByID, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &r, nil
}

// List returns the refunds of userID, or all refunds when userID is empty.
func (s *SQL) List(ctx context.Context, userID string) ([]model.Refund, error) {
	query := listRefunds
	args := make([]any, 0, 1)
	if userID != "" {
		query += " WHERE user_id = ?"
		args = append(args, userID)
	}
	query += " ORDER BY created_at DESC, id"

	items := make([]model.Refund, 0)
	if err := s.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// TransitionStatus moves the refund from -> to and reports whether this caller made the move.
func (s *SQL) TransitionStatus(ctx context.Context, id string, from, to constant.RefundStatus, adminNotes *string) (bool, error) {
	return claim.Exec(ctx, s.conn, transitionRefund, to, adminNotes, id, from)
}

// SetStripeRefundID records the payout and pins the refund to processed, so a release
// racing a successful resume cannot leave a paid refund as approved.
func (s *SQL) SetStripeRefundID(ctx context.Context, id, stripeRefundID string) error {
	_, err := s.conn.ExecContext(ctx, setStripeRefundID, stripeRefundID, constant.RefundStatusProcessed, id)
	return err
}
