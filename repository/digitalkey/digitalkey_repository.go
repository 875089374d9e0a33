package digitalkey

import (
	"context"
	"database/sql"
	"time"

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

// DigitalKeyRepository is the key pool. A key moves from available to used exactly once
// and stays bound to that order.
type DigitalKeyRepository interface {
	ReserveTx(ctx context.Context, tx *sqlx.Tx, productID string) (*model.DigitalKey, error)
	MarkUsedTx(ctx context.Context, tx *sqlx.Tx, keyID, orderID string) error
	CountAvailable(ctx context.Context, productID string) (int64, error)
	BulkInsert(ctx context.Context, productID string, values []string) (int64, error)
}

func NewDigitalKeyRepository(conn *sqlx.DB) DigitalKeyRepository {
	return &SQL{conn: conn}
}

const (
	reserveKey = `SELECT id, product_id, key_value, is_used, order_id, created_at, used_at
FROM digital_key
WHERE product_id = ? AND is_used = 0
ORDER BY created_at, id
LIMIT 1
FOR UPDATE SKIP LOCKED`

	markKeyUsed = `UPDATE digital_key SET is_used = 1, order_id = ?, used_at = ? WHERE id = ? AND is_used = 0`

	getKeyOrder = `SELECT order_id FROM digital_key WHERE id = ?`

	countAvailableKeys = `SELECT COUNT(*) FROM digital_key WHERE product_id = ? AND is_used = 0`

	insertKeys = `INSERT INTO digital_key (id, product_id, key_value, is_used, created_at) VALUES (:id, :product_id, :key_value, 0, :created_at)`
)

// ReserveTx locks the oldest available key of the product for the life of tx.
// Rows locked by concurrent transactions are skipped, so two reservations never
// return the same key. Returns nil when the pool is empty.
func (s *SQL) ReserveTx(ctx context.Context, tx *sqlx.Tx, productID string) (*model.DigitalKey, error) {
	var key model.DigitalKey
	if err := tx.GetContext(ctx, &key, reserveKey, productID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &key, nil
}

// MarkUsedTx binds the key to orderID. Marking a key already bound to the same order
// is a no-op; a key bound to another order yields ErrKeyAlreadyUsed.
func (s *SQL) MarkUsedTx(ctx context.Context, tx *sqlx.Tx, keyID, orderID string) error {
	claimed, err := claim.Exec(ctx, tx, markKeyUsed, orderID, time.Now().UTC(), keyID)
	if err != nil {
		return err
	}
	if claimed {
		return nil
	}

	var owner sql.NullString
	if err := tx.GetContext(ctx, &owner, getKeyOrder, keyID); err != nil {
		if err == sql.ErrNoRows {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		return err
	}
	if owner.Valid && owner.String == orderID {
		return nil
	}
	return errors.SetCustomError(constant.ErrKeyAlreadyUsed)
}

func (s *SQL) CountAvailable(ctx context.Context, productID string) (int64, error) {
	var n int64
	if err := s.conn.GetContext(ctx, &n, countAvailableKeys, productID); err != nil {
		return 0, err
	}
	return n, nil
}

// BulkInsert adds values as available keys of the product in one statement.
func (s *SQL) BulkInsert(ctx context.Context, productID string, values []string) (int64, error) {
	if len(values) == 0 {
		return 0, nil
	}
	now := time.Now().UTC()
	keys := make([]model.DigitalKey, 0, len(values))
	for _, v := range values {
		keys = append(keys, model.DigitalKey{
			ID:        uuid.NewString(),
			ProductID: productID,
			KeyValue:  v,
			CreatedAt: now,
		})
	}
	res, err := s.conn.NamedExecContext(ctx, insertKeys, keys)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
