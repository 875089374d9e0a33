package inventory

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

// InventoryRepository reads supply levels and stores inventory alerts. At most one
// unresolved alert exists per product and alert type; the open_slot unique index
// enforces it.
type InventoryRepository interface {
	GetStockLevel(ctx context.Context, productID string) (*model.StockLevel, error)
	ListStockLevels(ctx context.Context) ([]model.StockLevel, error)
	InsertAlertIfAbsent(ctx context.Context, alert *model.InventoryAlert) (bool, error)
	GetAlert(ctx context.Context, id string) (*model.InventoryAlert, error)
	ResolveAlert(ctx context.Context, id string) (bool, error)
	ListOpenAlerts(ctx context.Context) ([]model.InventoryAlertWithProduct, error)
}

func NewInventoryRepository(conn *sqlx.DB) InventoryRepository {
	return &SQL{conn: conn}
}

const (
	stockLevelBase = `SELECT p.id AS product_id, p.is_active, p.stock,
(SELECT COUNT(*) FROM digital_key dk WHERE dk.product_id = p.id AND dk.is_used = 0) AS available_keys
FROM product p`

	getStockLevel = stockLevelBase + ` WHERE p.id = ?`

	listStockLevels = stockLevelBase + ` WHERE p.is_active = 1 ORDER BY p.id`

	// a row already holding the open slot turns the insert into a no-op (0 rows affected)
	insertAlertIfAbsent = `INSERT INTO inventory_alert (id, product_id, alert_type, threshold, is_resolved, created_at)
VALUES (?, ?, ?, ?, 0, NOW())
ON DUPLICATE KEY UPDATE id = id`

	getAlert = `SELECT id, product_id, alert_type, threshold, is_resolved, created_at, resolved_at FROM inventory_alert WHERE id = ?`

	resolveAlert = `UPDATE inventory_alert SET is_resolved = 1, resolved_at = NOW() WHERE id = ? AND is_resolved = 0`

	listOpenAlerts = `SELECT a.id, a.product_id, a.alert_type, a.threshold, a.is_resolved, a.created_at, a.resolved_at,
p.name AS product_name
FROM inventory_alert a
JOIN product p ON p.id = a.product_id
WHERE a.is_resolved = 0
ORDER BY a.created_at DESC, a.id`
)

func (s *SQL) GetStockLevel(ctx context.Context, productID string) (*model.StockLevel, error) {
	var lvl model.StockLevel
	if err := s.conn.GetContext(ctx, &lvl, getStockLevel, productID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &lvl, nil
}

// ListStockLevels returns the levels of every active product.
func (s *SQL) ListStockLevels(ctx context.Context) ([]model.StockLevel, error) {
	levels := make([]model.StockLevel, 0)
	if err := s.conn.SelectContext(ctx, &levels, listStockLevels); err != nil {
		return nil, err
	}
	return levels, nil
}

// InsertAlertIfAbsent raises the alert unless an unresolved one of the same type already
// exists for the product. Reports whether a new alert was stored.
func (s *SQL) InsertAlertIfAbsent(ctx context.Context, alert *model.InventoryAlert) (bool, error) {
	if alert.ID == "" {
		alert.ID = uuid.NewString()
	}
	return claim.Exec(ctx, s.conn, insertAlertIfAbsent, alert.ID, alert.ProductID, alert.AlertType, alert.Threshold)
}

func (s *SQL) GetAlert(ctx context.Context, id string) (*model.InventoryAlert, error) {
	var a model.InventoryAlert
	if err := s.conn.GetContext(ctx, &a, getAlert, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (s *SQL) ResolveAlert(ctx context.Context, id string) (bool, error) {
	return claim.Exec(ctx, s.conn, resolveAlert, id)
}

func (s *SQL) ListOpenAlerts(ctx context.Context) ([]model.InventoryAlertWithProduct, error) {
	alerts := make([]model.InventoryAlertWithProduct, 0)
	if err := s.conn.SelectContext(ctx, &alerts, listOpenAlerts); err != nil {
		return nil, err
	}
	return alerts, nil
}
