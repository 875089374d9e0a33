package order

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/digital-store/constant"
	"github.com/muhammadheryan/digital-store/model"
	"github.com/muhammadheryan/digital-store/repository/claim"
	"github.com/muhammadheryan/digital-store/utils/errors"
)

type SQL struct {
	conn *sqlx.DB
}

// OrderRepository is the order ledger. An order exists at most once per payment
// intent and each unit position at most once per order.
type OrderRepository interface {
	Insert(ctx context.Context, o *model.Order) error
	GetByID(ctx context.Context, id string) (*model.Order, error)
	GetByPaymentIntent(ctx context.Context, paymentIntentID string) (*model.Order, error)
	GetWithItems(ctx context.Context, id string) (*model.OrderWithItems, error)
	ListByUser(ctx context.Context, userID string) ([]model.OrderWithItems, error)
	ListItemPositions(ctx context.Context, orderID string) ([]int, error)
	InsertItemTx(ctx context.Context, tx *sqlx.Tx, item *model.OrderItem) error
	UpdateStatus(ctx context.Context, id string, status constant.OrderStatus) error
	GetUserStats(ctx context.Context, userID string) (*model.UserStats, error)
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const (
	orderColumns = `id, user_id, email, total, status, payment_method, payment_intent_id, created_at, updated_at`

	insertOrder = "INSERT INTO `order` (" + orderColumns + `) VALUES (:id, :user_id, :email, :total, :status, :payment_method, :payment_intent_id, NOW(), NOW())`

	getOrderByID = "SELECT " + orderColumns + " FROM `order` WHERE id = ?"

	getOrderByPaymentIntent = "SELECT " + orderColumns + " FROM `order` WHERE payment_intent_id = ?"

	listOrdersByUser = "SELECT " + orderColumns + " FROM `order` WHERE user_id = ? ORDER BY created_at DESC, id"

	listItemPositions = `SELECT position FROM order_item WHERE order_id = ? ORDER BY position`

	listItemDetails = `SELECT oi.id, oi.order_id, oi.product_id, oi.position, oi.quantity, oi.price, oi.digital_key_id,
p.name AS product_name, dk.key_value
FROM order_item oi
JOIN product p ON p.id = oi.product_id
LEFT JOIN digital_key dk ON dk.id = oi.digital_key_id
WHERE oi.order_id IN (?)
ORDER BY oi.order_id, oi.position`

	insertOrderItem = `INSERT INTO order_item (id, order_id, product_id, position, quantity, price, digital_key_id)
VALUES (:id, :order_id, :product_id, :position, :quantity, :price, :digital_key_id)`

	updateOrderStatus = "UPDATE `order` SET status = ?, updated_at = NOW() WHERE id = ?"

	getUserStats = "SELECT COUNT(*) AS total_orders, COALESCE(SUM(o.total), 0) AS total_spent," +
		" (SELECT COUNT(*) FROM order_item oi JOIN `order` o2 ON o2.id = oi.order_id WHERE o2.user_id = ? AND oi.digital_key_id IS NOT NULL) AS total_keys" +
		" FROM `order` o WHERE o.user_id = ? AND o.status = ?"
)

// Insert creates the order. A second order for the same payment intent yields ErrDuplicateOrder.
func (s *SQL) Insert(ctx context.Context, o *model.Order) error {
	if _, err := s.conn.NamedExecContext(ctx, insertOrder, o); err != nil {
		if claim.IsDuplicateKey(err) {
			return errors.SetCustomError(constant.ErrDuplicateOrder)
		}
		return err
	}
	return nil
}

func (s *SQL) GetByID(ctx context.Context, id string) (*model.Order, error) {
	return s.getOne(ctx, getOrderByID, id)
}

func (s *SQL) GetByPaymentIntent(ctx context.Context, paymentIntentID string) (*model.Order, error) {
	return s.getOne(ctx, getOrderByPaymentIntent, paymentIntentID)
}

func (s *SQL) getOne(ctx context.Context, query string, arg any) (*model.Order, error) {
	var o model.Order
	if err := s.conn.GetContext(ctx, &o, query, arg); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (s *SQL) GetWithItems(ctx context.Context, id string) (*model.OrderWithItems, error) {
	o, err := s.GetByID(ctx, id)
	if err != nil || o == nil {
		return nil, err
	}
	out, err := s.attachItems(ctx, []model.Order{*o})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

func (s *SQL) ListByUser(ctx context.Context, userID string) ([]model.OrderWithItems, error) {
	orders := make([]model.Order, 0)
	if err := s.conn.SelectContext(ctx, &orders, listOrdersByUser, userID); err != nil {
		return nil, err
	}
	return s.attachItems(ctx, orders)
}

func (s *SQL) attachItems(ctx context.Context, orders []model.Order) ([]model.OrderWithItems, error) {
	out := make([]model.OrderWithItems, 0, len(orders))
	if len(orders) == 0 {
		return out, nil
	}

	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	query, args, err := sqlx.In(listItemDetails, ids)
	if err != nil {
		return nil, err
	}
	details := make([]model.OrderItemDetail, 0)
	if err := s.conn.SelectContext(ctx, &details, s.conn.Rebind(query), args...); err != nil {
		return nil, err
	}

	byOrder := make(map[string][]model.OrderItemDetail, len(orders))
	for _, d := range details {
		byOrder[d.OrderID] = append(byOrder[d.OrderID], d)
	}
	for _, o := range orders {
		items := byOrder[o.ID]
		if items == nil {
			items = []model.OrderItemDetail{}
		}
		out = append(out, model.OrderWithItems{Order: o, Items: items})
	}
	return out, nil
}

func (s *SQL) ListItemPositions(ctx context.Context, orderID string) ([]int, error) {
	positions := make([]int, 0)
	if err := s.conn.SelectContext(ctx, &positions, listItemPositions, orderID); err != nil {
		return nil, err
	}
	return positions, nil
}

// InsertItemTx records one unit. If the position is already recorded the unit was
// fulfilled by an earlier attempt and ErrDuplicateOrder is returned.
func (s *SQL) InsertItemTx(ctx context.Context, tx *sqlx.Tx, item *model.OrderItem) error {
	if _, err := tx.NamedExecContext(ctx, insertOrderItem, item); err != nil {
		if claim.IsDuplicateKey(err) {
			return errors.SetCustomError(constant.ErrDuplicateOrder)
		}
		return err
	}
	return nil
}

func (s *SQL) UpdateStatus(ctx context.Context, id string, status constant.OrderStatus) error {
	_, err := s.conn.ExecContext(ctx, updateOrderStatus, status, id)
	return err
}

func (s *SQL) GetUserStats(ctx context.Context, userID string) (*model.UserStats, error) {
	var stats model.UserStats
	if err := s.conn.GetContext(ctx, &stats, getUserStats, userID, userID, constant.OrderStatusCompleted); err != nil {
		return nil, err
	}
	return &stats, nil
}
