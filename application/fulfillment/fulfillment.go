package fulfillment

import (
	"context"

	"github.com/google/uuid"
	inventoryapp "github.com/muhammadheryan/digital-store/application/inventory"
	"github.com/muhammadheryan/digital-store/constant"
	"github.com/muhammadheryan/digital-store/model"
	digitalkeyrepo "github.com/muhammadheryan/digital-store/repository/digitalkey"
	orderrepo "github.com/muhammadheryan/digital-store/repository/order"
	productrepo "github.com/muhammadheryan/digital-store/repository/product"
	txrepo "github.com/muhammadheryan/digital-store/repository/tx"
	"github.com/muhammadheryan/digital-store/utils/errors"
	"github.com/muhammadheryan/digital-store/utils/logger"
	validatorx "github.com/muhammadheryan/digital-store/utils/validator"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// FulfillmentApp turns a successful payment into an order with one key per unit.
//
// Delivery is at-least-once, so HandlePaymentSucceeded may run any number of times for
// the same payment, concurrently or after a partial failure. Every run converges on
// the same order: one order per payment, one item per unit position and at most one
// key per item.
type FulfillmentApp interface {
	HandlePaymentSucceeded(ctx context.Context, event *model.PaymentSucceeded) (*model.FulfillmentResult, error)
}

type fulfillmentAppImpl struct {
	txRepo       txrepo.TxRepository
	orderRepo    orderrepo.OrderRepository
	keyRepo      digitalkeyrepo.DigitalKeyRepository
	productRepo  productrepo.ProductRepository
	inventoryApp inventoryapp.InventoryApp
}

func NewFulfillmentApp(txRepo txrepo.TxRepository, orderRepo orderrepo.OrderRepository, keyRepo digitalkeyrepo.DigitalKeyRepository, productRepo productrepo.ProductRepository, inventoryApp inventoryapp.InventoryApp) FulfillmentApp {
	return &fulfillmentAppImpl{
		txRepo:       txRepo,
		orderRepo:    orderRepo,
		keyRepo:      keyRepo,
		productRepo:  productRepo,
		inventoryApp: inventoryApp,
	}
}

type unit struct {
	position  int
	productID string
	price     decimal.Decimal
}

type unitOutcome int

const (
	unitKeyed unitOutcome = iota
	unitPending
	unitAlreadyDone
)

func (s *fulfillmentAppImpl) HandlePaymentSucceeded(ctx context.Context, event *model.PaymentSucceeded) (*model.FulfillmentResult, error) {
	if event == nil {
		logger.Error("[HandlePaymentSucceeded] nil event")
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validatorx.ValidateStruct(event); err != nil {
		logger.Error("[HandlePaymentSucceeded] invalid event", zap.String("payment_intent", event.CorrelationID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	order, existed, err := s.getOrCreateOrder(ctx, event)
	if err != nil {
		return nil, err
	}

	units := expandUnits(event.LineItems)
	positions, err := s.orderRepo.ListItemPositions(ctx, order.ID)
	if err != nil {
		logger.Error("[HandlePaymentSucceeded] err orderRepo.ListItemPositions", zap.String("order_id", order.ID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	done := make(map[int]struct{}, len(positions))
	for _, p := range positions {
		done[p] = struct{}{}
	}

	result := &model.FulfillmentResult{OrderID: order.ID, Units: len(units)}
	if existed && len(done) >= len(units) {
		logger.Info("[HandlePaymentSucceeded] duplicate payment event",
			zap.String("payment_intent", event.CorrelationID), zap.String("order_id", order.ID))
		result.Duplicate = true
		return result, nil
	}

	for _, u := range units {
		if _, ok := done[u.position]; ok {
			continue
		}
		outcome, err := s.fulfillUnit(ctx, order.ID, u)
		if err != nil {
			return nil, err
		}
		switch outcome {
		case unitKeyed:
			result.KeysAssigned++
		case unitPending:
			result.KeysPending++
			logger.Warn("[HandlePaymentSucceeded] no key available, unit pending manual delivery",
				zap.String("order_id", order.ID), zap.String("product_id", u.productID), zap.Int("position", u.position))
		}
	}

	// alert failures are repaired by the periodic sweep
	for _, productID := range productIDs(event.LineItems) {
		if _, err := s.inventoryApp.CheckProduct(ctx, productID); err != nil {
			logger.Warn("[HandlePaymentSucceeded] inventory check failed", zap.String("product_id", productID), zap.String("error", err.Error()))
		}
	}

	logger.Info("[HandlePaymentSucceeded] order fulfilled",
		zap.String("payment_intent", event.CorrelationID),
		zap.String("order_id", order.ID),
		zap.Int("units", result.Units),
		zap.Int("keys_assigned", result.KeysAssigned),
		zap.Int("keys_pending", result.KeysPending))
	return result, nil
}

// getOrCreateOrder returns the order of the payment, creating it on first delivery.
// existed reports whether an earlier delivery created it.
func (s *fulfillmentAppImpl) getOrCreateOrder(ctx context.Context, event *model.PaymentSucceeded) (*model.Order, bool, error) {
	order, err := s.orderRepo.GetByPaymentIntent(ctx, event.CorrelationID)
	if err != nil {
		logger.Error("[HandlePaymentSucceeded] err orderRepo.GetByPaymentIntent", zap.String("error", err.Error()))
		return nil, false, errors.SetCustomError(constant.ErrInternal)
	}
	if order != nil {
		return order, true, nil
	}

	paymentMethod := event.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = constant.PaymentMethodStripe
	}
	order = &model.Order{
		ID:              uuid.NewString(),
		Email:           event.PayerEmail,
		Total:           event.AmountTotal,
		Status:          constant.OrderStatusCompleted,
		PaymentMethod:   paymentMethod,
		PaymentIntentID: event.CorrelationID,
	}
	if event.UserID != "" {
		userID := event.UserID
		order.UserID = &userID
	}

	err = s.orderRepo.Insert(ctx, order)
	if err == nil {
		return order, false, nil
	}
	if !errors.Is(err, constant.ErrDuplicateOrder) {
		logger.Error("[HandlePaymentSucceeded] err orderRepo.Insert", zap.String("error", err.Error()))
		return nil, false, errors.SetCustomError(constant.ErrInternal)
	}

	// a concurrent delivery created it first; continue on its order
	order, err = s.orderRepo.GetByPaymentIntent(ctx, event.CorrelationID)
	if err != nil {
		logger.Error("[HandlePaymentSucceeded] err orderRepo.GetByPaymentIntent reload", zap.String("error", err.Error()))
		return nil, false, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return nil, false, errors.SetCustomError(constant.ErrInternal)
	}
	return order, true, nil
}

// fulfillUnit reserves a key, binds it and records the item in one transaction.
func (s *fulfillmentAppImpl) fulfillUnit(ctx context.Context, orderID string, u unit) (unitOutcome, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[fulfillUnit] begin tx", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	key, err := s.keyRepo.ReserveTx(ctx, tx, u.productID)
	if err != nil {
		logger.Error("[fulfillUnit] err keyRepo.ReserveTx", zap.String("product_id", u.productID), zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}

	item := &model.OrderItem{
		ID:        uuid.NewString(),
		OrderID:   orderID,
		ProductID: u.productID,
		Position:  u.position,
		Quantity:  1,
		Price:     u.price,
	}
	outcome := unitPending
	if key != nil {
		if err := s.keyRepo.MarkUsedTx(ctx, tx, key.ID, orderID); err != nil {
			logger.Error("[fulfillUnit] err keyRepo.MarkUsedTx", zap.String("key_id", key.ID), zap.String("error", err.Error()))
			return 0, errors.SetCustomError(constant.ErrInternal)
		}
		keyID := key.ID
		item.DigitalKeyID = &keyID
		outcome = unitKeyed
	}

	if err := s.orderRepo.InsertItemTx(ctx, tx, item); err != nil {
		if errors.Is(err, constant.ErrDuplicateOrder) {
			// recorded by a concurrent delivery; rollback releases the key
			return unitAlreadyDone, nil
		}
		logger.Error("[fulfillUnit] err orderRepo.InsertItemTx", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}

	if _, err := s.productRepo.DecrementStockTx(ctx, tx, u.productID); err != nil {
		logger.Error("[fulfillUnit] err productRepo.DecrementStockTx", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[fulfillUnit] commit tx", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return outcome, nil
}

// expandUnits splits line items into single units numbered in event order.
func expandUnits(items []model.PaymentLineItem) []unit {
	units := make([]unit, 0, len(items))
	for _, it := range items {
		for i := 0; i < it.Quantity; i++ {
			units = append(units, unit{position: len(units), productID: it.ProductID, price: it.UnitPrice})
		}
	}
	return units
}

func productIDs(items []model.PaymentLineItem) []string {
	seen := make(map[string]struct{}, len(items))
	ids := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it.ProductID]; ok {
			continue
		}
		seen[it.ProductID] = struct{}{}
		ids = append(ids, it.ProductID)
	}
	return ids
}
