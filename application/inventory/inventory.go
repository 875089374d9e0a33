package inventory

import (
	"context"

	"github.com/muhammadheryan/digital-store/cmd/config"
	"github.com/muhammadheryan/digital-store/constant"
	"github.com/muhammadheryan/digital-store/model"
	inventoryrepo "github.com/muhammadheryan/digital-store/repository/inventory"
	"github.com/muhammadheryan/digital-store/utils/errors"
	"github.com/muhammadheryan/digital-store/utils/logger"
	"go.uber.org/zap"
)

// InventoryApp watches product supply and raises alerts when it runs low.
type InventoryApp interface {
	// CheckProduct evaluates one product and returns how many new alerts it raised.
	CheckProduct(ctx context.Context, productID string) (int, error)
	CheckAll(ctx context.Context) (*model.InventoryCheckResponse, error)
	ResolveAlert(ctx context.Context, actor *model.Actor, alertID string) error
	ListAlerts(ctx context.Context, actor *model.Actor) ([]model.InventoryAlertWithProduct, error)
}

type inventoryAppImpl struct {
	threshold     int64
	inventoryRepo inventoryrepo.InventoryRepository
}

func NewInventoryApp(config *config.Config, inventoryRepo inventoryrepo.InventoryRepository) InventoryApp {
	threshold := config.Inventory.LowStockThreshold
	if threshold <= 0 {
		threshold = constant.DefaultLowStockThreshold
	}
	return &inventoryAppImpl{threshold: threshold, inventoryRepo: inventoryRepo}
}

func (s *inventoryAppImpl) CheckProduct(ctx context.Context, productID string) (int, error) {
	lvl, err := s.inventoryRepo.GetStockLevel(ctx, productID)
	if err != nil {
		logger.Error("[CheckProduct] err inventoryRepo.GetStockLevel", zap.String("product_id", productID), zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	if lvl == nil || !lvl.IsActive {
		return 0, nil
	}
	return s.raise(ctx, lvl)
}

func (s *inventoryAppImpl) CheckAll(ctx context.Context) (*model.InventoryCheckResponse, error) {
	levels, err := s.inventoryRepo.ListStockLevels(ctx)
	if err != nil {
		logger.Error("[CheckAll] err inventoryRepo.ListStockLevels", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	resp := &model.InventoryCheckResponse{}
	failed := 0
	for i := range levels {
		raised, err := s.raise(ctx, &levels[i])
		resp.Raised += raised
		if err != nil {
			// keep sweeping, the next run retries this product
			failed++
			continue
		}
		resp.Checked++
	}
	logger.Info("[CheckAll] inventory sweep done",
		zap.Int("checked", resp.Checked), zap.Int("raised", resp.Raised), zap.Int("failed", failed))
	return resp, nil
}

// evaluate lists the alerts the level calls for.
func (s *inventoryAppImpl) evaluate(lvl *model.StockLevel) []model.InventoryAlert {
	alerts := make([]model.InventoryAlert, 0, 2)
	switch {
	case lvl.Stock == 0:
		alerts = append(alerts, model.InventoryAlert{ProductID: lvl.ProductID, AlertType: constant.AlertTypeOutOfStock})
	case lvl.Stock < s.threshold:
		stock := lvl.Stock
		alerts = append(alerts, model.InventoryAlert{ProductID: lvl.ProductID, AlertType: constant.AlertTypeLowStock, Threshold: &stock})
	}
	if lvl.AvailableKeys == 0 {
		alerts = append(alerts, model.InventoryAlert{ProductID: lvl.ProductID, AlertType: constant.AlertTypeNoKeys})
	}
	return alerts
}

func (s *inventoryAppImpl) raise(ctx context.Context, lvl *model.StockLevel) (int, error) {
	raised := 0
	for _, alert := range s.evaluate(lvl) {
		alert := alert
		created, err := s.inventoryRepo.InsertAlertIfAbsent(ctx, &alert)
		if err != nil {
			logger.Error("[CheckProduct] err inventoryRepo.InsertAlertIfAbsent",
				zap.String("product_id", lvl.ProductID),
				zap.String("alert_type", string(alert.AlertType)),
				zap.String("error", err.Error()))
			return raised, errors.SetCustomError(constant.ErrInternal)
		}
		if created {
			raised++
			logger.Info("[CheckProduct] inventory alert raised",
				zap.String("product_id", lvl.ProductID),
				zap.String("alert_type", string(alert.AlertType)),
				zap.Int64("stock", lvl.Stock),
				zap.Int64("available_keys", lvl.AvailableKeys))
		}
	}
	return raised, nil
}

func (s *inventoryAppImpl) ResolveAlert(ctx context.Context, actor *model.Actor, alertID string) error {
	if !actor.Admin() {
		return errors.SetCustomError(constant.ErrForbidden)
	}

	alert, err := s.inventoryRepo.GetAlert(ctx, alertID)
	if err != nil {
		logger.Error("[ResolveAlert] err inventoryRepo.GetAlert", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if alert == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	resolved, err := s.inventoryRepo.ResolveAlert(ctx, alertID)
	if err != nil {
		logger.Error("[ResolveAlert] err inventoryRepo.ResolveAlert", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if resolved {
		logger.Info("[ResolveAlert] alert resolved", zap.String("alert_id", alertID), zap.String("by", actor.UserID))
	}
	return nil
}

func (s *inventoryAppImpl) ListAlerts(ctx context.Context, actor *model.Actor) ([]model.InventoryAlertWithProduct, error) {
	if !actor.Admin() {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	alerts, err := s.inventoryRepo.ListOpenAlerts(ctx)
	if err != nil {
		logger.Error("[ListAlerts] err inventoryRepo.ListOpenAlerts", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return alerts, nil
}
