package order

import (
	"context"

	"github.com/muhammadheryan/digital-store/constant"
	"github.com/muhammadheryan/digital-store/model"
	orderrepo "github.com/muhammadheryan/digital-store/repository/order"
	"github.com/muhammadheryan/digital-store/utils/errors"
	"github.com/muhammadheryan/digital-store/utils/logger"
	"go.uber.org/zap"
)

// OrderApp is the customer view of the order ledger.
type OrderApp interface {
	ListOrders(ctx context.Context, actor *model.Actor) ([]model.OrderWithItems, error)
	GetOrder(ctx context.Context, actor *model.Actor, orderID string) (*model.OrderWithItems, error)
	GetStats(ctx context.Context, actor *model.Actor) (*model.UserStats, error)
}

type orderAppImpl struct {
	orderRepo orderrepo.OrderRepository
}

func NewOrderApp(orderRepo orderrepo.OrderRepository) OrderApp {
	return &orderAppImpl{orderRepo: orderRepo}
}

func (s *orderAppImpl) ListOrders(ctx context.Context, actor *model.Actor) ([]model.OrderWithItems, error) {
	if actor == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	orders, err := s.orderRepo.ListByUser(ctx, actor.UserID)
	if err != nil {
		logger.Error("[ListOrders] err orderRepo.ListByUser", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return orders, nil
}

// GetOrder returns the order with its items and keys. Only the owner or an admin may read it.
func (s *orderAppImpl) GetOrder(ctx context.Context, actor *model.Actor, orderID string) (*model.OrderWithItems, error) {
	if actor == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	order, err := s.orderRepo.GetWithItems(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrder] err orderRepo.GetWithItems", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	// someone else's order reads as missing
	if order == nil || (!actor.Admin() && !order.OwnedBy(actor.UserID)) {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return order, nil
}

func (s *orderAppImpl) GetStats(ctx context.Context, actor *model.Actor) (*model.UserStats, error) {
	if actor == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	stats, err := s.orderRepo.GetUserStats(ctx, actor.UserID)
	if err != nil {
		logger.Error("[GetStats] err orderRepo.GetUserStats", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return stats, nil
}
