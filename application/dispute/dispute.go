package dispute

import (
	"context"

	"github.com/muhammadheryan/digital-store/constant"
	"github.com/muhammadheryan/digital-store/model"
	disputerepo "github.com/muhammadheryan/digital-store/repository/dispute"
	orderrepo "github.com/muhammadheryan/digital-store/repository/order"
	"github.com/muhammadheryan/digital-store/utils/errors"
	"github.com/muhammadheryan/digital-store/utils/logger"
	"go.uber.org/zap"
)

type DisputeApp interface {
	CreateDispute(ctx context.Context, actor *model.Actor, req *model.CreateDisputeRequest) (*model.Dispute, error)
	ListDisputes(ctx context.Context, actor *model.Actor) ([]model.Dispute, error)
	GetDispute(ctx context.Context, actor *model.Actor, id string) (*model.DisputeWithOrder, error)
	UpdateStatus(ctx context.Context, actor *model.Actor, id string, req *model.UpdateDisputeStatusRequest) (*model.Dispute, error)
}

type disputeAppImpl struct {
	disputeRepo disputerepo.DisputeRepository
	orderRepo   orderrepo.OrderRepository
}

func NewDisputeApp(disputeRepo disputerepo.DisputeRepository, orderRepo orderrepo.OrderRepository) DisputeApp {
	return &disputeAppImpl{disputeRepo: disputeRepo, orderRepo: orderRepo}
}

// CreateDispute opens a dispute on the actor's order. The disputed amount is the order
// total at the time of filing.
func (s *disputeAppImpl) CreateDispute(ctx context.Context, actor *model.Actor, req *model.CreateDisputeRequest) (*model.Dispute, error) {
	if actor == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	order, err := s.orderRepo.GetByID(ctx, req.OrderID)
	if err != nil {
		logger.Error("[CreateDispute] err orderRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil || !order.OwnedBy(actor.UserID) {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	d := &model.Dispute{
		OrderID:     order.ID,
		UserID:      actor.UserID,
		Type:        req.Type,
		Description: req.Description,
		Amount:      order.Total,
		Status:      constant.DisputeStatusOpen,
	}
	if err := s.disputeRepo.Create(ctx, d); err != nil {
		logger.Error("[CreateDispute] err disputeRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return d, nil
}

func (s *disputeAppImpl) ListDisputes(ctx context.Context, actor *model.Actor) ([]model.Dispute, error) {
	if actor == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	userID := actor.UserID
	if actor.Admin() {
		userID = ""
	}
	items, err := s.disputeRepo.List(ctx, userID)
	if err != nil {
		logger.Error("[ListDisputes] err disputeRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *disputeAppImpl) GetDispute(ctx context.Context, actor *model.Actor, id string) (*model.DisputeWithOrder, error) {
	if actor == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	d, err := s.disputeRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetDispute] err disputeRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if d == nil || (!actor.Admin() && d.UserID != actor.UserID) {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	order, err := s.orderRepo.GetWithItems(ctx, d.OrderID)
	if err != nil {
		logger.Error("[GetDispute] err orderRepo.GetWithItems", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.DisputeWithOrder{Dispute: *d, Order: order}, nil
}

func (s *disputeAppImpl) UpdateStatus(ctx context.Context, actor *model.Actor, id string, req *model.UpdateDisputeStatusRequest) (*model.Dispute, error) {
	if !actor.Admin() {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	d, err := s.disputeRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateDisputeStatus] err disputeRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if d == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if !constant.CanTransitionDispute(d.Status, req.Status) {
		return nil, errors.SetCustomError(constant.ErrInvalidStatusTransition)
	}

	// resolution is only recorded when the dispute ends
	var resolution *string
	if req.Status == constant.DisputeStatusResolved || req.Status == constant.DisputeStatusClosed {
		resolution = req.Resolution
	}
	moved, err := s.disputeRepo.TransitionStatus(ctx, id, d.Status, req.Status, resolution)
	if err != nil {
		logger.Error("[UpdateDisputeStatus] err disputeRepo.TransitionStatus", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !moved {
		return nil, errors.SetCustomError(constant.ErrInvalidStatusTransition)
	}

	d.Status = req.Status
	if resolution != nil {
		d.Resolution = resolution
	}
	return d, nil
}
