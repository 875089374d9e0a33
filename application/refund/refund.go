package refund

import (
	"context"

	"github.com/muhammadheryan/digital-store/constant"
	"github.com/muhammadheryan/digital-store/model"
	orderrepo "github.com/muhammadheryan/digital-store/repository/order"
	refundrepo "github.com/muhammadheryan/digital-store/repository/refund"
	"github.com/muhammadheryan/digital-store/thirdparty/payment"
	"github.com/muhammadheryan/digital-store/utils/errors"
	"github.com/muhammadheryan/digital-store/utils/logger"
	"go.uber.org/zap"
)

// RefundApp handles refund requests. Moving a refund to processed pays the money back
// through the gateway, exactly once.
type RefundApp interface {
	CreateRefund(ctx context.Context, actor *model.Actor, req *model.CreateRefundRequest) (*model.Refund, error)
	ListRefunds(ctx context.Context, actor *model.Actor) ([]model.Refund, error)
	GetRefund(ctx context.Context, actor *model.Actor, id string) (*model.RefundWithOrder, error)
	UpdateStatus(ctx context.Context, actor *model.Actor, id string, req *model.UpdateRefundStatusRequest) (*model.Refund, error)
}

type refundAppImpl struct {
	refundRepo refundrepo.RefundRepository
	orderRepo  orderrepo.OrderRepository
	gateway    payment.Gateway
}

func NewRefundApp(refundRepo refundrepo.RefundRepository, orderRepo orderrepo.OrderRepository, gateway payment.Gateway) RefundApp {
	return &refundAppImpl{refundRepo: refundRepo, orderRepo: orderRepo, gateway: gateway}
}

func (s *refundAppImpl) CreateRefund(ctx context.Context, actor *model.Actor, req *model.CreateRefundRequest) (*model.Refund, error) {
	if actor == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	order, err := s.orderRepo.GetByID(ctx, req.OrderID)
	if err != nil {
		logger.Error("[CreateRefund] err orderRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil || !order.OwnedBy(actor.UserID) {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if order.Status != constant.OrderStatusCompleted {
		return nil, errors.SetCustomError(constant.ErrInvalidOrderStatus)
	}

	amount := order.Total
	if req.Amount != nil {
		if !req.Amount.IsPositive() || req.Amount.GreaterThan(order.Total) {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		amount = *req.Amount
	}

	refund := &model.Refund{
		OrderID: order.ID,
		UserID:  actor.UserID,
		Reason:  req.Reason,
		Amount:  amount,
		Status:  constant.RefundStatusPending,
	}
	if err := s.refundRepo.Create(ctx, refund); err != nil {
		if errors.Is(err, constant.ErrRefundExists) {
			return nil, err
		}
		logger.Error("[CreateRefund] err refundRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return refund, nil
}

// ListRefunds returns every refund to admins and only their own to customers.
func (s *refundAppImpl) ListRefunds(ctx context.Context, actor *model.Actor) ([]model.Refund, error) {
	if actor == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	userID := actor.UserID
	if actor.Admin() {
		userID = ""
	}
	items, err := s.refundRepo.List(ctx, userID)
	if err != nil {
		logger.Error("[ListRefunds] err refundRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *refundAppImpl) GetRefund(ctx context.Context, actor *model.Actor, id string) (*model.RefundWithOrder, error) {
	if actor == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	refund, err := s.refundRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetRefund] err refundRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if refund == nil || (!actor.Admin() && refund.UserID != actor.UserID) {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	order, err := s.orderRepo.GetWithItems(ctx, refund.OrderID)
	if err != nil {
		logger.Error("[GetRefund] err orderRepo.GetWithItems", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.RefundWithOrder{Refund: *refund, Order: order}, nil
}

func (s *refundAppImpl) UpdateStatus(ctx context.Context, actor *model.Actor, id string, req *model.UpdateRefundStatusRequest) (*model.Refund, error) {
	if !actor.Admin() {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	refund, err := s.refundRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateRefundStatus] err refundRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if refund == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if refund.Status == constant.RefundStatusProcessed {
		// processed without a provider id means the payout never completed: a crash or a
		// failed release after the claim. Sending processed again resumes it.
		if refund.StripeRefundID == nil && req.Status == constant.RefundStatusProcessed {
			logger.Warn("[UpdateRefundStatus] resuming unfinished payout", zap.String("refund_id", id), zap.String("by", actor.UserID))
			return s.process(ctx, refund, true)
		}
		return nil, errors.SetCustomError(constant.ErrRefundAlreadyProcessed)
	}
	if !constant.CanTransitionRefund(refund.Status, req.Status) {
		return nil, errors.SetCustomError(constant.ErrInvalidStatusTransition)
	}

	moved, err := s.refundRepo.TransitionStatus(ctx, id, refund.Status, req.Status, req.AdminNotes)
	if err != nil {
		logger.Error("[UpdateRefundStatus] err refundRepo.TransitionStatus", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !moved {
		// another admin changed it first
		return nil, s.conflict(ctx, id)
	}

	refund.Status = req.Status
	if req.AdminNotes != nil {
		refund.AdminNotes = req.AdminNotes
	}
	if req.Status != constant.RefundStatusProcessed {
		logger.Info("[UpdateRefundStatus] refund status changed", zap.String("refund_id", id), zap.String("status", string(req.Status)), zap.String("by", actor.UserID))
		return refund, nil
	}
	return s.process(ctx, refund, false)
}

// process pays the refund back. The status is already claimed as processed and the
// refund id is the idempotency key, so a resumed call never pays twice. A failure on
// a fresh claim hands it back to approved; a failed resume stays processed and
// resumable.
func (s *refundAppImpl) process(ctx context.Context, refund *model.Refund, resume bool) (*model.Refund, error) {
	release := func() {
		if !resume {
			s.release(ctx, refund.ID)
		}
	}

	order, err := s.orderRepo.GetByID(ctx, refund.OrderID)
	if err != nil || order == nil {
		if err == nil {
			err = errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[ProcessRefund] err orderRepo.GetByID", zap.String("refund_id", refund.ID), zap.String("error", err.Error()))
		release()
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	stripeRefundID, err := s.gateway.IssueRefund(ctx, order.PaymentIntentID, refund.Amount, refund.ID)
	if err != nil {
		logger.Error("[ProcessRefund] err gateway.IssueRefund", zap.String("refund_id", refund.ID), zap.String("error", err.Error()))
		release()
		return nil, errors.SetCustomError(constant.ErrPaymentGateway)
	}

	// money has moved; bookkeeping failures below are logged but not reported as a failed refund
	if err := s.refundRepo.SetStripeRefundID(ctx, refund.ID, stripeRefundID); err != nil {
		logger.Error("[ProcessRefund] err refundRepo.SetStripeRefundID", zap.String("refund_id", refund.ID), zap.String("stripe_refund_id", stripeRefundID), zap.String("error", err.Error()))
	}
	if err := s.orderRepo.UpdateStatus(ctx, order.ID, constant.OrderStatusRefunded); err != nil {
		logger.Error("[ProcessRefund] err orderRepo.UpdateStatus", zap.String("order_id", order.ID), zap.String("error", err.Error()))
	}

	refund.Status = constant.RefundStatusProcessed
	refund.StripeRefundID = &stripeRefundID
	logger.Info("[ProcessRefund] refund issued", zap.String("refund_id", refund.ID), zap.String("stripe_refund_id", stripeRefundID))
	return refund, nil
}

// release is only logged on failure: the refund then stays processed without a
// provider id, which UpdateStatus resumes.
func (s *refundAppImpl) release(ctx context.Context, id string) {
	if _, err := s.refundRepo.TransitionStatus(ctx, id, constant.RefundStatusProcessed, constant.RefundStatusApproved, nil); err != nil {
		logger.Error("[ProcessRefund] err release claim", zap.String("refund_id", id), zap.String("error", err.Error()))
	}
}

// conflict reports why a lost transition lost.
func (s *refundAppImpl) conflict(ctx context.Context, id string) error {
	current, err := s.refundRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateRefundStatus] err refundRepo.GetByID reload", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if current != nil && current.Status == constant.RefundStatusProcessed {
		return errors.SetCustomError(constant.ErrRefundAlreadyProcessed)
	}
	return errors.SetCustomError(constant.ErrInvalidStatusTransition)
}
