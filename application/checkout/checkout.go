package checkout

import (
	"context"

	"github.com/muhammadheryan/digital-store/cmd/config"
	"github.com/muhammadheryan/digital-store/constant"
	"github.com/muhammadheryan/digital-store/model"
	productrepo "github.com/muhammadheryan/digital-store/repository/product"
	"github.com/muhammadheryan/digital-store/thirdparty/payment"
	"github.com/muhammadheryan/digital-store/utils/errors"
	"github.com/muhammadheryan/digital-store/utils/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CheckoutApp prices a cart from the catalog and opens a payment for it.
type CheckoutApp interface {
	CreateOrderIntent(ctx context.Context, actor *model.Actor, req *model.OrderIntentRequest) (*model.OrderIntentResponse, error)
}

type checkoutAppImpl struct {
	config      *config.Config
	productRepo productrepo.ProductRepository
	gateway     payment.Gateway
}

func NewCheckoutApp(config *config.Config, productRepo productrepo.ProductRepository, gateway payment.Gateway) CheckoutApp {
	return &checkoutAppImpl{config: config, productRepo: productRepo, gateway: gateway}
}

func (s *checkoutAppImpl) CreateOrderIntent(ctx context.Context, actor *model.Actor, req *model.OrderIntentRequest) (*model.OrderIntentResponse, error) {
	// merge repeated products so each becomes one line item
	quantities := make(map[string]int, len(req.Items))
	ids := make([]string, 0, len(req.Items))
	for _, it := range req.Items {
		if it.Quantity <= 0 {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		if _, ok := quantities[it.ProductID]; !ok {
			ids = append(ids, it.ProductID)
		}
		quantities[it.ProductID] += it.Quantity
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		logger.Error("[CreateOrderIntent] err productRepo.GetByIDs", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	subtotal := decimal.Zero
	lines := make([]model.PaymentLineItem, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		if !p.IsActive {
			return nil, errors.SetCustomError(constant.ErrProductInactive)
		}
		qty := quantities[id]
		subtotal = subtotal.Add(p.Price.Mul(decimal.NewFromInt(int64(qty))))
		lines = append(lines, model.PaymentLineItem{ProductID: id, Quantity: qty, UnitPrice: p.Price})
	}

	fee := s.config.Checkout.ProcessingFee
	total := subtotal.Add(fee)

	email := req.Email
	userID := ""
	if actor != nil {
		userID = actor.UserID
		if email == "" {
			email = actor.Email
		}
	}
	// keys are delivered by email, guests must give one
	if email == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	intent, err := s.gateway.CreatePaymentIntent(ctx, &model.PaymentIntentRequest{
		Amount:    total,
		Currency:  s.config.Stripe.Currency,
		Email:     email,
		UserID:    userID,
		LineItems: lines,
	})
	if err != nil {
		logger.Error("[CreateOrderIntent] err gateway.CreatePaymentIntent", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrPaymentGateway)
	}

	return &model.OrderIntentResponse{
		ClientSecret:  intent.ClientSecret,
		PaymentIntent: intent.ID,
		Subtotal:      subtotal,
		ProcessingFee: fee,
		Total:         total,
		Currency:      s.config.Stripe.Currency,
	}, nil
}
