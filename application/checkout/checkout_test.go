package checkout_test

import (
	"context"
	"errors"
	"testing"

	appcheckout "github.com/muhammadheryan/digital-store/application/checkout"
	"github.com/muhammadheryan/digital-store/cmd/config"
	"github.com/muhammadheryan/digital-store/constant"
	productmocks "github.com/muhammadheryan/digital-store/mocks/repository/product"
	paymentmocks "github.com/muhammadheryan/digital-store/mocks/thirdparty/payment"
	"github.com/muhammadheryan/digital-store/model"
	cerr "github.com/muhammadheryan/digital-store/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckoutApp_CreateOrderIntent(t *testing.T) {
	type fields struct {
		productRepo *productmocks.ProductRepository
		gateway     *paymentmocks.Gateway
	}
	cfg := &config.Config{
		Stripe:   config.StripeConfig{Currency: "usd"},
		Checkout: config.CheckoutConfig{ProcessingFee: decimal.RequireFromString("2.99")},
	}
	catalog := []model.Product{
		{ID: "p-1", Price: decimal.RequireFromString("19.99"), IsActive: true},
		{ID: "p-2", Price: decimal.RequireFromString("5.00"), IsActive: true},
	}
	buyer := &model.Actor{UserID: "u-1", Email: "buyer@example.com"}

	tests := []struct {
		name      string
		actor     *model.Actor
		req       *model.OrderIntentRequest
		mockCall  func(f fields)
		wantTotal string
		errCode   constant.ErrorType
	}{
		{
			name:  "success: catalog prices, merged quantities and fee",
			actor: buyer,
			req: &model.OrderIntentRequest{Items: []model.CartItem{
				{ProductID: "p-1", Quantity: 1},
				{ProductID: "p-2", Quantity: 2},
				{ProductID: "p-1", Quantity: 1},
			}},
			mockCall: func(f fields) {
				f.productRepo.On("GetByIDs", mock.Anything, []string{"p-1", "p-2"}).Return(catalog, nil).Once()
				f.gateway.On("CreatePaymentIntent", mock.Anything, mock.MatchedBy(func(r *model.PaymentIntentRequest) bool {
					return r.Amount.Equal(decimal.RequireFromString("52.97")) &&
						r.Email == "buyer@example.com" && r.UserID == "u-1" &&
						len(r.LineItems) == 2 && r.LineItems[0].Quantity == 2 && r.LineItems[1].Quantity == 2
				})).Return(&model.PaymentIntent{ID: "pi_1", ClientSecret: "secret"}, nil).Once()
			},
			wantTotal: "52.97",
		},
		{
			name: "success: guest with email",
			req:  &model.OrderIntentRequest{Email: "guest@example.com", Items: []model.CartItem{{ProductID: "p-2", Quantity: 1}}},
			mockCall: func(f fields) {
				f.productRepo.On("GetByIDs", mock.Anything, []string{"p-2"}).Return(catalog[1:], nil).Once()
				f.gateway.On("CreatePaymentIntent", mock.Anything, mock.MatchedBy(func(r *model.PaymentIntentRequest) bool {
					return r.UserID == "" && r.Email == "guest@example.com"
				})).Return(&model.PaymentIntent{ID: "pi_2"}, nil).Once()
			},
			wantTotal: "7.99",
		},
		{
			name: "error: guest without email",
			req:  &model.OrderIntentRequest{Items: []model.CartItem{{ProductID: "p-2", Quantity: 1}}},
			mockCall: func(f fields) {
				f.productRepo.On("GetByIDs", mock.Anything, []string{"p-2"}).Return(catalog[1:], nil).Once()
			},
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:  "error: unknown product",
			actor: buyer,
			req:   &model.OrderIntentRequest{Items: []model.CartItem{{ProductID: "p-9", Quantity: 1}}},
			mockCall: func(f fields) {
				f.productRepo.On("GetByIDs", mock.Anything, []string{"p-9"}).Return([]model.Product{}, nil).Once()
			},
			errCode: constant.ErrNotFound,
		},
		{
			name:  "error: inactive product",
			actor: buyer,
			req:   &model.OrderIntentRequest{Items: []model.CartItem{{ProductID: "p-1", Quantity: 1}}},
			mockCall: func(f fields) {
				f.productRepo.On("GetByIDs", mock.Anything, []string{"p-1"}).
					Return([]model.Product{{ID: "p-1", Price: decimal.NewFromInt(1), IsActive: false}}, nil).Once()
			},
			errCode: constant.ErrProductInactive,
		},
		{
			name:  "error: gateway failure",
			actor: buyer,
			req:   &model.OrderIntentRequest{Items: []model.CartItem{{ProductID: "p-1", Quantity: 1}}},
			mockCall: func(f fields) {
				f.productRepo.On("GetByIDs", mock.Anything, []string{"p-1"}).Return(catalog[:1], nil).Once()
				f.gateway.On("CreatePaymentIntent", mock.Anything, mock.Anything).Return(nil, errors.New("api down")).Once()
			},
			errCode: constant.ErrPaymentGateway,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{productRepo: productmocks.NewProductRepository(t), gateway: paymentmocks.NewGateway(t)}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appcheckout.NewCheckoutApp(cfg, f.productRepo, f.gateway)

			got, err := app.CreateOrderIntent(context.Background(), tt.actor, tt.req)
			if tt.wantTotal == "" {
				require.Error(t, err)
				assert.True(t, cerr.Is(err, tt.errCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Total.Equal(decimal.RequireFromString(tt.wantTotal)), "total = %s", got.Total)
			assert.True(t, got.ProcessingFee.Equal(decimal.RequireFromString("2.99")))
			assert.Equal(t, "usd", got.Currency)
		})
	}
}
