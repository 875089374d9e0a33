package fulfillment_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/digital-store/application/fulfillment"
	"github.com/muhammadheryan/digital-store/constant"
	inventorymocks "github.com/muhammadheryan/digital-store/mocks/application/inventory"
	digitalkeymocks "github.com/muhammadheryan/digital-store/mocks/repository/digitalkey"
	ordermocks "github.com/muhammadheryan/digital-store/mocks/repository/order"
	productmocks "github.com/muhammadheryan/digital-store/mocks/repository/product"
	txmocks "github.com/muhammadheryan/digital-store/mocks/repository/tx"
	"github.com/muhammadheryan/digital-store/model"
	cerr "github.com/muhammadheryan/digital-store/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fields struct {
	txRepo       *txmocks.TxRepository
	orderRepo    *ordermocks.OrderRepository
	keyRepo      *digitalkeymocks.DigitalKeyRepository
	productRepo  *productmocks.ProductRepository
	inventoryApp *inventorymocks.InventoryApp
}

func newFields(t *testing.T) fields {
	return fields{
		txRepo:       txmocks.NewTxRepository(t),
		orderRepo:    ordermocks.NewOrderRepository(t),
		keyRepo:      digitalkeymocks.NewDigitalKeyRepository(t),
		productRepo:  productmocks.NewProductRepository(t),
		inventoryApp: inventorymocks.NewInventoryApp(t),
	}
}

func singleUnitEvent() *model.PaymentSucceeded {
	return &model.PaymentSucceeded{
		CorrelationID: "pi_1",
		AmountTotal:   decimal.RequireFromString("9.99"),
		PayerEmail:    "buyer@example.com",
		LineItems: []model.PaymentLineItem{
			{ProductID: "p-1", Quantity: 1, UnitPrice: decimal.RequireFromString("9.99")},
		},
	}
}

var noTx = (*sqlx.Tx)(nil)

func TestFulfillmentApp_HandlePaymentSucceeded(t *testing.T) {
	existing := &model.Order{ID: "order-1", PaymentIntentID: "pi_1"}
	tests := []struct {
		name     string
		event    *model.PaymentSucceeded
		mockCall func(f fields)
		want     *model.FulfillmentResult
		errCode  constant.ErrorType
	}{
		{
			name:  "success: key assigned and inventory checked",
			event: singleUnitEvent(),
			mockCall: func(f fields) {
				f.orderRepo.On("GetByPaymentIntent", mock.Anything, "pi_1").Return(nil, nil).Once()
				f.orderRepo.On("Insert", mock.Anything, mock.MatchedBy(func(o *model.Order) bool {
					return o.Status == constant.OrderStatusCompleted && o.UserID == nil && o.PaymentMethod == constant.PaymentMethodStripe
				})).Return(nil).Once()
				f.orderRepo.On("ListItemPositions", mock.Anything, mock.AnythingOfType("string")).Return([]int{}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(noTx, nil).Once()
				f.keyRepo.On("ReserveTx", mock.Anything, noTx, "p-1").Return(&model.DigitalKey{ID: "k-1"}, nil).Once()
				f.keyRepo.On("MarkUsedTx", mock.Anything, noTx, "k-1", mock.AnythingOfType("string")).Return(nil).Once()
				f.orderRepo.On("InsertItemTx", mock.Anything, noTx, mock.MatchedBy(func(it *model.OrderItem) bool {
					return it.Position == 0 && it.Quantity == 1 && *it.DigitalKeyID == "k-1"
				})).Return(nil).Once()
				f.productRepo.On("DecrementStockTx", mock.Anything, noTx, "p-1").Return(true, nil).Once()
				f.txRepo.On("CommitTx", noTx).Return(nil).Once()
				f.inventoryApp.On("CheckProduct", mock.Anything, "p-1").Return(0, nil).Once()
			},
			want: &model.FulfillmentResult{Units: 1, KeysAssigned: 1},
		},
		{
			name:  "success: duplicate event is a no-op",
			event: singleUnitEvent(),
			mockCall: func(f fields) {
				f.orderRepo.On("GetByPaymentIntent", mock.Anything, "pi_1").Return(existing, nil).Once()
				f.orderRepo.On("ListItemPositions", mock.Anything, "order-1").Return([]int{0}, nil).Once()
			},
			want: &model.FulfillmentResult{OrderID: "order-1", Units: 1, Duplicate: true},
		},
		{
			name:  "success: lost order insert race resumes on the winner",
			event: singleUnitEvent(),
			mockCall: func(f fields) {
				f.orderRepo.On("GetByPaymentIntent", mock.Anything, "pi_1").Return(nil, nil).Once()
				f.orderRepo.On("Insert", mock.Anything, mock.Anything).Return(cerr.SetCustomError(constant.ErrDuplicateOrder)).Once()
				f.orderRepo.On("GetByPaymentIntent", mock.Anything, "pi_1").Return(existing, nil).Once()
				f.orderRepo.On("ListItemPositions", mock.Anything, "order-1").Return([]int{}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(noTx, nil).Once()
				f.keyRepo.On("ReserveTx", mock.Anything, noTx, "p-1").Return(nil, nil).Once()
				f.orderRepo.On("InsertItemTx", mock.Anything, noTx, mock.Anything).Return(cerr.SetCustomError(constant.ErrDuplicateOrder)).Once()
				f.txRepo.On("RollbackTx", noTx).Return(nil).Once()
				f.inventoryApp.On("CheckProduct", mock.Anything, "p-1").Return(0, nil).Once()
			},
			want: &model.FulfillmentResult{OrderID: "order-1", Units: 1},
		},
		{
			name:  "success: inventory failure is not propagated",
			event: singleUnitEvent(),
			mockCall: func(f fields) {
				f.orderRepo.On("GetByPaymentIntent", mock.Anything, "pi_1").Return(existing, nil).Once()
				f.orderRepo.On("ListItemPositions", mock.Anything, "order-1").Return([]int{}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(noTx, nil).Once()
				f.keyRepo.On("ReserveTx", mock.Anything, noTx, "p-1").Return(nil, nil).Once()
				f.orderRepo.On("InsertItemTx", mock.Anything, noTx, mock.MatchedBy(func(it *model.OrderItem) bool {
					return it.DigitalKeyID == nil
				})).Return(nil).Once()
				f.productRepo.On("DecrementStockTx", mock.Anything, noTx, "p-1").Return(false, nil).Once()
				f.txRepo.On("CommitTx", noTx).Return(nil).Once()
				f.inventoryApp.On("CheckProduct", mock.Anything, "p-1").Return(0, cerr.SetCustomError(constant.ErrInternal)).Once()
			},
			want: &model.FulfillmentResult{OrderID: "order-1", Units: 1, KeysPending: 1},
		},
		{
			name:  "error: unit failure rolls back and is reported",
			event: singleUnitEvent(),
			mockCall: func(f fields) {
				f.orderRepo.On("GetByPaymentIntent", mock.Anything, "pi_1").Return(existing, nil).Once()
				f.orderRepo.On("ListItemPositions", mock.Anything, "order-1").Return([]int{}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(noTx, nil).Once()
				f.keyRepo.On("ReserveTx", mock.Anything, noTx, "p-1").Return(&model.DigitalKey{ID: "k-1"}, nil).Once()
				f.keyRepo.On("MarkUsedTx", mock.Anything, noTx, "k-1", "order-1").Return(nil).Once()
				f.orderRepo.On("InsertItemTx", mock.Anything, noTx, mock.Anything).Return(errors.New("connection reset")).Once()
				f.txRepo.On("RollbackTx", noTx).Return(nil).Once()
			},
			errCode: constant.ErrInternal,
		},
		{
			name:  "error: order lookup failure",
			event: singleUnitEvent(),
			mockCall: func(f fields) {
				f.orderRepo.On("GetByPaymentIntent", mock.Anything, "pi_1").Return(nil, errors.New("db down")).Once()
			},
			errCode: constant.ErrInternal,
		},
		{
			name:    "error: event without line items",
			event:   &model.PaymentSucceeded{CorrelationID: "pi_1"},
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:    "error: nil event",
			errCode: constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := fulfillment.NewFulfillmentApp(f.txRepo, f.orderRepo, f.keyRepo, f.productRepo, f.inventoryApp)

			got, err := app.HandlePaymentSucceeded(context.Background(), tt.event)
			if tt.want == nil {
				require.Error(t, err)
				assert.True(t, cerr.Is(err, tt.errCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			if tt.want.OrderID == "" {
				tt.want.OrderID = got.OrderID
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
