package order_test

import (
	"context"
	"errors"
	"testing"

	apporder "github.com/muhammadheryan/digital-store/application/order"
	"github.com/muhammadheryan/digital-store/constant"
	ordermocks "github.com/muhammadheryan/digital-store/mocks/repository/order"
	"github.com/muhammadheryan/digital-store/model"
	cerr "github.com/muhammadheryan/digital-store/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func ownedOrder(userID string) *model.OrderWithItems {
	return &model.OrderWithItems{
		Order: model.Order{ID: "order-1", UserID: &userID, Status: constant.OrderStatusCompleted},
		Items: []model.OrderItemDetail{
			{OrderItem: model.OrderItem{ID: "item-1", Position: 0, Quantity: 1, Price: decimal.RequireFromString("19.99")}, ProductName: "Game"},
		},
	}
}

func TestOrderApp_GetOrder(t *testing.T) {
	type fields struct {
		orderRepo *ordermocks.OrderRepository
	}
	type args struct {
		ctx     context.Context
		actor   *model.Actor
		orderID string
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: owner reads order with items",
			fields: fields{orderRepo: ordermocks.NewOrderRepository(t)},
			args:   args{ctx: context.Background(), actor: &model.Actor{UserID: "u-1"}, orderID: "order-1"},
			mockCall: func(f fields) {
				f.orderRepo.On("GetWithItems", mock.Anything, "order-1").Return(ownedOrder("u-1"), nil).Once()
			},
		},
		{
			name:   "success: admin reads any order",
			fields: fields{orderRepo: ordermocks.NewOrderRepository(t)},
			args:   args{ctx: context.Background(), actor: &model.Actor{UserID: "admin", IsAdmin: true}, orderID: "order-1"},
			mockCall: func(f fields) {
				f.orderRepo.On("GetWithItems", mock.Anything, "order-1").Return(ownedOrder("u-1"), nil).Once()
			},
		},
		{
			name:   "error: another user's order reads as not found",
			fields: fields{orderRepo: ordermocks.NewOrderRepository(t)},
			args:   args{ctx: context.Background(), actor: &model.Actor{UserID: "u-2"}, orderID: "order-1"},
			mockCall: func(f fields) {
				f.orderRepo.On("GetWithItems", mock.Anything, "order-1").Return(ownedOrder("u-1"), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:   "error: missing order",
			fields: fields{orderRepo: ordermocks.NewOrderRepository(t)},
			args:   args{ctx: context.Background(), actor: &model.Actor{UserID: "u-1"}, orderID: "order-1"},
			mockCall: func(f fields) {
				f.orderRepo.On("GetWithItems", mock.Anything, "order-1").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:   "error: repository failure",
			fields: fields{orderRepo: ordermocks.NewOrderRepository(t)},
			args:   args{ctx: context.Background(), actor: &model.Actor{UserID: "u-1"}, orderID: "order-1"},
			mockCall: func(f fields) {
				f.orderRepo.On("GetWithItems", mock.Anything, "order-1").Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name:    "error: anonymous caller",
			fields:  fields{orderRepo: ordermocks.NewOrderRepository(t)},
			args:    args{ctx: context.Background(), orderID: "order-1"},
			wantErr: true,
			errCode: constant.ErrUnauthorize,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := apporder.NewOrderApp(tt.fields.orderRepo)

			got, err := app.GetOrder(tt.args.ctx, tt.args.actor, tt.args.orderID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetOrder() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}
			if len(got.Items) != 1 {
				t.Fatalf("GetOrder() items = %d, want 1", len(got.Items))
			}
		})
	}
}

func TestOrderApp_ListOrders(t *testing.T) {
	repo := ordermocks.NewOrderRepository(t)
	repo.On("ListByUser", mock.Anything, "u-1").Return([]model.OrderWithItems{*ownedOrder("u-1")}, nil).Once()
	app := apporder.NewOrderApp(repo)

	got, err := app.ListOrders(context.Background(), &model.Actor{UserID: "u-1"})
	if err != nil {
		t.Fatalf("ListOrders() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("ListOrders() = %d orders, want 1", len(got))
	}
}

func TestOrderApp_GetStats(t *testing.T) {
	repo := ordermocks.NewOrderRepository(t)
	want := &model.UserStats{TotalOrders: 3, TotalSpent: decimal.RequireFromString("59.97"), TotalKeys: 4}
	repo.On("GetUserStats", mock.Anything, "u-1").Return(want, nil).Once()
	app := apporder.NewOrderApp(repo)

	got, err := app.GetStats(context.Background(), &model.Actor{UserID: "u-1"})
	if err != nil {
		t.Fatalf("GetStats() error = %v", err)
	}
	if got != want {
		t.Fatalf("GetStats() = %+v, want %+v", got, want)
	}
}
