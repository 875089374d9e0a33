package dispute_test

import (
	"context"
	"errors"
	"testing"

	appdispute "github.com/muhammadheryan/digital-store/application/dispute"
	"github.com/muhammadheryan/digital-store/constant"
	disputemocks "github.com/muhammadheryan/digital-store/mocks/repository/dispute"
	ordermocks "github.com/muhammadheryan/digital-store/mocks/repository/order"
	"github.com/muhammadheryan/digital-store/model"
	cerr "github.com/muhammadheryan/digital-store/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	admin    = &model.Actor{UserID: "admin-1", IsAdmin: true}
	customer = &model.Actor{UserID: "u-1"}
)

type fields struct {
	disputeRepo *disputemocks.DisputeRepository
	orderRepo   *ordermocks.OrderRepository
}

func disputeIn(status constant.DisputeStatus) *model.Dispute {
	return &model.Dispute{ID: "d-1", OrderID: "order-1", UserID: "u-1", Status: status}
}

func TestDisputeApp_CreateDispute(t *testing.T) {
	owner := "u-1"
	order := &model.Order{ID: "order-1", UserID: &owner, Total: decimal.RequireFromString("24.98")}
	tests := []struct {
		name     string
		actor    *model.Actor
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success: amount is the order total",
			actor: customer,
			mockCall: func(f fields) {
				f.orderRepo.On("GetByID", mock.Anything, "order-1").Return(order, nil).Once()
				f.disputeRepo.On("Create", mock.Anything, mock.MatchedBy(func(d *model.Dispute) bool {
					return d.Amount.Equal(order.Total) && d.Status == constant.DisputeStatusOpen && d.UserID == "u-1"
				})).Return(nil).Once()
			},
		},
		{
			name:  "error: not the order owner",
			actor: &model.Actor{UserID: "u-2"},
			mockCall: func(f fields) {
				f.orderRepo.On("GetByID", mock.Anything, "order-1").Return(order, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:  "error: repository failure",
			actor: customer,
			mockCall: func(f fields) {
				f.orderRepo.On("GetByID", mock.Anything, "order-1").Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{disputeRepo: disputemocks.NewDisputeRepository(t), orderRepo: ordermocks.NewOrderRepository(t)}
			tt.mockCall(f)
			app := appdispute.NewDisputeApp(f.disputeRepo, f.orderRepo)

			_, err := app.CreateDispute(context.Background(), tt.actor, &model.CreateDisputeRequest{
				OrderID: "order-1", Type: "item_not_received", Description: "never got my key",
			})
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateDispute() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assert.True(t, cerr.Is(err, tt.errCode), "got %v", err)
			}
		})
	}
}

func TestDisputeApp_UpdateStatus(t *testing.T) {
	resolution := "refunded through support"
	tests := []struct {
		name     string
		actor    *model.Actor
		req      *model.UpdateDisputeStatusRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success: investigating keeps no resolution",
			actor: admin,
			req:   &model.UpdateDisputeStatusRequest{Status: constant.DisputeStatusInvestigating, Resolution: &resolution},
			mockCall: func(f fields) {
				f.disputeRepo.On("GetByID", mock.Anything, "d-1").Return(disputeIn(constant.DisputeStatusOpen), nil).Once()
				f.disputeRepo.On("TransitionStatus", mock.Anything, "d-1", constant.DisputeStatusOpen, constant.DisputeStatusInvestigating, (*string)(nil)).Return(true, nil).Once()
			},
		},
		{
			name:  "success: resolve records resolution",
			actor: admin,
			req:   &model.UpdateDisputeStatusRequest{Status: constant.DisputeStatusResolved, Resolution: &resolution},
			mockCall: func(f fields) {
				f.disputeRepo.On("GetByID", mock.Anything, "d-1").Return(disputeIn(constant.DisputeStatusInvestigating), nil).Once()
				f.disputeRepo.On("TransitionStatus", mock.Anything, "d-1", constant.DisputeStatusInvestigating, constant.DisputeStatusResolved, &resolution).Return(true, nil).Once()
			},
		},
		{
			name:  "error: resolved cannot go back",
			actor: admin,
			req:   &model.UpdateDisputeStatusRequest{Status: constant.DisputeStatusInvestigating},
			mockCall: func(f fields) {
				f.disputeRepo.On("GetByID", mock.Anything, "d-1").Return(disputeIn(constant.DisputeStatusResolved), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidStatusTransition,
		},
		{
			name:    "error: customer is forbidden",
			actor:   customer,
			req:     &model.UpdateDisputeStatusRequest{Status: constant.DisputeStatusClosed},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{disputeRepo: disputemocks.NewDisputeRepository(t), orderRepo: ordermocks.NewOrderRepository(t)}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appdispute.NewDisputeApp(f.disputeRepo, f.orderRepo)

			got, err := app.UpdateStatus(context.Background(), tt.actor, "d-1", tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateStatus() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assert.True(t, cerr.Is(err, tt.errCode), "got %v", err)
				return
			}
			assert.Equal(t, tt.req.Status, got.Status)
		})
	}
}

func TestDisputeApp_GetDispute(t *testing.T) {
	f := fields{disputeRepo: disputemocks.NewDisputeRepository(t), orderRepo: ordermocks.NewOrderRepository(t)}
	f.disputeRepo.On("GetByID", mock.Anything, "d-1").Return(disputeIn(constant.DisputeStatusOpen), nil).Twice()
	f.orderRepo.On("GetWithItems", mock.Anything, "order-1").Return(&model.OrderWithItems{Order: model.Order{ID: "order-1"}}, nil).Once()
	app := appdispute.NewDisputeApp(f.disputeRepo, f.orderRepo)

	got, err := app.GetDispute(context.Background(), admin, "d-1")
	require.NoError(t, err)
	assert.Equal(t, "order-1", got.Order.ID)

	_, err = app.GetDispute(context.Background(), &model.Actor{UserID: "u-2"}, "d-1")
	assert.True(t, cerr.Is(err, constant.ErrNotFound))
}
