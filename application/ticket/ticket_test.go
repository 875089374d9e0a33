package ticket_test

import (
	"context"
	"testing"

	appticket "github.com/muhammadheryan/digital-store/application/ticket"
	"github.com/muhammadheryan/digital-store/constant"
	ordermocks "github.com/muhammadheryan/digital-store/mocks/repository/order"
	ticketmocks "github.com/muhammadheryan/digital-store/mocks/repository/ticket"
	"github.com/muhammadheryan/digital-store/model"
	cerr "github.com/muhammadheryan/digital-store/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	admin    = &model.Actor{UserID: "admin-1", IsAdmin: true}
	customer = &model.Actor{UserID: "u-1"}
)

type fields struct {
	ticketRepo *ticketmocks.TicketRepository
	orderRepo  *ordermocks.OrderRepository
}

func newApp(t *testing.T) (fields, appticket.TicketApp) {
	f := fields{ticketRepo: ticketmocks.NewTicketRepository(t), orderRepo: ordermocks.NewOrderRepository(t)}
	return f, appticket.NewTicketApp(f.ticketRepo, f.orderRepo)
}

func ticketIn(status constant.TicketStatus) *model.SupportTicket {
	return &model.SupportTicket{ID: "t-1", UserID: "u-1", Status: status, Priority: constant.TicketPriorityMedium}
}

func TestTicketApp_CreateTicket(t *testing.T) {
	orderID := "order-1"
	owner := "u-1"
	tests := []struct {
		name     string
		req      *model.CreateTicketRequest
		mockCall func(f fields)
		errCode  constant.ErrorType
	}{
		{
			name: "success: default priority is medium",
			req:  &model.CreateTicketRequest{Subject: "Key missing", Description: "no key", Category: "order_issue"},
			mockCall: func(f fields) {
				f.ticketRepo.On("Create", mock.Anything, mock.MatchedBy(func(tk *model.SupportTicket) bool {
					return tk.Priority == constant.TicketPriorityMedium && tk.Status == constant.TicketStatusOpen && tk.OrderID == nil
				})).Return(nil).Once()
			},
		},
		{
			name: "success: linked to own order",
			req:  &model.CreateTicketRequest{OrderID: &orderID, Subject: "Key missing", Description: "no key", Category: "order_issue", Priority: constant.TicketPriorityHigh},
			mockCall: func(f fields) {
				f.orderRepo.On("GetByID", mock.Anything, "order-1").Return(&model.Order{ID: "order-1", UserID: &owner}, nil).Once()
				f.ticketRepo.On("Create", mock.Anything, mock.MatchedBy(func(tk *model.SupportTicket) bool {
					return tk.Priority == constant.TicketPriorityHigh && *tk.OrderID == "order-1"
				})).Return(nil).Once()
			},
		},
		{
			name: "error: order of another user",
			req:  &model.CreateTicketRequest{OrderID: &orderID, Subject: "Key missing", Description: "no key", Category: "order_issue"},
			mockCall: func(f fields) {
				other := "u-2"
				f.orderRepo.On("GetByID", mock.Anything, "order-1").Return(&model.Order{ID: "order-1", UserID: &other}, nil).Once()
			},
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f, app := newApp(t)
			tt.mockCall(f)

			got, err := app.CreateTicket(context.Background(), customer, tt.req)
			if tt.errCode != constant.Successful {
				assert.True(t, cerr.Is(err, tt.errCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "u-1", got.UserID)
		})
	}
}

func TestTicketApp_UpdateStatus(t *testing.T) {
	tests := []struct {
		name     string
		actor    *model.Actor
		to       constant.TicketStatus
		mockCall func(f fields)
		errCode  constant.ErrorType
	}{
		{
			name:  "success: open to in_progress",
			actor: admin,
			to:    constant.TicketStatusInProgress,
			mockCall: func(f fields) {
				f.ticketRepo.On("GetByID", mock.Anything, "t-1").Return(ticketIn(constant.TicketStatusOpen), nil).Once()
				f.ticketRepo.On("TransitionStatus", mock.Anything, "t-1", constant.TicketStatusOpen, constant.TicketStatusInProgress).Return(true, nil).Once()
			},
		},
		{
			name:  "error: closed ticket cannot reopen",
			actor: admin,
			to:    constant.TicketStatusOpen,
			mockCall: func(f fields) {
				f.ticketRepo.On("GetByID", mock.Anything, "t-1").Return(ticketIn(constant.TicketStatusClosed), nil).Once()
			},
			errCode: constant.ErrInvalidStatusTransition,
		},
		{
			name:  "error: lost race",
			actor: admin,
			to:    constant.TicketStatusResolved,
			mockCall: func(f fields) {
				f.ticketRepo.On("GetByID", mock.Anything, "t-1").Return(ticketIn(constant.TicketStatusInProgress), nil).Once()
				f.ticketRepo.On("TransitionStatus", mock.Anything, "t-1", constant.TicketStatusInProgress, constant.TicketStatusResolved).Return(false, nil).Once()
			},
			errCode: constant.ErrInvalidStatusTransition,
		},
		{
			name:    "error: customer is forbidden",
			actor:   customer,
			to:      constant.TicketStatusClosed,
			errCode: constant.ErrForbidden,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f, app := newApp(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := app.UpdateStatus(context.Background(), tt.actor, "t-1", &model.UpdateTicketStatusRequest{Status: tt.to})
			if tt.errCode != constant.Successful {
				assert.True(t, cerr.Is(err, tt.errCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, got.Status)
		})
	}
}

func TestTicketApp_Assign(t *testing.T) {
	f, app := newApp(t)
	tk := ticketIn(constant.TicketStatusOpen)
	previous := "admin-2"
	tk.AssignedTo = &previous
	f.ticketRepo.On("GetByID", mock.Anything, "t-1").Return(tk, nil).Once()
	f.ticketRepo.On("Assign", mock.Anything, "t-1", "admin-3").Return(nil).Once()

	got, err := app.Assign(context.Background(), admin, "t-1", &model.AssignTicketRequest{AssignedTo: "admin-3"})
	require.NoError(t, err)
	assert.Equal(t, "admin-3", *got.AssignedTo)
}

func TestTicketApp_Messages(t *testing.T) {
	t.Run("customer cannot post internal notes", func(t *testing.T) {
		_, app := newApp(t)

		_, err := app.AddMessage(context.Background(), customer, "t-1", &model.TicketMessageRequest{Message: "hi", IsInternal: true})
		assert.True(t, cerr.Is(err, constant.ErrForbidden))
	})

	t.Run("stranger cannot post", func(t *testing.T) {
		f, app := newApp(t)
		f.ticketRepo.On("GetByID", mock.Anything, "t-1").Return(ticketIn(constant.TicketStatusOpen), nil).Once()

		_, err := app.AddMessage(context.Background(), &model.Actor{UserID: "u-2"}, "t-1", &model.TicketMessageRequest{Message: "hi"})
		assert.True(t, cerr.Is(err, constant.ErrNotFound))
	})

	t.Run("owner posts", func(t *testing.T) {
		f, app := newApp(t)
		f.ticketRepo.On("GetByID", mock.Anything, "t-1").Return(ticketIn(constant.TicketStatusOpen), nil).Once()
		f.ticketRepo.On("AddMessage", mock.Anything, mock.MatchedBy(func(m *model.TicketMessage) bool {
			return m.TicketID == "t-1" && m.UserID == "u-1" && !m.IsInternal
		})).Return(nil).Once()

		_, err := app.AddMessage(context.Background(), customer, "t-1", &model.TicketMessageRequest{Message: "still waiting"})
		require.NoError(t, err)
	})

	t.Run("customer view hides internal notes", func(t *testing.T) {
		f, app := newApp(t)
		f.ticketRepo.On("GetByID", mock.Anything, "t-1").Return(ticketIn(constant.TicketStatusOpen), nil).Once()
		f.ticketRepo.On("ListMessages", mock.Anything, "t-1", false).Return([]model.TicketMessage{{ID: "m-1"}}, nil).Once()

		got, err := app.GetTicket(context.Background(), customer, "t-1")
		require.NoError(t, err)
		assert.Len(t, got.Messages, 1)
	})

	t.Run("admin view includes internal notes", func(t *testing.T) {
		f, app := newApp(t)
		f.ticketRepo.On("GetByID", mock.Anything, "t-1").Return(ticketIn(constant.TicketStatusOpen), nil).Once()
		f.ticketRepo.On("ListMessages", mock.Anything, "t-1", true).Return([]model.TicketMessage{{ID: "m-1"}, {ID: "m-2", IsInternal: true}}, nil).Once()

		got, err := app.GetTicket(context.Background(), admin, "t-1")
		require.NoError(t, err)
		assert.Len(t, got.Messages, 2)
	})
}

func TestTicketApp_ListTickets(t *testing.T) {
	f, app := newApp(t)
	f.ticketRepo.On("List", mock.Anything, "").Return([]model.SupportTicket{*ticketIn(constant.TicketStatusOpen)}, nil).Once()
	f.ticketRepo.On("List", mock.Anything, "u-1").Return([]model.SupportTicket{}, nil).Once()

	all, err := app.ListTickets(context.Background(), admin)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	own, err := app.ListTickets(context.Background(), customer)
	require.NoError(t, err)
	assert.Empty(t, own)
}
