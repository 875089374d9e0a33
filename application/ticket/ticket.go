package ticket

import (
	"context"

	"github.com/muhammadheryan/digital-store/constant"
	"github.com/muhammadheryan/digital-store/model"
	orderrepo "github.com/muhammadheryan/digital-store/repository/order"
	ticketrepo "github.com/muhammadheryan/digital-store/repository/ticket"
	"github.com/muhammadheryan/digital-store/utils/errors"
	"github.com/muhammadheryan/digital-store/utils/logger"
	"go.uber.org/zap"
)

type TicketApp interface {
	CreateTicket(ctx context.Context, actor *model.Actor, req *model.CreateTicketRequest) (*model.SupportTicket, error)
	ListTickets(ctx context.Context, actor *model.Actor) ([]model.SupportTicket, error)
	GetTicket(ctx context.Context, actor *model.Actor, id string) (*model.SupportTicketWithMessages, error)
	UpdateStatus(ctx context.Context, actor *model.Actor, id string, req *model.UpdateTicketStatusRequest) (*model.SupportTicket, error)
	Assign(ctx context.Context, actor *model.Actor, id string, req *model.AssignTicketRequest) (*model.SupportTicket, error)
	AddMessage(ctx context.Context, actor *model.Actor, id string, req *model.TicketMessageRequest) (*model.TicketMessage, error)
}

type ticketAppImpl struct {
	ticketRepo ticketrepo.TicketRepository
	orderRepo  orderrepo.OrderRepository
}

func NewTicketApp(ticketRepo ticketrepo.TicketRepository, orderRepo orderrepo.OrderRepository) TicketApp {
	return &ticketAppImpl{ticketRepo: ticketRepo, orderRepo: orderRepo}
}

func (s *ticketAppImpl) CreateTicket(ctx context.Context, actor *model.Actor, req *model.CreateTicketRequest) (*model.SupportTicket, error) {
	if actor == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	if req.OrderID != nil && *req.OrderID != "" {
		order, err := s.orderRepo.GetByID(ctx, *req.OrderID)
		if err != nil {
			logger.Error("[CreateTicket] err orderRepo.GetByID", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if order == nil || !order.OwnedBy(actor.UserID) {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
	} else {
		req.OrderID = nil
	}

	priority := req.Priority
	if priority == "" {
		priority = constant.TicketPriorityMedium
	}
	t := &model.SupportTicket{
		UserID:      actor.UserID,
		OrderID:     req.OrderID,
		Subject:     req.Subject,
		Description: req.Description,
		Category:    req.Category,
		Priority:    priority,
		Status:      constant.TicketStatusOpen,
	}
	if err := s.ticketRepo.Create(ctx, t); err != nil {
		logger.Error("[CreateTicket] err ticketRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return t, nil
}

func (s *ticketAppImpl) ListTickets(ctx context.Context, actor *model.Actor) ([]model.SupportTicket, error) {
	if actor == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	userID := actor.UserID
	if actor.Admin() {
		userID = ""
	}
	items, err := s.ticketRepo.List(ctx, userID)
	if err != nil {
		logger.Error("[ListTickets] err ticketRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

// GetTicket returns the ticket and its thread. Internal notes are only shown to admins.
func (s *ticketAppImpl) GetTicket(ctx context.Context, actor *model.Actor, id string) (*model.SupportTicketWithMessages, error) {
	t, err := s.visible(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	msgs, err := s.ticketRepo.ListMessages(ctx, id, actor.Admin())
	if err != nil {
		logger.Error("[GetTicket] err ticketRepo.ListMessages", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.SupportTicketWithMessages{SupportTicket: *t, Messages: msgs}, nil
}

func (s *ticketAppImpl) UpdateStatus(ctx context.Context, actor *model.Actor, id string, req *model.UpdateTicketStatusRequest) (*model.SupportTicket, error) {
	if !actor.Admin() {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	t, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !constant.CanTransitionTicket(t.Status, req.Status) {
		return nil, errors.SetCustomError(constant.ErrInvalidStatusTransition)
	}

	moved, err := s.ticketRepo.TransitionStatus(ctx, id, t.Status, req.Status)
	if err != nil {
		logger.Error("[UpdateTicketStatus] err ticketRepo.TransitionStatus", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !moved {
		return nil, errors.SetCustomError(constant.ErrInvalidStatusTransition)
	}
	t.Status = req.Status
	return t, nil
}

// Assign hands the ticket to an admin, replacing any previous assignee.
func (s *ticketAppImpl) Assign(ctx context.Context, actor *model.Actor, id string, req *model.AssignTicketRequest) (*model.SupportTicket, error) {
	if !actor.Admin() {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	t, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.ticketRepo.Assign(ctx, id, req.AssignedTo); err != nil {
		logger.Error("[AssignTicket] err ticketRepo.Assign", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	assignee := req.AssignedTo
	t.AssignedTo = &assignee
	return t, nil
}

func (s *ticketAppImpl) AddMessage(ctx context.Context, actor *model.Actor, id string, req *model.TicketMessageRequest) (*model.TicketMessage, error) {
	if req.IsInternal && !actor.Admin() {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	if _, err := s.visible(ctx, actor, id); err != nil {
		return nil, err
	}

	m := &model.TicketMessage{
		TicketID:   id,
		UserID:     actor.UserID,
		Message:    req.Message,
		IsInternal: req.IsInternal,
	}
	if err := s.ticketRepo.AddMessage(ctx, m); err != nil {
		logger.Error("[AddTicketMessage] err ticketRepo.AddMessage", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return m, nil
}

func (s *ticketAppImpl) get(ctx context.Context, id string) (*model.SupportTicket, error) {
	t, err := s.ticketRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[Ticket] err ticketRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if t == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return t, nil
}

// visible loads a ticket the actor may see: their own, or any for admins.
func (s *ticketAppImpl) visible(ctx context.Context, actor *model.Actor, id string) (*model.SupportTicket, error) {
	if actor == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	t, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.Admin() && t.UserID != actor.UserID {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return t, nil
}
