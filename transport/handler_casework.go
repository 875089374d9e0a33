package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/digital-store/model"
)

// CreateRefund handler
// @Summary Request a refund
// @Tags Refunds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateRefundRequest true "Refund"
// @Success 201 {object} model.Refund
// @Failure 409 {object} Response
// @Router /api/v1/refunds [post]
func (s *RestHandler) CreateRefund(w http.ResponseWriter, r *http.Request) {
	var req model.CreateRefundRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := s.RefundApp.CreateRefund(r.Context(), actor(r), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// ListRefunds handler
// @Summary List refunds
// @Description Admins see every refund, customers their own
// @Tags Refunds
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Refund
// @Router /api/v1/refunds [get]
func (s *RestHandler) ListRefunds(w http.ResponseWriter, r *http.Request) {
	res, err := s.RefundApp.ListRefunds(r.Context(), actor(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetRefund handler
// @Summary Get refund
// @Tags Refunds
// @Produce json
// @Security BearerAuth
// @Param id path string true "Refund ID"
// @Success 200 {object} model.RefundWithOrder
// @Router /api/v1/refunds/{id} [get]
func (s *RestHandler) GetRefund(w http.ResponseWriter, r *http.Request) {
	res, err := s.RefundApp.GetRefund(r.Context(), actor(r), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateRefundStatus handler
// @Summary Move a refund to a new status
// @Description Moving to processed issues the refund at the payment provider
// @Tags Refunds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Refund ID"
// @Param request body model.UpdateRefundStatusRequest true "Status"
// @Success 200 {object} model.Refund
// @Failure 409 {object} Response
// @Failure 502 {object} Response
// @Router /api/v1/refunds/{id}/status [patch]
func (s *RestHandler) UpdateRefundStatus(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateRefundStatusRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := s.RefundApp.UpdateStatus(r.Context(), actor(r), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateTicket handler
// @Summary Open a support ticket
// @Tags Tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateTicketRequest true "Ticket"
// @Success 201 {object} model.SupportTicket
// @Router /api/v1/tickets [post]
func (s *RestHandler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	var req model.CreateTicketRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := s.TicketApp.CreateTicket(r.Context(), actor(r), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// ListTickets handler
// @Summary List tickets
// @Tags Tickets
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.SupportTicket
// @Router /api/v1/tickets [get]
func (s *RestHandler) ListTickets(w http.ResponseWriter, r *http.Request) {
	res, err := s.TicketApp.ListTickets(r.Context(), actor(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetTicket handler
// @Summary Get ticket with messages
// @Tags Tickets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 200 {object} model.SupportTicketWithMessages
// @Router /api/v1/tickets/{id} [get]
func (s *RestHandler) GetTicket(w http.ResponseWriter, r *http.Request) {
	res, err := s.TicketApp.GetTicket(r.Context(), actor(r), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateTicketStatus handler
// @Summary Move a ticket to a new status
// @Tags Tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Param request body model.UpdateTicketStatusRequest true "Status"
// @Success 200 {object} model.SupportTicket
// @Router /api/v1/tickets/{id}/status [patch]
func (s *RestHandler) UpdateTicketStatus(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateTicketStatusRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := s.TicketApp.UpdateStatus(r.Context(), actor(r), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AssignTicket handler
// @Summary Assign a ticket
// @Tags Tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Param request body model.AssignTicketRequest true "Assignee"
// @Success 200 {object} model.SupportTicket
// @Router /api/v1/tickets/{id}/assign [patch]
func (s *RestHandler) AssignTicket(w http.ResponseWriter, r *http.Request) {
	var req model.AssignTicketRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := s.TicketApp.Assign(r.Context(), actor(r), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AddTicketMessage handler
// @Summary Post a message on a ticket
// @Tags Tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Param request body model.TicketMessageRequest true "Message"
// @Success 201 {object} model.TicketMessage
// @Router /api/v1/tickets/{id}/messages [post]
func (s *RestHandler) AddTicketMessage(w http.ResponseWriter, r *http.Request) {
	var req model.TicketMessageRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := s.TicketApp.AddMessage(r.Context(), actor(r), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// CreateDispute handler
// @Summary Open a dispute on an order
// @Tags Disputes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateDisputeRequest true "Dispute"
// @Success 201 {object} model.Dispute
// @Router /api/v1/disputes [post]
func (s *RestHandler) CreateDispute(w http.ResponseWriter, r *http.Request) {
	var req model.CreateDisputeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := s.DisputeApp.CreateDispute(r.Context(), actor(r), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// ListDisputes handler
// @Summary List disputes
// @Tags Disputes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Dispute
// @Router /api/v1/disputes [get]
func (s *RestHandler) ListDisputes(w http.ResponseWriter, r *http.Request) {
	res, err := s.DisputeApp.ListDisputes(r.Context(), actor(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetDispute handler
// @Summary Get dispute with its order
// @Tags Disputes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Dispute ID"
// @Success 200 {object} model.DisputeWithOrder
// @Router /api/v1/disputes/{id} [get]
func (s *RestHandler) GetDispute(w http.ResponseWriter, r *http.Request) {
	res, err := s.DisputeApp.GetDispute(r.Context(), actor(r), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateDisputeStatus handler
// @Summary Move a dispute to a new status
// @Tags Disputes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Dispute ID"
// @Param request body model.UpdateDisputeStatusRequest true "Status"
// @Success 200 {object} model.Dispute
// @Router /api/v1/disputes/{id}/status [patch]
func (s *RestHandler) UpdateDisputeStatus(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateDisputeStatusRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := s.DisputeApp.UpdateStatus(r.Context(), actor(r), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
