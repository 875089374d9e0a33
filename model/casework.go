package model

import (
	"time"

	"github.com/muhammadheryan/digital-store/constant"
	"github.com/shopspring/decimal"
)

type Refund struct {
	ID             string                `db:"id" json:"id"`
	OrderID        string                `db:"order_id" json:"order_id"`
	UserID         string                `db:"user_id" json:"user_id"`
	Reason         string                `db:"reason" json:"reason"`
	Amount         decimal.Decimal       `db:"amount" json:"amount"`
	Status         constant.RefundStatus `db:"status" json:"status"`
	AdminNotes     *string               `db:"admin_notes" json:"admin_notes,omitempty"`
	StripeRefundID *string               `db:"stripe_refund_id" json:"stripe_refund_id,omitempty"`
	CreatedAt      time.Time             `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time             `db:"updated_at" json:"updated_at"`
}

type RefundWithOrder struct {
	Refund
	Order *OrderWithItems `json:"order"`
}

type CreateRefundRequest struct {
	OrderID string           `json:"order_id" validate:"required"`
	Reason  string           `json:"reason" validate:"required,min=10"`
	Amount  *decimal.Decimal `json:"amount"`
}

type UpdateRefundStatusRequest struct {
	Status     constant.RefundStatus `json:"status" validate:"required,oneof=pending approved rejected processed"`
	AdminNotes *string               `json:"admin_notes"`
}

type SupportTicket struct {
	ID          string                  `db:"id" json:"id"`
	UserID      string                  `db:"user_id" json:"user_id"`
	OrderID     *string                 `db:"order_id" json:"order_id,omitempty"`
	Subject     string                  `db:"subject" json:"subject"`
	Description string                  `db:"description" json:"description"`
	Category    string                  `db:"category" json:"category"`
	Priority    constant.TicketPriority `db:"priority" json:"priority"`
	Status      constant.TicketStatus   `db:"status" json:"status"`
	AssignedTo  *string                 `db:"assigned_to" json:"assigned_to,omitempty"`
	CreatedAt   time.Time               `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time               `db:"updated_at" json:"updated_at"`
}

type TicketMessage struct {
	ID         string    `db:"id" json:"id"`
	TicketID   string    `db:"ticket_id" json:"ticket_id"`
	UserID     string    `db:"user_id" json:"user_id"`
	Message    string    `db:"message" json:"message"`
	IsInternal bool      `db:"is_internal" json:"is_internal"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

type SupportTicketWithMessages struct {
	SupportTicket
	Messages []TicketMessage `json:"messages"`
}

type CreateTicketRequest struct {
	OrderID     *string                 `json:"order_id"`
	Subject     string                  `json:"subject" validate:"required,max=255"`
	Description string                  `json:"description" validate:"required"`
	Category    string                  `json:"category" validate:"required,oneof=order_issue technical_support refund_request product_question account_issue general"`
	Priority    constant.TicketPriority `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
}

type UpdateTicketStatusRequest struct {
	Status constant.TicketStatus `json:"status" validate:"required,oneof=open in_progress resolved closed"`
}

type AssignTicketRequest struct {
	AssignedTo string `json:"assigned_to" validate:"required"`
}

type TicketMessageRequest struct {
	Message    string `json:"message" validate:"required"`
	IsInternal bool   `json:"is_internal"`
}

type Dispute struct {
	ID          string                 `db:"id" json:"id"`
	OrderID     string                 `db:"order_id" json:"order_id"`
	UserID      string                 `db:"user_id" json:"user_id"`
	Type        string                 `db:"type" json:"type"`
	Description string                 `db:"description" json:"description"`
	Amount      decimal.Decimal        `db:"amount" json:"amount"`
	Status      constant.DisputeStatus `db:"status" json:"status"`
	Resolution  *string                `db:"resolution" json:"resolution,omitempty"`
	CreatedAt   time.Time              `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time              `db:"updated_at" json:"updated_at"`
}

type DisputeWithOrder struct {
	Dispute
	Order *OrderWithItems `json:"order"`
}

type CreateDisputeRequest struct {
	OrderID     string `json:"order_id" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=unauthorized_charge item_not_received not_as_described duplicate_charge other"`
	Description string `json:"description" validate:"required,min=10"`
}

type UpdateDisputeStatusRequest struct {
	Status     constant.DisputeStatus `json:"status" validate:"required,oneof=open investigating resolved closed"`
	Resolution *string                `json:"resolution"`
}
