package ticket

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/digital-store/constant"
	"github.com/muhammadheryan/digital-store/model"
	"github.com/muhammadheryan/digital-store/repository/claim"
)

type SQL struct {
	conn *sqlx.DB
}

type TicketRepository interface {
	Create(ctx context.Context, t *model.SupportTicket) error
	GetByID(ctx context.Context, id string) (*model.SupportTicket, error)
	List(ctx context.Context, userID string) ([]model.SupportTicket, error)
	TransitionStatus(ctx context.Context, id string, from, to constant.TicketStatus) (bool, error)
	Assign(ctx context.Context, id, assignee string) error
	AddMessage(ctx context.Context, m *model.TicketMessage) error
	ListMessages(ctx context.Context, ticketID string, includeInternal bool) ([]model.TicketMessage, error)
}

func NewTicketRepository(conn *sqlx.DB) TicketRepository {
	return &SQL{conn: conn}
}

const (
	ticketColumns = `id, user_id, order_id, subject, description, category, priority, status, assigned_to, created_at, updated_at`

	insertTicket = `INSERT INTO support_ticket (id, user_id, order_id, subject, description, category, priority, status, created_at, updated_at)
VALUES (:id, :user_id, :order_id, :subject, :description, :category, :priority, :status, NOW(), NOW())`

	getTicketByID = `SELECT ` + ticketColumns + ` FROM support_ticket WHERE id = ?`

	listTickets = `SELECT ` + ticketColumns + ` FROM support_ticket`

	transitionTicket = `UPDATE support_ticket SET status = ?, updated_at = NOW() WHERE id = ? AND status = ?`

	assignTicket = `UPDATE support_ticket SET assigned_to = ?, updated_at = NOW() WHERE id = ?`

	insertTicketMessage = `INSERT INTO ticket_message (id, ticket_id, user_id, message, is_internal, created_at)
VALUES (:id, :ticket_id, :user_id, :message, :is_internal, NOW())`

	listTicketMessages = `SELECT id, ticket_id, user_id, message, is_internal, created_at FROM ticket_message WHERE ticket_id = ?`
)

func (s *SQL) Create(ctx context.Context, t *model.SupportTicket) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	_, err := s.conn.NamedExecContext(ctx, insertTicket, t)
	return err
}

func (s *SQL) GetByID(ctx context.Context, id string) (*model.SupportTicket, error) {
	var t model.SupportTicket
	if err := s.conn.GetContext(ctx, &t, getTicketByID, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// List returns the tickets of userID, or all tickets when userID is empty.
func (s *SQL) List(ctx context.Context, userID string) ([]model.SupportTicket, error) {
	query := listTickets
	args := make([]any, 0, 1)
	if userID != "" {
		query += " WHERE user_id = ?"
		args = append(args, userID)
	}
	query += " ORDER BY created_at DESC, id"

	items := make([]model.SupportTicket, 0)
	if err := s.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) TransitionStatus(ctx context.Context, id string, from, to constant.TicketStatus) (bool, error) {
	return claim.Exec(ctx, s.conn, transitionTicket, to, id, from)
}

func (s *SQL) Assign(ctx context.Context, id, assignee string) error {
	_, err := s.conn.ExecContext(ctx, assignTicket, assignee, id)
	return err
}

func (s *SQL) AddMessage(ctx context.Context, m *model.TicketMessage) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	_, err := s.conn.NamedExecContext(ctx, insertTicketMessage, m)
	return err
}

func (s *SQL) ListMessages(ctx context.Context, ticketID string, includeInternal bool) ([]model.TicketMessage, error) {
	query := listTicketMessages
	if !includeInternal {
		query += " AND is_internal = 0"
	}
	query += " ORDER BY created_at, id"

	items := make([]model.TicketMessage, 0)
	if err := s.conn.SelectContext(ctx, &items, query, ticketID); err != nil {
		return nil, err
	}
	return items, nil
}
