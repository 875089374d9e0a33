package constant

type RefundStatus string

const (
	RefundStatusPending   RefundStatus = "pending"
	RefundStatusApproved  RefundStatus = "approved"
	RefundStatusRejected  RefundStatus = "rejected"
	RefundStatusProcessed RefundStatus = "processed"
)

var refundTransitions = map[RefundStatus][]RefundStatus{
	RefundStatusPending:  {RefundStatusApproved, RefundStatusRejected},
	RefundStatusApproved: {RefundStatusProcessed},
}

// CanTransitionRefund reports whether a refund may move from one status to another.
func CanTransitionRefund(from, to RefundStatus) bool {
	return contains(refundTransitions[from], to)
}

type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

var ticketTransitions = map[TicketStatus][]TicketStatus{
	TicketStatusOpen:       {TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed},
	TicketStatusInProgress: {TicketStatusResolved, TicketStatusClosed},
	TicketStatusResolved:   {TicketStatusClosed},
}

func CanTransitionTicket(from, to TicketStatus) bool {
	return contains(ticketTransitions[from], to)
}

type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"
)

type DisputeStatus string

const (
	DisputeStatusOpen          DisputeStatus = "open"
	DisputeStatusInvestigating DisputeStatus = "investigating"
	DisputeStatusResolved      DisputeStatus = "resolved"
	DisputeStatusClosed        DisputeStatus = "closed"
)

var disputeTransitions = map[DisputeStatus][]DisputeStatus{
	DisputeStatusOpen:          {DisputeStatusInvestigating, DisputeStatusResolved, DisputeStatusClosed},
	DisputeStatusInvestigating: {DisputeStatusResolved, DisputeStatusClosed},
	DisputeStatusResolved:      {DisputeStatusClosed},
}

func CanTransitionDispute(from, to DisputeStatus) bool {
	return contains(disputeTransitions[from], to)
}

func contains[T comparable](list []T, v T) bool {
	for _, it := range list {
		if it == v {
			return true
		}
	}
	return false
}
