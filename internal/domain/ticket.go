package domain

import "time"

// TicketStatus enumerates lifecycle states for support tickets. Only OPEN is
// produced here; the field stays an enum so closing/escalation can extend it.
type TicketStatus string

const (
	TicketStatusOpen TicketStatus = "OPEN"
)

// SenderRole indicates who authored a thread message.
type SenderRole string

const (
	SenderCustomer SenderRole = "customer"
	SenderAgent    SenderRole = "agent"
)

// TicketMessage is one entry in a ticket's append-only thread.
type TicketMessage struct {
	Sender    SenderRole
	Text      string
	Timestamp time.Time
}

// SupportTicket is the aggregate for customer support requests. UserName is a
// snapshot of the owner's display name at creation time.
type SupportTicket struct {
	ID        string
	UserID    string
	UserName  string
	Status    TicketStatus
	Messages  []TicketMessage
	CreatedAt time.Time
}
