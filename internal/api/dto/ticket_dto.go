package dto

import (
	"time"

	"github.com/spec-kit/gas-delivery/internal/domain"
)

// SubmitTicketRequest payload for opening a support ticket.
type SubmitTicketRequest struct {
	Message string `json:"message"`
}

// TicketMessageView is one thread entry.
type TicketMessageView struct {
	Sender    domain.SenderRole `json:"sender"`
	Text      string            `json:"text"`
	Timestamp time.Time         `json:"timestamp"`
}

// TicketView is the response shape for a support ticket.
type TicketView struct {
	ID        string              `json:"id"`
	UserID    string              `json:"userId"`
	UserName  string              `json:"userName"`
	Status    domain.TicketStatus `json:"status"`
	Messages  []TicketMessageView `json:"messages"`
	CreatedAt time.Time           `json:"createdAt"`
}

// NewTicketView maps a ticket.
func NewTicketView(ticket *domain.SupportTicket) TicketView {
	messages := make([]TicketMessageView, 0, len(ticket.Messages))
	for _, msg := range ticket.Messages {
		messages = append(messages, TicketMessageView{
			Sender:    msg.Sender,
			Text:      msg.Text,
			Timestamp: msg.Timestamp,
		})
	}
	return TicketView{
		ID:        ticket.ID,
		UserID:    ticket.UserID,
		UserName:  ticket.UserName,
		Status:    ticket.Status,
		Messages:  messages,
		CreatedAt: ticket.CreatedAt,
	}
}

// NewTicketViews maps a slice of tickets.
func NewTicketViews(tickets []domain.SupportTicket) []TicketView {
	views := make([]TicketView, 0, len(tickets))
	for i := range tickets {
		views = append(views, NewTicketView(&tickets[i]))
	}
	return views
}
