package events

import (
	"time"

	"github.com/spec-kit/gas-delivery/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventOrderPlaced    EventType = "order_placed"
	EventOrderCancelled EventType = "order_cancelled"
	EventTicketOpened   EventType = "ticket_opened"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    string      `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// OrderPlacedPayload payload.
type OrderPlacedPayload struct {
	OrderID string `json:"order_id"`
}

// OrderCancelledPayload payload.
type OrderCancelledPayload struct {
	OrderID   string             `json:"order_id"`
	OldStatus domain.OrderStatus `json:"old_status"`
}

// TicketOpenedPayload payload.
type TicketOpenedPayload struct {
	TicketID       string `json:"ticket_id"`
	MessagePreview string `json:"message_preview"`
}
