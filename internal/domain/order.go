package domain

import "time"

// OrderStatus enumerates lifecycle states for orders.
type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "PLACED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Order is the aggregate for a gas delivery order. Payload carries the
// arbitrary fields supplied by the caller at creation; ID, UserID and Status
// are stamped by the service and win over payload keys of the same name.
type Order struct {
	ID        string
	UserID    string
	Status    OrderStatus
	Payload   map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}
