package dto

import "github.com/spec-kit/gas-delivery/internal/domain"

// OrderView flattens an order for responses: the caller's payload fields
// plus the stamped identifier, owner, status and timestamps. Stamped fields
// win over payload keys of the same name.
func OrderView(order *domain.Order) map[string]any {
	view := make(map[string]any, len(order.Payload)+5)
	for k, v := range order.Payload {
		view[k] = v
	}
	view["id"] = order.ID
	view["userId"] = order.UserID
	view["status"] = order.Status
	view["createdAt"] = order.CreatedAt
	view["updatedAt"] = order.UpdatedAt
	return view
}

// OrderViews maps a slice of orders.
func OrderViews(orders []domain.Order) []map[string]any {
	views := make([]map[string]any, 0, len(orders))
	for i := range orders {
		views = append(views, OrderView(&orders[i]))
	}
	return views
}
