package repository

import (
	"context"
	"sync"
	"time"

	"github.com/spec-kit/gas-delivery/internal/domain"
)

// OrderRepository encapsulates order storage. Ownership and status-transition
// invariants are caller-enforced.
type OrderRepository interface {
	Insert(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	Count(ctx context.Context) (int, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
}

type orderRepository struct {
	mu    sync.RWMutex
	byID  map[string]*domain.Order
	order []string
}

// NewOrderRepository returns an in-memory implementation preserving
// insertion order.
func NewOrderRepository() OrderRepository {
	return &orderRepository{byID: make(map[string]*domain.Order)}
}

func (r *orderRepository) Insert(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	r.byID[order.ID] = cloneOrder(order)
	r.order = append(r.order, order.ID)
	return nil
}

func (r *orderRepository) GetByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneOrder(order), nil
}

func (r *orderRepository) ListByUser(_ context.Context, userID string) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := []domain.Order{}
	for _, id := range r.order {
		if r.byID[id].UserID == userID {
			orders = append(orders, *cloneOrder(r.byID[id]))
		}
	}
	return orders, nil
}

func (r *orderRepository) List(_ context.Context) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]domain.Order, 0, len(r.order))
	for _, id := range r.order {
		orders = append(orders, *cloneOrder(r.byID[id]))
	}
	return orders, nil
}

func (r *orderRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID), nil
}

func (r *orderRepository) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	return cloneOrder(order), nil
}

// cloneOrder copies the order and its payload map so internal state never
// escapes the store boundary.
func cloneOrder(order *domain.Order) *domain.Order {
	copied := *order
	if order.Payload != nil {
		copied.Payload = make(map[string]any, len(order.Payload))
		for k, v := range order.Payload {
			copied.Payload[k] = v
		}
	}
	return &copied
}
