package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/gas-delivery/internal/domain"
	"github.com/spec-kit/gas-delivery/internal/events"
	"github.com/spec-kit/gas-delivery/internal/repository"
	apperrors "github.com/spec-kit/gas-delivery/pkg/util"
)

// OrderService coordinates the order lifecycle.
type OrderService struct {
	orders     repository.OrderRepository
	dispatcher events.Dispatcher

	// cancelMu serializes the status check with the transition so a cancel
	// can happen at most once per order.
	cancelMu sync.Mutex
}

// OrderDependencies bundles requirements for the order service.
type OrderDependencies struct {
	OrderRepo  repository.OrderRepository
	Dispatcher events.Dispatcher
}

// NewOrderService constructs the service.
func NewOrderService(deps OrderDependencies) *OrderService {
	return &OrderService{orders: deps.OrderRepo, dispatcher: deps.Dispatcher}
}

// Create stamps the caller's payload with a fresh identifier, the owning
// user and the PLACED status, then persists it.
func (s *OrderService) Create(ctx context.Context, user *domain.User, payload map[string]any) (*domain.Order, error) {
	order := &domain.Order{
		ID:      uuid.NewString(),
		UserID:  user.ID,
		Status:  domain.OrderStatusPlaced,
		Payload: payload,
	}
	if err := s.orders.Insert(ctx, order); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:    events.EventOrderPlaced,
		UserID:  user.ID,
		Payload: events.OrderPlacedPayload{OrderID: order.ID},
	})
	return order, nil
}

// List returns the user's orders in store insertion order.
func (s *OrderService) List(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

// Cancel transitions one of the user's orders from PLACED to CANCELLED.
// Orders owned by other users are reported as not found, never as forbidden,
// so order ids leak no existence information.
func (s *OrderService) Cancel(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	s.cancelMu.Lock()
	defer s.cancelMu.Unlock()

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("order", nil)
		}
		return nil, err
	}
	if order.UserID != userID {
		return nil, apperrors.NewNotFound("order", nil)
	}
	if order.Status != domain.OrderStatusPlaced {
		return nil, apperrors.NewInvalidState("order cannot be cancelled in its current status")
	}

	updated, err := s.orders.UpdateStatus(ctx, orderID, domain.OrderStatusCancelled)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("order", nil)
		}
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:    events.EventOrderCancelled,
		UserID:  userID,
		Payload: events.OrderCancelledPayload{OrderID: orderID, OldStatus: order.Status},
	})
	return updated, nil
}

func (s *OrderService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
