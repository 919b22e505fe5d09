package service

import (
	"context"

	"github.com/spec-kit/gas-delivery/internal/domain"
	"github.com/spec-kit/gas-delivery/internal/repository"
)

// AdminService exposes system-wide views for administrators. Authorization
// happens at the route gate; these operations assume an admin caller.
type AdminService struct {
	users  repository.UserRepository
	orders repository.OrderRepository
}

// AdminDependencies bundles requirements for the admin service.
type AdminDependencies struct {
	UserRepo  repository.UserRepository
	OrderRepo repository.OrderRepository
}

// NewAdminService constructs the service.
func NewAdminService(deps AdminDependencies) *AdminService {
	return &AdminService{users: deps.UserRepo, orders: deps.OrderRepo}
}

// Stats holds system-wide counters.
type Stats struct {
	UserCount  int
	OrderCount int
}

// Stats returns counts of all users and all orders.
func (s *AdminService) Stats(ctx context.Context) (Stats, error) {
	userCount, err := s.users.Count(ctx)
	if err != nil {
		return Stats{}, err
	}
	orderCount, err := s.orders.Count(ctx)
	if err != nil {
		return Stats{}, err
	}
	return Stats{UserCount: userCount, OrderCount: orderCount}, nil
}

// ListUsers returns every registered user. Password stripping happens at the
// response boundary.
func (s *AdminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// ListOrders returns every order, unfiltered by owner.
func (s *AdminService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}
