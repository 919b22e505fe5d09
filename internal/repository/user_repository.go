package repository

import (
	"context"
	"sync"
	"time"

	"github.com/spec-kit/gas-delivery/internal/domain"
)

// UserRepository defines store access for customer accounts. The store does
// not enforce contact uniqueness; callers check before insert.
type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByContact(ctx context.Context, contact string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Count(ctx context.Context) (int, error)
}

type userRepository struct {
	mu    sync.RWMutex
	byID  map[string]*domain.User
	order []string
}

// NewUserRepository returns an in-memory implementation. State is volatile
// and rebuilt on restart.
func NewUserRepository() UserRepository {
	return &userRepository{byID: make(map[string]*domain.User)}
}

func (r *userRepository) Insert(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	stored := *user
	r.byID[user.ID] = &stored
	r.order = append(r.order, user.ID)
	return nil
}

func (r *userRepository) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[user.ID]
	if !ok {
		return ErrNotFound
	}
	user.CreatedAt = existing.CreatedAt
	user.UpdatedAt = time.Now()
	stored := *user
	r.byID[user.ID] = &stored
	return nil
}

func (r *userRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *userRepository) GetByContact(_ context.Context, contact string) (*domain.User, error) {
	if contact == "" {
		return nil, ErrNotFound
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		user := r.byID[id]
		if user.Email == contact || user.Mobile == contact {
			copied := *user
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (r *userRepository) List(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]domain.User, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, *r.byID[id])
	}
	return users, nil
}

func (r *userRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID), nil
}
