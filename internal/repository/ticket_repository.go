package repository

import (
	"context"
	"sync"

	"github.com/spec-kit/gas-delivery/internal/domain"
)

// TicketRepository encapsulates support ticket storage.
type TicketRepository interface {
	Insert(ctx context.Context, ticket *domain.SupportTicket) error
	GetByID(ctx context.Context, id string) (*domain.SupportTicket, error)
	ListByUser(ctx context.Context, userID string) ([]domain.SupportTicket, error)
}

type ticketRepository struct {
	mu    sync.RWMutex
	byID  map[string]*domain.SupportTicket
	order []string
}

// NewTicketRepository returns an in-memory implementation.
func NewTicketRepository() TicketRepository {
	return &ticketRepository{byID: make(map[string]*domain.SupportTicket)}
}

func (r *ticketRepository) Insert(_ context.Context, ticket *domain.SupportTicket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[ticket.ID] = cloneTicket(ticket)
	r.order = append(r.order, ticket.ID)
	return nil
}

func (r *ticketRepository) GetByID(_ context.Context, id string) (*domain.SupportTicket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ticket, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneTicket(ticket), nil
}

func (r *ticketRepository) ListByUser(_ context.Context, userID string) ([]domain.SupportTicket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tickets := []domain.SupportTicket{}
	for _, id := range r.order {
		if r.byID[id].UserID == userID {
			tickets = append(tickets, *cloneTicket(r.byID[id]))
		}
	}
	return tickets, nil
}

// cloneTicket copies the ticket and its message thread; the thread is
// append-only and must never be aliased outside the store.
func cloneTicket(ticket *domain.SupportTicket) *domain.SupportTicket {
	copied := *ticket
	copied.Messages = append([]domain.TicketMessage(nil), ticket.Messages...)
	return &copied
}
