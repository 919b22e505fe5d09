package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/gas-delivery/internal/domain"
	"github.com/spec-kit/gas-delivery/internal/events"
	"github.com/spec-kit/gas-delivery/internal/repository"
	apperrors "github.com/spec-kit/gas-delivery/pkg/util"
)

// SupportService coordinates support ticket workflows.
type SupportService struct {
	tickets    repository.TicketRepository
	dispatcher events.Dispatcher
}

// SupportDependencies bundles requirements for the support service.
type SupportDependencies struct {
	TicketRepo repository.TicketRepository
	Dispatcher events.Dispatcher
}

// NewSupportService constructs the service.
func NewSupportService(deps SupportDependencies) *SupportService {
	return &SupportService{tickets: deps.TicketRepo, dispatcher: deps.Dispatcher}
}

// Submit opens a ticket whose thread starts with the customer's message.
// The thread entry and the ticket share one timestamp.
func (s *SupportService) Submit(ctx context.Context, user *domain.User, message string) (*domain.SupportTicket, error) {
	if strings.TrimSpace(message) == "" {
		return nil, apperrors.NewValidationError("message required", nil)
	}

	now := time.Now()
	ticket := &domain.SupportTicket{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		UserName:  user.Name,
		Status:    domain.TicketStatusOpen,
		CreatedAt: now,
		Messages: []domain.TicketMessage{
			{Sender: domain.SenderCustomer, Text: message, Timestamp: now},
		},
	}
	if err := s.tickets.Insert(ctx, ticket); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:   events.EventTicketOpened,
		UserID: user.ID,
		Payload: events.TicketOpenedPayload{
			TicketID:       ticket.ID,
			MessagePreview: stringPreview(message, 120),
		},
	})
	return ticket, nil
}

// List returns tickets owned by the user.
func (s *SupportService) List(ctx context.Context, userID string) ([]domain.SupportTicket, error) {
	return s.tickets.ListByUser(ctx, userID)
}

func (s *SupportService) publishEvent(ctx context.Context, event events.Event) {
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

func stringPreview(body string, max int) string {
	body = strings.TrimSpace(body)
	if len(body) <= max {
		return body
	}
	if max <= 3 {
		return body[:max]
	}
	return body[:max-3] + "..."
}
