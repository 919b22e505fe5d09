package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/gas-delivery/internal/domain"
	"github.com/spec-kit/gas-delivery/internal/events"
	"github.com/spec-kit/gas-delivery/internal/repository"
	"github.com/spec-kit/gas-delivery/internal/service"
)

func newSupportService() *service.SupportService {
	return service.NewSupportService(service.SupportDependencies{
		TicketRepo: repository.NewTicketRepository(),
		Dispatcher: events.NewInMemoryDispatcher(),
	})
}

func TestSubmitTicketThread(t *testing.T) {
	svc := newSupportService()
	ctx := context.Background()
	user := &domain.User{ID: "u1", Name: "Alice", Email: "a@x.com"}

	ticket, err := svc.Submit(ctx, user, "no gas delivered")
	require.NoError(t, err)

	assert.NotEmpty(t, ticket.ID)
	assert.Equal(t, "u1", ticket.UserID)
	assert.Equal(t, "Alice", ticket.UserName)
	assert.Equal(t, domain.TicketStatusOpen, ticket.Status)

	require.Len(t, ticket.Messages, 1)
	assert.Equal(t, domain.SenderCustomer, ticket.Messages[0].Sender)
	assert.Equal(t, "no gas delivered", ticket.Messages[0].Text)
	assert.Equal(t, ticket.CreatedAt, ticket.Messages[0].Timestamp)
}

// Empty messages are rejected rather than silently creating an empty-thread
// ticket.
func TestSubmitTicketEmptyMessage(t *testing.T) {
	svc := newSupportService()
	user := &domain.User{ID: "u1", Name: "Alice"}

	for _, message := range []string{"", "   ", "\n\t"} {
		_, err := svc.Submit(context.Background(), user, message)
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err), "message=%q", message)
	}
}

func TestListTicketsByOwner(t *testing.T) {
	svc := newSupportService()
	ctx := context.Background()
	alice := &domain.User{ID: "u1", Name: "Alice"}
	bob := &domain.User{ID: "u2", Name: "Bob"}

	first, err := svc.Submit(ctx, alice, "late delivery")
	require.NoError(t, err)
	_, err = svc.Submit(ctx, bob, "wrong cylinder size")
	require.NoError(t, err)
	second, err := svc.Submit(ctx, alice, "billing question")
	require.NoError(t, err)

	tickets, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, tickets, 2)
	assert.Equal(t, first.ID, tickets[0].ID)
	assert.Equal(t, second.ID, tickets[1].ID)

	others, err := svc.List(ctx, "u3")
	require.NoError(t, err)
	assert.Empty(t, others)
}

func TestTicketOpenedEventPublished(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	svc := service.NewSupportService(service.SupportDependencies{
		TicketRepo: repository.NewTicketRepository(),
		Dispatcher: dispatcher,
	})

	var got events.Event
	dispatcher.Subscribe(events.EventTicketOpened, func(_ context.Context, event events.Event) error {
		got = event
		return nil
	})

	ticket, err := svc.Submit(context.Background(), &domain.User{ID: "u1", Name: "Alice"}, "no gas delivered")
	require.NoError(t, err)

	assert.Equal(t, events.EventTicketOpened, got.Type)
	assert.Equal(t, "u1", got.UserID)
	payload, ok := got.Payload.(events.TicketOpenedPayload)
	require.True(t, ok)
	assert.Equal(t, ticket.ID, payload.TicketID)
}
