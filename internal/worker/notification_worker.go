package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/gas-delivery/internal/events"
)

// NotificationWorker logs order and ticket lifecycle events. It runs inline
// on the dispatcher's synchronous publish path.
type NotificationWorker struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationWorker creates the worker.
func NewNotificationWorker(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationWorker {
	return &NotificationWorker{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (w *NotificationWorker) RegisterHandlers() {
	if w.dispatcher == nil {
		return
	}
	w.dispatcher.Subscribe(events.EventOrderPlaced, w.handleOrderPlaced)
	w.dispatcher.Subscribe(events.EventOrderCancelled, w.handleOrderCancelled)
	w.dispatcher.Subscribe(events.EventTicketOpened, w.handleTicketOpened)
}

func (w *NotificationWorker) handleOrderPlaced(_ context.Context, event events.Event) error {
	w.logger.Info("OrderPlaced", zap.String("user_id", event.UserID), zap.Any("payload", event.Payload))
	return nil
}

func (w *NotificationWorker) handleOrderCancelled(_ context.Context, event events.Event) error {
	w.logger.Info("OrderCancelled", zap.String("user_id", event.UserID), zap.Any("payload", event.Payload))
	return nil
}

func (w *NotificationWorker) handleTicketOpened(_ context.Context, event events.Event) error {
	w.logger.Info("TicketOpened", zap.String("user_id", event.UserID), zap.Any("payload", event.Payload))
	return nil
}
