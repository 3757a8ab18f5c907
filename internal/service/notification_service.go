package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/shopease/helpdesk/internal/domain"
	"github.com/shopease/helpdesk/internal/events"
	"github.com/shopease/helpdesk/internal/persistence"
	"github.com/shopease/helpdesk/internal/repository"
)

// NotificationService records a notification for the ticket's customer
// on lifecycle events and enqueues it to the Redis outbox for the
// external sender. Failures are logged and never fail the request that
// triggered the event.
type NotificationService struct {
	notifications repository.NotificationRepository
	queue         *persistence.Redis
	dispatcher    events.Dispatcher
	logger        *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(notifications repository.NotificationRepository, queue *persistence.Redis, dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		queue:         queue,
		dispatcher:    dispatcher,
		logger:        logger,
	}
}

// RegisterHandlers subscribes to ticket lifecycle events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTicketCreated, n.handleEvent)
	n.dispatcher.Subscribe(events.EventTicketStatusChanged, n.handleEvent)
	n.dispatcher.Subscribe(events.EventTicketDeleted, n.handleEvent)
}

func (n *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	notification := &domain.Notification{
		CustomerID: event.CustomerID,
		Type:       domain.NotificationTypeEmail,
		Message:    messageFor(event),
	}
	if err := n.notifications.Create(ctx, notification); err != nil {
		n.logger.Error("record notification",
			zap.String("event_type", string(event.Type)),
			zap.Int64("ticket_id", event.TicketID),
			zap.Error(err))
		return err
	}

	n.enqueue(ctx, event, notification)
	return nil
}

func (n *NotificationService) enqueue(ctx context.Context, event events.Event, notification *domain.Notification) {
	if n.queue == nil {
		return
	}
	payload, err := json.Marshal(map[string]any{
		"event_id":        event.ID,
		"notification_id": notification.ID,
		"customer_id":     notification.CustomerID,
		"type":            notification.Type,
		"message":         notification.Message,
	})
	if err != nil {
		n.logger.Error("encode notification payload", zap.Error(err))
		return
	}
	if err := n.queue.Enqueue(ctx, persistence.NotificationOutboxKey, payload); err != nil {
		n.logger.Warn("enqueue notification",
			zap.Int64("notification_id", notification.ID),
			zap.Error(err))
	}
}

func messageFor(event events.Event) string {
	switch event.Type {
	case events.EventTicketCreated:
		return fmt.Sprintf("Your support ticket #%d has been created.", event.TicketID)
	case events.EventTicketStatusChanged:
		if payload, ok := event.Payload.(events.TicketStatusChangedPayload); ok {
			return fmt.Sprintf("Your support ticket #%d moved from %s to %s.",
				event.TicketID, payload.OldStatus, payload.NewStatus)
		}
		return fmt.Sprintf("Your support ticket #%d changed status.", event.TicketID)
	case events.EventTicketDeleted:
		return fmt.Sprintf("Your support ticket #%d has been deleted.", event.TicketID)
	default:
		return fmt.Sprintf("Update on your support ticket #%d.", event.TicketID)
	}
}
