package domain

import (
	"fmt"
	"time"
)

// NotificationType enumerates delivery channels.
type NotificationType string

const (
	NotificationTypeEmail NotificationType = "email"
	NotificationTypeSMS   NotificationType = "sms"
)

// ParseNotificationType converts a free string into a NotificationType.
func ParseNotificationType(value string) (NotificationType, error) {
	switch NotificationType(value) {
	case NotificationTypeEmail, NotificationTypeSMS:
		return NotificationType(value), nil
	}
	return "", fmt.Errorf("invalid notification type %q. Valid values: %s, %s",
		value, NotificationTypeEmail, NotificationTypeSMS)
}

// Notification is a message queued for delivery to a customer.
type Notification struct {
	ID         int64
	CustomerID int64
	Type       NotificationType
	Message    string
	SentAt     time.Time
}
