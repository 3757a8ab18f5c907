package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shopease/helpdesk/internal/api/dto"
	"github.com/shopease/helpdesk/internal/auth"
	"github.com/shopease/helpdesk/internal/repository"
	apperrors "github.com/shopease/helpdesk/pkg/util"
)

// NotificationsHandler lists notifications for the authenticated customer.
type NotificationsHandler struct {
	notifications repository.NotificationRepository
}

// NewNotificationsHandler constructs handler.
func NewNotificationsHandler(notifications repository.NotificationRepository) *NotificationsHandler {
	return &NotificationsHandler{notifications: notifications}
}

// List handles GET /notifications.
func (h *NotificationsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	notifications, err := h.notifications.ListByCustomer(c.Context(), principal.Customer.ID)
	if err != nil {
		return err
	}
	items := make([]dto.NotificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		items = append(items, dto.NewNotificationResponse(notification))
	}
	return c.JSON(items)
}
