package dto

import (
	"time"

	"github.com/shopease/helpdesk/internal/domain"
	"github.com/shopease/helpdesk/internal/service"
)

// CustomerResponse is the customer view. The password hash never
// leaves the service.
type CustomerResponse struct {
	CustomerID int64  `json:"customerID"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
}

// NewCustomerResponse renders a customer record.
func NewCustomerResponse(customer *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID: customer.ID,
		FirstName:  customer.FirstName,
		LastName:   customer.LastName,
		Email:      customer.Email,
		Phone:      customer.Phone,
		Address:    customer.Address,
	}
}

// AddressResponse pairs an address and derived city with its customer.
type AddressResponse struct {
	Address  string           `json:"address"`
	City     string           `json:"city"`
	Customer CustomerResponse `json:"customer"`
}

// NewAddressResponse renders an address entry.
func NewAddressResponse(entry service.AddressEntry) AddressResponse {
	return AddressResponse{
		Address:  entry.Address,
		City:     entry.City,
		Customer: NewCustomerResponse(&entry.Customer),
	}
}

// NotificationResponse is the notification view.
type NotificationResponse struct {
	NotificationID int64                   `json:"notificationID"`
	Type           domain.NotificationType `json:"type"`
	Message        string                  `json:"message"`
	SentAt         time.Time               `json:"sentAt"`
}

// NewNotificationResponse renders a notification record.
func NewNotificationResponse(notification domain.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID: notification.ID,
		Type:           notification.Type,
		Message:        notification.Message,
		SentAt:         notification.SentAt,
	}
}
