package domain

import (
	"fmt"
	"time"
)

// TicketStatus enumerates ticket states. Any state may move to any
// other; the status is an attribute, not a guarded workflow.
type TicketStatus string

const (
	TicketStatusOpen    TicketStatus = "open"
	TicketStatusPending TicketStatus = "pending"
	TicketStatusClosed  TicketStatus = "closed"
)

// ParseTicketStatus converts a free string into a TicketStatus.
func ParseTicketStatus(value string) (TicketStatus, error) {
	switch TicketStatus(value) {
	case TicketStatusOpen, TicketStatusPending, TicketStatusClosed:
		return TicketStatus(value), nil
	}
	return "", fmt.Errorf("invalid status %q. Valid values: %s, %s, %s",
		value, TicketStatusOpen, TicketStatusPending, TicketStatusClosed)
}

// SupportTicket is the aggregate for support requests. CustomerID must
// reference an existing customer; SupportAgentID, when set, must
// reference an existing agent. CreatedAt is set once by the store.
type SupportTicket struct {
	ID               int64
	CustomerID       int64
	SupportAgentID   *int64
	IssueDescription string
	CreatedAt        time.Time
	Status           TicketStatus
}
