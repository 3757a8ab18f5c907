package dto

import (
	"encoding/json"
	"time"

	"github.com/shopease/helpdesk/internal/domain"
	"github.com/shopease/helpdesk/internal/service"
)

// OptionalInt64 is a three-state JSON field: absent (Set=false),
// explicit null (Set=true, Value=nil), or a value. It lets an update
// distinguish "clear the agent" from "leave the agent alone".
type OptionalInt64 struct {
	Set   bool
	Value *int64
}

// UnmarshalJSON marks the field present and captures null vs value.
func (o *OptionalInt64) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	CustomerID       int64   `json:"customerID"`
	IssueDescription string  `json:"issueDescription"`
	SupportAgentID   *int64  `json:"supportAgentID"`
	Status           *string `json:"status"`
}

// UpdateTicketRequest payload; every field is optional.
type UpdateTicketRequest struct {
	CustomerID       *int64        `json:"customerID"`
	IssueDescription *string       `json:"issueDescription"`
	SupportAgentID   OptionalInt64 `json:"supportAgentID"`
	Status           *string       `json:"status"`
}

// CustomerRef is the customer summary embedded in ticket views.
type CustomerRef struct {
	CustomerID int64  `json:"customerID"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
}

// AgentRef is the agent summary embedded in ticket views.
type AgentRef struct {
	AgentID   int64  `json:"agentID"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// TicketResponse is the ticket view returned by the API.
type TicketResponse struct {
	TicketID         int64               `json:"ticketID"`
	IssueDescription string              `json:"issueDescription"`
	CreatedAt        time.Time           `json:"createdAt"`
	Status           domain.TicketStatus `json:"status"`
	Customer         *CustomerRef        `json:"customer"`
	SupportAgent     *AgentRef           `json:"supportAgent"`
}

// NewTicketResponse renders a ticket detail.
func NewTicketResponse(detail *service.TicketDetail) TicketResponse {
	resp := TicketResponse{
		TicketID:         detail.Ticket.ID,
		IssueDescription: detail.Ticket.IssueDescription,
		CreatedAt:        detail.Ticket.CreatedAt,
		Status:           detail.Ticket.Status,
	}
	if detail.Customer != nil {
		resp.Customer = &CustomerRef{
			CustomerID: detail.Customer.ID,
			FirstName:  detail.Customer.FirstName,
			LastName:   detail.Customer.LastName,
			Email:      detail.Customer.Email,
		}
	}
	if detail.Agent != nil {
		resp.SupportAgent = &AgentRef{
			AgentID:   detail.Agent.ID,
			FirstName: detail.Agent.FirstName,
			LastName:  detail.Agent.LastName,
			Email:     detail.Agent.Email,
		}
	}
	return resp
}
