package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/shopease/helpdesk/internal/domain"
	"github.com/shopease/helpdesk/internal/events"
	"github.com/shopease/helpdesk/internal/repository"
	apperrors "github.com/shopease/helpdesk/pkg/util"
)

// TicketService enforces referential and status integrity for tickets.
// Every operation re-reads the store; nothing is cached across calls.
type TicketService struct {
	tickets     repository.TicketRepository
	customers   repository.CustomerRepository
	agents      repository.AgentRepository
	attachments repository.AttachmentRepository
	responses   repository.AIResponseRepository
	dispatcher  events.Dispatcher
}

// TicketDependencies bundles repositories for the ticket service.
type TicketDependencies struct {
	TicketRepo     repository.TicketRepository
	CustomerRepo   repository.CustomerRepository
	AgentRepo      repository.AgentRepository
	AttachmentRepo repository.AttachmentRepository
	AIResponseRepo repository.AIResponseRepository
	Dispatcher     events.Dispatcher
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:     deps.TicketRepo,
		customers:   deps.CustomerRepo,
		agents:      deps.AgentRepo,
		attachments: deps.AttachmentRepo,
		responses:   deps.AIResponseRepo,
		dispatcher:  deps.Dispatcher,
	}
}

// TicketDetail joins a ticket with its referenced records for rendering.
type TicketDetail struct {
	Ticket   domain.SupportTicket
	Customer *domain.Customer
	Agent    *domain.SupportAgent
}

// TicketCreateInput describes ticket creation. SupportAgentID and
// Status are optional; Status defaults to open.
type TicketCreateInput struct {
	CustomerID       int64
	IssueDescription string
	SupportAgentID   *int64
	Status           *string
}

// AgentPatch is the three-state agent assignment field for updates:
// Set=false leaves the assignment untouched, Set=true with a nil ID
// clears it, Set=true with an ID assigns.
type AgentPatch struct {
	Set bool
	ID  *int64
}

// TicketUpdateInput carries a partial update; nil fields are left
// unchanged.
type TicketUpdateInput struct {
	CustomerID       *int64
	IssueDescription *string
	SupportAgent     AgentPatch
	Status           *string
}

func errUnknownCustomer(id int64) error {
	return apperrors.NewDomainError("UNKNOWN_CUSTOMER",
		fmt.Sprintf("customer with id %d does not exist", id), http.StatusBadRequest, nil)
}

func errUnknownAgent(id int64) error {
	return apperrors.NewDomainError("UNKNOWN_AGENT",
		fmt.Sprintf("support agent with id %d does not exist", id), http.StatusBadRequest, nil)
}

func errInvalidStatus(parseErr error) error {
	return apperrors.NewDomainError("INVALID_STATUS", parseErr.Error(), http.StatusBadRequest, nil)
}

// Create validates references and status, then inserts the ticket. The
// store assigns id and createdAt.
func (s *TicketService) Create(ctx context.Context, input TicketCreateInput) (*TicketDetail, error) {
	customer, err := s.customers.GetByID(ctx, input.CustomerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errUnknownCustomer(input.CustomerID)
		}
		return nil, err
	}

	var agent *domain.SupportAgent
	if input.SupportAgentID != nil {
		agent, err = s.agents.GetByID(ctx, *input.SupportAgentID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, errUnknownAgent(*input.SupportAgentID)
			}
			return nil, err
		}
	}

	status := domain.TicketStatusOpen
	if input.Status != nil && *input.Status != "" {
		status, err = domain.ParseTicketStatus(*input.Status)
		if err != nil {
			return nil, errInvalidStatus(err)
		}
	}

	ticket := &domain.SupportTicket{
		CustomerID:       input.CustomerID,
		SupportAgentID:   input.SupportAgentID,
		IssueDescription: input.IssueDescription,
		Status:           status,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:       events.EventTicketCreated,
		TicketID:   ticket.ID,
		CustomerID: ticket.CustomerID,
		Payload:    events.TicketCreatedPayload{Status: ticket.Status},
	})
	return &TicketDetail{Ticket: *ticket, Customer: customer, Agent: agent}, nil
}

// Update applies a partial update. Each provided field is validated
// with the same rules as Create; createdAt is never modified.
func (s *TicketService) Update(ctx context.Context, ticketID int64, input TicketUpdateInput) (*TicketDetail, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"ticketID": ticketID})
		}
		return nil, err
	}
	oldStatus := ticket.Status

	if input.CustomerID != nil {
		if _, err := s.customers.GetByID(ctx, *input.CustomerID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, errUnknownCustomer(*input.CustomerID)
			}
			return nil, err
		}
		ticket.CustomerID = *input.CustomerID
	}

	if input.SupportAgent.Set {
		if input.SupportAgent.ID != nil {
			if _, err := s.agents.GetByID(ctx, *input.SupportAgent.ID); err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return nil, errUnknownAgent(*input.SupportAgent.ID)
				}
				return nil, err
			}
		}
		ticket.SupportAgentID = input.SupportAgent.ID
	}

	if input.IssueDescription != nil {
		ticket.IssueDescription = *input.IssueDescription
	}

	if input.Status != nil {
		status, err := domain.ParseTicketStatus(*input.Status)
		if err != nil {
			return nil, errInvalidStatus(err)
		}
		ticket.Status = status
	}

	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}

	if ticket.Status != oldStatus {
		s.publish(ctx, events.Event{
			Type:       events.EventTicketStatusChanged,
			TicketID:   ticket.ID,
			CustomerID: ticket.CustomerID,
			Payload: events.TicketStatusChangedPayload{
				OldStatus: oldStatus,
				NewStatus: ticket.Status,
			},
		})
	}
	return s.describe(ctx, ticket)
}

// Delete removes a ticket and cascades to its attachments and AI
// responses.
func (s *TicketService) Delete(ctx context.Context, ticketID int64) error {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("ticket", map[string]any{"ticketID": ticketID})
		}
		return err
	}

	attachments, err := s.attachments.ListByTicket(ctx, ticketID)
	if err != nil {
		return err
	}
	responses, err := s.responses.ListByTicket(ctx, ticketID)
	if err != nil {
		return err
	}
	if err := s.attachments.DeleteByTicket(ctx, ticketID); err != nil {
		return err
	}
	if err := s.responses.DeleteByTicket(ctx, ticketID); err != nil {
		return err
	}
	if err := s.tickets.Delete(ctx, ticketID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("ticket", map[string]any{"ticketID": ticketID})
		}
		return err
	}

	s.publish(ctx, events.Event{
		Type:       events.EventTicketDeleted,
		TicketID:   ticketID,
		CustomerID: ticket.CustomerID,
		Payload: events.TicketDeletedPayload{
			AttachmentsRemoved: len(attachments),
			ResponsesRemoved:   len(responses),
		},
	})
	return nil
}

// Get fetches a ticket with its referenced records.
func (s *TicketService) Get(ctx context.Context, ticketID int64) (*TicketDetail, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"ticketID": ticketID})
		}
		return nil, err
	}
	return s.describe(ctx, ticket)
}

// List returns all tickets, most recently created first.
func (s *TicketService) List(ctx context.Context) ([]TicketDetail, error) {
	tickets, err := s.tickets.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]TicketDetail, 0, len(tickets))
	for i := range tickets {
		detail, err := s.describe(ctx, &tickets[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *detail)
	}
	return result, nil
}

// describe resolves the ticket's references. A dangling reference is
// rendered as nil rather than failing the read path.
func (s *TicketService) describe(ctx context.Context, ticket *domain.SupportTicket) (*TicketDetail, error) {
	detail := &TicketDetail{Ticket: *ticket}

	customer, err := s.customers.GetByID(ctx, ticket.CustomerID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	detail.Customer = customer

	if ticket.SupportAgentID != nil {
		agent, err := s.agents.GetByID(ctx, *ticket.SupportAgentID)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		detail.Agent = agent
	}
	return detail, nil
}

func (s *TicketService) publish(ctx context.Context, event events.Event) {
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
