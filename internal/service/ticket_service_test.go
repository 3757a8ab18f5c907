package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopease/helpdesk/internal/domain"
	"github.com/shopease/helpdesk/internal/events"
	"github.com/shopease/helpdesk/internal/repository"
	apperrors "github.com/shopease/helpdesk/pkg/util"
)

type ticketFixture struct {
	service  *TicketService
	store    *repository.MemoryStore
	customer domain.Customer
	agent    domain.SupportAgent
	events   *[]events.Event
}

func newTicketFixture(t *testing.T) *ticketFixture {
	t.Helper()
	ctx := context.Background()
	store := repository.NewMemoryStore()

	customer := domain.Customer{
		FirstName: "Alice", LastName: "Smith", Email: "alice@example.com", Role: domain.RoleCustomer,
	}
	require.NoError(t, store.Customers().Create(ctx, &customer))

	agent := domain.SupportAgent{FirstName: "Greg", LastName: "Agentson", Email: "greg@helpdesk.test"}
	require.NoError(t, store.Agents().Create(ctx, &agent))

	dispatcher := events.NewInMemoryDispatcher()
	var published []events.Event
	record := func(_ context.Context, event events.Event) error {
		published = append(published, event)
		return nil
	}
	dispatcher.Subscribe(events.EventTicketCreated, record)
	dispatcher.Subscribe(events.EventTicketStatusChanged, record)
	dispatcher.Subscribe(events.EventTicketDeleted, record)

	svc := NewTicketService(TicketDependencies{
		TicketRepo:     store.Tickets(),
		CustomerRepo:   store.Customers(),
		AgentRepo:      store.Agents(),
		AttachmentRepo: store.Attachments(),
		AIResponseRepo: store.AIResponses(),
		Dispatcher:     dispatcher,
	})
	return &ticketFixture{service: svc, store: store, customer: customer, agent: agent, events: &published}
}

func domainCode(t *testing.T, err error) string {
	t.Helper()
	de := apperrors.ToDomainError(err)
	require.NotNil(t, de)
	return de.Code
}

func TestCreateTicketDefaults(t *testing.T) {
	f := newTicketFixture(t)
	ctx := context.Background()

	detail, err := f.service.Create(ctx, TicketCreateInput{
		CustomerID:       f.customer.ID,
		IssueDescription: "my order never arrived",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.TicketStatusOpen, detail.Ticket.Status)
	assert.False(t, detail.Ticket.CreatedAt.IsZero())
	assert.Nil(t, detail.Ticket.SupportAgentID)
	require.NotNil(t, detail.Customer)
	assert.Equal(t, f.customer.ID, detail.Customer.ID)
	assert.Nil(t, detail.Agent)

	require.Len(t, *f.events, 1)
	assert.Equal(t, events.EventTicketCreated, (*f.events)[0].Type)
	assert.Equal(t, f.customer.ID, (*f.events)[0].CustomerID)
}

func TestCreateTicketWithAgentAndStatus(t *testing.T) {
	f := newTicketFixture(t)
	status := "pending"

	detail, err := f.service.Create(context.Background(), TicketCreateInput{
		CustomerID:       f.customer.ID,
		IssueDescription: "billing question",
		SupportAgentID:   &f.agent.ID,
		Status:           &status,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.TicketStatusPending, detail.Ticket.Status)
	require.NotNil(t, detail.Ticket.SupportAgentID)
	assert.Equal(t, f.agent.ID, *detail.Ticket.SupportAgentID)
	require.NotNil(t, detail.Agent)
	assert.Equal(t, f.agent.ID, detail.Agent.ID)
}

func TestCreateTicketUnknownCustomer(t *testing.T) {
	f := newTicketFixture(t)

	_, err := f.service.Create(context.Background(), TicketCreateInput{
		CustomerID:       999999,
		IssueDescription: "ghost customer",
	})
	require.Error(t, err)
	assert.Equal(t, "UNKNOWN_CUSTOMER", domainCode(t, err))
	assert.Empty(t, *f.events)
}

func TestCreateTicketUnknownAgent(t *testing.T) {
	f := newTicketFixture(t)
	missing := int64(424242)

	_, err := f.service.Create(context.Background(), TicketCreateInput{
		CustomerID:       f.customer.ID,
		IssueDescription: "assign to nobody",
		SupportAgentID:   &missing,
	})
	require.Error(t, err)
	assert.Equal(t, "UNKNOWN_AGENT", domainCode(t, err))
}

func TestCreateTicketInvalidStatus(t *testing.T) {
	f := newTicketFixture(t)
	status := "bogus"

	_, err := f.service.Create(context.Background(), TicketCreateInput{
		CustomerID:       f.customer.ID,
		IssueDescription: "bad status",
		Status:           &status,
	})
	require.Error(t, err)
	assert.Equal(t, "INVALID_STATUS", domainCode(t, err))
	assert.Contains(t, err.Error(), "open, pending, closed")
}

func TestUpdateTicketAgentPatchThreeStates(t *testing.T) {
	f := newTicketFixture(t)
	ctx := context.Background()

	detail, err := f.service.Create(ctx, TicketCreateInput{
		CustomerID:       f.customer.ID,
		IssueDescription: "needs triage",
		SupportAgentID:   &f.agent.ID,
	})
	require.NoError(t, err)
	ticketID := detail.Ticket.ID

	// Absent: assignment untouched.
	updated, err := f.service.Update(ctx, ticketID, TicketUpdateInput{})
	require.NoError(t, err)
	require.NotNil(t, updated.Ticket.SupportAgentID)
	assert.Equal(t, f.agent.ID, *updated.Ticket.SupportAgentID)

	// Null: assignment cleared.
	updated, err = f.service.Update(ctx, ticketID, TicketUpdateInput{
		SupportAgent: AgentPatch{Set: true, ID: nil},
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Ticket.SupportAgentID)
	assert.Nil(t, updated.Agent)

	// Value: assignment restored.
	updated, err = f.service.Update(ctx, ticketID, TicketUpdateInput{
		SupportAgent: AgentPatch{Set: true, ID: &f.agent.ID},
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Ticket.SupportAgentID)
	assert.Equal(t, f.agent.ID, *updated.Ticket.SupportAgentID)
}

func TestUpdateTicketValidatesProvidedFields(t *testing.T) {
	f := newTicketFixture(t)
	ctx := context.Background()

	detail, err := f.service.Create(ctx, TicketCreateInput{
		CustomerID:       f.customer.ID,
		IssueDescription: "original",
	})
	require.NoError(t, err)
	ticketID := detail.Ticket.ID

	badCustomer := int64(999999)
	_, err = f.service.Update(ctx, ticketID, TicketUpdateInput{CustomerID: &badCustomer})
	assert.Equal(t, "UNKNOWN_CUSTOMER", domainCode(t, err))

	badAgent := int64(999999)
	_, err = f.service.Update(ctx, ticketID, TicketUpdateInput{
		SupportAgent: AgentPatch{Set: true, ID: &badAgent},
	})
	assert.Equal(t, "UNKNOWN_AGENT", domainCode(t, err))

	badStatus := "resolved"
	_, err = f.service.Update(ctx, ticketID, TicketUpdateInput{Status: &badStatus})
	assert.Equal(t, "INVALID_STATUS", domainCode(t, err))

	// Failed updates must not have changed the ticket.
	current, err := f.service.Get(ctx, ticketID)
	require.NoError(t, err)
	assert.Equal(t, "original", current.Ticket.IssueDescription)
	assert.Equal(t, domain.TicketStatusOpen, current.Ticket.Status)
}

func TestUpdateTicketStatusChangePublishesEvent(t *testing.T) {
	f := newTicketFixture(t)
	ctx := context.Background()

	detail, err := f.service.Create(ctx, TicketCreateInput{
		CustomerID:       f.customer.ID,
		IssueDescription: "flip status",
	})
	require.NoError(t, err)

	createdAt := detail.Ticket.CreatedAt
	status := "closed"
	updated, err := f.service.Update(ctx, detail.Ticket.ID, TicketUpdateInput{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusClosed, updated.Ticket.Status)
	assert.True(t, createdAt.Equal(updated.Ticket.CreatedAt), "createdAt must be immutable")

	// Reopening is legal: no transition is forbidden.
	status = "open"
	updated, err = f.service.Update(ctx, detail.Ticket.ID, TicketUpdateInput{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusOpen, updated.Ticket.Status)

	var statusEvents []events.Event
	for _, event := range *f.events {
		if event.Type == events.EventTicketStatusChanged {
			statusEvents = append(statusEvents, event)
		}
	}
	require.Len(t, statusEvents, 2)
	payload, ok := statusEvents[0].Payload.(events.TicketStatusChangedPayload)
	require.True(t, ok)
	assert.Equal(t, domain.TicketStatusOpen, payload.OldStatus)
	assert.Equal(t, domain.TicketStatusClosed, payload.NewStatus)
}

func TestUpdateTicketNotFound(t *testing.T) {
	f := newTicketFixture(t)

	_, err := f.service.Update(context.Background(), 12345, TicketUpdateInput{})
	require.Error(t, err)
	de := apperrors.ToDomainError(err)
	assert.Equal(t, "NOT_FOUND", de.Code)
	assert.Equal(t, 404, de.HTTPStatus)
}

func TestDeleteTicketCascades(t *testing.T) {
	f := newTicketFixture(t)
	ctx := context.Background()

	detail, err := f.service.Create(ctx, TicketCreateInput{
		CustomerID:       f.customer.ID,
		IssueDescription: "with attachments",
	})
	require.NoError(t, err)
	ticketID := detail.Ticket.ID

	require.NoError(t, f.store.Attachments().Create(ctx, &domain.Attachment{
		TicketID: ticketID, Type: domain.AttachmentTypeLog, FilePath: "/tmp/trace.log",
	}))
	require.NoError(t, f.store.AIResponses().Create(ctx, &domain.AIResponse{
		TicketID: ticketID, GeneratedText: "try rebooting", ConfidenceScore: 0.42,
	}))

	require.NoError(t, f.service.Delete(ctx, ticketID))

	_, err = f.service.Get(ctx, ticketID)
	assert.Equal(t, "NOT_FOUND", domainCode(t, err))

	attachments, err := f.store.Attachments().ListByTicket(ctx, ticketID)
	require.NoError(t, err)
	assert.Empty(t, attachments)

	responses, err := f.store.AIResponses().ListByTicket(ctx, ticketID)
	require.NoError(t, err)
	assert.Empty(t, responses)

	last := (*f.events)[len(*f.events)-1]
	require.Equal(t, events.EventTicketDeleted, last.Type)
	payload, ok := last.Payload.(events.TicketDeletedPayload)
	require.True(t, ok)
	assert.Equal(t, 1, payload.AttachmentsRemoved)
	assert.Equal(t, 1, payload.ResponsesRemoved)
}

func TestDeleteTicketNotFound(t *testing.T) {
	f := newTicketFixture(t)

	err := f.service.Delete(context.Background(), 99)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", domainCode(t, err))
}

func TestListTicketsNewestFirst(t *testing.T) {
	f := newTicketFixture(t)
	ctx := context.Background()

	var ids []int64
	for _, desc := range []string{"first", "second", "third"} {
		detail, err := f.service.Create(ctx, TicketCreateInput{
			CustomerID:       f.customer.ID,
			IssueDescription: desc,
		})
		require.NoError(t, err)
		ids = append(ids, detail.Ticket.ID)
	}

	listed, err := f.service.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 3)

	assert.Equal(t, ids[2], listed[0].Ticket.ID)
	assert.Equal(t, ids[1], listed[1].Ticket.ID)
	assert.Equal(t, ids[0], listed[2].Ticket.ID)
	for _, detail := range listed {
		require.NotNil(t, detail.Customer)
		assert.Equal(t, f.customer.ID, detail.Customer.ID)
	}
}
