package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shopease/helpdesk/internal/domain"
)

// MemoryStore is an in-process Directory Store. It backs the service
// when no Postgres DSN is configured and serves as the store for tests.
// It honors the same contracts as the pgx repositories, including
// pgx.ErrNoRows for missing records and monotonically assigned ids.
type MemoryStore struct {
	mu sync.RWMutex

	customers     map[int64]domain.Customer
	agents        map[int64]domain.SupportAgent
	managers      map[int64]domain.Manager
	tickets       map[int64]domain.SupportTicket
	attachments   map[int64]domain.Attachment
	responses     map[int64]domain.AIResponse
	notifications map[int64]domain.Notification

	nextID map[string]int64
}

// NewMemoryStore initializes an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		customers:     make(map[int64]domain.Customer),
		agents:        make(map[int64]domain.SupportAgent),
		managers:      make(map[int64]domain.Manager),
		tickets:       make(map[int64]domain.SupportTicket),
		attachments:   make(map[int64]domain.Attachment),
		responses:     make(map[int64]domain.AIResponse),
		notifications: make(map[int64]domain.Notification),
		nextID:        make(map[string]int64),
	}
}

func (s *MemoryStore) assignID(entity string) int64 {
	s.nextID[entity]++
	return s.nextID[entity]
}

// Customers returns the customer repository view of the store.
func (s *MemoryStore) Customers() CustomerRepository { return &memCustomerRepo{s} }

// Agents returns the agent repository view of the store.
func (s *MemoryStore) Agents() AgentRepository { return &memAgentRepo{s} }

// Managers returns the manager repository view of the store.
func (s *MemoryStore) Managers() ManagerRepository { return &memManagerRepo{s} }

// Tickets returns the ticket repository view of the store.
func (s *MemoryStore) Tickets() TicketRepository { return &memTicketRepo{s} }

// Attachments returns the attachment repository view of the store.
func (s *MemoryStore) Attachments() AttachmentRepository { return &memAttachmentRepo{s} }

// AIResponses returns the AI-response repository view of the store.
func (s *MemoryStore) AIResponses() AIResponseRepository { return &memAIResponseRepo{s} }

// Notifications returns the notification repository view of the store.
func (s *MemoryStore) Notifications() NotificationRepository { return &memNotificationRepo{s} }

type memCustomerRepo struct{ s *MemoryStore }

func (r *memCustomerRepo) Create(_ context.Context, customer *domain.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	customer.ID = r.s.assignID("customers")
	r.s.customers[customer.ID] = *customer
	return nil
}

func (r *memCustomerRepo) Update(_ context.Context, customer *domain.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.customers[customer.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.s.customers[customer.ID] = *customer
	return nil
}

func (r *memCustomerRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	customer, ok := r.s.customers[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &customer, nil
}

func (r *memCustomerRepo) GetByEmail(_ context.Context, email string) (*domain.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, customer := range r.s.customers {
		if customer.Email == email {
			found := customer
			return &found, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memCustomerRepo) Search(_ context.Context, term string) ([]domain.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	needle := strings.ToLower(term)
	var result []domain.Customer
	for _, customer := range r.s.customers {
		haystacks := []string{
			customer.FirstName, customer.LastName, customer.Email,
			customer.Phone, customer.Address,
		}
		for _, field := range haystacks {
			if strings.Contains(strings.ToLower(field), needle) {
				result = append(result, customer)
				break
			}
		}
	}
	sortCustomersByID(result)
	return result, nil
}

func (r *memCustomerRepo) List(_ context.Context) ([]domain.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	result := make([]domain.Customer, 0, len(r.s.customers))
	for _, customer := range r.s.customers {
		result = append(result, customer)
	}
	sortCustomersByID(result)
	return result, nil
}

func sortCustomersByID(customers []domain.Customer) {
	sort.Slice(customers, func(i, j int) bool { return customers[i].ID < customers[j].ID })
}

type memAgentRepo struct{ s *MemoryStore }

func (r *memAgentRepo) Create(_ context.Context, agent *domain.SupportAgent) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	agent.ID = r.s.assignID("supportagents")
	r.s.agents[agent.ID] = *agent
	return nil
}

func (r *memAgentRepo) GetByID(_ context.Context, id int64) (*domain.SupportAgent, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	agent, ok := r.s.agents[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &agent, nil
}

func (r *memAgentRepo) List(_ context.Context) ([]domain.SupportAgent, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	result := make([]domain.SupportAgent, 0, len(r.s.agents))
	for _, agent := range r.s.agents {
		result = append(result, agent)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

type memManagerRepo struct{ s *MemoryStore }

func (r *memManagerRepo) Create(_ context.Context, manager *domain.Manager) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	manager.ID = r.s.assignID("managers")
	r.s.managers[manager.ID] = *manager
	return nil
}

func (r *memManagerRepo) GetByID(_ context.Context, id int64) (*domain.Manager, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	manager, ok := r.s.managers[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &manager, nil
}

func (r *memManagerRepo) List(_ context.Context) ([]domain.Manager, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	result := make([]domain.Manager, 0, len(r.s.managers))
	for _, manager := range r.s.managers {
		result = append(result, manager)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

type memTicketRepo struct{ s *MemoryStore }

func (r *memTicketRepo) Create(_ context.Context, ticket *domain.SupportTicket) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ticket.ID = r.s.assignID("supporttickets")
	ticket.CreatedAt = time.Now().UTC()
	r.s.tickets[ticket.ID] = *ticket
	return nil
}

func (r *memTicketRepo) Update(_ context.Context, ticket *domain.SupportTicket) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.tickets[ticket.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	// createdAt is immutable once assigned.
	ticket.CreatedAt = existing.CreatedAt
	r.s.tickets[ticket.ID] = *ticket
	return nil
}

func (r *memTicketRepo) GetByID(_ context.Context, id int64) (*domain.SupportTicket, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ticket, ok := r.s.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &ticket, nil
}

func (r *memTicketRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.tickets[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.s.tickets, id)
	return nil
}

func (r *memTicketRepo) List(_ context.Context) ([]domain.SupportTicket, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	result := make([]domain.SupportTicket, 0, len(r.s.tickets))
	for _, ticket := range r.s.tickets {
		result = append(result, ticket)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

type memAttachmentRepo struct{ s *MemoryStore }

func (r *memAttachmentRepo) Create(_ context.Context, attachment *domain.Attachment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	attachment.ID = r.s.assignID("attachments")
	r.s.attachments[attachment.ID] = *attachment
	return nil
}

func (r *memAttachmentRepo) ListByTicket(_ context.Context, ticketID int64) ([]domain.Attachment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var result []domain.Attachment
	for _, attachment := range r.s.attachments {
		if attachment.TicketID == ticketID {
			result = append(result, attachment)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *memAttachmentRepo) DeleteByTicket(_ context.Context, ticketID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, attachment := range r.s.attachments {
		if attachment.TicketID == ticketID {
			delete(r.s.attachments, id)
		}
	}
	return nil
}

type memAIResponseRepo struct{ s *MemoryStore }

func (r *memAIResponseRepo) Create(_ context.Context, response *domain.AIResponse) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	response.ID = r.s.assignID("airesponses")
	response.Timestamp = time.Now().UTC()
	r.s.responses[response.ID] = *response
	return nil
}

func (r *memAIResponseRepo) ListByTicket(_ context.Context, ticketID int64) ([]domain.AIResponse, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var result []domain.AIResponse
	for _, response := range r.s.responses {
		if response.TicketID == ticketID {
			result = append(result, response)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *memAIResponseRepo) DeleteByTicket(_ context.Context, ticketID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, response := range r.s.responses {
		if response.TicketID == ticketID {
			delete(r.s.responses, id)
		}
	}
	return nil
}

type memNotificationRepo struct{ s *MemoryStore }

func (r *memNotificationRepo) Create(_ context.Context, notification *domain.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	notification.ID = r.s.assignID("notifications")
	notification.SentAt = time.Now().UTC()
	r.s.notifications[notification.ID] = *notification
	return nil
}

func (r *memNotificationRepo) ListByCustomer(_ context.Context, customerID int64) ([]domain.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var result []domain.Notification
	for _, notification := range r.s.notifications {
		if notification.CustomerID == customerID {
			result = append(result, notification)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].SentAt.Equal(result[j].SentAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].SentAt.After(result[j].SentAt)
	})
	return result, nil
}
