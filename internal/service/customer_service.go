package service

import (
	"context"
	"sort"
	"strings"

	"github.com/shopease/helpdesk/internal/domain"
	"github.com/shopease/helpdesk/internal/repository"
	apperrors "github.com/shopease/helpdesk/pkg/util"
)

// CustomerService covers customer search and the address listing.
type CustomerService struct {
	customers repository.CustomerRepository
}

// NewCustomerService constructs the service.
func NewCustomerService(customers repository.CustomerRepository) *CustomerService {
	return &CustomerService{customers: customers}
}

// Search performs a case-insensitive substring match across first name,
// last name, email, phone and address.
func (s *CustomerService) Search(ctx context.Context, term string) ([]domain.Customer, error) {
	if strings.TrimSpace(term) == "" {
		return nil, apperrors.NewValidationError("search term must be a non-empty string", nil)
	}
	return s.customers.Search(ctx, term)
}

// List returns the full customer directory.
func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.customers.List(ctx)
}

// AddressEntry pairs a customer with the city derived from its address.
type AddressEntry struct {
	Address  string
	City     string
	Customer domain.Customer
}

// CityFromAddress extracts a city from a freeform address: split on
// commas, trim, and take the second non-empty segment when at least two
// exist, otherwise "". The address column is a single string, so this
// stays a best-effort heuristic; callers depend on its exact behavior.
func CityFromAddress(address string) string {
	if address == "" {
		return ""
	}
	var parts []string
	for _, part := range strings.Split(address, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	if len(parts) >= 2 {
		return parts[1]
	}
	return ""
}

// ListAddresses returns every customer's address with the derived city,
// sorted ascending by lowercased city. Entries without a city sort
// first; ties keep the store's stable order.
func (s *CustomerService) ListAddresses(ctx context.Context) ([]AddressEntry, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]AddressEntry, 0, len(customers))
	for _, customer := range customers {
		entries = append(entries, AddressEntry{
			Address:  customer.Address,
			City:     CityFromAddress(customer.Address),
			Customer: customer,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].City) < strings.ToLower(entries[j].City)
	})
	return entries, nil
}
