package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopease/helpdesk/internal/domain"
	"github.com/shopease/helpdesk/internal/repository"
	apperrors "github.com/shopease/helpdesk/pkg/util"
)

func seedCustomers(t *testing.T, store *repository.MemoryStore, customers ...domain.Customer) []domain.Customer {
	t.Helper()
	ctx := context.Background()
	seeded := make([]domain.Customer, 0, len(customers))
	for _, customer := range customers {
		c := customer
		require.NoError(t, store.Customers().Create(ctx, &c))
		seeded = append(seeded, c)
	}
	return seeded
}

func TestSearchMatchesAcrossFields(t *testing.T) {
	store := repository.NewMemoryStore()
	seedCustomers(t, store,
		domain.Customer{FirstName: "Alice", LastName: "Smith", Email: "alice@example.com", Phone: "555-0101", Address: "1 Main St"},
		domain.Customer{FirstName: "Robert", LastName: "Bobson", Email: "rob@example.com", Phone: "555-0102", Address: "2 High St, Springfield"},
		domain.Customer{FirstName: "Carol", LastName: "Jones", Email: "bob@example.com", Phone: "555-0103", Address: "3 Oak Ave"},
	)
	svc := NewCustomerService(store.Customers())

	found, err := svc.Search(context.Background(), "bob")
	require.NoError(t, err)
	require.Len(t, found, 2)

	emails := []string{found[0].Email, found[1].Email}
	assert.Contains(t, emails, "rob@example.com")  // lastname "Bobson"
	assert.Contains(t, emails, "bob@example.com")  // email
	assert.NotContains(t, emails, "alice@example.com")
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	store := repository.NewMemoryStore()
	seedCustomers(t, store,
		domain.Customer{FirstName: "Alice", LastName: "Smith", Email: "alice@example.com"},
	)
	svc := NewCustomerService(store.Customers())

	for _, term := range []string{"ALICE", "aLiCe", "smith", "SMITH"} {
		found, err := svc.Search(context.Background(), term)
		require.NoError(t, err)
		assert.Len(t, found, 1, "term %q", term)
	}
}

func TestSearchRejectsBlankTerm(t *testing.T) {
	svc := NewCustomerService(repository.NewMemoryStore().Customers())

	for _, term := range []string{"", "   ", "\t"} {
		_, err := svc.Search(context.Background(), term)
		require.Error(t, err, "term %q", term)
		de := apperrors.ToDomainError(err)
		assert.Equal(t, "VALIDATION_FAILED", de.Code)
		assert.Contains(t, de.Message, "non-empty")
	}
}

func TestCityFromAddress(t *testing.T) {
	tests := []struct {
		address string
		want    string
	}{
		{"", ""},
		{"1 Main St", ""},
		{"2 High St, Springfield", "Springfield"},
		{"3 Oak Ave, Portland, OR 97201", "Portland"},
		{"  4 Elm Rd ,  Shelbyville  ", "Shelbyville"},
		{",,,", ""},
		{"5 Pine Ln,,Capital City", "Capital City"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CityFromAddress(tt.address), "address %q", tt.address)
	}
}

func TestListAddressesSortedByCity(t *testing.T) {
	store := repository.NewMemoryStore()
	seedCustomers(t, store,
		domain.Customer{FirstName: "Alice", Email: "a@example.com", Address: "9 River Rd, springfield"},
		domain.Customer{FirstName: "Bob", Email: "b@example.com", Address: "1 Main St"},
		domain.Customer{FirstName: "Carol", Email: "c@example.com", Address: "2 High St, Albany"},
	)
	svc := NewCustomerService(store.Customers())

	entries, err := svc.ListAddresses(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// No-city entry first, then cities ascending ignoring case.
	assert.Equal(t, "", entries[0].City)
	assert.Equal(t, "b@example.com", entries[0].Customer.Email)
	assert.Equal(t, "Albany", entries[1].City)
	assert.Equal(t, "springfield", entries[2].City)
}

func TestListAddressesStableForEqualCities(t *testing.T) {
	store := repository.NewMemoryStore()
	seeded := seedCustomers(t, store,
		domain.Customer{FirstName: "First", Email: "first@example.com", Address: "1 A St, Springfield"},
		domain.Customer{FirstName: "Second", Email: "second@example.com", Address: "2 B St, Springfield"},
	)
	svc := NewCustomerService(store.Customers())

	entries, err := svc.ListAddresses(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, seeded[0].ID, entries[0].Customer.ID)
	assert.Equal(t, seeded[1].ID, entries[1].Customer.ID)
}
