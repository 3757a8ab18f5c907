package domain

import "fmt"

// Role enumerates account roles carried by customer records.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAgent    Role = "agent"
	RoleManager  Role = "manager"
)

// ParseRole converts a free string into a Role.
func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleCustomer, RoleAgent, RoleManager:
		return Role(value), nil
	}
	return "", fmt.Errorf("invalid role %q. Valid values: %s, %s, %s",
		value, RoleCustomer, RoleAgent, RoleManager)
}

// Customer is the account record: it owns the credential hash and the
// role used for authorization. PasswordHash is never serialized.
type Customer struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Address      string
	PasswordHash string
	Role         Role
}
