package domain

// SupportAgent models a directory entry that tickets may be assigned to.
type SupportAgent struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
}
