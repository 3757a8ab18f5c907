package domain

// Manager is a directory record; Permissions is a freeform grant list.
type Manager struct {
	ID          int64
	FirstName   string
	LastName    string
	Email       string
	Permissions string
}
