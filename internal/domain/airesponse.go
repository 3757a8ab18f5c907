package domain

import "time"

// AIResponse is a generated answer recorded against a ticket.
// ConfidenceScore is in [0, 1].
type AIResponse struct {
	ID              int64
	TicketID        int64
	GeneratedText   string
	ConfidenceScore float64
	Timestamp       time.Time
}
