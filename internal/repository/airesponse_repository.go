package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopease/helpdesk/internal/domain"
)

// AIResponseRepository defines persistence access for generated responses.
type AIResponseRepository interface {
	Create(ctx context.Context, response *domain.AIResponse) error
	ListByTicket(ctx context.Context, ticketID int64) ([]domain.AIResponse, error)
	DeleteByTicket(ctx context.Context, ticketID int64) error
}

type aiResponseRepository struct {
	pool *pgxpool.Pool
}

// NewAIResponseRepository returns a Postgres-backed implementation.
func NewAIResponseRepository(pool *pgxpool.Pool) AIResponseRepository {
	return &aiResponseRepository{pool: pool}
}

func (r *aiResponseRepository) Create(ctx context.Context, response *domain.AIResponse) error {
	const query = `
        INSERT INTO airesponses (ticketid, generatedtext, confidencescore)
        VALUES ($1, $2, $3)
        RETURNING responseid, timestamp`

	return r.pool.QueryRow(ctx, query,
		response.TicketID,
		response.GeneratedText,
		response.ConfidenceScore,
	).Scan(&response.ID, &response.Timestamp)
}

func (r *aiResponseRepository) ListByTicket(ctx context.Context, ticketID int64) ([]domain.AIResponse, error) {
	const query = `
        SELECT responseid, ticketid, generatedtext, confidencescore, timestamp
        FROM airesponses WHERE ticketid=$1 ORDER BY responseid`

	rows, err := r.pool.Query(ctx, query, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.AIResponse
	for rows.Next() {
		var response domain.AIResponse
		if err := rows.Scan(
			&response.ID,
			&response.TicketID,
			&response.GeneratedText,
			&response.ConfidenceScore,
			&response.Timestamp,
		); err != nil {
			return nil, err
		}
		result = append(result, response)
	}
	return result, rows.Err()
}

func (r *aiResponseRepository) DeleteByTicket(ctx context.Context, ticketID int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM airesponses WHERE ticketid=$1`, ticketID)
	return err
}
