package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopease/helpdesk/internal/domain"
)

// AgentRepository defines persistence access for support agents.
type AgentRepository interface {
	Create(ctx context.Context, agent *domain.SupportAgent) error
	GetByID(ctx context.Context, id int64) (*domain.SupportAgent, error)
	List(ctx context.Context) ([]domain.SupportAgent, error)
}

type agentRepository struct {
	pool *pgxpool.Pool
}

// NewAgentRepository returns a Postgres-backed implementation.
func NewAgentRepository(pool *pgxpool.Pool) AgentRepository {
	return &agentRepository{pool: pool}
}

func (r *agentRepository) Create(ctx context.Context, agent *domain.SupportAgent) error {
	const query = `
        INSERT INTO supportagents (firstname, lastname, email)
        VALUES ($1, $2, $3)
        RETURNING agentid`

	return r.pool.QueryRow(ctx, query,
		agent.FirstName,
		agent.LastName,
		agent.Email,
	).Scan(&agent.ID)
}

func (r *agentRepository) GetByID(ctx context.Context, id int64) (*domain.SupportAgent, error) {
	const query = `SELECT agentid, firstname, lastname, email FROM supportagents WHERE agentid=$1`

	var agent domain.SupportAgent
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&agent.ID,
		&agent.FirstName,
		&agent.LastName,
		&agent.Email,
	); err != nil {
		return nil, err
	}
	return &agent, nil
}

func (r *agentRepository) List(ctx context.Context) ([]domain.SupportAgent, error) {
	const query = `SELECT agentid, firstname, lastname, email FROM supportagents ORDER BY agentid`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.SupportAgent
	for rows.Next() {
		var agent domain.SupportAgent
		if err := rows.Scan(&agent.ID, &agent.FirstName, &agent.LastName, &agent.Email); err != nil {
			return nil, err
		}
		result = append(result, agent)
	}
	return result, rows.Err()
}
