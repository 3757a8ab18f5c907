package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopease/helpdesk/internal/domain"
)

// TicketRepository encapsulates ticket persistence. The store assigns
// the id and createdAt on insert; createdAt is never written again.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.SupportTicket) error
	Update(ctx context.Context, ticket *domain.SupportTicket) error
	GetByID(ctx context.Context, id int64) (*domain.SupportTicket, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.SupportTicket, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

const ticketColumns = `ticketid, customerid, supportagentid, issuedescription, createdat, status`

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.SupportTicket) error {
	const query = `
        INSERT INTO supporttickets (customerid, supportagentid, issuedescription, status)
        VALUES ($1, $2, $3, $4)
        RETURNING ticketid, createdat`

	return r.pool.QueryRow(ctx, query,
		ticket.CustomerID,
		ticket.SupportAgentID,
		ticket.IssueDescription,
		ticket.Status,
	).Scan(&ticket.ID, &ticket.CreatedAt)
}

func (r *ticketRepository) Update(ctx context.Context, ticket *domain.SupportTicket) error {
	const query = `
        UPDATE supporttickets SET customerid=$1, supportagentid=$2, issuedescription=$3, status=$4
        WHERE ticketid=$5`

	cmd, err := r.pool.Exec(ctx, query,
		ticket.CustomerID,
		ticket.SupportAgentID,
		ticket.IssueDescription,
		ticket.Status,
		ticket.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id int64) (*domain.SupportTicket, error) {
	const query = `SELECT ` + ticketColumns + ` FROM supporttickets WHERE ticketid=$1`

	var ticket domain.SupportTicket
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.CustomerID,
		&ticket.SupportAgentID,
		&ticket.IssueDescription,
		&ticket.CreatedAt,
		&ticket.Status,
	); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM supporttickets WHERE ticketid=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ticketRepository) List(ctx context.Context) ([]domain.SupportTicket, error) {
	const query = `SELECT ` + ticketColumns + ` FROM supporttickets ORDER BY createdat DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.SupportTicket
	for rows.Next() {
		var ticket domain.SupportTicket
		if err := rows.Scan(
			&ticket.ID,
			&ticket.CustomerID,
			&ticket.SupportAgentID,
			&ticket.IssueDescription,
			&ticket.CreatedAt,
			&ticket.Status,
		); err != nil {
			return nil, err
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}
