package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopease/helpdesk/internal/domain"
)

// ManagerRepository defines persistence access for managers.
type ManagerRepository interface {
	Create(ctx context.Context, manager *domain.Manager) error
	GetByID(ctx context.Context, id int64) (*domain.Manager, error)
	List(ctx context.Context) ([]domain.Manager, error)
}

type managerRepository struct {
	pool *pgxpool.Pool
}

// NewManagerRepository returns a Postgres-backed implementation.
func NewManagerRepository(pool *pgxpool.Pool) ManagerRepository {
	return &managerRepository{pool: pool}
}

func (r *managerRepository) Create(ctx context.Context, manager *domain.Manager) error {
	const query = `
        INSERT INTO managers (firstname, lastname, email, permissions)
        VALUES ($1, $2, $3, $4)
        RETURNING managerid`

	return r.pool.QueryRow(ctx, query,
		manager.FirstName,
		manager.LastName,
		manager.Email,
		manager.Permissions,
	).Scan(&manager.ID)
}

func (r *managerRepository) GetByID(ctx context.Context, id int64) (*domain.Manager, error) {
	const query = `SELECT managerid, firstname, lastname, email, permissions FROM managers WHERE managerid=$1`

	var manager domain.Manager
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&manager.ID,
		&manager.FirstName,
		&manager.LastName,
		&manager.Email,
		&manager.Permissions,
	); err != nil {
		return nil, err
	}
	return &manager, nil
}

func (r *managerRepository) List(ctx context.Context) ([]domain.Manager, error) {
	const query = `SELECT managerid, firstname, lastname, email, permissions FROM managers ORDER BY managerid`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Manager
	for rows.Next() {
		var manager domain.Manager
		if err := rows.Scan(&manager.ID, &manager.FirstName, &manager.LastName, &manager.Email, &manager.Permissions); err != nil {
			return nil, err
		}
		result = append(result, manager)
	}
	return result, rows.Err()
}
